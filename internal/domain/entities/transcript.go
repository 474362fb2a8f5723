package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transcript is produced once per run and never mutated afterwards
type Transcript struct {
	RunID     uuid.UUID `json:"run_id"`
	Text      string    `json:"text"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTranscript creates a new transcript
func NewTranscript(runID uuid.UUID, provider, text string) Transcript {
	return Transcript{
		RunID:     runID,
		Text:      strings.TrimSpace(text),
		Provider:  provider,
		CreatedAt: time.Now(),
	}
}

// IsEmpty reports whether the engine returned no speech
func (t Transcript) IsEmpty() bool {
	return t.Text == ""
}

// WordCount returns the number of whitespace separated words
func (t Transcript) WordCount() int {
	return len(strings.Fields(t.Text))
}

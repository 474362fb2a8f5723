package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotSpecified fills action-item cells the meeting did not mention
const NotSpecified = "Not specified"

// Stage names one step of the pipeline
type Stage string

const (
	StageTranscription Stage = "transcription"
	StageSummary       Stage = "summary"
	StageActionItems   Stage = "action_items"
)

// Summary is the bulleted prose summary of a meeting
type Summary struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// ActionItem is one row of the action-item table
type ActionItem struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// ActionItemTable is the markdown returned by the model plus its parsed rows.
// Valid is false when the markdown is not a three-column table; Markdown is
// still shown in that case.
type ActionItemTable struct {
	Markdown string       `json:"markdown"`
	Items    []ActionItem `json:"items"`
	Valid    bool         `json:"valid"`
}

// StageEvent is emitted as soon as a stage finishes
type StageEvent struct {
	RunID  uuid.UUID
	Stage  Stage
	Output string
	Table  *ActionItemTable
	Err    error
}

// Failed reports whether the stage produced an error
func (e StageEvent) Failed() bool {
	return e.Err != nil
}

// MeetingResult collects everything one run produced. Transcript is nil when
// transcription failed, in which case neither later stage ran.
type MeetingResult struct {
	RunID          uuid.UUID
	Title          string
	Backend        string
	Recording      *Recording
	Transcript     *Transcript
	Summary        *Summary
	ActionItems    *ActionItemTable
	SummaryErr     error
	ActionItemsErr error
	StartedAt      time.Time
	FinishedAt     time.Time
}

// NewMeetingResult starts a result for a new run
func NewMeetingResult(title, backend string) *MeetingResult {
	return &MeetingResult{
		RunID:     uuid.New(),
		Title:     title,
		Backend:   backend,
		StartedAt: time.Now(),
	}
}

// Duration returns how long the run took
func (m *MeetingResult) Duration() time.Duration {
	if m.FinishedAt.IsZero() {
		return time.Since(m.StartedAt)
	}
	return m.FinishedAt.Sub(m.StartedAt)
}

// BackendInfo describes the configured backend
type BackendInfo struct {
	Mode               string `json:"mode"`
	Transcriber        string `json:"transcriber"`
	Generator          string `json:"generator"`
	TranscriptionModel string `json:"transcription_model"`
	ChatModel          string `json:"chat_model"`
}

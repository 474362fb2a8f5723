package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// RecordingStore stages uploaded audio for the length of one run
type RecordingStore interface {
	// Stage persists the upload somewhere the transcription engine can read it
	Stage(ctx context.Context, upload entities.Upload) (*entities.Recording, error)
	// Release removes everything Stage created. Safe to call more than once.
	Release(ctx context.Context, rec *entities.Recording) error
}

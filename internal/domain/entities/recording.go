package entities

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordingStatus represents the lifecycle of a staged recording
type RecordingStatus string

const (
	RecordingStatusStaged     RecordingStatus = "staged"
	RecordingStatusProcessing RecordingStatus = "processing"
	RecordingStatusCompleted  RecordingStatus = "completed"
	RecordingStatusFailed     RecordingStatus = "failed"
)

// SupportedAudioExtensions lists the upload formats the transcription stage accepts
var SupportedAudioExtensions = []string{".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm", ".ogg", ".flac"}

// IsSupportedAudio reports whether filename has an accepted audio extension
func IsSupportedAudio(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range SupportedAudioExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Upload is an audio file as received from a caller, before staging
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Recording is an uploaded audio file staged for one run
type Recording struct {
	ID              uuid.UUID       `json:"id"`
	Filename        string          `json:"filename"`
	ContentType     string          `json:"content_type,omitempty"`
	Size            int64           `json:"size"`
	Path            string          `json:"-"`
	URL             string          `json:"-"`
	ObjectKey       string          `json:"-"`
	Status          RecordingStatus `json:"status"`
	StagedAt        time.Time       `json:"staged_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty"`
	ProcessingError *string         `json:"processing_error,omitempty"`
}

// NewRecording creates a recording entry for an upload
func NewRecording(upload Upload) *Recording {
	return &Recording{
		ID:          uuid.New(),
		Filename:    filepath.Base(upload.Filename),
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Status:      RecordingStatusStaged,
		StagedAt:    time.Now(),
	}
}

// Extension returns the lower-cased file extension including the dot
func (r *Recording) Extension() string {
	return strings.ToLower(filepath.Ext(r.Filename))
}

// IsRemote reports whether the recording was published to object storage
func (r *Recording) IsRemote() bool {
	return r.URL != ""
}

// IsCompleted checks if recording is completed
func (r *Recording) IsCompleted() bool {
	return r.Status == RecordingStatusCompleted
}

// IsFailed checks if recording failed
func (r *Recording) IsFailed() bool {
	return r.Status == RecordingStatusFailed
}

// MarkAsProcessing marks recording as processing
func (r *Recording) MarkAsProcessing() {
	r.Status = RecordingStatusProcessing
}

// MarkAsCompleted marks recording as completed
func (r *Recording) MarkAsCompleted() {
	r.Status = RecordingStatusCompleted
	now := time.Now()
	r.CompletedAt = &now
}

// MarkAsFailed marks recording as failed
func (r *Recording) MarkAsFailed(errorMsg string) {
	r.Status = RecordingStatusFailed
	r.ProcessingError = &errorMsg
	now := time.Now()
	r.CompletedAt = &now
}

// MarkAsReleased records that the staged file was removed. The run outcome
// in Status is left untouched.
func (r *Recording) MarkAsReleased() {
	now := time.Now()
	r.ReleasedAt = &now
}

// IsReleased reports whether the staged file has been removed
func (r *Recording) IsReleased() bool {
	return r.ReleasedAt != nil
}

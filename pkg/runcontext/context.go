package runcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRunID     KeyContext = "run_id"
	keyBackend   KeyContext = "backend"
	keyFilename  KeyContext = "filename"
	keyStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for one pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	Backend   string
	Filename  string
	StartTime time.Time
}

// RunBegin attaches run metadata to ctx. No deadline is added; the caller's
// context bounds the run.
func RunBegin(parentCtx context.Context, runID uuid.UUID, backend, filename string) context.Context {
	ctx := context.WithValue(parentCtx, keyRunID, runID)
	ctx = context.WithValue(ctx, keyBackend, backend)
	ctx = context.WithValue(ctx, keyFilename, filename)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// GetRunID extracts run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetBackend extracts the backend mode from context
func GetBackend(ctx context.Context) string {
	backend, _ := ctx.Value(keyBackend).(string)
	return backend
}

// GetFilename extracts the recording name from context
func GetFilename(ctx context.Context) string {
	filename, _ := ctx.Value(keyFilename).(string)
	return filename
}

// GetStartTime extracts run start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns time since the run began, or zero outside a run
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	startTime, _ := GetStartTime(ctx)

	return &RunMetadata{
		RunID:     runID,
		Backend:   GetBackend(ctx),
		Filename:  GetFilename(ctx),
		StartTime: startTime,
	}
}

// LogFields returns the run metadata as zap fields. Fields missing from ctx
// are left out, so it is safe to call outside a run.
func LogFields(ctx context.Context) []zap.Field {
	meta := GetRunMetadata(ctx)

	var fields []zap.Field
	if meta.RunID != uuid.Nil {
		fields = append(fields, zap.String("run_id", meta.RunID.String()))
	}
	if meta.Backend != "" {
		fields = append(fields, zap.String("backend", meta.Backend))
	}
	if meta.Filename != "" {
		fields = append(fields, zap.String("filename", meta.Filename))
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", Elapsed(ctx)))
	}
	return fields
}

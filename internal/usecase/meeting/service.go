package meeting

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	pkgai "github.com/johnquangdev/meeting-minutes/pkg/ai"
	"github.com/johnquangdev/meeting-minutes/pkg/runcontext"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// EmitFunc receives each stage result as soon as it is available
type EmitFunc func(entities.StageEvent)

// ProcessRequest is one recording to run through the pipeline
type ProcessRequest struct {
	Title  string
	Upload entities.Upload
}

// Service defines the meeting pipeline
type Service interface {
	// Process stages the upload, then runs transcription, summary and action-item
	// extraction in that order. The returned error is set only when the run could
	// not produce a transcript; later stage failures are reported on the result.
	Process(ctx context.Context, req ProcessRequest, emit EmitFunc) (*entities.MeetingResult, error)
	Transcribe(ctx context.Context, runID uuid.UUID, rec *entities.Recording) (entities.Transcript, error)
	Summarize(ctx context.Context, transcript entities.Transcript) (entities.Summary, error)
	ExtractActionItems(ctx context.Context, transcript entities.Transcript) (entities.ActionItemTable, error)
	Backend() entities.BackendInfo
}

type meetingService struct {
	backend *Backend
	store   repositories.RecordingStore
	parser  *Parser
	logger  *zap.Logger
}

// NewService constructs a new meeting service
func NewService(backend *Backend, store repositories.RecordingStore, logger *zap.Logger) Service {
	return &meetingService{
		backend: backend,
		store:   store,
		parser:  NewParser(),
		logger:  logger,
	}
}

func (s *meetingService) Backend() entities.BackendInfo {
	return s.backend.Info
}

func (s *meetingService) Process(ctx context.Context, req ProcessRequest, emit EmitFunc) (*entities.MeetingResult, error) {
	if emit == nil {
		emit = func(entities.StageEvent) {}
	}

	if req.Upload.Body == nil {
		return nil, errors.ErrMissingAudioFile()
	}
	if !entities.IsSupportedAudio(req.Upload.Filename) {
		return nil, errors.ErrUnsupportedAudioFormat(req.Upload.Filename, entities.SupportedAudioExtensions)
	}

	result := entities.NewMeetingResult(req.Title, s.backend.Info.Mode)
	ctx = runcontext.RunBegin(ctx, result.RunID, s.backend.Info.Mode, req.Upload.Filename)

	rec, err := s.store.Stage(ctx, req.Upload)
	if err != nil {
		return nil, err
	}
	result.Recording = rec
	defer s.release(context.WithoutCancel(ctx), rec)

	if s.logger != nil {
		s.logger.Info("📥 Recording staged", runFields(ctx, result.RunID,
			zap.Int64("size", rec.Size),
			zap.Bool("remote", rec.IsRemote()),
		)...)
	}

	rec.MarkAsProcessing()

	transcript, err := s.Transcribe(ctx, result.RunID, rec)
	if err != nil {
		rec.MarkAsFailed(err.Error())
		result.FinishedAt = time.Now()
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageTranscription, Err: err})
		return result, err
	}
	result.Transcript = &transcript
	emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageTranscription, Output: transcript.Text})

	// Both generation stages read the same transcript; a summary failure
	// does not stop action-item extraction.
	summary, err := s.Summarize(ctx, transcript)
	if err != nil {
		result.SummaryErr = err
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageSummary, Err: err})
	} else {
		result.Summary = &summary
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageSummary, Output: summary.Text})
	}

	table, err := s.ExtractActionItems(ctx, transcript)
	if err != nil {
		result.ActionItemsErr = err
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageActionItems, Err: err})
	} else {
		result.ActionItems = &table
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageActionItems, Output: table.Markdown, Table: &table})
	}

	rec.MarkAsCompleted()
	result.FinishedAt = time.Now()

	if s.logger != nil {
		s.logger.Info("🏁 Meeting processed", runFields(ctx, result.RunID,
			zap.Bool("summary_ok", result.SummaryErr == nil),
			zap.Bool("action_items_ok", result.ActionItemsErr == nil),
		)...)
	}

	return result, nil
}

func (s *meetingService) Transcribe(ctx context.Context, runID uuid.UUID, rec *entities.Recording) (entities.Transcript, error) {
	if rec == nil || rec.Path == "" {
		return entities.Transcript{}, errors.ErrAITranscriptionFailed(entities.ErrRecordingNotStaged)
	}

	provider := s.backend.Info.Transcriber
	if s.logger != nil {
		s.logger.Info("🎙️ Starting transcription", runFields(ctx, runID,
			zap.String("provider", provider),
		)...)
	}

	start := time.Now()
	text, err := s.backend.Transcriber.Transcribe(ctx, pkgai.Audio{
		Path:     rec.Path,
		URL:      rec.URL,
		Filename: rec.Filename,
	})
	if err == nil && text == "" {
		err = &pkgai.ProviderError{Provider: provider, Kind: pkgai.KindInvalidInput, Message: entities.ErrEmptyTranscript.Error()}
	}
	if err != nil {
		appErr := stageError(errors.ErrAITranscriptionFailed, err)
		s.logStageError(ctx, runID, entities.StageTranscription, provider, appErr)
		return entities.Transcript{}, appErr
	}

	transcript := entities.NewTranscript(runID, provider, text)
	if s.logger != nil {
		s.logger.Info("✅ Transcription completed", runFields(ctx, runID,
			zap.String("provider", provider),
			zap.Int("words", transcript.WordCount()),
			zap.Duration("took", time.Since(start)),
		)...)
	}
	return transcript, nil
}

func (s *meetingService) Summarize(ctx context.Context, transcript entities.Transcript) (entities.Summary, error) {
	provider := s.backend.Info.Generator

	out, err := s.generate(ctx, entities.StageSummary, transcript, s.backend.Prompts.Summary.System, s.backend.Prompts.Summary.Render)
	if err != nil {
		appErr := stageError(errors.ErrAISummaryFailed, err)
		s.logStageError(ctx, transcript.RunID, entities.StageSummary, provider, appErr)
		return entities.Summary{}, appErr
	}
	return entities.Summary{Text: out, Provider: provider}, nil
}

func (s *meetingService) ExtractActionItems(ctx context.Context, transcript entities.Transcript) (entities.ActionItemTable, error) {
	provider := s.backend.Info.Generator

	out, err := s.generate(ctx, entities.StageActionItems, transcript, s.backend.Prompts.ActionItems.System, s.backend.Prompts.ActionItems.Render)
	if err != nil {
		appErr := stageError(errors.ErrAIActionItemsFailed, err)
		s.logStageError(ctx, transcript.RunID, entities.StageActionItems, provider, appErr)
		return entities.ActionItemTable{}, appErr
	}

	table := s.parser.ParseActionItems(out)
	if !table.Valid && s.logger != nil {
		s.logger.Warn("⚠️ Action items are not a three-column table, showing raw output",
			runFields(ctx, transcript.RunID)...)
	}
	return table, nil
}

// generate renders the stage prompt and runs one completion
func (s *meetingService) generate(ctx context.Context, stage entities.Stage, transcript entities.Transcript, system string, render func(string) (string, error)) (string, error) {
	user, err := render(transcript.Text)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("🤖 Calling language model", runFields(ctx, transcript.RunID,
			zap.String("stage", string(stage)),
			zap.String("provider", s.backend.Info.Generator),
			zap.String("model", s.backend.Info.ChatModel),
		)...)
	}

	start := time.Now()
	out, err := s.backend.Generator.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("✅ Language model answered", runFields(ctx, transcript.RunID,
			zap.String("stage", string(stage)),
			zap.Int("chars", len(out)),
			zap.Duration("took", time.Since(start)),
		)...)
	}
	return out, nil
}

func (s *meetingService) release(ctx context.Context, rec *entities.Recording) {
	if err := s.store.Release(ctx, rec); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to release recording", append(runcontext.LogFields(ctx),
			zap.String("recording_id", rec.ID.String()),
			zap.Error(err),
		)...)
	}
}

func (s *meetingService) logStageError(ctx context.Context, runID uuid.UUID, stage entities.Stage, provider string, appErr errors.AppError) {
	if s.logger == nil {
		return
	}
	s.logger.Error("❌ Stage failed", runFields(ctx, runID,
		zap.String("stage", string(stage)),
		zap.String("provider", provider),
		zap.String("kind", appErr.Details["kind"]),
		zap.Error(appErr.Raw),
	)...)
}

// runFields prefixes extra with the run metadata carried by ctx. Stages called
// outside Process still log the run id they were given.
func runFields(ctx context.Context, runID uuid.UUID, extra ...zap.Field) []zap.Field {
	fields := runcontext.LogFields(ctx)
	if _, ok := runcontext.GetRunID(ctx); !ok {
		fields = append(fields, zap.String("run_id", runID.String()))
	}
	return append(fields, extra...)
}

// stageError wraps a provider failure into the stage's AppError, with the
// HTTP status and retry hint derived from the failure kind.
func stageError(build func(error) errors.AppError, err error) errors.AppError {
	kind := pkgai.Classify(err)
	return build(err).
		WithHTTPCode(kind.HTTPStatus()).
		WithDetail("kind", string(kind)).
		WithDetail("retryable", strconv.FormatBool(kind.Retryable()))
}

package main

import (
	"context"
	stdErrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	meetinguc "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
)

type stubService struct {
	fail bool
}

func (s *stubService) Process(_ context.Context, req meetinguc.ProcessRequest, emit meetinguc.EmitFunc) (*entities.MeetingResult, error) {
	_, _ = io.ReadAll(req.Upload.Body)
	result := entities.NewMeetingResult(req.Title, "local")
	result.Recording = entities.NewRecording(req.Upload)
	if s.fail {
		err := errors.ErrAITranscriptionFailed(stdErrors.New("whisper server unreachable"))
		emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageTranscription, Err: err})
		return result, err
	}
	tr := entities.NewTranscript(result.RunID, "local", "Kickoff done.")
	result.Transcript = &tr
	result.Summary = &entities.Summary{Text: "- Kickoff"}
	result.ActionItems = &entities.ActionItemTable{Markdown: "| Task | Owner | Deadline |\n|---|---|---|"}
	emit(entities.StageEvent{RunID: result.RunID, Stage: entities.StageTranscription, Output: tr.Text})
	return result, nil
}

func (s *stubService) Transcribe(context.Context, uuid.UUID, *entities.Recording) (entities.Transcript, error) {
	return entities.Transcript{}, nil
}

func (s *stubService) Summarize(context.Context, entities.Transcript) (entities.Summary, error) {
	return entities.Summary{}, nil
}

func (s *stubService) ExtractActionItems(context.Context, entities.Transcript) (entities.ActionItemTable, error) {
	return entities.ActionItemTable{}, nil
}

func (s *stubService) Backend() entities.BackendInfo { return entities.BackendInfo{Mode: "local"} }

func TestReportPath(t *testing.T) {
	if got := reportPath("/in/Team Sync.m4a", "/out"); got != filepath.Join("/out", "Team Sync.md") {
		t.Fatalf("unexpected report path %s", got)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	recording := filepath.Join(dir, "kickoff.mp3")
	if err := os.WriteFile(recording, []byte("ID3"), 0o600); err != nil {
		t.Fatal(err)
	}
	report := reportPath(recording, dir)

	if err := processFile(context.Background(), &stubService{}, recording, "", report, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	for _, want := range []string{"# kickoff", "- Kickoff", "Kickoff done."} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestProcessFile_WritesReportOnFailure(t *testing.T) {
	dir := t.TempDir()
	recording := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(recording, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}
	report := reportPath(recording, dir)

	err := processFile(context.Background(), &stubService{fail: true}, recording, "Broken", report, zap.NewNop())
	if err == nil {
		t.Fatal("expected transcription error")
	}

	out, readErr := os.ReadFile(report)
	if readErr != nil {
		t.Fatalf("report should still be written: %v", readErr)
	}
	if !strings.Contains(string(out), "An error occurred during the transcription: whisper server unreachable") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}

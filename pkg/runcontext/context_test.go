package runcontext

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRunBegin(t *testing.T) {
	id := uuid.New()
	ctx := RunBegin(context.Background(), id, "local", "standup.mp3")

	meta := GetRunMetadata(ctx)
	if meta.RunID != id {
		t.Fatalf("expected run id %s, got %s", id, meta.RunID)
	}
	if meta.Backend != "local" || meta.Filename != "standup.mp3" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.StartTime.IsZero() {
		t.Fatal("expected start time")
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		t.Fatal("run context must not add a deadline")
	}
}

func TestOutsideRun(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetRunID(ctx); ok {
		t.Fatal("expected no run id")
	}
	if Elapsed(ctx) != 0 {
		t.Fatal("expected zero elapsed outside a run")
	}
}

func TestLogFields(t *testing.T) {
	if fields := LogFields(context.Background()); len(fields) != 0 {
		t.Fatalf("expected no fields outside a run, got %d", len(fields))
	}

	ctx := RunBegin(context.Background(), uuid.New(), "hosted", "retro.m4a")
	keys := map[string]bool{}
	for _, f := range LogFields(ctx) {
		keys[f.Key] = true
	}
	for _, k := range []string{"run_id", "backend", "filename", "elapsed"} {
		if !keys[k] {
			t.Fatalf("missing field %q in %v", k, keys)
		}
	}
}

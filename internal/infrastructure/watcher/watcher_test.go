package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsRecording(t *testing.T) {
	tests := map[string]bool{
		"/in/standup.mp3":     true,
		"/in/Board.FLAC":      true,
		"/in/.standup.mp3":    false,
		"/in/notes.md":        false,
		"/in/upload.mp3.part": false,
	}
	for path, want := range tests {
		if got := isRecording(path); got != want {
			t.Errorf("isRecording(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_HandlesNewRecordings(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 4)

	w, err := New(dir, 10*time.Millisecond, func(_ context.Context, path string) error {
		handled <- filepath.Base(path)
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sync.wav"), []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-handled:
		if name != "sync.wav" {
			t.Fatalf("unexpected file handled: %s", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("recording was not handled")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

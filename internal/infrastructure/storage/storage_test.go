package storage

import (
	"bytes"
	"context"
	stdErrors "errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

func TestTempStore_StageAndRelease(t *testing.T) {
	dir := t.TempDir()
	store := NewTempStore(dir, 1024)

	rec, err := store.Stage(context.Background(), entities.Upload{
		Filename: "weekly sync.M4A",
		Body:     strings.NewReader("audio-bytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(rec.Path) != dir {
		t.Fatalf("expected file under %s, got %s", dir, rec.Path)
	}
	if filepath.Ext(rec.Path) != ".m4a" {
		t.Fatalf("expected extension to be kept, got %s", rec.Path)
	}
	if rec.Size != int64(len("audio-bytes")) {
		t.Fatalf("unexpected size %d", rec.Size)
	}
	if _, err := os.Stat(rec.Path); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}

	if err := store.Release(context.Background(), rec); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(rec.Path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err = %v", err)
	}
	if !rec.IsReleased() || rec.Status != entities.RecordingStatusStaged {
		t.Fatalf("release must be recorded without touching status, got %s released=%v", rec.Status, rec.IsReleased())
	}

	// second release is a no-op
	if err := store.Release(context.Background(), rec); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestTempStore_TooLarge(t *testing.T) {
	dir := t.TempDir()
	store := NewTempStore(dir, 4)

	_, err := store.Stage(context.Background(), entities.Upload{
		Filename: "long.mp3",
		Body:     bytes.NewReader(make([]byte, 10)),
	})
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected too large error, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected no leftover files, found %d", len(entries))
	}
}

func TestTempStore_EmptyAndMissing(t *testing.T) {
	store := NewTempStore(t.TempDir(), 0)

	if _, err := store.Stage(context.Background(), entities.Upload{Filename: "a.wav", Body: strings.NewReader("")}); err == nil {
		t.Fatal("expected error for empty upload")
	}
	if _, err := store.Stage(context.Background(), entities.Upload{Filename: "a.wav"}); err == nil {
		t.Fatal("expected error for missing body")
	}
}

type fakeObjectStore struct {
	uploaded map[string][]byte
	removed  []string
	failPut  bool
}

func (f *fakeObjectStore) UploadFile(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if f.failPut {
		return stdErrors.New("bucket unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[name] = b
	return nil
}

func (f *fakeObjectStore) GetFileURL(_ context.Context, name string, _ time.Duration) (string, error) {
	return "https://files.example.com/meeting-minutes/" + name + "?X-Amz-Signature=abc", nil
}

func (f *fakeObjectStore) RemoveObject(_ context.Context, name string) error {
	f.removed = append(f.removed, name)
	return nil
}

func TestRemoteStore_StagePublishesAndReleases(t *testing.T) {
	objects := &fakeObjectStore{}
	store := NewRemoteStore(NewTempStore(t.TempDir(), 0), objects, time.Minute, nil)

	rec, err := store.Stage(context.Background(), entities.Upload{Filename: "demo.wav", Body: strings.NewReader("RIFF")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsRemote() || rec.ObjectKey == "" {
		t.Fatalf("expected remote recording, got %+v", rec)
	}
	if string(objects.uploaded[rec.ObjectKey]) != "RIFF" {
		t.Fatalf("unexpected uploaded content %q", objects.uploaded[rec.ObjectKey])
	}

	key := rec.ObjectKey
	if err := store.Release(context.Background(), rec); err != nil {
		t.Fatalf("release: %v", err)
	}
	if len(objects.removed) != 1 || objects.removed[0] != key {
		t.Fatalf("expected %s removed, got %v", key, objects.removed)
	}
	if _, err := os.Stat(rec.Path); !os.IsNotExist(err) {
		t.Fatal("expected local file removed")
	}
}

func TestRemoteStore_UploadFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	store := NewRemoteStore(NewTempStore(dir, 0), &fakeObjectStore{failPut: true}, time.Minute, nil)

	_, err := store.Stage(context.Background(), entities.Upload{Filename: "demo.wav", Body: strings.NewReader("RIFF")})
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_INTEGRATION_STORAGE_FAILED {
		t.Fatalf("expected storage error, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected temp file removed, found %d entries", len(entries))
	}
}

func TestRewriteHost(t *testing.T) {
	u, _ := url.Parse("http://minio:9000/meeting-minutes/recordings/a.mp3?X-Amz-Signature=abc")

	got, err := rewriteHost(u, "https://files.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://files.example.com/meeting-minutes/recordings/a.mp3?X-Amz-Signature=abc" {
		t.Fatalf("unexpected url %s", got)
	}

	same, _ := rewriteHost(u, "")
	if same != u.String() {
		t.Fatalf("expected url unchanged, got %s", same)
	}
}

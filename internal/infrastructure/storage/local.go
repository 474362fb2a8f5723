package storage

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// TempStore stages recordings as temporary files on local disk
type TempStore struct {
	dir      string
	maxBytes int64
}

// NewTempStore creates a store writing under dir (os.TempDir when empty).
// maxBytes <= 0 disables the size check.
func NewTempStore(dir string, maxBytes int64) *TempStore {
	return &TempStore{dir: dir, maxBytes: maxBytes}
}

// Stage copies the upload into a temp file that keeps the original extension,
// since transcription engines detect the format from it.
func (s *TempStore) Stage(ctx context.Context, upload entities.Upload) (*entities.Recording, error) {
	if upload.Body == nil {
		return nil, errors.ErrMissingAudioFile()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := entities.NewRecording(upload)

	f, err := os.CreateTemp(s.dir, "meeting-*"+rec.Extension())
	if err != nil {
		return nil, errors.ErrStorageFailed("create temp file", err)
	}
	rec.Path = f.Name()

	body := upload.Body
	if s.maxBytes > 0 {
		body = io.LimitReader(upload.Body, s.maxBytes+1)
	}

	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if err := stdErrors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(rec.Path)
		return nil, errors.ErrStorageFailed("write temp file", err)
	}

	if s.maxBytes > 0 && n > s.maxBytes {
		_ = os.Remove(rec.Path)
		return nil, errors.ErrAudioTooLarge(n, s.maxBytes)
	}
	if n == 0 {
		_ = os.Remove(rec.Path)
		return nil, errors.ErrInvalidArgument(entities.ErrEmptyUpload.Error())
	}

	rec.Size = n
	return rec, nil
}

// Release removes the temp file
func (s *TempStore) Release(_ context.Context, rec *entities.Recording) error {
	if rec == nil || rec.Path == "" {
		return nil
	}
	if err := os.Remove(rec.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", rec.Path, err)
	}
	rec.MarkAsReleased()
	return nil
}

package storage

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/pkg/runcontext"
)

// ObjectStore is the part of MinIOClient the remote store needs
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	RemoveObject(ctx context.Context, objectName string) error
}

// RemoteStore stages locally and also publishes the recording to object
// storage, so URL-based engines (AssemblyAI) can fetch it directly.
type RemoteStore struct {
	local  *TempStore
	remote ObjectStore
	expiry time.Duration
	logger *zap.Logger
}

// NewRemoteStore creates a RemoteStore
func NewRemoteStore(local *TempStore, remote ObjectStore, expiry time.Duration, logger *zap.Logger) *RemoteStore {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &RemoteStore{local: local, remote: remote, expiry: expiry, logger: logger}
}

// Stage writes the temp file, uploads it and attaches a presigned URL
func (s *RemoteStore) Stage(ctx context.Context, upload entities.Upload) (*entities.Recording, error) {
	rec, err := s.local.Stage(ctx, upload)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("recordings/%s%s", rec.ID, rec.Extension())
	if err := s.publish(ctx, rec, objectName); err != nil {
		_ = s.local.Release(ctx, rec)
		return nil, errors.ErrStorageFailed("upload recording", err)
	}

	if s.logger != nil {
		s.logger.Info("☁️ Recording uploaded", append(runcontext.LogFields(ctx),
			zap.String("recording_id", rec.ID.String()),
			zap.String("object", objectName),
		)...)
	}
	return rec, nil
}

func (s *RemoteStore) publish(ctx context.Context, rec *entities.Recording, objectName string) error {
	f, err := os.Open(rec.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := rec.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.remote.UploadFile(ctx, objectName, f, rec.Size, contentType); err != nil {
		return err
	}
	rec.ObjectKey = objectName

	u, err := s.remote.GetFileURL(ctx, objectName, s.expiry)
	if err != nil {
		_ = s.remote.RemoveObject(ctx, objectName)
		rec.ObjectKey = ""
		return err
	}
	rec.URL = u
	return nil
}

// Release deletes the remote object and the temp file
func (s *RemoteStore) Release(ctx context.Context, rec *entities.Recording) error {
	if rec == nil {
		return nil
	}

	var remoteErr error
	if rec.ObjectKey != "" {
		if remoteErr = s.remote.RemoveObject(ctx, rec.ObjectKey); remoteErr == nil {
			rec.ObjectKey = ""
			rec.URL = ""
		}
	}
	return stdErrors.Join(remoteErr, s.local.Release(ctx, rec))
}

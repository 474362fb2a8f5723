package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// Handler processes one new recording
type Handler func(ctx context.Context, path string) error

// Watcher reports audio files created in a directory, one at a time
type Watcher struct {
	dir     string
	handler Handler
	settle  time.Duration
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// New creates a watcher on dir. settle is how long to wait after a file
// appears before handing it over, so copies can finish writing.
func New(dir string, settle time.Duration, handler Handler, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:     dir,
		handler: handler,
		settle:  settle,
		logger:  logger,
		watcher: fw,
	}, nil
}

// Start blocks until ctx is done. Files are handled sequentially in arrival order.
func (w *Watcher) Start(ctx context.Context) error {
	if w.logger != nil {
		w.logger.Info("👀 Watching for recordings",
			zap.String("dir", w.dir),
			zap.Strings("formats", entities.SupportedAudioExtensions),
		)
	}

	for {
		select {
		case <-ctx.Done():
			if w.logger != nil {
				w.logger.Info("🛑 Watcher stopped")
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isRecording(event.Name) {
				if w.logger != nil {
					w.logger.Debug("ignoring non-audio file", zap.String("path", event.Name))
				}
				continue
			}

			if w.logger != nil {
				w.logger.Info("🎧 New recording detected", zap.String("path", event.Name))
			}

			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := w.handler(ctx, event.Name); err != nil && w.logger != nil {
				w.logger.Error("❌ Failed to process recording", zap.String("path", event.Name), zap.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("watcher error", zap.Error(err))
			}
		}
	}
}

// Stop closes the file watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// isRecording skips hidden and partial files and anything that is not audio
func isRecording(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, ".part") {
		return false
	}
	return entities.IsSupportedAudio(base)
}

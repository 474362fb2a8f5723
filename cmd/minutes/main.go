// Command minutes processes meeting recordings from the command line and
// writes one markdown report per recording.
//
//	minutes [-title T] [-o report.md] recording.mp3
//	minutes -watch ./inbox [-out ./reports]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/watcher"
	meetinguc "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-minutes/pkg/logger"
)

func main() {
	var (
		title    = flag.String("title", "", "meeting title (defaults to the file name)")
		output   = flag.String("o", "", "report path (defaults to <recording>.md)")
		watchDir = flag.String("watch", "", "process every new recording dropped in this directory")
		outDir   = flag.String("out", "", "report directory in watch mode (defaults to the watched directory)")
		settle   = flag.Duration("settle", 2*time.Second, "wait after a file appears before processing it")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <recording>\n       %s -watch <dir> [flags]\n\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *watchDir == "" && flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	if *watchDir != "" {
		dest := *outDir
		if dest == "" {
			dest = *watchDir
		}
		if err := watch(ctx, svc, *watchDir, dest, *settle, logger); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Watcher failed: %v", err)
		}
		return
	}

	recording := flag.Arg(0)
	report := *output
	if report == "" {
		report = reportPath(recording, filepath.Dir(recording))
	}
	if err := processFile(ctx, svc, recording, *title, report, logger); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func newService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (meetinguc.Service, error) {
	backend, err := meetinguc.NewBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tempStore := storage.NewTempStore(cfg.Storage.TempDir, cfg.MaxUploadBytes())
	var store repositories.RecordingStore = tempStore
	if cfg.Storage.RemoteEnabled {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			return nil, err
		}
		store = storage.NewRemoteStore(tempStore, minioClient, cfg.Storage.URLExpiry, logger)
	}

	return meetinguc.NewService(backend, store, logger), nil
}

func watch(ctx context.Context, svc meetinguc.Service, dir, dest string, settle time.Duration, logger *zap.Logger) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	w, err := watcher.New(dir, settle, func(ctx context.Context, path string) error {
		return processFile(ctx, svc, path, "", reportPath(path, dest), logger)
	}, logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	return w.Start(ctx)
}

// processFile runs one recording and always writes a report, even when
// transcription failed.
func processFile(ctx context.Context, svc meetinguc.Service, path, title, report string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	result, procErr := svc.Process(ctx, meetinguc.ProcessRequest{
		Title: title,
		Upload: entities.Upload{
			Filename: filepath.Base(path),
			Size:     info.Size(),
			Body:     f,
		},
	}, func(ev entities.StageEvent) {
		status := "done"
		if ev.Failed() {
			status = "failed"
		}
		logger.Info("stage finished", zap.String("stage", string(ev.Stage)), zap.String("status", status))
	})
	if result == nil {
		return procErr
	}

	if err := os.WriteFile(report, []byte(presenter.RenderReport(result, procErr)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("📝 Report written", zap.String("report", report))

	return procErr
}

// reportPath places <name>.md for a recording in dir
func reportPath(recording, dir string) string {
	base := strings.TrimSuffix(filepath.Base(recording), filepath.Ext(recording))
	return filepath.Join(dir, base+".md")
}

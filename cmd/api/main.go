package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-minutes/docs"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/storage"
	meetinguc "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-minutes/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-minutes/pkg/validator"
)

// @title           Meeting Minutes API
// @version         1.0
// @description     Upload a meeting recording and get back a transcript, a bulleted summary and a table of action items.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	ctx := context.Background()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	log.Printf("🤖 Initializing %s backend...", cfg.Pipeline.Backend)
	backend, err := meetinguc.NewBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize backend: %v", err)
	}
	log.Printf("✅ Transcriber: %s (%s), generator: %s (%s)",
		backend.Info.Transcriber, backend.Info.TranscriptionModel,
		backend.Info.Generator, backend.Info.ChatModel)

	log.Println("📦 Initializing recording storage...")
	tempStore := storage.NewTempStore(cfg.Storage.TempDir, cfg.MaxUploadBytes())
	var store repositories.RecordingStore = tempStore
	var storageHandler *handler.Storage
	if cfg.Storage.RemoteEnabled {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		store = storage.NewRemoteStore(tempStore, minioClient, cfg.Storage.URLExpiry, logger)
		storageHandler = handler.NewStorageHandler(minioClient, logger)
		log.Printf("✅ Recordings are published to bucket %s", cfg.Storage.BucketName)
	} else {
		log.Println("📁 Recordings are staged on local disk only")
	}

	meetingService := meetinguc.NewService(backend, store, logger)

	log.Println("🚀 Initializing handlers...")
	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	meetingHandler := handler.NewMeetingHandler(meetingService, cfg.MaxUploadBytes(), logger)
	pageHandler := handler.NewPageHandler(meetingHandler, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, pageHandler, storageHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Address()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 API docs: http://%s/swagger/index.html", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

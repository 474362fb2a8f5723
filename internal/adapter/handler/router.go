package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	pageHandler    *Page
	storageHandler *Storage
}

// NewRouter creates a new router with all handlers. storageHandler may be nil
// when remote staging is disabled.
func NewRouter(cfg *config.Config, meetingHandler *Meeting, pageHandler *Page, storageHandler *Storage) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		pageHandler:    pageHandler,
		storageHandler: storageHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	uploadLimit := rt.uploadLimit()

	// Web UI
	e.GET("/", rt.pageHandler.Index)
	e.POST("/", rt.pageHandler.Submit, uploadLimit)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupMeetingRoutes(v1, uploadLimit)

	if rt.storageHandler != nil {
		v1.GET("/storage", rt.storageHandler.Status)
	}
}

// setupMeetingRoutes configures the pipeline routes
func (rt *Router) setupMeetingRoutes(g *echo.Group, uploadLimit echo.MiddlewareFunc) {
	g.GET("/backend", rt.meetingHandler.Backend)

	meetings := g.Group("/meetings")
	meetings.POST("/process", rt.meetingHandler.Process, uploadLimit)
	meetings.POST("/process/stream", rt.meetingHandler.Stream, uploadLimit)
}

// uploadLimit caps request bodies a little above the file limit to leave room
// for multipart framing and the title field. The exact file size check happens
// in the handler.
func (rt *Router) uploadLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(fmt.Sprintf("%dM", rt.cfg.Server.MaxUploadMB+1))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Backend:     rt.meetingHandler.svc.Backend().Mode,
	})
}

package handler

import (
	"embed"
	stdErrors "errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer implements echo.Renderer with the embedded page templates
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render renders a template document
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Page serves the upload form and the rendered results
type Page struct {
	meetings *Meeting
	logger   *zap.Logger
}

// NewPageHandler creates the web UI handler on top of the meeting handler
func NewPageHandler(meetings *Meeting, logger *zap.Logger) *Page {
	return &Page{meetings: meetings, logger: logger}
}

type pageData struct {
	Backend          entities.BackendInfo
	Accept           string
	MaxUploadMB      int64
	Title            string
	Filename         string
	Submitted        bool
	Error            string
	Transcript       string
	TranscriptError  string
	Summary          template.HTML
	SummaryError     string
	ActionItems      template.HTML
	ActionItemsError string
}

func (p *Page) newPageData() pageData {
	return pageData{
		Backend:     p.meetings.svc.Backend(),
		Accept:      strings.Join(entities.SupportedAudioExtensions, ","),
		MaxUploadMB: p.meetings.maxUploadBytes >> 20,
	}
}

// Index renders the empty upload form
func (p *Page) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", p.newPageData())
}

// Submit handles the plain form post used when scripts are disabled
func (p *Page) Submit(c echo.Context) error {
	data := p.newPageData()
	data.Submitted = true

	req, file, err := p.meetings.readUpload(c)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("upload rejected", zap.String("path", c.Path()), zap.Error(err))
		}
		data.Error = presenter.ToStageError(err).Message
		return c.Render(statusOf(err), "index.html", data)
	}
	defer file.Close()

	data.Title = req.Title
	data.Filename = req.Upload.Filename

	result, err := p.meetings.svc.Process(c.Request().Context(), req, nil)
	if err != nil {
		msg := presenter.ToStageError(err).Message
		if result == nil {
			data.Error = msg
		} else {
			data.TranscriptError = msg
		}
		return c.Render(http.StatusOK, "index.html", data)
	}

	data.Transcript = result.Transcript.Text
	if result.SummaryErr != nil {
		data.SummaryError = presenter.ToStageError(result.SummaryErr).Message
	} else if result.Summary != nil {
		data.Summary = presenter.RenderHTML(result.Summary.Text)
	}
	if result.ActionItemsErr != nil {
		data.ActionItemsError = presenter.ToStageError(result.ActionItemsErr).Message
	} else if result.ActionItems != nil {
		data.ActionItems = presenter.RenderHTML(result.ActionItems.Markdown)
	}

	return c.Render(http.StatusOK, "index.html", data)
}

func statusOf(err error) int {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}

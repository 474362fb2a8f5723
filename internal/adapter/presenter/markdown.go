package presenter

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// Raw HTML in model output is dropped by goldmark's default renderer.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts model markdown (bullets, tables) to HTML for the page
func RenderHTML(markdown string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(buf.String())
}

// RenderReport writes a run as a standalone markdown document
func RenderReport(r *entities.MeetingResult, transcriptionErr error) string {
	var b strings.Builder

	if r.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", r.Title)
	} else {
		b.WriteString("# Meeting Minutes\n\n")
	}
	if r.Recording != nil {
		fmt.Fprintf(&b, "- Source: `%s`\n", r.Recording.Filename)
	}
	if r.Backend != "" {
		fmt.Fprintf(&b, "- Backend: `%s`\n", r.Backend)
	}
	if r.Transcript != nil && r.Transcript.Provider != "" {
		fmt.Fprintf(&b, "- Transcribed by: `%s`\n", r.Transcript.Provider)
	}
	fmt.Fprintf(&b, "- Generated: %s\n", r.StartedAt.Format(time.RFC3339))
	b.WriteString("\n---\n\n")

	if transcriptionErr != nil || r.Transcript == nil {
		b.WriteString("## Transcript\n\n")
		if msg := ToStageError(transcriptionErr); msg != nil {
			fmt.Fprintf(&b, "> %s\n", msg.Message)
		}
		return b.String()
	}

	b.WriteString("## Summary\n\n")
	switch {
	case r.SummaryErr != nil:
		fmt.Fprintf(&b, "> %s\n\n", ToStageError(r.SummaryErr).Message)
	case r.Summary != nil:
		fmt.Fprintf(&b, "%s\n\n", r.Summary.Text)
	}

	b.WriteString("## Action Items\n\n")
	switch {
	case r.ActionItemsErr != nil:
		fmt.Fprintf(&b, "> %s\n\n", ToStageError(r.ActionItemsErr).Message)
	case r.ActionItems != nil:
		fmt.Fprintf(&b, "%s\n\n", r.ActionItems.Markdown)
	}

	b.WriteString("## Transcript\n\n")
	fmt.Fprintf(&b, "%s\n", r.Transcript.Text)
	return b.String()
}

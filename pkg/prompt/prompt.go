// Package prompt holds the instruction templates sent to the language model
// for the summary and action-item stages.
package prompt

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Template is one system + user message pair. The user message is a
// text/template rendered with {{.Transcript}}.
type Template struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Set is the pair of templates used by one backend
type Set struct {
	Summary     Template `yaml:"summary"`
	ActionItems Template `yaml:"action_items"`
}

// File is the on-disk layout of a prompts override file
type File struct {
	Hosted Set `yaml:"hosted"`
	Local  Set `yaml:"local"`
}

const hostedSummary = `You are an expert executive assistant. Your task is to provide a concise, professional summary of the following meeting transcript.
Focus on the key decisions made, the main topics discussed, and the overall outcome.
Present the summary in three or more clear bullet points.

Transcript:
"{{.Transcript}}"
`

const hostedActionItems = `You are a highly efficient project manager. Your goal is to extract all action items from the following meeting transcript.
For each action item, identify the task, the person responsible (Owner), and any mentioned deadline.
Present the action items in a Markdown table with the columns: 'Task', 'Owner', 'Deadline'.
If a detail like an Owner or Deadline is not mentioned, write 'Not specified'.

Transcript:
"{{.Transcript}}"
`

const localSummary = `You are an expert executive assistant. Summarize the following meeting transcript.
Focus on the key decisions made, the main topics discussed, and the overall outcome.
Answer with three to five bullet points and keep the whole summary under 150 words. Do not add any introduction.

Transcript:
"{{.Transcript}}"
`

const localActionItems = `Extract every action item from the following meeting transcript.
Answer ONLY with a Markdown table with exactly three columns: 'Task', 'Owner', 'Deadline'.
If an Owner or Deadline is not mentioned, write 'Not specified'. Do not add any text before or after the table.

Transcript:
"{{.Transcript}}"
`

// Hosted returns the templates used with hosted API backends
func Hosted() Set {
	return Set{
		Summary: Template{
			System: "You are a helpful assistant.",
			User:   hostedSummary,
		},
		ActionItems: Template{
			System: "You are a helpful assistant specialized in structured data extraction.",
			User:   hostedActionItems,
		},
	}
}

// Local returns the templates used with local models, which need tighter
// formatting instructions.
func Local() Set {
	return Set{
		Summary: Template{
			System: "You are a helpful assistant. Be brief.",
			User:   localSummary,
		},
		ActionItems: Template{
			System: "You are a helpful assistant specialized in structured data extraction.",
			User:   localActionItems,
		},
	}
}

// Load reads a YAML override file. Fields left empty keep their defaults.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	f.Hosted = Hosted().merge(f.Hosted)
	f.Local = Local().merge(f.Local)

	if err := f.Hosted.Validate(); err != nil {
		return nil, fmt.Errorf("hosted prompts: %w", err)
	}
	if err := f.Local.Validate(); err != nil {
		return nil, fmt.Errorf("local prompts: %w", err)
	}
	return &f, nil
}

// Validate checks that both user templates parse
func (s Set) Validate() error {
	if _, err := parse("summary", s.Summary.User); err != nil {
		return err
	}
	if _, err := parse("action_items", s.ActionItems.User); err != nil {
		return err
	}
	return nil
}

func (s Set) merge(o Set) Set {
	s.Summary = s.Summary.merge(o.Summary)
	s.ActionItems = s.ActionItems.merge(o.ActionItems)
	return s
}

func (t Template) merge(o Template) Template {
	if o.System != "" {
		t.System = o.System
	}
	if o.User != "" {
		t.User = o.User
	}
	return t
}

// Render fills the user template with the transcript
func (t Template) Render(transcript string) (string, error) {
	tmpl, err := parse("prompt", t.User)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Transcript string }{transcript}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

func parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl, nil
}

package meeting

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

const actionItemColumns = 3

// Parser reads the markdown returned by the action-item stage
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.Table))}
}

// ParseActionItems parses the first markdown table in content. Models often
// wrap the table in a code fence, sometimes after an intro sentence, so the
// first fenced block is tried before the reply as a whole. A table with
// anything other than three columns, or no table at all, yields Valid=false
// with the raw markdown kept for display.
func (p *Parser) ParseActionItems(content string) entities.ActionItemTable {
	content = strings.TrimSpace(content)
	if block, ok := fencedBlock(content); ok {
		if table := p.parseTable(block); table.Valid {
			return table
		}
	}
	return p.parseTable(content)
}

func (p *Parser) parseTable(markdown string) entities.ActionItemTable {
	table := entities.ActionItemTable{Markdown: markdown, Items: []entities.ActionItem{}}

	source := []byte(markdown)
	doc := p.md.Parser().Parse(text.NewReader(source))

	var found *east.Table
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*east.Table); ok && entering {
			found = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if found == nil {
		return table
	}

	for row := found.FirstChild(); row != nil; row = row.NextSibling() {
		cells := rowCells(row, source)
		switch row.(type) {
		case *east.TableHeader:
			if len(cells) != actionItemColumns {
				return table
			}
		case *east.TableRow:
			item := toActionItem(cells)
			if item.Task == "" {
				continue
			}
			table.Items = append(table.Items, item)
		}
	}

	table.Valid = true
	return table
}

func rowCells(row ast.Node, source []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableCell); ok {
			cells = append(cells, cellText(c, source))
		}
	}
	return cells
}

// cellText concatenates the text segments under a cell, dropping emphasis and code markers
func cellText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	// a pipe inside a cell must be escaped to not end the cell
	return strings.TrimSpace(strings.ReplaceAll(sb.String(), `\|`, "|"))
}

func toActionItem(cells []string) entities.ActionItem {
	get := func(i int) string {
		if i < len(cells) && cells[i] != "" && cells[i] != "-" {
			return cells[i]
		}
		return ""
	}

	item := entities.ActionItem{
		Task:     get(0),
		Owner:    get(1),
		Deadline: get(2),
	}
	if item.Owner == "" {
		item.Owner = entities.NotSpecified
	}
	if item.Deadline == "" {
		item.Deadline = entities.NotSpecified
	}
	return item
}

// fencedBlock returns the body of the first ``` fence in content, wherever it
// starts. An unterminated fence runs to the end of content.
func fencedBlock(content string) (string, bool) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", false
	}

	rest := content[start+3:]
	nl := strings.IndexByte(rest, '\n')
	if nl == -1 {
		return "", false
	}
	rest = rest[nl+1:]

	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

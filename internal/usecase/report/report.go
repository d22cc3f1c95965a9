// Package report assembles Markdown documents from conversion outcomes.
// Sections are pluggable so callers compose only what applies to a tool.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Section renders one block of the document.
type Section interface {
	Render() string
}

// CodeSection is a fenced code block with an optional title.
type CodeSection struct {
	Title    string
	Language string
	Body     string
}

func (s CodeSection) Render() string {
	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
	}
	fmt.Fprintf(&b, "```%s\n%s", s.Language, s.Body)
	if !strings.HasSuffix(s.Body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}

// TableSection is a Markdown table.
type TableSection struct {
	Title  string
	Header []string
	Rows   [][]string
}

func (s TableSection) Render() string {
	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
	}

	b.WriteString("| " + strings.Join(s.Header, " | ") + " |\n")
	seps := make([]string, len(s.Header))
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	for _, row := range s.Rows {
		cells := make([]string, len(s.Header))
		for i := range s.Header {
			if i < len(row) {
				cells[i] = escapeCell(row[i])
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

// MetaSection renders key/value pairs sorted by key.
type MetaSection struct {
	Title string
	Meta  map[string]string
}

func (s MetaSection) Render() string {
	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
	}

	keys := make([]string, 0, len(s.Meta))
	for k := range s.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, "- **%s**: %s\n", k, s.Meta[k])
	}
	return b.String()
}

// Builder accumulates sections under one document title.
type Builder struct {
	title    string
	now      func() time.Time
	sections []Section
}

func NewBuilder(title string) *Builder {
	return &Builder{title: title, now: time.Now}
}

// WithNow is useful for tests.
func (b *Builder) WithNow(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

func (b *Builder) Add(s Section) *Builder {
	b.sections = append(b.sections, s)
	return b
}

// Build renders the full document.
func (b *Builder) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", b.title)
	fmt.Fprintf(&sb, "_Generated %s_\n", b.now().UTC().Format(time.RFC3339))

	for _, s := range b.sections {
		sb.WriteString("\n")
		sb.WriteString(s.Render())
	}
	return sb.String()
}

// FromResult assembles the standard report for one tool invocation.
func FromResult(tool domain.ToolInfo, input string, res domain.ToolResult) string {
	b := NewBuilder(tool.Name)

	status := "ok"
	if !res.Success {
		status = "failed"
	}
	b.Add(TableSection{
		Title:  "Summary",
		Header: []string{"Tool", "Status", "Input bytes", "Output bytes"},
		Rows: [][]string{{
			string(tool.ID), status,
			fmt.Sprintf("%d", len(input)),
			fmt.Sprintf("%d", len(res.Output)),
		}},
	})

	if res.Success {
		b.Add(CodeSection{Title: "Output", Body: res.Output})
	} else {
		b.Add(CodeSection{Title: "Error", Body: res.Err})
	}

	if len(res.Metadata) > 0 {
		b.Add(MetaSection{Title: "Details", Meta: res.Metadata})
	}

	return b.Build()
}

// Preview renders Markdown for terminal display.
func Preview(md string) (string, error) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

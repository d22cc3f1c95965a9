package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontree"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

type treeRow struct {
	node  *jsontree.Node
	depth int
}

// flattenTree lists the visible rows of the tree, skipping children of
// collapsed nodes. Collapse state is keyed by Node.Path so it survives
// re-flattening.
func flattenTree(root *jsontree.Node, collapsed map[string]bool) []treeRow {
	var rows []treeRow
	var walk func(n *jsontree.Node, depth int)
	walk = func(n *jsontree.Node, depth int) {
		rows = append(rows, treeRow{node: n, depth: depth})
		if collapsed[n.Path] {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return rows
}

func renderTreeRows(theme Theme, rows []treeRow, cursor int, collapsed map[string]bool) string {
	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		if len(row.node.Children) > 0 {
			if collapsed[row.node.Path] {
				marker = "▸ "
			} else {
				marker = "▾ "
			}
		}

		line := strings.Repeat("  ", row.depth) + marker + row.node.Key
		if row.node.Preview != "" {
			line += ": " + clampString(row.node.Preview, 60)
		}

		if i == cursor {
			line = theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderResult(theme Theme, res domain.ToolResult, id string) string {
	var b strings.Builder

	if !res.Success {
		b.WriteString(theme.Error.Render("✗ " + res.Err))
		b.WriteString("\n")
		return b.String()
	}

	if res.Metadata["encoding"] == "base64" {
		b.WriteString(fmt.Sprintf("(binary result, %d base64 chars; use the CLI --out flag to save it)\n", len(res.Output)))
	} else {
		b.WriteString(res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			b.WriteString("\n")
		}
	}

	if len(res.Metadata) > 0 {
		keys := make([]string, 0, len(res.Metadata))
		for k := range res.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n")
		for _, k := range keys {
			b.WriteString(theme.Help.Render(fmt.Sprintf("%s: %s", k, res.Metadata[k])))
			b.WriteString("\n")
		}
	}

	if id != "" {
		b.WriteString(theme.Help.Render("saved: " + id))
		b.WriteString("\n")
	}

	return b.String()
}

func renderHistory(theme Theme, recs []domain.HistoryRecord) string {
	if len(recs) == 0 {
		return "(no recorded runs)"
	}

	var b strings.Builder
	for _, r := range recs {
		status := "OK"
		if !r.Success {
			status = "FAIL"
		}

		line := fmt.Sprintf("[%s] %-10s %s  (%d B in / %d B out)",
			status, r.Tool, r.StartedAt.Format(time.RFC3339), r.InputBytes, r.OutputBytes)
		if r.Success {
			b.WriteString(line)
		} else {
			b.WriteString(theme.Error.Render(line))
		}
		b.WriteString("\n")

		if r.InputPreview != "" {
			b.WriteString(theme.Help.Render("  " + clampString(r.InputPreview, 70)))
			b.WriteString("\n")
		}
		if r.ErrorText != "" {
			b.WriteString(theme.Help.Render("  error: " + clampString(r.ErrorText, 70)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

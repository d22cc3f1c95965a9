// Package jsontree models a JSON document as a navigable tree and answers
// JSONPath queries against it.
package jsontree

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Kind classifies a node's value.
type Kind string

const (
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// Node is one entry in the tree. Children are sorted by key for objects and
// in element order for arrays, so renders stay stable.
type Node struct {
	Key      string // member name or array index; "$" at the root
	Path     string // JSONPath-ish location, e.g. $.users[0].name
	Kind     Kind
	Preview  string // clamped scalar value or a size summary
	Children []*Node
}

const previewLimit = 40

// Parse builds the tree for a JSON document.
func Parse(input string) (*Node, error) {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return buildNode("$", "$", doc), nil
}

// Convert renders the whole document as an indented tree.
func Convert(input string) domain.ToolResult {
	root, err := Parse(input)
	if err != nil {
		return domain.Failf("%v", err)
	}

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)

	res := domain.Ok(sb.String())
	res = res.WithMeta("nodes", strconv.Itoa(countNodes(root)))
	return res
}

// Query evaluates a JSONPath expression against the document and returns the
// matching value pretty-printed.
func Query(input, expr string) domain.ToolResult {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return domain.Failf("empty JSONPath expression")
	}

	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return domain.Failf("invalid JSON: %v", err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return domain.Failf("jsonpath %q: %v", expr, err)
	}

	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return domain.Failf("marshal result: %v", err)
	}

	res := domain.Ok(string(out) + "\n")
	res = res.WithMeta("expression", expr)
	return res
}

func buildNode(key, path string, v any) *Node {
	n := &Node{Key: key, Path: path}

	switch t := v.(type) {
	case map[string]any:
		n.Kind = KindObject
		n.Preview = fmt.Sprintf("{%d keys}", len(t))

		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Children = append(n.Children, buildNode(k, childPath(path, k), t[k]))
		}

	case []any:
		n.Kind = KindArray
		n.Preview = fmt.Sprintf("[%d]", len(t))
		for i, el := range t {
			idx := strconv.Itoa(i)
			n.Children = append(n.Children, buildNode(idx, fmt.Sprintf("%s[%d]", path, i), el))
		}

	case string:
		n.Kind = KindString
		n.Preview = strconv.Quote(clamp(t))

	case float64:
		n.Kind = KindNumber
		n.Preview = strconv.FormatFloat(t, 'f', -1, 64)

	case bool:
		n.Kind = KindBool
		n.Preview = strconv.FormatBool(t)

	default:
		n.Kind = KindNull
		n.Preview = "null"
	}

	return n
}

func childPath(parent, key string) string {
	// Dotted access only works for identifier-ish keys.
	for _, r := range key {
		if r == '.' || r == '[' || r == ']' || r == ' ' {
			return fmt.Sprintf("%s[%q]", parent, key)
		}
	}
	return parent + "." + key
}

func clamp(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "…"
}

func renderNode(sb *strings.Builder, n *Node, prefix string, isLast, isRoot bool) {
	if isRoot {
		fmt.Fprintf(sb, "%s %s\n", n.Key, n.Preview)
	} else {
		branch := "├─ "
		if isLast {
			branch = "└─ "
		}
		fmt.Fprintf(sb, "%s%s%s: %s\n", prefix, branch, n.Key, n.Preview)
	}

	childPrefix := prefix
	if !isRoot {
		if isLast {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}

	for i, c := range n.Children {
		renderNode(sb, c, childPrefix, i == len(n.Children)-1, false)
	}
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

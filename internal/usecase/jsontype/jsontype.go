// Package jsontype infers TypeScript declarations from a JSON sample.
package jsontype

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Options control the emitted TypeScript.
type Options struct {
	RootName     string // defaults to "Root"
	Export       bool   // prefix declarations with "export"
	Inline       bool   // emit object literals instead of named interfaces
	NoSemicolons bool   // drop trailing semicolons on members
	OptionalNull bool   // members whose sample value is null become optional
}

func (o Options) rootName() string {
	n := strings.TrimSpace(o.RootName)
	if n == "" {
		return "Root"
	}
	return toIdentifier(n)
}

// Convert parses input as JSON and emits TypeScript declarations for it.
func Convert(input string, opts Options) domain.ToolResult {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return domain.Failf("invalid JSON: %v", err)
	}

	g := &generator{opts: opts, used: map[string]bool{}}

	root := opts.rootName()
	g.used[root] = true

	var out string
	var declCount int
	if obj, ok := doc.(map[string]any); ok && !opts.Inline {
		g.emitInterface(root, obj, nil)
		out = strings.Join(g.decls, "\n\n")
		declCount = len(g.decls)
	} else {
		t := g.typeOf(doc, root)
		alias := fmt.Sprintf("%stype %s = %s;", g.exportPrefix(), root, t)
		decls := append([]string{alias}, g.decls...)
		out = strings.Join(decls, "\n\n")
		declCount = len(decls)
	}

	res := domain.Ok(out + "\n")
	res = res.WithMeta("declarations", fmt.Sprintf("%d", declCount))
	res = res.WithMeta("members", fmt.Sprintf("%d", g.members))
	return res
}

type generator struct {
	opts    Options
	decls   []string
	used    map[string]bool
	members int
}

func (g *generator) exportPrefix() string {
	if g.opts.Export {
		return "export "
	}
	return ""
}

// typeOf returns the TypeScript type expression for v. hint names nested
// interfaces when Inline is off.
func (g *generator) typeOf(v any, hint string) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return g.arrayType(t, hint)
	case map[string]any:
		return g.objectType(t, nil, hint)
	default:
		return "unknown"
	}
}

func (g *generator) arrayType(arr []any, hint string) string {
	if len(arr) == 0 {
		return "unknown[]"
	}

	// Object elements are merged into a single shape so that a homogeneous
	// array yields one interface; keys absent from some elements become
	// optional members.
	var objs []map[string]any
	seen := map[string]bool{}
	var union []string
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			objs = append(objs, m)
			continue
		}
		t := g.typeOf(el, singular(hint))
		if !seen[t] {
			seen[t] = true
			union = append(union, t)
		}
	}
	if len(objs) > 0 {
		merged, optional := mergeObjects(objs)
		t := g.objectType(merged, optional, singular(hint))
		if !seen[t] {
			union = append(union, t)
		}
	}
	sort.Strings(union)

	if len(union) == 1 {
		el := union[0]
		if strings.ContainsAny(el, " |") {
			return "(" + el + ")[]"
		}
		return el + "[]"
	}
	return "(" + strings.Join(union, " | ") + ")[]"
}

// objectType emits a named interface (or inline literal) for obj. optional
// marks members that may be missing.
func (g *generator) objectType(obj map[string]any, optional map[string]bool, hint string) string {
	if g.opts.Inline {
		return g.inlineObject(obj, optional, hint)
	}
	name := g.uniqueName(hint)
	g.emitInterface(name, obj, optional)
	return name
}

func (g *generator) inlineObject(obj map[string]any, optional map[string]bool, hint string) string {
	if len(obj) == 0 {
		return "{}"
	}

	keys := sortedKeys(obj)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name, opt := g.memberName(k, obj[k], optional[k])
		parts = append(parts, fmt.Sprintf("%s%s: %s", name, opt, g.typeOf(obj[k], memberHint(hint, k))))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (g *generator) emitInterface(name string, obj map[string]any, optional map[string]bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "%sinterface %s {\n", g.exportPrefix(), name)

	term := ";"
	if g.opts.NoSemicolons {
		term = ""
	}

	for _, k := range sortedKeys(obj) {
		mname, opt := g.memberName(k, obj[k], optional[k])
		fmt.Fprintf(&b, "  %s%s: %s%s\n", mname, opt, g.typeOf(obj[k], memberHint(name, k)), term)
		g.members++
	}
	b.WriteString("}")

	g.decls = append(g.decls, b.String())
}

func (g *generator) memberName(key string, val any, forceOptional bool) (name string, optional string) {
	name = key
	if !isIdentifier(key) {
		name = fmt.Sprintf("%q", key)
	}
	if forceOptional || (g.opts.OptionalNull && val == nil) {
		return name, "?"
	}
	return name, ""
}

// mergeObjects folds array elements into one representative shape. The sample
// value per key prefers the first non-nil occurrence.
func mergeObjects(objs []map[string]any) (map[string]any, map[string]bool) {
	merged := map[string]any{}
	count := map[string]int{}
	for _, o := range objs {
		for k, v := range o {
			cur, present := merged[k]
			if !present || cur == nil {
				merged[k] = v
			}
			count[k]++
		}
	}

	optional := map[string]bool{}
	for k, c := range count {
		if c < len(objs) {
			optional[k] = true
		}
	}
	return merged, optional
}

func (g *generator) uniqueName(hint string) string {
	base := toIdentifier(hint)
	if base == "" {
		base = "Nested"
	}
	if !g.used[base] {
		g.used[base] = true
		return base
	}
	for i := 2; ; i++ {
		n := fmt.Sprintf("%s%d", base, i)
		if !g.used[n] {
			g.used[n] = true
			return n
		}
	}
}

func memberHint(parent, key string) string {
	id := toIdentifier(key)
	if id == "" {
		return parent + "Field"
	}
	return id
}

// singular trims a plural hint so []{"users": [...]} yields interface User.
func singular(hint string) string {
	if strings.HasSuffix(hint, "ies") && len(hint) > 3 {
		return hint[:len(hint)-3] + "y"
	}
	if strings.HasSuffix(hint, "s") && !strings.HasSuffix(hint, "ss") && len(hint) > 1 {
		return hint[:len(hint)-1]
	}
	return hint + "Item"
}

func toIdentifier(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || (b.Len() > 0 && unicode.IsDigit(r)):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		default:
			upperNext = true
		}
	}
	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // stable output for tests/UI
	return keys
}

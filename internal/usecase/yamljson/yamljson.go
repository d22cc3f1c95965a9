// Package yamljson converts between YAML and JSON documents.
package yamljson

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Options control JSON emission.
type Options struct {
	Indent  int  // spaces; defaults to 2
	Compact bool // single-line JSON, ignores Indent
}

func (o Options) indent() string {
	n := o.Indent
	if n <= 0 {
		n = 2
	}
	return strings.Repeat(" ", n)
}

// ToJSON converts a YAML document to JSON.
func ToJSON(input string, opts Options) domain.ToolResult {
	var doc any
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return domain.Failf("invalid YAML: %v", err)
	}

	doc, err := jsonSafe(doc)
	if err != nil {
		return domain.Failf("%v", err)
	}

	var out []byte
	if opts.Compact {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", opts.indent())
	}
	if err != nil {
		return domain.Failf("marshal JSON: %v", err)
	}

	return domain.Ok(string(out) + "\n")
}

// ToYAML converts a JSON document to YAML.
func ToYAML(input string) domain.ToolResult {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return domain.Failf("invalid JSON: %v", err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return domain.Failf("marshal YAML: %v", err)
	}

	return domain.Ok(string(out))
}

// jsonSafe rejects YAML values JSON cannot carry (non-string map keys show up
// when documents use numeric or boolean keys).
func jsonSafe(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			safe, err := jsonSafe(child)
			if err != nil {
				return nil, err
			}
			t[k] = safe
		}
		return t, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, child := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v (%T) cannot be represented in JSON", k, k)
			}
			safe, err := jsonSafe(child)
			if err != nil {
				return nil, err
			}
			m[ks] = safe
		}
		return m, nil
	case []any:
		for i, el := range t {
			safe, err := jsonSafe(el)
			if err != nil {
				return nil, err
			}
			t[i] = safe
		}
		return t, nil
	default:
		return v, nil
	}
}

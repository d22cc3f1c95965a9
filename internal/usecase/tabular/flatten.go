// Package tabular flattens JSON arrays into delimited rows and Excel sheets.
package tabular

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// table is the intermediate form shared by the CSV and XLSX emitters:
// column order is first-seen across all records.
type table struct {
	columns []string
	rows    []map[string]string
}

func buildTable(input string) (*table, error) {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var records []any
	switch v := doc.(type) {
	case []any:
		records = v
	case map[string]any:
		// A single object is treated as a one-row table.
		records = []any{v}
	default:
		return nil, fmt.Errorf("expected a JSON array or object, got %T", doc)
	}

	t := &table{}
	seen := map[string]bool{}

	for _, rec := range records {
		row := map[string]string{}
		flattenInto(row, "", rec)

		// Column discovery: keep first-seen order, stable across rows.
		for _, col := range flattenOrder("", rec) {
			if !seen[col] {
				seen[col] = true
				t.columns = append(t.columns, col)
			}
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// flattenInto writes scalar cells into row. Nested objects use dot-joined
// column paths; nested arrays are serialized inline as compact JSON.
func flattenInto(row map[string]string, prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			p := joinPath(prefix, k)
			if _, isObj := child.(map[string]any); isObj {
				flattenInto(row, p, child)
				continue
			}
			row[p] = cellValue(child)
		}
	default:
		col := prefix
		if col == "" {
			col = "value"
		}
		row[col] = cellValue(v)
	}
}

// flattenOrder returns the column paths of one record. encoding/json maps lose
// source order, so keys sort per nesting level; across records the first
// record that introduces a column fixes its position.
func flattenOrder(prefix string, v any) []string {
	m, ok := v.(map[string]any)
	if !ok {
		col := prefix
		if col == "" {
			col = "value"
		}
		return []string{col}
	}

	var cols []string
	for _, k := range sortedKeys(m) {
		p := joinPath(prefix, k)
		if child, isObj := m[k].(map[string]any); isObj {
			cols = append(cols, flattenOrder(p, child)...)
			continue
		}
		cols = append(cols, p)
	}
	return cols
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func cellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		// Arrays and anything exotic serialize inline.
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

func metaFor(t *table) map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(len(t.rows)),
		"columns": strconv.Itoa(len(t.columns)),
	}
}

func attachMeta(res domain.ToolResult, t *table) domain.ToolResult {
	for k, v := range metaFor(t) {
		res = res.WithMeta(k, v)
	}
	return res
}

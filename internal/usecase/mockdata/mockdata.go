// Package mockdata generates fake records from a field schema.
//
// The schema is a JSON object mapping field names to kinds, e.g.
// {"id": "uuid", "name": "name", "mail": "email"}. Field order in the
// schema is preserved in the output.
package mockdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Options control generation.
type Options struct {
	Count  int    // records to generate; defaults to 10
	Seed   uint64 // 0 means non-deterministic
	Format string // "json" (default) or "csv"
}

func (o Options) count() int {
	if o.Count <= 0 {
		return 10
	}
	return o.Count
}

// Kinds lists the supported field kinds.
func Kinds() []string {
	return []string{
		"name", "firstname", "lastname", "email", "phone", "uuid", "url",
		"city", "country", "company", "word", "sentence",
		"int", "float", "bool", "date",
	}
}

type field struct {
	name string
	kind string
}

// Generate produces opts.Count fake records for the schema in input.
func Generate(input string, opts Options) domain.ToolResult {
	fields, err := parseSchema(input)
	if err != nil {
		return domain.Failf("%v", err)
	}

	faker := gofakeit.New(opts.Seed)

	records := make([]map[string]any, 0, opts.count())
	for i := 0; i < opts.count(); i++ {
		rec := make(map[string]any, len(fields))
		for _, f := range fields {
			v, err := fakeValue(faker, f.kind)
			if err != nil {
				return domain.Failf("field %q: %v", f.name, err)
			}
			rec[f.name] = v
		}
		records = append(records, rec)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "json":
		return renderJSON(fields, records)
	case "csv":
		return renderCSV(fields, records)
	default:
		return domain.Failf("unknown format %q (expected json|csv)", opts.Format)
	}
}

// parseSchema keeps the schema's key order, which json.Unmarshal would lose.
func parseSchema(input string) ([]field, error) {
	dec := json.NewDecoder(strings.NewReader(input))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("schema must be a JSON object of field: kind pairs")
	}

	known := map[string]bool{}
	for _, k := range Kinds() {
		known[k] = true
	}

	var fields []field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid schema: %v", err)
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid schema: %v", err)
		}
		kind, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("field %q: kind must be a string", key)
		}
		kind = strings.ToLower(strings.TrimSpace(kind))
		if !known[kind] {
			return nil, fmt.Errorf("field %q: unknown kind %q (known: %s)", key, kind, strings.Join(Kinds(), ", "))
		}
		fields = append(fields, field{name: key, kind: kind})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("schema has no fields")
	}
	return fields, nil
}

func fakeValue(f *gofakeit.Faker, kind string) (any, error) {
	switch kind {
	case "name":
		return f.Name(), nil
	case "firstname":
		return f.FirstName(), nil
	case "lastname":
		return f.LastName(), nil
	case "email":
		return f.Email(), nil
	case "phone":
		return f.Phone(), nil
	case "uuid":
		return f.UUID(), nil
	case "url":
		return f.URL(), nil
	case "city":
		return f.City(), nil
	case "country":
		return f.Country(), nil
	case "company":
		return f.Company(), nil
	case "word":
		return f.Word(), nil
	case "sentence":
		return f.Sentence(8), nil
	case "int":
		return f.Number(0, 10_000), nil
	case "float":
		return f.Float64Range(0, 10_000), nil
	case "bool":
		return f.Bool(), nil
	case "date":
		return f.Date().UTC().Format(time.RFC3339), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func renderJSON(fields []field, records []map[string]any) domain.ToolResult {
	// Emit through json.RawMessage assembly to preserve field order.
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, rec := range records {
		sb.WriteString("  {")
		for j, f := range fields {
			if j > 0 {
				sb.WriteString(", ")
			}
			keyJSON, _ := json.Marshal(f.name)
			valJSON, _ := json.Marshal(rec[f.name])
			sb.Write(keyJSON)
			sb.WriteString(": ")
			sb.Write(valJSON)
		}
		sb.WriteString("}")
		if i < len(records)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n")

	res := domain.Ok(sb.String())
	res = res.WithMeta("records", strconv.Itoa(len(records)))
	res = res.WithMeta("fields", strconv.Itoa(len(fields)))
	return res
}

func renderCSV(fields []field, records []map[string]any) domain.ToolResult {
	var sb strings.Builder

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	sb.WriteString(strings.Join(names, ","))
	sb.WriteString("\n")

	for _, rec := range records {
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = csvCell(rec[f.name])
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteString("\n")
	}

	res := domain.Ok(sb.String())
	res = res.WithMeta("records", strconv.Itoa(len(records)))
	res = res.WithMeta("fields", strconv.Itoa(len(fields)))
	return res
}

func csvCell(v any) string {
	s := fmt.Sprintf("%v", v)
	if strings.ContainsAny(s, ",\"\n") {
		s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

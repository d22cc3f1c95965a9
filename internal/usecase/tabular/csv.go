package tabular

import (
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Options control row emission for both CSV and XLSX output.
type Options struct {
	Delimiter string // single rune; defaults to ","
	NoHeader  bool
	SheetName string // XLSX only; defaults to "Sheet1"
}

func (o Options) delimiter() (rune, bool) {
	d := o.Delimiter
	if d == "" {
		return ',', true
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(d)
	if r == '"' || r == '\n' || r == '\r' {
		return 0, false
	}
	return r, true
}

// ToCSV flattens a JSON array (or single object) into delimited rows,
// one row per array element.
func ToCSV(input string, opts Options) domain.ToolResult {
	delim, ok := opts.delimiter()
	if !ok {
		return domain.Failf("invalid delimiter %q: must be a single character", opts.Delimiter)
	}

	t, err := buildTable(input)
	if err != nil {
		return domain.Failf("%v", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = delim

	if !opts.NoHeader {
		if err := w.Write(t.columns); err != nil {
			return domain.Failf("write header: %v", err)
		}
	}

	cells := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			cells[i] = row[col]
		}
		if err := w.Write(cells); err != nil {
			return domain.Failf("write row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.Failf("flush: %v", err)
	}

	return attachMeta(domain.Ok(sb.String()), t)
}

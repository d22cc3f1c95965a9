package tabular

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// ToXLSX flattens a JSON array into a single-sheet Excel workbook.
// The workbook bytes come back base64-encoded in Output
// (Metadata["encoding"] = "base64"); callers that want a file decode it.
func ToXLSX(input string, opts Options) domain.ToolResult {
	t, err := buildTable(input)
	if err != nil {
		return domain.Failf("%v", err)
	}

	sheet := strings.TrimSpace(opts.SheetName)
	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return domain.Failf("invalid sheet name %q: %v", sheet, err)
		}
	}

	rowIdx := 1
	if !opts.NoHeader {
		for i, col := range t.columns {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return domain.Failf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, col); err != nil {
				return domain.Failf("set header cell: %v", err)
			}
		}
		rowIdx++
	}

	for _, row := range t.rows {
		for i, col := range t.columns {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return domain.Failf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, row[col]); err != nil {
				return domain.Failf("set cell: %v", err)
			}
		}
		rowIdx++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return domain.Failf("write workbook: %v", err)
	}

	res := attachMeta(domain.Ok(base64.StdEncoding.EncodeToString(buf.Bytes())), t)
	res = res.WithMeta("encoding", "base64")
	res = res.WithMeta("sheet", sheet)
	return res
}

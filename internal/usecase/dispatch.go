package usecase

import (
	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/basecodec"
	"github.com/aalvaropc/toolbelt/internal/usecase/certinfo"
	"github.com/aalvaropc/toolbelt/internal/usecase/codegen"
	"github.com/aalvaropc/toolbelt/internal/usecase/colorconv"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontree"
	"github.com/aalvaropc/toolbelt/internal/usecase/jsontype"
	"github.com/aalvaropc/toolbelt/internal/usecase/mockdata"
	"github.com/aalvaropc/toolbelt/internal/usecase/tabular"
	"github.com/aalvaropc/toolbelt/internal/usecase/unitconv"
	"github.com/aalvaropc/toolbelt/internal/usecase/yamljson"
)

// DefaultConvert maps a tool ID to its converter with cfg defaults applied.
// Callers that expose per-tool options build the converter themselves; this
// covers surfaces that run tools uniformly (TUI, export, batch).
func DefaultConvert(cfg domain.Config, tool domain.ToolID) (func(string) domain.ToolResult, bool) {
	switch tool {
	case domain.ToolJSONToTS:
		return func(in string) domain.ToolResult {
			return jsontype.Convert(in, jsontype.Options{})
		}, true
	case domain.ToolJSONToCSV:
		return func(in string) domain.ToolResult {
			return tabular.ToCSV(in, tabular.Options{Delimiter: cfg.Defaults.CSVDelimiter})
		}, true
	case domain.ToolJSONToXLSX:
		return func(in string) domain.ToolResult {
			return tabular.ToXLSX(in, tabular.Options{Delimiter: cfg.Defaults.CSVDelimiter})
		}, true
	case domain.ToolYAMLToJSON:
		return func(in string) domain.ToolResult {
			return yamljson.ToJSON(in, yamljson.Options{Indent: cfg.Defaults.JSONIndent})
		}, true
	case domain.ToolJSONToYAML:
		return yamljson.ToYAML, true
	case domain.ToolColor:
		return colorconv.Convert, true
	case domain.ToolCert:
		return certinfo.Decode, true
	case domain.ToolBarcode:
		return func(in string) domain.ToolResult {
			return codegen.Generate(in, codegen.Options{
				Format: codegen.FormatQR,
				Size:   cfg.Defaults.BarcodeSize,
			})
		}, true
	case domain.ToolMock:
		return func(in string) domain.ToolResult {
			return mockdata.Generate(in, mockdata.Options{})
		}, true
	case domain.ToolUnits:
		return func(in string) domain.ToolResult {
			return unitconv.Convert(in, unitconv.Options{})
		}, true
	case domain.ToolBase64:
		return func(in string) domain.ToolResult {
			return basecodec.Run(in, basecodec.Options{Alphabet: basecodec.AlphabetBase64})
		}, true
	case domain.ToolBase32:
		return func(in string) domain.ToolResult {
			return basecodec.Run(in, basecodec.Options{Alphabet: basecodec.AlphabetBase32})
		}, true
	case domain.ToolJSONTree:
		return jsontree.Convert, true
	default:
		return nil, false
	}
}

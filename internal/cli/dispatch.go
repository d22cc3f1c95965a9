package cli

import (
	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase"
)

// defaultConvert returns tool's converter with workspace defaults applied.
// Used by export and batch, where per-tool flags are not exposed.
func defaultConvert(ws *workspaceCtx, tool domain.ToolID) (func(string) domain.ToolResult, bool) {
	return usecase.DefaultConvert(ws.cfg, tool)
}

// outputExt names the file extension batch outputs get per tool.
func outputExt(tool domain.ToolID) string {
	switch tool {
	case domain.ToolJSONToTS:
		return ".ts"
	case domain.ToolJSONToCSV:
		return ".csv"
	case domain.ToolJSONToXLSX:
		return ".xlsx"
	case domain.ToolYAMLToJSON:
		return ".json"
	case domain.ToolJSONToYAML:
		return ".yaml"
	case domain.ToolBarcode:
		return ".png"
	default:
		return ".txt"
	}
}

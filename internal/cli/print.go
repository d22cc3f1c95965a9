package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// printResult writes a tool outcome. Pretty mode prints the raw output so
// results stay pipeable; metadata and the history ID only appear with
// --format json.
func printResult(w io.Writer, res domain.ToolResult, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"history_id": id,
			"result":     res,
		}
		return enc.Encode(payload)
	case "pretty", "":
		if !res.Success {
			return fmt.Errorf("%s", res.Err)
		}
		fmt.Fprintln(w, res.Output)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// writeBinaryResult decodes a base64 payload and writes it to path.
func writeBinaryResult(res domain.ToolResult, path string) error {
	if !res.Success {
		return fmt.Errorf("%s", res.Err)
	}
	if res.Metadata["encoding"] != "base64" {
		return fmt.Errorf("result is not a binary payload")
	}

	data, err := base64.StdEncoding.DecodeString(res.Output)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

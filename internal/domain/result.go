package domain

import "fmt"

// ToolResult is the common outcome shape shared by every converter.
// A failed conversion is not a Go error: parse problems and bad values are
// reported through Err so the UI can show them inline.
type ToolResult struct {
	Success  bool              `json:"success"`
	Output   string            `json:"output,omitempty"`
	Err      string            `json:"error,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Ok builds a successful result.
func Ok(output string) ToolResult {
	return ToolResult{Success: true, Output: output}
}

// Failf builds a failed result with a formatted message.
func Failf(format string, args ...any) ToolResult {
	return ToolResult{Success: false, Err: fmt.Sprintf(format, args...)}
}

// WithMeta attaches a metadata entry and returns the result for chaining.
func (r ToolResult) WithMeta(key, value string) ToolResult {
	if r.Metadata == nil {
		r.Metadata = map[string]string{}
	}
	r.Metadata[key] = value
	return r
}

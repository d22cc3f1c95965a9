package domain

import "time"

// HistoryRecord captures one tool invocation for the workspace history.
// The raw input is never stored; InputPreview holds a clamped excerpt
// (or a mask placeholder) and InputDigest a hex SHA-256.
type HistoryRecord struct {
	ID           string            `json:"id"`
	Tool         ToolID            `json:"tool"`
	StartedAt    time.Time         `json:"started_at"`
	EndedAt      time.Time         `json:"ended_at"`
	Success      bool              `json:"success"`
	InputDigest  string            `json:"input_digest"`
	InputBytes   int               `json:"input_bytes"`
	InputPreview string            `json:"input_preview,omitempty"`
	OutputBytes  int               `json:"output_bytes"`
	ErrorText    string            `json:"error,omitempty"`
	Options      map[string]string `json:"options,omitempty"`
}

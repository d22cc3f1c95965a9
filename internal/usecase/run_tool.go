package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const previewLimit = 120

// RunTool executes one converter and optionally records the invocation in
// the workspace history. A nil store means "run only" (no workspace).
type RunTool struct {
	history ports.HistoryStore
	now     func() time.Time
	newID   func() string
}

type RunOption func(*RunTool)

// WithNow is useful for tests.
func WithNow(now func() time.Time) RunOption {
	return func(uc *RunTool) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDFunc overrides record ID generation.
func WithIDFunc(f func() string) RunOption {
	return func(uc *RunTool) {
		if f != nil {
			uc.newID = f
		}
	}
}

func NewRunTool(store ports.HistoryStore, opts ...RunOption) *RunTool {
	uc := &RunTool{
		history: store,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs convert over input and returns the result plus the saved
// history record ID (empty when history is off). A failed conversion is
// still recorded; only a save problem comes back as error.
func (uc *RunTool) Execute(
	ctx context.Context,
	tool domain.ToolID,
	input string,
	options map[string]string,
	convert func(string) domain.ToolResult,
) (domain.ToolResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.ToolResult{}, "", err
	}

	started := uc.now()
	res := convert(input)
	ended := uc.now()

	if uc.history == nil {
		return res, "", nil
	}

	digest := sha256.Sum256([]byte(input))
	rec := domain.HistoryRecord{
		ID:           uc.newID(),
		Tool:         tool,
		StartedAt:    started.UTC(),
		EndedAt:      ended.UTC(),
		Success:      res.Success,
		InputDigest:  hex.EncodeToString(digest[:]),
		InputBytes:   len(input),
		InputPreview: clampPreview(input),
		OutputBytes:  len(res.Output),
		ErrorText:    res.Err,
		Options:      options,
	}

	id, err := uc.history.SaveRecord(rec)
	if err != nil {
		return res, "", err
	}
	return res, id, nil
}

func clampPreview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "…"
}

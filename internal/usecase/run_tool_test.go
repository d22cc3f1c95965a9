package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

type fakeStore struct {
	saved  []domain.HistoryRecord
	failOn error
}

func (s *fakeStore) SaveRecord(rec domain.HistoryRecord) (string, error) {
	if s.failOn != nil {
		return "", s.failOn
	}
	s.saved = append(s.saved, rec)
	return rec.ID, nil
}

func (s *fakeStore) ListRecords(limit int) ([]domain.HistoryRecord, error) {
	return s.saved, nil
}

func fixedClock() func() time.Time {
	t := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestExecute_RecordsSuccessfulRun(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunTool(store, WithNow(fixedClock()), WithIDFunc(func() string { return "run-1" }))

	res, id, err := uc.Execute(context.Background(), domain.ToolBase64, "hello",
		map[string]string{"alphabet": "base64"},
		func(in string) domain.ToolResult { return domain.Ok("aGVsbG8=") },
	)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "run-1", id)

	require.Len(t, store.saved, 1)
	rec := store.saved[0]
	assert.Equal(t, domain.ToolBase64, rec.Tool)
	assert.True(t, rec.Success)
	assert.Equal(t, 5, rec.InputBytes)
	assert.Equal(t, 8, rec.OutputBytes)
	assert.Equal(t, "hello", rec.InputPreview)
	assert.Len(t, rec.InputDigest, 64)
	assert.True(t, rec.EndedAt.After(rec.StartedAt))
}

func TestExecute_RecordsFailedConversion(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunTool(store)

	res, id, err := uc.Execute(context.Background(), domain.ToolColor, "nope", nil,
		func(in string) domain.ToolResult { return domain.Failf("unrecognized color") },
	)

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, id)

	require.Len(t, store.saved, 1)
	assert.False(t, store.saved[0].Success)
	assert.Equal(t, "unrecognized color", store.saved[0].ErrorText)
}

func TestExecute_NilStoreSkipsHistory(t *testing.T) {
	uc := NewRunTool(nil)

	res, id, err := uc.Execute(context.Background(), domain.ToolUnits, "1 km m", nil,
		func(in string) domain.ToolResult { return domain.Ok("1000") },
	)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, id)
}

func TestExecute_SaveErrorSurfaces(t *testing.T) {
	store := &fakeStore{failOn: errors.New("disk full")}
	uc := NewRunTool(store)

	res, id, err := uc.Execute(context.Background(), domain.ToolUnits, "1 km m", nil,
		func(in string) domain.ToolResult { return domain.Ok("1000") },
	)

	require.Error(t, err)
	assert.True(t, res.Success) // conversion still usable
	assert.Empty(t, id)
}

func TestExecute_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewRunTool(nil)
	_, _, err := uc.Execute(ctx, domain.ToolUnits, "x", nil,
		func(in string) domain.ToolResult { return domain.Ok("y") },
	)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecute_LongInputPreviewClamps(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunTool(store)

	long := strings.Repeat("a", 500)
	_, _, err := uc.Execute(context.Background(), domain.ToolBase64, long, nil,
		func(in string) domain.ToolResult { return domain.Ok("x") },
	)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(store.saved[0].InputPreview, "…"))
	assert.Equal(t, 500, store.saved[0].InputBytes)
}

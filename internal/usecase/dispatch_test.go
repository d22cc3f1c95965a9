package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestDefaultConvert_CoversCatalog(t *testing.T) {
	cfg := domain.DefaultConfig()
	for _, info := range domain.Tools() {
		if info.ID == domain.ToolReport {
			// Reports wrap another tool's result, there is no direct converter.
			continue
		}
		_, ok := DefaultConvert(cfg, info.ID)
		assert.True(t, ok, "tool %s has no default converter", info.ID)
	}
}

func TestDefaultConvert_UnknownTool(t *testing.T) {
	_, ok := DefaultConvert(domain.DefaultConfig(), domain.ToolID("nope"))
	assert.False(t, ok)
}

func TestDefaultConvert_AppliesConfigDefaults(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Defaults.CSVDelimiter = ";"

	convert, ok := DefaultConvert(cfg, domain.ToolJSONToCSV)
	require.True(t, ok)

	res := convert(`[{"a":1,"b":2}]`)
	require.True(t, res.Success, res.Err)
	assert.True(t, strings.HasPrefix(res.Output, "a;b"), "output: %s", res.Output)
}

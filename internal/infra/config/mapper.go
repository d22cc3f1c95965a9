package config

import (
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// mapConfig applies parsed values on top of defaults.
func mapConfig(cfg domain.Config, y yamlConfig) domain.Config {
	tb := y.Toolbelt

	if tb.History.Enabled != nil {
		cfg.History.Enabled = *tb.History.Enabled
	}
	if tb.History.Masking != nil {
		cfg.History.Masking = *tb.History.Masking
	}

	if tb.Fetch.TimeoutMS > 0 {
		cfg.Fetch.TimeoutMS = tb.Fetch.TimeoutMS
	}

	if d := strings.TrimSpace(tb.Defaults.CSVDelimiter); d != "" {
		cfg.Defaults.CSVDelimiter = d
	}
	if tb.Defaults.JSONIndent > 0 {
		cfg.Defaults.JSONIndent = tb.Defaults.JSONIndent
	}
	if tb.Defaults.BarcodeSize > 0 {
		cfg.Defaults.BarcodeSize = tb.Defaults.BarcodeSize
	}

	if p := strings.TrimSpace(tb.Paths.HistoryDir); p != "" {
		cfg.Paths.HistoryDir = p
	}
	if p := strings.TrimSpace(tb.Paths.ExportsDir); p != "" {
		cfg.Paths.ExportsDir = p
	}

	return cfg
}

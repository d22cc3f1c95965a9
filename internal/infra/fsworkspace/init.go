// Package fsworkspace scaffolds a Toolbelt workspace on the filesystem.
package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const defaultConfig = `toolbelt:
  history:
    enabled: true
    masking: true
  fetch:
    timeout_ms: 10000
  defaults:
    csv_delimiter: ","
    json_indent: 2
    barcode_size: 256
  paths:
    history_dir: history
    exports_dir: exports
`

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, "history"),
		filepath.Join(root, "exports"),
		filepath.Join(root, ".toolbelt", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := ensureGitignore(root); err != nil {
		return err
	}

	cfgPath := filepath.Join(root, "toolbelt.yaml")
	if !force {
		if _, err := os.Stat(cfgPath); err == nil {
			return nil
		}
	}

	return os.WriteFile(cfgPath, []byte(defaultConfig), 0o644)
}

func ensureGitignore(root string) error {
	const header = "# Toolbelt"
	entries := []string{
		"history/",
		"exports/",
		".toolbelt/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

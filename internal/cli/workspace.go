package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/certfetch"
	"github.com/aalvaropc/toolbelt/internal/infra/config"
	"github.com/aalvaropc/toolbelt/internal/infra/histstore"
	"github.com/aalvaropc/toolbelt/internal/infra/workspacefinder"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"github.com/aalvaropc/toolbelt/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store   ports.HistoryStore
	fetcher ports.CertFetcher
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	var store ports.HistoryStore
	if cfg.History.Enabled {
		store = histstore.NewJSONStore(root, cfg)
	}

	fetcher := certfetch.New(
		certfetch.WithTimeout(time.Duration(cfg.Fetch.TimeoutMS) * time.Millisecond),
	)

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		store:   store,
		fetcher: fetcher,
	}, nil
}

// openWorkspace is loadWorkspace for commands that also work outside a
// workspace: converters still run, history is just skipped.
func openWorkspace(workspaceFlag string) *workspaceCtx {
	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		return &workspaceCtx{
			cfg:     domain.DefaultConfig(),
			fetcher: certfetch.New(),
		}
	}
	return ws
}

func (ws *workspaceCtx) runner(noSave bool) *usecase.RunTool {
	store := ws.store
	if noSave {
		store = nil
	}
	return usecase.NewRunTool(store)
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `toolbelt init`): %w", wd, err)
	}
	return root, nil
}

// readInput resolves the converter payload: positional arg, --file, or stdin.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if strings.TrimSpace(file) != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// resolveOutPath places relative outputs under the workspace exports dir
// when one is loaded, the current directory otherwise.
func resolveOutPath(ws *workspaceCtx, out string) string {
	if filepath.IsAbs(out) || ws.root == "" {
		return filepath.Clean(out)
	}
	return filepath.Join(ws.root, ws.cfg.Paths.ExportsDir, out)
}

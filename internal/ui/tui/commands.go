package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/config"
	"github.com/aalvaropc/toolbelt/internal/infra/histstore"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"github.com/aalvaropc/toolbelt/internal/usecase"
	"github.com/aalvaropc/toolbelt/internal/usecase/certinfo"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdRunTool converts input with the tool's default options. Outside a
// workspace (root == "") the run is not recorded.
func cmdRunTool(deps Deps, root string, tool domain.ToolID, input string) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}
		log.Info("tool.run", "tool", string(tool), "input_bytes", len(input), "workspace", root)

		cfg, store := openHistory(root)

		convert, ok := usecase.DefaultConvert(cfg, tool)
		if !ok {
			return toolDoneMsg{tool: tool, err: fmt.Errorf("no converter for tool %q", tool)}
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		res, id, err := usecase.NewRunTool(store).Execute(ctx, tool, input, nil, convert)
		if err != nil {
			log.Error("tool.save_failed", "tool", string(tool), "err", err)
		} else if !res.Success {
			log.Warn("tool.failed", "tool", string(tool), "reason", res.Err)
		} else if deps.Debug {
			log.Debug("tool.ok", "tool", string(tool), "output_bytes", len(res.Output), "saved_id", id)
		}

		return toolDoneMsg{tool: tool, res: res, id: id, err: err}
	}
}

// cmdFetchChain performs the live certificate lookup and summarizes the
// chain the server presented.
func cmdFetchChain(deps Deps, root, host string) tea.Cmd {
	return func() tea.Msg {
		if deps.CertFetcher == nil {
			return toolDoneMsg{tool: domain.ToolCert, err: errors.New("CertFetcher is nil")}
		}

		cfg, store := openHistory(root)

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Fetch.TimeoutMS)*time.Millisecond)
		defer cancel()

		certs, err := deps.CertFetcher.FetchPeerChain(ctx, host)
		if err != nil {
			log := deps.Logger
			if log == nil {
				log = slog.Default()
			}
			log.Warn("cert.fetch_failed", "host", host, "err", err)
			return toolDoneMsg{tool: domain.ToolCert, res: domain.Failf("%v", err)}
		}

		res, id, saveErr := usecase.NewRunTool(store).Execute(ctx, domain.ToolCert, host,
			map[string]string{"source": "handshake"},
			func(string) domain.ToolResult { return certinfo.Summarize(certs, time.Now()) },
		)
		return toolDoneMsg{tool: domain.ToolCert, res: res, id: id, err: saveErr}
	}
}

func cmdLoadHistory(root string) tea.Cmd {
	return func() tea.Msg {
		_, store := openHistory(root)
		if store == nil {
			return historyLoadedMsg{err: errors.New("history is not available outside a workspace")}
		}

		recs, err := store.ListRecords(50)
		return historyLoadedMsg{recs: recs, err: err}
	}
}

func openHistory(root string) (domain.Config, ports.HistoryStore) {
	if root == "" {
		return domain.DefaultConfig(), nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		return domain.DefaultConfig(), nil
	}
	if !cfg.History.Enabled {
		return cfg, nil
	}
	return cfg, histstore.NewJSONStore(root, cfg)
}

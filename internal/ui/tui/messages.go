package tui

import "github.com/aalvaropc/toolbelt/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type toolDoneMsg struct {
	tool domain.ToolID
	res  domain.ToolResult
	id   string
	err  error
}

type historyLoadedMsg struct {
	recs []domain.HistoryRecord
	err  error
}

package tui

import (
	"log/slog"

	"github.com/aalvaropc/toolbelt/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	CertFetcher          ports.CertFetcher

	Logger *slog.Logger
	Debug  bool
}

package ports

import "github.com/aalvaropc/toolbelt/internal/domain"

// WorkspaceInitializer scaffolds a Toolbelt workspace on some medium (e.g., filesystem).
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

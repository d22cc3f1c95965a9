package domain

// WorkspaceSpec describes a workspace to be initialized.
type WorkspaceSpec struct {
	Root string
}

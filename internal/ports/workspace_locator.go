package ports

// WorkspaceLocator finds the workspace root that contains a given directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

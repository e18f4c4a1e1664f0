package ports

// CommandLocator resolves executable names on PATH.
type CommandLocator interface {
	LookPath(name string) (string, error)
}

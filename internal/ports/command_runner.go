package ports

// CommandRunner executes external commands and returns their combined output,
// so a failing package manager or recipe step can report what it printed.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	// RunWithEnv appends env to the current environment.
	RunWithEnv(name string, env []string, args ...string) ([]byte, error)
}

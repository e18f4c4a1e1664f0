package command_runner

import (
	"os"
	"os/exec"

	"vpsup/internal/ports"
)

// OsCommandRunner executes commands using os/exec and also resolves them on PATH.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

func (r *OsCommandRunner) RunWithEnv(name string, env []string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...) // Extend environment instead of replacing
	return cmd.CombinedOutput()
}

// LookPath reports where name resolves on PATH.
func (r *OsCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
var _ ports.CommandLocator = (*OsCommandRunner)(nil)

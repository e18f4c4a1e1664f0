package package_manager

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"vpsup/internal/ports"
)

var nonInteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

type packageManagerCommands struct {
	name    string
	refresh []string // index refresh, empty when install refreshes by itself
	install []string // package names are appended
}

var candidates = []packageManagerCommands{
	{name: "apt-get", refresh: []string{"apt-get", "update", "-qq"}, install: []string{"apt-get", "install", "-y", "-qq"}},
	{name: "dnf", refresh: []string{"dnf", "makecache", "-q"}, install: []string{"dnf", "install", "-y"}},
	{name: "yum", refresh: []string{"yum", "makecache", "-q"}, install: []string{"yum", "install", "-y"}},
	{name: "pacman", install: []string{"pacman", "-S", "--noconfirm", "--needed"}},
	{name: "apk", refresh: []string{"apk", "update", "-q"}, install: []string{"apk", "add", "-q"}},
	{name: "zypper", refresh: []string{"zypper", "--non-interactive", "refresh"}, install: []string{"zypper", "--non-interactive", "install"}},
}

// OsPackageManager runs the host package manager through the command runner.
type OsPackageManager struct {
	commands      packageManagerCommands
	commandRunner ports.CommandRunner
}

func (p *OsPackageManager) Name() string {
	return p.commands.name
}

// InstallMany refreshes the package index, then installs every package with a
// single invocation. A failed refresh is only logged.
func (p *OsPackageManager) InstallMany(packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	if len(p.commands.refresh) > 0 {
		output, err := p.commandRunner.RunWithEnv(p.commands.refresh[0], nonInteractiveEnv, p.commands.refresh[1:]...)
		if err != nil {
			slog.Warn("package index refresh failed", "packageManager", p.commands.name, "error", err, "output", strings.TrimSpace(string(output)))
		}
	}

	args := make([]string, 0, len(p.commands.install)-1+len(packages))
	args = append(args, p.commands.install[1:]...)
	args = append(args, packages...)
	slog.Debug("installing packages", "packageManager", p.commands.name, "packages", packages)
	output, err := p.commandRunner.RunWithEnv(p.commands.install[0], nonInteractiveEnv, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", p.commands.name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

type OsPackageManagerResolver struct {
	commandRunner  ports.CommandRunner
	commandLocator ports.CommandLocator
}

func ProvideOsPackageManagerResolver(
	commandRunner ports.CommandRunner,
	commandLocator ports.CommandLocator,
) *OsPackageManagerResolver {
	return &OsPackageManagerResolver{
		commandRunner:  commandRunner,
		commandLocator: commandLocator,
	}
}

func (r *OsPackageManagerResolver) Resolve(installCommand []string) (ports.PackageManager, error) {
	if len(installCommand) > 0 {
		if strings.TrimSpace(installCommand[0]) == "" {
			return nil, fmt.Errorf("install command has an empty program name")
		}
		return &OsPackageManager{
			commands: packageManagerCommands{
				name:    filepath.Base(installCommand[0]),
				install: append([]string(nil), installCommand...),
			},
			commandRunner: r.commandRunner,
		}, nil
	}

	for _, candidate := range candidates {
		if _, err := r.commandLocator.LookPath(candidate.name); err == nil {
			return &OsPackageManager{commands: candidate, commandRunner: r.commandRunner}, nil
		}
	}

	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.name)
	}
	return nil, fmt.Errorf("no supported package manager found (tried %s)", strings.Join(names, ", "))
}

var _ ports.PackageManager = (*OsPackageManager)(nil)
var _ ports.PackageManagerResolver = (*OsPackageManagerResolver)(nil)

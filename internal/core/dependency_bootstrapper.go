package core

import (
	"log/slog"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

// DependencyBootstrapper makes sure required commands resolve on PATH,
// installing the packages of the missing ones in a single batch.
type DependencyBootstrapper struct {
	commandLocator ports.CommandLocator
}

func ProvideDependencyBootstrapper(commandLocator ports.CommandLocator) *DependencyBootstrapper {
	return &DependencyBootstrapper{commandLocator: commandLocator}
}

// EnsureCommands looks up every distinct command once. The first registration
// of a command wins; a later one naming another package is reported as a
// conflict. Missing commands are installed with one InstallMany call and
// looked up again afterwards.
func (b *DependencyBootstrapper) EnsureCommands(
	pctx ProvisioningContext,
	required []domain.DependencySpec,
) (domain.BootstrapReport, error) {
	report := domain.BootstrapReport{}
	registered := make(map[string]string)
	var missing []domain.DependencySpec

	for _, dependency := range required {
		if dependency.CommandName == "" || dependency.PackageName == "" {
			slog.Warn("skipping incomplete dependency", "command", dependency.CommandName, "package", dependency.PackageName)
			continue
		}
		if kept, ok := registered[dependency.CommandName]; ok {
			if kept != dependency.PackageName {
				slog.Warn("command registered with conflicting packages, keeping the first",
					"command", dependency.CommandName, "kept", kept, "dropped", dependency.PackageName)
				report.Conflicts = append(report.Conflicts, domain.DependencyConflict{
					CommandName:    dependency.CommandName,
					KeptPackage:    kept,
					DroppedPackage: dependency.PackageName,
				})
			}
			continue
		}
		registered[dependency.CommandName] = dependency.PackageName

		if b.isPresent(dependency.CommandName) {
			report.Present = append(report.Present, dependency.CommandName)
			continue
		}
		missing = append(missing, dependency)
	}

	if len(missing) == 0 {
		return report, nil
	}

	report.Installed = missing
	report.Packages = distinctPackages(missing)

	if pctx.PackageManager == nil {
		return report, &domain.BootstrapError{
			Kind:     domain.BootstrapInstallFailed,
			Packages: report.Packages,
			Message:  "no package manager available",
		}
	}

	slog.Debug("installing missing commands", "packageManager", pctx.PackageManager.Name(), "packages", report.Packages)
	if err := pctx.PackageManager.InstallMany(report.Packages); err != nil {
		return report, &domain.BootstrapError{
			Kind:     domain.BootstrapInstallFailed,
			Packages: report.Packages,
			Message:  "package installation failed",
			Cause:    err,
		}
	}

	var unresolved []domain.DependencySpec
	for _, dependency := range missing {
		if !b.isPresent(dependency.CommandName) {
			unresolved = append(unresolved, dependency)
		}
	}
	if len(unresolved) > 0 {
		return report, &domain.BootstrapError{
			Kind:     domain.BootstrapInstallFailed,
			Packages: distinctPackages(unresolved),
			Message:  "commands still missing after installation",
		}
	}

	return report, nil
}

func (b *DependencyBootstrapper) isPresent(command string) bool {
	path, err := b.commandLocator.LookPath(command)
	if err != nil {
		slog.Debug("command not found", "command", command)
		return false
	}
	slog.Debug("command found", "command", command, "path", path)
	return true
}

func distinctPackages(dependencies []domain.DependencySpec) []string {
	seen := make(map[string]bool)
	var packages []string
	for _, dependency := range dependencies {
		if !seen[dependency.PackageName] {
			seen[dependency.PackageName] = true
			packages = append(packages, dependency.PackageName)
		}
	}
	return packages
}

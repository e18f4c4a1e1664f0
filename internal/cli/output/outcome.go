package output

import (
	"fmt"
	"strings"

	"vpsup/internal/core/domain"
)

// InstallOutcomeLine renders one placed file. A kept backup names its path
// so the operator knows where the previous content went.
func InstallOutcomeLine(destination string, outcome domain.InstallOutcome) string {
	switch outcome {
	case domain.InstalledWithBackupKept:
		return fmt.Sprintf("%s %s", destination, Dim("installed, previous content in "+destination+domain.BackupSuffix))
	case domain.InstalledWithBackupDiscarded:
		return fmt.Sprintf("%s %s", destination, Dim("replaced, no backup kept"))
	default:
		return fmt.Sprintf("%s %s", destination, Dim(outcome.String()))
	}
}

func PrintInstallOutcome(destination string, outcome domain.InstallOutcome) {
	PrintSuccess(InstallOutcomeLine(destination, outcome))
}

func PrintRemovalOutcome(destination string, outcome domain.RemovalOutcome) {
	if outcome == domain.NotFound {
		PrintInfo(fmt.Sprintf("%s does not exist", destination))
		return
	}
	PrintSuccess(fmt.Sprintf("Removed %s", destination))
}

// PrintConflicts warns once per command that was registered with two packages.
func PrintConflicts(report domain.BootstrapReport) {
	for _, conflict := range report.Conflicts {
		PrintWarning(fmt.Sprintf("command %s: using package %s, ignoring %s",
			conflict.CommandName, conflict.KeptPackage, conflict.DroppedPackage))
	}
}

// PrintBootstrapReport summarizes a successful dependency check.
func PrintBootstrapReport(report domain.BootstrapReport) {
	if len(report.Present) > 0 {
		PrintStep(fmt.Sprintf("already present: %s", strings.Join(report.Present, ", ")))
	}
	if report.NothingToInstall() {
		PrintSuccess("All commands are available")
		return
	}
	PrintSuccess(fmt.Sprintf("Installed %s", strings.Join(report.Packages, ", ")))
}

// PrintProvisionReport lists what a single recipe run changed.
func PrintProvisionReport(report domain.ProvisionReport) {
	fmt.Fprintln(stdout, Bold(report.Recipe))
	if len(report.Bootstrap.Packages) > 0 {
		PrintStep(fmt.Sprintf("installed packages: %s", strings.Join(report.Bootstrap.Packages, ", ")))
	}
	PrintConflicts(report.Bootstrap)
	for _, file := range report.Files {
		PrintStep(InstallOutcomeLine(file.Destination, file.Outcome))
	}
	if report.Commands > 0 {
		PrintSecondary(fmt.Sprintf("%d %s run", report.Commands, Plural(report.Commands, "command", "commands")))
	}
}

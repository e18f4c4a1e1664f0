package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DependencySpec maps an executable looked up on PATH to the package providing it.
type DependencySpec struct {
	CommandName string `yaml:"command"`
	PackageName string `yaml:"package"`
}

func (d DependencySpec) String() string {
	return fmt.Sprintf("%s (%s)", d.CommandName, d.PackageName)
}

// DependencyConflict records a command registered twice with different packages.
// The first registration is kept.
type DependencyConflict struct {
	CommandName    string
	KeptPackage    string
	DroppedPackage string
}

type BootstrapReport struct {
	// Present holds commands that already resolved on PATH.
	Present []string
	// Installed holds the missing commands in registration order.
	Installed []DependencySpec
	// Packages holds the distinct package names handed to the package manager.
	Packages  []string
	Conflicts []DependencyConflict
}

func (r BootstrapReport) NothingToInstall() bool {
	return len(r.Packages) == 0
}

type BootstrapErrorKind int

const (
	BootstrapInstallFailed BootstrapErrorKind = iota
)

func (k BootstrapErrorKind) String() string {
	switch k {
	case BootstrapInstallFailed:
		return "install failed"
	default:
		return "unknown"
	}
}

type BootstrapError struct {
	Kind     BootstrapErrorKind
	Packages []string
	Message  string
	Cause    error
}

func (e *BootstrapError) Error() string {
	msg := fmt.Sprintf("bootstrap %s: %s [%s]", e.Kind, e.Message, strings.Join(e.Packages, " "))
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *BootstrapError) Unwrap() error {
	return e.Cause
}

func IsBootstrapErrorKind(err error, kind BootstrapErrorKind) bool {
	var bootstrapErr *BootstrapError
	return errors.As(err, &bootstrapErr) && bootstrapErr.Kind == kind
}

// ParseDependencySpec parses "command=package". A bare "command" uses the
// command name as package name.
func ParseDependencySpec(value string) (DependencySpec, error) {
	command, pkg, found := strings.Cut(value, "=")
	command = strings.TrimSpace(command)
	pkg = strings.TrimSpace(pkg)
	if command == "" {
		return DependencySpec{}, fmt.Errorf("dependency '%s' has empty command name", value)
	}
	if !found {
		pkg = command
	}
	if pkg == "" {
		return DependencySpec{}, fmt.Errorf("dependency '%s' has empty package name", value)
	}
	return DependencySpec{CommandName: command, PackageName: pkg}, nil
}

package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// BackupSuffix is appended to a destination path to keep its previous content.
const BackupSuffix = ".bak"

// FileInstallSpec describes a single file placement.
type FileInstallSpec struct {
	Mode          string
	Owner         string
	Group         string
	Content       string
	Destination   string
	DiscardBackup bool
}

// BackupPath returns the path the previous content of the destination is kept at.
func (s FileInstallSpec) BackupPath() string {
	return s.Destination + BackupSuffix
}

// Validate checks the fields that can be checked without touching the
// filesystem. Whether the destination is an existing directory is checked by the installer.
func (s FileInstallSpec) Validate() error {
	if err := ValidateMode(s.Mode); err != nil {
		return err
	}
	if strings.TrimSpace(s.Owner) == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if strings.TrimSpace(s.Group) == "" {
		return fmt.Errorf("group cannot be empty")
	}
	if s.Destination == "" {
		return fmt.Errorf("destination cannot be empty")
	}
	if !strings.HasPrefix(s.Destination, "/") {
		return fmt.Errorf("destination '%s' is not an absolute path", s.Destination)
	}
	if strings.HasSuffix(s.Destination, "/") || filepath.Clean(s.Destination) == "/" {
		return fmt.Errorf("destination '%s' is a directory", s.Destination)
	}
	return nil
}

// ValidateMode accepts exactly three octal digits, e.g. "644".
func ValidateMode(mode string) error {
	if len(mode) != 3 {
		return fmt.Errorf("mode '%s' must be exactly 3 octal digits", mode)
	}
	for _, c := range mode {
		if c < '0' || c > '7' {
			return fmt.Errorf("mode '%s' contains non-octal digit '%c'", mode, c)
		}
	}
	return nil
}

type InstallOutcome int

const (
	Installed InstallOutcome = iota
	InstalledWithBackupKept
	InstalledWithBackupDiscarded
)

func (o InstallOutcome) String() string {
	switch o {
	case Installed:
		return "installed"
	case InstalledWithBackupKept:
		return "installed, previous file kept as backup"
	case InstalledWithBackupDiscarded:
		return "installed, previous file discarded"
	default:
		return "unknown"
	}
}

type InstallErrorKind int

const (
	InstallInvalidArgument InstallErrorKind = iota
	InstallTempFileCreateFailed
	InstallPlacementFailed
)

func (k InstallErrorKind) String() string {
	switch k {
	case InstallInvalidArgument:
		return "invalid argument"
	case InstallTempFileCreateFailed:
		return "temp file create failed"
	case InstallPlacementFailed:
		return "placement failed"
	default:
		return "unknown"
	}
}

// InstallError is returned by every failed install.
type InstallError struct {
	Kind        InstallErrorKind
	Destination string
	Message     string
	Cause       error
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("install %s: %s: %s", e.Destination, e.Kind, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}

func NewInstallError(kind InstallErrorKind, destination string, message string, cause error) *InstallError {
	return &InstallError{Kind: kind, Destination: destination, Message: message, Cause: cause}
}

// IsInstallErrorKind reports whether err is an InstallError of the given kind.
func IsInstallErrorKind(err error, kind InstallErrorKind) bool {
	var installErr *InstallError
	return errors.As(err, &installErr) && installErr.Kind == kind
}

type RemovalSpec struct {
	Destination string
}

// IsProtected reports whether the destination must never be removed: empty,
// relative, or any spelling of the filesystem root.
func (s RemovalSpec) IsProtected() bool {
	if s.Destination == "" || !strings.HasPrefix(s.Destination, "/") {
		return true
	}
	return filepath.Clean(s.Destination) == "/"
}

type RemovalOutcome int

const (
	Removed RemovalOutcome = iota
	NotFound
)

func (o RemovalOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

type RemovalErrorKind int

const (
	RemovalProtected RemovalErrorKind = iota
	RemovalDeleteFailed
)

func (k RemovalErrorKind) String() string {
	switch k {
	case RemovalProtected:
		return "protected"
	case RemovalDeleteFailed:
		return "delete failed"
	default:
		return "unknown"
	}
}

type RemovalError struct {
	Kind        RemovalErrorKind
	Destination string
	Message     string
	Cause       error
}

func (e *RemovalError) Error() string {
	msg := fmt.Sprintf("remove '%s': %s: %s", e.Destination, e.Kind, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *RemovalError) Unwrap() error {
	return e.Cause
}

func IsRemovalErrorKind(err error, kind RemovalErrorKind) bool {
	var removalErr *RemovalError
	return errors.As(err, &removalErr) && removalErr.Kind == kind
}

package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

// ConfigInstaller places generated config files and removes installed paths.
// Both operations can be repeated against a partially provisioned host.
type ConfigInstaller struct {
	fileSystem ports.FileSystem
}

func ProvideConfigInstaller(fileSystem ports.FileSystem) *ConfigInstaller {
	return &ConfigInstaller{fileSystem: fileSystem}
}

// Install writes spec.Content plus a trailing newline to spec.Destination with
// the requested mode and ownership. An existing destination is copied to
// Destination.bak first, and the new file is renamed into place so the
// destination is never missing or partially written.
func (c *ConfigInstaller) Install(pctx ProvisioningContext, spec domain.FileInstallSpec) (domain.InstallOutcome, error) {
	if err := spec.Validate(); err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallInvalidArgument, spec.Destination, err.Error(), nil)
	}
	isDir, err := c.fileSystem.IsDir(spec.Destination)
	if err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallPlacementFailed, spec.Destination, "cannot inspect destination", err)
	}
	if isDir {
		return domain.Installed, domain.NewInstallError(domain.InstallInvalidArgument, spec.Destination, "destination is a directory", nil)
	}
	mode, err := strconv.ParseUint(spec.Mode, 8, 32)
	if err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallInvalidArgument, spec.Destination, "invalid mode", err)
	}
	if pctx.StagingDir == "" {
		return domain.Installed, domain.NewInstallError(domain.InstallTempFileCreateFailed, spec.Destination, "no staging directory", nil)
	}

	staged, err := c.fileSystem.CreateTemp(pctx.StagingDir, "install-*")
	if err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallTempFileCreateFailed, spec.Destination, "cannot create staging file", err)
	}
	defer c.removeQuietly(staged)

	if err := c.fileSystem.WriteFile(staged, []byte(spec.Content+"\n"), ports.ReadWrite); err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallTempFileCreateFailed, spec.Destination, "cannot write staging file", err)
	}

	backupMade, err := c.place(staged, spec, os.FileMode(mode))
	if err != nil {
		return domain.Installed, domain.NewInstallError(domain.InstallPlacementFailed, spec.Destination, "cannot place file", err)
	}
	slog.Debug("installed file", "destination", spec.Destination, "mode", spec.Mode, "owner", spec.Owner, "group", spec.Group, "backup", backupMade)

	if !backupMade {
		return domain.Installed, nil
	}
	if !spec.DiscardBackup {
		return domain.InstalledWithBackupKept, nil
	}
	if err := c.fileSystem.Remove(spec.BackupPath()); err != nil {
		slog.Warn("backup could not be discarded", "backup", spec.BackupPath(), "error", err)
		return domain.InstalledWithBackupKept, nil
	}
	return domain.InstalledWithBackupDiscarded, nil
}

// place copies the staged file next to the destination, applies mode and
// ownership there and renames it over the destination. It reports whether a
// backup of a previous destination was written.
func (c *ConfigInstaller) place(staged string, spec domain.FileInstallSpec, mode os.FileMode) (bool, error) {
	dir := filepath.Dir(spec.Destination)
	if err := c.fileSystem.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	sibling, err := c.fileSystem.CreateTemp(dir, "."+filepath.Base(spec.Destination)+".vpsup-*")
	if err != nil {
		return false, fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	committed := false
	defer func() {
		if !committed {
			c.removeQuietly(sibling)
		}
	}()

	if err := c.fileSystem.CopyFile(staged, sibling); err != nil {
		return false, fmt.Errorf("failed to copy staged content: %w", err)
	}
	if err := c.fileSystem.Chmod(sibling, mode); err != nil {
		return false, fmt.Errorf("failed to set mode %s: %w", spec.Mode, err)
	}
	if err := c.fileSystem.Chown(sibling, spec.Owner, spec.Group); err != nil {
		return false, fmt.Errorf("failed to set owner %s:%s: %w", spec.Owner, spec.Group, err)
	}

	exists, err := c.fileSystem.FileExists(spec.Destination)
	if err != nil {
		return false, err
	}
	if exists {
		if err := c.fileSystem.CopyFile(spec.Destination, spec.BackupPath()); err != nil {
			return false, fmt.Errorf("failed to back up %s: %w", spec.Destination, err)
		}
	}

	if err := c.fileSystem.Rename(sibling, spec.Destination); err != nil {
		return false, fmt.Errorf("failed to move file into place: %w", err)
	}
	committed = true
	return exists, nil
}

// Remove deletes destination recursively. Empty, relative and root paths are
// refused; a missing destination is reported as NotFound.
func (c *ConfigInstaller) Remove(spec domain.RemovalSpec) (domain.RemovalOutcome, error) {
	if spec.IsProtected() {
		return domain.NotFound, &domain.RemovalError{
			Kind:        domain.RemovalProtected,
			Destination: spec.Destination,
			Message:     "refusing to remove an empty, relative or root path",
		}
	}

	exists, err := c.fileSystem.FileExists(spec.Destination)
	if err != nil {
		return domain.NotFound, &domain.RemovalError{
			Kind:        domain.RemovalDeleteFailed,
			Destination: spec.Destination,
			Message:     "cannot inspect path",
			Cause:       err,
		}
	}
	if !exists {
		return domain.NotFound, nil
	}

	if err := c.fileSystem.RemoveAll(spec.Destination); err != nil {
		return domain.NotFound, &domain.RemovalError{
			Kind:        domain.RemovalDeleteFailed,
			Destination: spec.Destination,
			Message:     "delete failed",
			Cause:       err,
		}
	}
	slog.Debug("removed path", "destination", spec.Destination)
	return domain.Removed, nil
}

func (c *ConfigInstaller) removeQuietly(path string) {
	if err := c.fileSystem.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("temporary file was not removed", "path", path, "error", err)
	}
}

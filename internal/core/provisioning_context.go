package core

import (
	"fmt"
	"log/slog"
	"os"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

const osReleasePath = "/etc/os-release"

// ProvisioningContext carries the per-run state both core components read:
// where staging files go, how packages are installed and which OS this is.
type ProvisioningContext struct {
	StagingDir     string
	PackageManager ports.PackageManager
	OS             domain.OSRelease
}

// StagingDirectory is a private directory for staging files. It is removed by Close.
type StagingDirectory struct {
	fileSystem ports.FileSystem
	path       string
	closed     bool
}

func OpenStagingDirectory(fileSystem ports.FileSystem, parent string) (*StagingDirectory, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	if err := fileSystem.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging parent %s: %v", parent, err)
	}
	path, err := fileSystem.MkdirTemp(parent, "vpsup-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory in %s: %v", parent, err)
	}
	slog.Debug("opened staging directory", "path", path)
	return &StagingDirectory{fileSystem: fileSystem, path: path}, nil
}

func (s *StagingDirectory) Path() string {
	return s.path
}

// Close removes the directory and everything left in it. Calling it again is a no-op.
func (s *StagingDirectory) Close() error {
	if s.closed {
		return nil
	}
	if err := s.fileSystem.RemoveAll(s.path); err != nil {
		return fmt.Errorf("failed to remove staging directory %s: %v", s.path, err)
	}
	s.closed = true
	slog.Debug("removed staging directory", "path", s.path)
	return nil
}

type ProvisioningContextFactory struct {
	configRepository ConfigRepository
	fileSystem       ports.FileSystem
	resolver         ports.PackageManagerResolver
}

func ProvideProvisioningContextFactory(
	configRepository ConfigRepository,
	fileSystem ports.FileSystem,
	resolver ports.PackageManagerResolver,
) *ProvisioningContextFactory {
	return &ProvisioningContextFactory{
		configRepository: configRepository,
		fileSystem:       fileSystem,
		resolver:         resolver,
	}
}

// Open builds the provisioning context for this run. The returned release
// function removes the staging directory and must be called on every path.
func (f *ProvisioningContextFactory) Open() (ProvisioningContext, func(), error) {
	config, err := f.configRepository.LoadConfig()
	if err != nil {
		return ProvisioningContext{}, nil, err
	}

	release, err := f.readOSRelease()
	if err != nil {
		return ProvisioningContext{}, nil, err
	}

	// without a package manager only hosts that already have every command can be provisioned
	packageManager, err := f.resolver.Resolve(config.InstallCommand)
	if err != nil {
		slog.Warn("no package manager available", "error", err)
		packageManager = nil
	}

	staging, err := OpenStagingDirectory(f.fileSystem, config.StagingDir)
	if err != nil {
		return ProvisioningContext{}, nil, err
	}

	pctx := ProvisioningContext{
		StagingDir:     staging.Path(),
		PackageManager: packageManager,
		OS:             release,
	}
	closeStaging := func() {
		if err := staging.Close(); err != nil {
			slog.Warn("staging directory was not removed", "error", err)
		}
	}
	return pctx, closeStaging, nil
}

func (f *ProvisioningContextFactory) readOSRelease() (domain.OSRelease, error) {
	exists, err := f.fileSystem.FileExists(osReleasePath)
	if err != nil {
		return domain.OSRelease{}, err
	}
	if !exists {
		slog.Debug("os-release not found", "path", osReleasePath)
		return domain.OSRelease{}, nil
	}
	data, err := f.fileSystem.ReadFile(osReleasePath)
	if err != nil {
		return domain.OSRelease{}, fmt.Errorf("failed to read %s: %v", osReleasePath, err)
	}
	return domain.ParseOSRelease(string(data)), nil
}

package handler

import (
	"fmt"
	"io"
	"strings"

	"vpsup/internal/cli/output"
	"vpsup/internal/core"
	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

type FileCommandHandler struct {
	contextFactory     *core.ProvisioningContextFactory
	configInstaller    *core.ConfigInstaller
	environmentEnsurer core.EnvironmentEnsurer
	fileSystem         ports.FileSystem
}

func ProvideFileCommandHandler(
	contextFactory *core.ProvisioningContextFactory,
	configInstaller *core.ConfigInstaller,
	environmentEnsurer core.EnvironmentEnsurer,
	fileSystem ports.FileSystem,
) FileCommandHandler {
	return FileCommandHandler{
		contextFactory:     contextFactory,
		configInstaller:    configInstaller,
		environmentEnsurer: environmentEnsurer,
		fileSystem:         fileSystem,
	}
}

// FileInstallOptions is the install request as given on the command line.
// An empty Source or "-" reads the content from stdin.
type FileInstallOptions struct {
	Destination   string
	Source        string
	Mode          string
	Owner         string
	Group         string
	DiscardBackup bool
}

func (h *FileCommandHandler) HandleInstall(options FileInstallOptions, stdin io.Reader) error {
	if err := h.environmentEnsurer.EnsureRunningAsRoot(); err != nil {
		return err
	}

	content, err := h.readContent(options.Source, stdin)
	if err != nil {
		return err
	}
	template := domain.FileTemplate{
		Mode:          options.Mode,
		Owner:         options.Owner,
		Group:         options.Group,
		DiscardBackup: options.DiscardBackup,
	}
	spec := template.InstallSpec(options.Destination, content)

	pctx, release, err := h.contextFactory.Open()
	if err != nil {
		return err
	}
	defer release()

	outcome, err := h.configInstaller.Install(pctx, spec)
	if err != nil {
		return err
	}
	output.PrintInstallOutcome(spec.Destination, outcome)
	return nil
}

func (h *FileCommandHandler) readContent(source string, stdin io.Reader) (string, error) {
	if source == "" || source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read content from stdin: %w", err)
		}
		return trimFinalNewline(data), nil
	}
	data, err := h.fileSystem.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return trimFinalNewline(data), nil
}

// trimFinalNewline drops one trailing newline; the installer always writes one back.
func trimFinalNewline(data []byte) string {
	return strings.TrimSuffix(string(data), "\n")
}

func (h *FileCommandHandler) HandleRemove(destination string) error {
	if err := h.environmentEnsurer.EnsureRunningAsRoot(); err != nil {
		return err
	}

	outcome, err := h.configInstaller.Remove(domain.RemovalSpec{Destination: destination})
	if err != nil {
		return err
	}
	output.PrintRemovalOutcome(destination, outcome)
	return nil
}

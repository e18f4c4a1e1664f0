package handler

import (
	"vpsup/internal/cli/output"
	"vpsup/internal/core"
	"vpsup/internal/core/domain"
)

type BootstrapCommandHandler struct {
	configRepository   core.ConfigRepository
	contextFactory     *core.ProvisioningContextFactory
	bootstrapper       *core.DependencyBootstrapper
	environmentEnsurer core.EnvironmentEnsurer
}

func ProvideBootstrapCommandHandler(
	configRepository core.ConfigRepository,
	contextFactory *core.ProvisioningContextFactory,
	bootstrapper *core.DependencyBootstrapper,
	environmentEnsurer core.EnvironmentEnsurer,
) BootstrapCommandHandler {
	return BootstrapCommandHandler{
		configRepository:   configRepository,
		contextFactory:     contextFactory,
		bootstrapper:       bootstrapper,
		environmentEnsurer: environmentEnsurer,
	}
}

// Handle makes the config dependencies and the "command=package" arguments
// available. Arguments are registered after the config entries.
func (h *BootstrapCommandHandler) Handle(args []string) error {
	if err := h.environmentEnsurer.EnsureRunningAsRoot(); err != nil {
		return err
	}

	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	required := append([]domain.DependencySpec{}, config.Dependencies...)
	for _, arg := range args {
		spec, err := domain.ParseDependencySpec(arg)
		if err != nil {
			return err
		}
		required = append(required, spec)
	}
	if len(required) == 0 {
		output.PrintInfo("No dependencies configured")
		return nil
	}

	pctx, release, err := h.contextFactory.Open()
	if err != nil {
		return err
	}
	defer release()

	report, err := h.bootstrapper.EnsureCommands(pctx, required)
	output.PrintConflicts(report)
	if err != nil {
		return err
	}

	output.PrintBootstrapReport(report)
	return nil
}

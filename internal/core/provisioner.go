package core

import (
	"fmt"
	"log/slog"
	"strings"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

// Provisioner applies a recipe: bootstrap its commands, run Prepare, install
// every file, then run Activate. It stops at the first failure.
type Provisioner struct {
	configInstaller *ConfigInstaller
	bootstrapper    *DependencyBootstrapper
	commandRunner   ports.CommandRunner
	templater       ports.Templater
}

func ProvideProvisioner(
	configInstaller *ConfigInstaller,
	bootstrapper *DependencyBootstrapper,
	commandRunner ports.CommandRunner,
	templater ports.Templater,
) *Provisioner {
	return &Provisioner{
		configInstaller: configInstaller,
		bootstrapper:    bootstrapper,
		commandRunner:   commandRunner,
		templater:       templater,
	}
}

func (p *Provisioner) Provision(
	pctx ProvisioningContext,
	recipe domain.Recipe,
	values map[string]interface{},
) (domain.ProvisionReport, error) {
	report := domain.ProvisionReport{Recipe: recipe.Name}

	if missing := MissingTemplateValues(recipe, values); len(missing) > 0 {
		return report, fmt.Errorf("recipe %s needs values that are not set: %s", recipe.Name, strings.Join(missing, ", "))
	}

	packageManagerName := ""
	if pctx.PackageManager != nil {
		packageManagerName = pctx.PackageManager.Name()
	}
	bootstrap, err := p.bootstrapper.EnsureCommands(pctx, recipe.DependencySpecs(pctx.OS, packageManagerName))
	report.Bootstrap = bootstrap
	if err != nil {
		return report, err
	}

	for i, command := range recipe.Prepare {
		if err := p.runCommand(recipe.Name, fmt.Sprintf("prepare-%d", i), command, values); err != nil {
			return report, err
		}
		report.Commands++
	}

	for i, file := range recipe.Files {
		destination, err := p.templater.Render(file.Destination, fmt.Sprintf("%s-destination-%d", recipe.Name, i), values)
		if err != nil {
			return report, fmt.Errorf("failed to render destination %s: %v", file.Destination, err)
		}
		content, err := p.templater.Render(file.Template, destination, values)
		if err != nil {
			return report, fmt.Errorf("failed to render %s: %v", destination, err)
		}

		// the installer terminates the content with a newline itself
		spec := file.InstallSpec(destination, strings.TrimSuffix(content, "\n"))
		outcome, err := p.configInstaller.Install(pctx, spec)
		if err != nil {
			return report, err
		}
		slog.Debug("installed file", "recipe", recipe.Name, "destination", destination, "outcome", outcome.String())
		report.Files = append(report.Files, domain.FileResult{Destination: destination, Outcome: outcome})
	}

	for i, command := range recipe.Activate {
		if err := p.runCommand(recipe.Name, fmt.Sprintf("activate-%d", i), command, values); err != nil {
			return report, err
		}
		report.Commands++
	}

	return report, nil
}

func (p *Provisioner) runCommand(recipeName string, templateName string, command []string, values map[string]interface{}) error {
	if len(command) == 0 {
		return nil
	}
	args := make([]string, len(command))
	for i, arg := range command {
		rendered, err := p.templater.Render(arg, recipeName+"-"+templateName, values)
		if err != nil {
			return fmt.Errorf("failed to render command %s: %v", strings.Join(command, " "), err)
		}
		args[i] = rendered
	}

	slog.Debug("running command", "recipe", recipeName, "command", strings.Join(args, " "))
	out, err := p.commandRunner.Run(args[0], args[1:]...)
	if err != nil {
		return fmt.Errorf("command '%s' failed: %v\n%s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

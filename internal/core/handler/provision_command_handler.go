package handler

import (
	"fmt"
	"slices"

	"vpsup/internal/cli/output"
	"vpsup/internal/cli/progress"
	"vpsup/internal/core"
	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

type ProvisionCommandHandler struct {
	configRepository   core.ConfigRepository
	secretsRepository  core.SecretsRepository
	recipeCatalog      *core.RecipeCatalog
	contextFactory     *core.ProvisioningContextFactory
	provisioner        *core.Provisioner
	environmentEnsurer core.EnvironmentEnsurer
	host               ports.Host
	shareCodeRenderer  ports.ShareCodeRenderer
}

func ProvideProvisionCommandHandler(
	configRepository core.ConfigRepository,
	secretsRepository core.SecretsRepository,
	recipeCatalog *core.RecipeCatalog,
	contextFactory *core.ProvisioningContextFactory,
	provisioner *core.Provisioner,
	environmentEnsurer core.EnvironmentEnsurer,
	host ports.Host,
	shareCodeRenderer ports.ShareCodeRenderer,
) ProvisionCommandHandler {
	return ProvisionCommandHandler{
		configRepository:   configRepository,
		secretsRepository:  secretsRepository,
		recipeCatalog:      recipeCatalog,
		contextFactory:     contextFactory,
		provisioner:        provisioner,
		environmentEnsurer: environmentEnsurer,
		host:               host,
		shareCodeRenderer:  shareCodeRenderer,
	}
}

// resolveRecipes looks up the named recipes in order; no names means all of them.
func resolveRecipes(catalog *core.RecipeCatalog, names []string) ([]domain.Recipe, error) {
	if len(names) == 0 {
		for _, recipe := range catalog.List() {
			names = append(names, recipe.Name)
		}
	}
	recipes := make([]domain.Recipe, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		recipe, err := catalog.Get(name)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (h *ProvisionCommandHandler) Handle(recipeNames []string, showShareCode bool) error {
	if len(recipeNames) == 0 {
		return fmt.Errorf("no recipe given, see 'vpsup recipes'")
	}
	if err := h.environmentEnsurer.EnsureRunningAsRoot(); err != nil {
		return err
	}

	recipes, err := resolveRecipes(h.recipeCatalog, recipeNames)
	if err != nil {
		return err
	}

	pctx, release, err := h.contextFactory.Open()
	if err != nil {
		return err
	}
	defer release()

	for _, recipe := range recipes {
		if err := h.environmentEnsurer.EnsureRecipeSupported(pctx.OS, recipe); err != nil {
			return err
		}
	}

	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	generated, err := core.EnsureSecrets(h.secretsRepository, config.SecretsPath, core.SecretGenerators(recipes))
	if err != nil {
		return err
	}
	for _, key := range generated {
		output.PrintInfo(fmt.Sprintf("Generated secret '%s'", key))
	}

	values, err := core.CreateTemplatingValues(h.configRepository, h.secretsRepository)
	if err != nil {
		return err
	}

	hostname, err := h.host.Hostname()
	if err != nil {
		hostname = "host"
	}
	output.PrintHeader(fmt.Sprintf("Provisioning %s (%s)", hostname, pctx.OS))
	fmt.Println()

	names := make([]string, len(recipes))
	infos := make([]string, len(recipes))
	for i, recipe := range recipes {
		names[i] = recipe.Name
		infos[i] = recipe.Description
	}
	tracker := progress.NewTrackerWithInfoAndVerb(names, infos, "Provisioning")
	tracker.Start()

	reports := make([]domain.ProvisionReport, 0, len(recipes))
	for i, recipe := range recipes {
		var report domain.ProvisionReport
		err := tracker.Run(i, func() error {
			var provisionErr error
			report, provisionErr = h.provisioner.Provision(pctx, recipe, values)
			return provisionErr
		})
		if err != nil {
			tracker.Stop()
			output.PrintConflicts(report.Bootstrap)
			return fmt.Errorf("recipe %s failed: %w", recipe.Name, err)
		}
		reports = append(reports, report)
	}
	tracker.Stop()
	fmt.Println()

	for _, report := range reports {
		output.PrintProvisionReport(report)
	}
	output.PrintSuccess(fmt.Sprintf("Provisioned %d %s", len(reports), output.Plural(len(reports), "recipe", "recipes")))

	if showShareCode && slices.ContainsFunc(recipes, func(r domain.Recipe) bool { return r.Name == "singbox" }) {
		return h.printShareCode(values)
	}
	return nil
}

func (h *ProvisionCommandHandler) printShareCode(values map[string]interface{}) error {
	link, err := core.SingboxShareLink(values)
	if err != nil {
		return err
	}
	code, err := h.shareCodeRenderer.Render(link)
	if err != nil {
		return err
	}
	fmt.Println()
	output.PrintHeader("sing-box client")
	fmt.Println(link)
	fmt.Println(code)
	return nil
}

func (h *ProvisionCommandHandler) HandleList() error {
	output.PrintHeader("Recipes")
	fmt.Println()
	for _, recipe := range h.recipeCatalog.List() {
		line := fmt.Sprintf("  %s %-10s %s", output.SymbolBullet, output.Bold(recipe.Name), recipe.Description)
		if recipe.RequiresDebianFamily {
			line += output.Dim(" (Debian/Ubuntu)")
		}
		fmt.Println(line)
	}
	return nil
}

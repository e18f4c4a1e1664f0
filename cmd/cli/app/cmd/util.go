package cmd

import (
	"vpsup/cmd/cli/app"

	"github.com/spf13/cobra"
)

func RecipeArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	catalog, err := app.InjectRecipeCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []cobra.Completion
	for _, recipe := range catalog.List() {
		names = append(names, recipe.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func SecretKeysCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	config, err := configRepo.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	secretsRepo, err := app.InjectSecretRepository()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	secrets, err := secretsRepo.LoadSecrets(config.SecretsPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var keys []cobra.Completion
	for _, secret := range secrets {
		keys = append(keys, secret.Key)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

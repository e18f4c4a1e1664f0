package cmd

import (
	"vpsup/cmd/cli/app"

	"github.com/spf13/cobra"
)

var secretConfigureCheck bool

func init() {
	secretCmd.AddCommand(secretsListCmd)
	secretCmd.AddCommand(secretGetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretConfigureCmd)
	secretConfigureCmd.Flags().BoolVar(&secretConfigureCheck, "check", false, "check for missing secrets without prompting")
	rootCmd.AddCommand(secretCmd)
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage secrets used in templates",
	Long: `Manage secrets stored encrypted at the configured secrets path. The key
is kept in the system keyring, or under /etc/vpsup/keys when no keyring is
available. Secrets are referenced in templates as .Secrets.<key>.`,
}

var secretSetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Set a secret",
	Long:  `Set a secret. The value is prompted securely and never shown.`,
	Example: `  # Set a new secret (value is prompted securely)
  vpsup secret set cloudflare.token

  # Replace the generated sing-box user id
  vpsup secret set singbox.uuid`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSecretCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet(args[0])
	},
}

var secretsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret keys",
	Long:  `List all secret keys (values are not shown).`,
	Example: `  # List all configured secrets
  vpsup secret list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSecretCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

var secretGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the value of a secret",
	Long:  `Retrieve and display a secret value from the encrypted storage.`,
	Example: `  # Get the value of a secret
  vpsup secret get singbox.uuid

  # Use in a shell script
  export UUID=$(vpsup secret get singbox.uuid)`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: SecretKeysCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSecretCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleGet(args[0])
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a secret",
	Long:  `Remove a secret from the encrypted storage.`,
	Example: `  # Delete a secret
  vpsup secret delete cloudflare.token`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: SecretKeysCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSecretCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete(args[0])
	},
}

var secretConfigureCmd = &cobra.Command{
	Use:   "configure [recipe...]",
	Short: "Configure missing secrets interactively",
	Long: `Scan the templates of the given recipes (all recipes when none is given) for
secret references ({{ .Secrets.KEY }}). Secrets a recipe generates itself are
created, and any other missing value is prompted for. Existing secrets are
preserved.

Press Enter to skip a secret during interactive prompts.

Use --check to validate secrets without prompting.`,
	Example: `  # Interactively configure missing secrets
  vpsup secret configure

  # Validate the secrets of the custom recipe without prompting
  vpsup secret configure custom --check`,
	ValidArgsFunction: RecipeArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSecretCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleConfigure(args, secretConfigureCheck)
	},
}

package cmd

import (
	"vpsup/cmd/cli/app"

	"github.com/spf13/cobra"
)

var provisionNoShareCode bool

func init() {
	provisionCmd.Flags().BoolVar(&provisionNoShareCode, "no-share-code", false, "do not print the sing-box client link and QR code")
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(recipesCmd)
}

var provisionCmd = &cobra.Command{
	Use:   "provision <recipe...>",
	Short: "Provisions the given recipes",
	Long: `Runs each recipe in order: missing commands are installed, configuration
files are rendered from the settings and secrets and installed with a backup,
and services are reloaded. Secrets a recipe needs are generated on first use.`,
	Example: `  vpsup provision nginx certbot
  vpsup provision singbox --no-share-code`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: RecipeArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectProvisionCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(args, !provisionNoShareCode)
	},
}

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Lists the available recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectProvisionCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

package cmd

import (
	"vpsup/cmd/cli/app"
	"vpsup/internal/core/handler"

	"github.com/spf13/cobra"
)

var initializeOptions handler.InitializeOptions

func init() {
	initializeCmd.Flags().StringVar(&initializeOptions.Domain, "domain", "", "public domain name of this host")
	initializeCmd.Flags().StringVar(&initializeOptions.Email, "email", "", "contact address used for certificates")
	initializeCmd.Flags().BoolVar(&initializeOptions.Force, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with sample values",
	Long: `A new configuration file is written to /etc/vpsup/config.yaml. Domain and
email are asked for when running on a terminal and not given as flags. The
file is not replaced unless --force is given.`,
	Example: `  vpsup initialize
  vpsup initialize --domain vps.example.org --email ops@example.org`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(initializeOptions)
	},
}

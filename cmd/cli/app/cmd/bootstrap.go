package cmd

import (
	"vpsup/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [command[=package]...]",
	Short: "Installs the packages providing missing commands",
	Long: `Checks the dependencies listed in the config file and the given arguments.
Commands missing from PATH are installed with one package manager call.
When a command is listed twice the first package wins.`,
	Example: `  vpsup bootstrap
  vpsup bootstrap jq dig=dnsutils`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectBootstrapCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(args)
	},
}

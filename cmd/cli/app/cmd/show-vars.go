package cmd

import (
	"vpsup/cmd/cli/app"

	"github.com/spf13/cobra"
)

var showVarsReveal bool

func init() {
	showVarsCommand.Flags().BoolVar(&showVarsReveal, "reveal", false, "print secret values instead of masking them")
	rootCmd.AddCommand(showVarsCommand)
}

var showVarsCommand = &cobra.Command{
	Use:   "show-vars",
	Short: "Shows variables that can be used in templates.",
	Long:  `Shows the settings and secrets templates are rendered with, as .Settings.<key> and .Secrets.<key>.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectShowVarsCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(showVarsReveal)
	},
}

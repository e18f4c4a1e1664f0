package cmd

import (
	"os"

	"vpsup/cmd/cli/app"
	"vpsup/internal/core/handler"

	"github.com/spf13/cobra"
)

var fileInstallOptions handler.FileInstallOptions

func init() {
	fileInstallCmd.Flags().StringVarP(&fileInstallOptions.Source, "source", "s", "", "read content from this file instead of stdin")
	fileInstallCmd.Flags().StringVarP(&fileInstallOptions.Mode, "mode", "m", "644", "three octal digits")
	fileInstallCmd.Flags().StringVar(&fileInstallOptions.Owner, "owner", "root", "owning user")
	fileInstallCmd.Flags().StringVar(&fileInstallOptions.Group, "group", "root", "owning group")
	fileInstallCmd.Flags().BoolVar(&fileInstallOptions.DiscardBackup, "discard-backup", false, "remove the .bak copy after a successful install")
	fileCmd.AddCommand(fileInstallCmd)
	fileCmd.AddCommand(fileRemoveCmd)
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Install or remove single files",
}

var fileInstallCmd = &cobra.Command{
	Use:   "install <destination>",
	Short: "Install a file with mode, owner and group",
	Long: `Installs content at destination. An existing destination is kept as
<destination>.bak and the new file is moved into place in one step.`,
	Example: `  echo "PermitRootLogin no" | vpsup file install /etc/ssh/sshd_config.d/10-root.conf
  vpsup file install /etc/nginx/nginx.conf --source ./nginx.conf --discard-backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		options := fileInstallOptions
		options.Destination = args[0]
		return handler.HandleInstall(options, os.Stdin)
	},
}

var fileRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a file or directory tree",
	Long:  `Removes path recursively. Relative paths and the filesystem root are refused.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleRemove(args[0])
	},
}

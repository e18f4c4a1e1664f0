package cmd

import (
	"log/slog"
	"os"

	"vpsup/internal/cli/output"
	"vpsup/internal/core"

	"github.com/spf13/cobra"
)

const debugEnvVar = "VPSUP_DEBUG"

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vpsup",
	Short: "Provisions a fresh VPS with web, certificate and proxy services",
	Long: `vpsup turns a fresh Debian, Ubuntu or similar VPS into a host serving a
static site over HTTPS, with an optional sing-box proxy, Docker and basic
hardening.

Configuration is stored in /etc/vpsup/config.yaml (override with --config or
$VPSUP_CONFIG). Run 'vpsup initialize' to create it.

Common workflows:
  vpsup provision nginx certbot     Serve the site and obtain a certificate
  vpsup provision singbox           Install sing-box and print a client link
  vpsup bootstrap jq dig=dnsutils   Make commands available
  vpsup file install /etc/motd      Install a file from stdin with a backup`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		core.UseConfigFile(configFile)
		level := slog.LevelInfo
		if verbose || os.Getenv(debugEnvVar) != "" {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default /etc/vpsup/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:          "yeet",
	Short:        "yeet is a keyboard-driven application launcher",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `yeet finds the applications installed on this machine, ranks them against
what you type and launches the one you pick.

Run without a subcommand to open the interactive picker.`,
	Args: cobra.NoArgs,
	RunE: runPicker,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/yeet/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print discovery diagnostics")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// debugf is the diagnostics sink handed to library packages.
func debugf(format string, args ...any) {
	if flagDebug {
		printInfo("debug", fmt.Sprintf(format, args...))
	}
}

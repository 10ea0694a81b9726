package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HotpotSnowguy/yeet/internal/config"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to $XDG_CONFIG_HOME/yeet/config.yaml (or the
path given with --config). An existing file is left alone unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); err == nil && !flagInitForce {
		printSkip("", fmt.Sprintf("Config already exists: %s (use --force to overwrite)", cfgPath))
		return nil
	}

	if err := config.Save(config.DefaultConfig(), cfgPath); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Config written: %s", cfgPath))

	fmt.Println("\n✓  yeet init complete. Run 'yeet doctor' to verify your setup.")
	return nil
}

// resolveConfigPath returns --config when set, else the default location.
func resolveConfigPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.ConfigPath()
}

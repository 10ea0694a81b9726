package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HotpotSnowguy/yeet/internal/launch"
)

var flagLaunchDryRun bool

var launchCmd = &cobra.Command{
	Use:   "launch <query>",
	Short: "Launch the best match for a query without opening the picker",
	Long: `Rank applications against the query and start the top result, exactly as
pressing Enter in the picker would.

Example:
  yeet launch firefox
  yeet launch --dry-run htop`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().BoolVar(&flagLaunchDryRun, "dry-run", false, "Print the command that would be started instead of starting it")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	app, err := s.top(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if flagLaunchDryRun {
		inv, err := launch.BuildInvocation(app, s.cfg.General.Terminal)
		if err != nil {
			return fmt.Errorf("cannot build launch command for %s: %w", app.Name, err)
		}
		printInfo(app.Name, inv.String())
		return nil
	}

	if err := launch.Launch(app, s.cfg.General.Terminal); err != nil {
		return err
	}
	printOK(app.Name, "launched")
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HotpotSnowguy/yeet/internal/apps"
	"github.com/HotpotSnowguy/yeet/internal/launch"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <query>",
	Short: "Show everything yeet knows about the best match for a query",
	Long: `Display the catalog entry that a query resolves to, including the exact
argument vector that launching it would spawn.

Example:
  yeet inspect firefox
  yeet inspect htop`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	app, err := s.top(strings.Join(args, " "))
	if err != nil {
		return err
	}
	printInspect(app, s.cfg.General.Terminal)
	return nil
}

func printInspect(app apps.Application, terminal string) {
	printSection(app.Name)
	fmt.Println()
	field := func(label, value string) {
		if value == "" {
			value = "(none)"
		}
		fmt.Printf("  %-12s %s\n", label+":", value)
	}
	field("Exec", app.Exec)
	field("Icon", app.Icon)
	field("Description", app.Description)
	field("Keywords", strings.Join(app.Keywords, ", "))
	if app.Terminal {
		field("Terminal", "yes ("+terminal+")")
	} else {
		field("Terminal", "no")
	}
	fmt.Println()

	inv, err := launch.BuildInvocation(app, terminal)
	if err != nil {
		printErr("", fmt.Sprintf("cannot build launch command: %v", err))
		return
	}
	printOK("", inv.String())
	if path, err := launch.Resolve(inv.Program); err != nil {
		printWarn("", fmt.Sprintf("%s is not an executable on PATH", inv.Program))
	} else {
		printInfo("", fmt.Sprintf("resolves to %s", path))
	}
}

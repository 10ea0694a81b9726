package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HotpotSnowguy/yeet/internal/apps"
	"github.com/HotpotSnowguy/yeet/internal/config"
	"github.com/HotpotSnowguy/yeet/internal/desktop"
	"github.com/HotpotSnowguy/yeet/internal/launch"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment checks",
	Long: `Check that the config file, application directories and terminal are set up
correctly. Run this command when an application is missing from the picker or
fails to start.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("yeet doctor")
	fmt.Println()

	// ── Check 1: config file ──────────────────────────────────────────────────
	fmt.Println("[ config.yaml ]")
	cfgPath, err := resolveConfigPath()
	if err != nil {
		failD("cannot determine config path: %v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printSkip("", fmt.Sprintf("%s not found, using defaults (run 'yeet init' to create it)", cfgPath))
	}
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil {
		failD("cannot parse config: %v", loadErr)
		cfg = config.DefaultConfig()
	} else if err := cfg.Validate(); err != nil {
		failD("invalid config:\n%v", err)
	} else {
		printOK("", fmt.Sprintf("valid: %d custom app(s), %d favorite(s), %d excluded", len(cfg.Apps.Custom), len(cfg.Apps.Favorites), len(cfg.Apps.Exclude)))
	}
	fmt.Println()

	// ── Check 2: application directories ──────────────────────────────────────
	fmt.Println("[ Application directories ]")
	sources := apps.Sources(cfg.Apps.ExtraDirs)
	found := 0
	for _, dir := range sources {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			printMiss("", dir)
			continue
		}
		n := len(desktop.Files([]string{dir}, nil))
		found++
		printOK("", fmt.Sprintf("%s (%d desktop file(s))", dir, n))
	}
	if found == 0 {
		printWarn("", "no application directory exists; only custom apps will be listed")
	}
	fmt.Println()

	// ── Check 3: catalog ──────────────────────────────────────────────────────
	fmt.Println("[ Catalog ]")
	var skipped []string
	opts := cfg.CatalogOptions(func(format string, args ...any) {
		skipped = append(skipped, fmt.Sprintf(format, args...))
	})
	cat := apps.BuildCatalog(opts)
	if cat.Len() == 0 {
		failD("catalog is empty: no launchable applications found")
	} else {
		printOK("", fmt.Sprintf("%d application(s) available", cat.Len()))
	}
	for _, s := range skipped {
		printWarn("", s)
	}
	fmt.Println()

	// ── Check 4: terminal ─────────────────────────────────────────────────────
	fmt.Println("[ Terminal ]")
	probe := apps.Application{Name: "probe", Exec: "true", Terminal: true}
	if inv, err := launch.BuildInvocation(probe, cfg.General.Terminal); err != nil {
		failD("general.terminal %q is unusable: %v", cfg.General.Terminal, err)
	} else if path, err := launch.Resolve(inv.Program); err != nil {
		failD("terminal %q not found or not executable: %v", inv.Program, err)
	} else {
		printOK("", fmt.Sprintf("%s → %s", cfg.General.Terminal, path))
	}
	fmt.Println()

	// ── Check 5: custom entries ───────────────────────────────────────────────
	if len(cfg.Apps.Custom) > 0 {
		fmt.Println("[ Custom apps ]")
		for _, c := range cfg.Apps.Custom {
			name := c.Name
			if name == "" {
				name = "(unnamed)"
			}
			program, _, err := launch.SanitizeExec(c.Exec)
			if err != nil {
				failD("[%s] exec %q: %v", name, c.Exec, err)
				continue
			}
			if _, err := launch.Resolve(program); err != nil {
				printWarn(name, fmt.Sprintf("%s is not an executable on PATH", program))
				continue
			}
			printOK(name, "OK")
		}
		fmt.Println()
	}

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. yeet is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
)

// Every non-interactive command prints through these helpers.
//
// Icons:
//
//	✓  success / healthy
//	✗  error / failure (stderr)
//	⚠  warning
//	○  skipped / not applicable
//	-  not found / missing
//	~  neutral info / debug

// printSection prints a top-level section header, e.g. "=== yeet doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// printBullet prints a grouped-section bullet, e.g. "● Favorites:".
func printBullet(title string) {
	fmt.Printf("\n● %s\n", title)
}

// writeLine formats one status line:
//
//	name == "" → "  ✓  msg"
//	otherwise  → "  ✓  [name] msg"
func writeLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
		return
	}
	fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
}

func printOK(name, msg string) { writeLine(os.Stdout, "✓", name, msg) }
func printErr(name, msg string) { writeLine(os.Stderr, "✗", name, msg) }
func printWarn(name, msg string) { writeLine(os.Stdout, "⚠", name, msg) }
func printSkip(name, msg string) { writeLine(os.Stdout, "○", name, msg) }
func printMiss(name, msg string) { writeLine(os.Stdout, "-", name, msg) }
func printInfo(name, msg string) { writeLine(os.Stdout, "~", name, msg) }

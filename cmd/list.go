package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/HotpotSnowguy/yeet/internal/apps"
)

// defaultOutputWidth is used when stdout is not a terminal.
const defaultOutputWidth = 100

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications in catalog order",
	Long: `Print the application catalog in the order the picker shows it for an
empty query: favorites first, then by name.

By default only the first general.initial_results entries are shown.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Show every application, not just the initial results")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	n := s.catalog.Len()
	if !flagListAll && s.cfg.General.InitialResults < n {
		n = s.cfg.General.InitialResults
	}

	favorites := make(map[string]bool, len(s.cfg.Apps.Favorites))
	for _, f := range s.cfg.Apps.Favorites {
		favorites[f] = true
	}

	var favs, rest []appRow
	for i, a := range s.catalog.All()[:n] {
		row := appRow{pos: i + 1, app: a}
		if favorites[a.Name] {
			favs = append(favs, row)
		} else {
			rest = append(rest, row)
		}
	}

	width := outputWidth()
	if len(favs) > 0 {
		printBullet(fmt.Sprintf("Favorites (%d):", len(favs)))
		writeAppTable(os.Stdout, favs, width)
	}
	if len(rest) > 0 {
		printBullet(fmt.Sprintf("Applications (%d):", len(rest)))
		writeAppTable(os.Stdout, rest, width)
	}
	if n < s.catalog.Len() {
		fmt.Printf("\n  … %d more (use --all)\n", s.catalog.Len()-n)
	}
	return nil
}

// appRow is one line of list or search output.
type appRow struct {
	pos   int
	score string
	app   apps.Application
}

// writeAppTable prints rows as aligned columns, truncating descriptions so a
// line fits in width cells.
func writeAppTable(out io.Writer, rows []appRow, width int) {
	labels := make([]string, len(rows))
	posWidth, scoreWidth, labelWidth := 0, 0, 0
	for i, r := range rows {
		labels[i] = r.app.Name
		if r.app.Terminal {
			labels[i] += " [term]"
		}
		posWidth = max(posWidth, len(fmt.Sprint(r.pos))+1)
		scoreWidth = max(scoreWidth, len(r.score))
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[i]))
	}

	// Two leading spaces, then each column followed by two spaces of padding.
	used := 2 + posWidth + 2 + labelWidth + 2
	if scoreWidth > 0 {
		used += scoreWidth + 2
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, r := range rows {
		desc := ""
		if room := width - used; room > 3 && r.app.Description != "" {
			desc = runewidth.Truncate(r.app.Description, room, "…")
		}
		if scoreWidth > 0 {
			fmt.Fprintf(w, "  %d.\t%s\t%s\t%s\n", r.pos, r.score, labels[i], desc)
		} else {
			fmt.Fprintf(w, "  %d.\t%s\t%s\n", r.pos, labels[i], desc)
		}
	}
	_ = w.Flush()
}

// outputWidth returns the terminal width of stdout, or a default when stdout
// is redirected.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultOutputWidth
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return defaultOutputWidth
}

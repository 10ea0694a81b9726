package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank applications against a query",
	Long: `Run the same ranking the picker uses and print the results with their
scores. Useful for tuning search.min_score and search.score_threshold.

Example:
  yeet search fire
  yeet search "text editor"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	results, mode := s.rank(query)
	fmt.Printf("\nyeet search %q\n\n", query)
	fmt.Printf("Results (%d found, %s match):\n", len(results), mode)
	if len(results) == 0 {
		return nil
	}

	rows := make([]appRow, len(results))
	for i, r := range results {
		score := fmt.Sprintf("[%d]", r.Score)
		if r.Prefix {
			score += "^"
		}
		rows[i] = appRow{pos: i + 1, score: score, app: s.catalog.At(r.Index)}
	}
	fmt.Println()
	writeAppTable(os.Stdout, rows, outputWidth())
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
	"actlog/internal/stats"
	"actlog/internal/window"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [window]",
	Short: "Show time totals as a bar chart",
	Long: `Show aggregated time totals for a window as a horizontal bar chart.

The window argument accepts the listing window names (today, yesterday,
week, month, all) and defaults to week. The --by flag selects the grouping
dimension.

Examples:
  actlog stats
  actlog stats month
  actlog stats all --by subcategory
  actlog stats week --by date`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := deps()

		w := window.Week
		if len(args) > 0 {
			parsed, err := window.Parse(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(d.Stderr, "Error: %v\n", err)
				d.Exit(1)
				return
			}
			w = parsed
		}

		byFlag, _ := cmd.Flags().GetString("by")
		dim, ok := stats.ParseDimension(byFlag)
		if !ok {
			_, _ = fmt.Fprintf(d.Stderr, "Error: unknown dimension %q (valid: category, subcategory, date)\n", byFlag)
			d.Exit(1)
			return
		}

		handlers.ShowStats(d, w, dim)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("by", "category", "grouping dimension: category, subcategory, or date")
}

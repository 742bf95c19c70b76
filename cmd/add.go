package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new activity entry",
	Long: `Log a new activity entry with a start and end clock time.

The duration is always computed from the clock times; an end time before
the start time means the activity crossed midnight and counts the extra day.

Examples:
  actlog add --from 09:00 --to 10:30
  actlog add --from 23:30 --to 00:45 --category Sleep
  actlog add --date 2024-01-15 --category Work --sub Meetings --from 14:00 --to 15:00`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		category, _ := cmd.Flags().GetString("category")
		sub, _ := cmd.Flags().GetString("sub")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		handlers.AddLog(deps(), date, category, sub, from, to)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("date", "", "Date of the activity (YYYY-MM-DD, default today)")
	addCmd.Flags().String("category", "", "Category name (default Uncategorized)")
	addCmd.Flags().String("sub", "", "Subcategory name (default None)")
	addCmd.Flags().String("from", "", "Start clock time (HH:MM)")
	addCmd.Flags().String("to", "", "End clock time (HH:MM)")
	_ = addCmd.MarkFlagRequired("from")
	_ = addCmd.MarkFlagRequired("to")
}

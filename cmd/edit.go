package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
	"actlog/internal/logbook"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing entry",
	Long: `Edit fields of an existing entry.

The index refers to the entry number shown by 'actlog all' (starting from 1).
Changing either clock time recomputes the stored duration.

Examples:
  actlog edit 1 --to 11:00
  actlog edit 3 --category Study --sub Reading
  actlog edit 2 --date 2024-01-16 --from 08:00 --to 09:15`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var patch logbook.Patch
		if cmd.Flags().Changed("date") {
			v, _ := cmd.Flags().GetString("date")
			patch.Date = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			patch.Category = &v
		}
		if cmd.Flags().Changed("sub") {
			v, _ := cmd.Flags().GetString("sub")
			patch.Subcategory = &v
		}
		if cmd.Flags().Changed("from") {
			v, _ := cmd.Flags().GetString("from")
			patch.StartTime = &v
		}
		if cmd.Flags().Changed("to") {
			v, _ := cmd.Flags().GetString("to")
			patch.EndTime = &v
		}
		handlers.EditLog(deps(), args[0], patch)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().String("category", "", "New category name")
	editCmd.Flags().String("sub", "", "New subcategory name")
	editCmd.Flags().String("from", "", "New start clock time (HH:MM)")
	editCmd.Flags().String("to", "", "New end clock time (HH:MM)")
}

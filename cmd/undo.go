package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Restore the most recently deleted entry",
	Long: `Restore the most recently deleted entry.
This command recovers the last entry that was deleted using 'actlog delete'.

Example:
  actlog undo`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.UndoDelete(deps())
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete an entry",
	Long: `Delete the entry at the given listing index.

The index refers to the entry number shown by 'actlog all' (starting from 1).
A confirmation prompt is shown unless --yes is specified. Deleted entries
are kept for 7 days and can be recovered with 'actlog undo'.

Examples:
  actlog delete 3
  actlog delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteLog(deps(), args[0], skipConfirm)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

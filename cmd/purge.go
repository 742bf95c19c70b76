package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// purgeCmd represents the purge command
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently remove all deleted entries",
	Long: `Permanently remove all deleted entries. This action cannot be undone.
A confirmation prompt is shown unless --yes is specified.

Deleted entries are normally kept for 7 days to allow recovery with
'actlog undo'. Use this command to immediately and permanently remove
all deleted entries.

Examples:
  actlog purge
  actlog purge --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.PurgeTrash(deps(), skipConfirm)
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)

	purgeCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}

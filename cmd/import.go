package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import data from CSV, replacing the current collection",
	Long: `Import a CSV file previously produced by 'actlog export'.

Importing replaces the target collection wholesale; the previous snapshot
is backed up first ('actlog restore' rolls it back). By default the file
is treated as a log export; use --categories for a taxonomy export.

Examples:
  actlog import logs.csv
  actlog import --categories categories.csv`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := deps()

		f, err := os.Open(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to open %s: %v\n", args[0], err)
			d.Exit(1)
			return
		}
		defer func() { _ = f.Close() }()

		asCategories, _ := cmd.Flags().GetBool("categories")
		if asCategories {
			handlers.ImportCategories(d, f)
			return
		}
		handlers.ImportLogs(d, f)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Bool("categories", false, "treat the file as a category taxonomy export")
}

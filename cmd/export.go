package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data as CSV",
	Long: `Export the log collection or the category taxonomy as CSV on stdout.

Examples:
  actlog export logs > logs.csv
  actlog export categories > categories.csv`,
}

// exportLogsCmd represents the export logs command
var exportLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Export log entries as CSV",
	Long: `Export the full log collection as CSV with the columns
id,date,category,subcategory,start_time,end_time,duration_minutes.

The output round-trips through 'actlog import' without loss.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ExportLogs(deps())
	},
}

// exportCategoriesCmd represents the export categories command
var exportCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Export the category taxonomy as CSV",
	Long: `Export the taxonomy as CSV with one row per category/subcategory pair,
columns category,subcategory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ExportCategories(deps())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportLogsCmd)
	exportCmd.AddCommand(exportCategoriesCmd)
}

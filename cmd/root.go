package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
	"actlog/internal/window"
)

var rootCmd = &cobra.Command{
	Use:   "actlog",
	Short: "A personal activity logging CLI",
	Long: `actlog is a CLI tool for logging daily activities with start and end times.

Usage:
  actlog                                        List today's entries
  actlog y                                      List yesterday's entries
  actlog w                                      List the last 7 days
  actlog m                                      List the last month
  actlog all                                    List every entry
  actlog add --from 09:00 --to 10:30            Log a new entry
  actlog edit <index> --to 11:00                Edit an entry
  actlog delete <index>                         Delete an entry (with confirmation)
  actlog undo                                   Restore the most recently deleted entry
  actlog stats                                  Show time totals per category
  actlog tui                                    Launch the interactive terminal UI

Entries that cross midnight (end time before start time) count toward the
day they started and still show up in that day's listing the morning after.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := deps()
		w, err := window.Parse(d.Config.DefaultWindow)
		if err != nil {
			w = window.Today
		}
		handlers.ListLogs(d, w)
	},
}

// yCmd represents the yesterday command
var yCmd = &cobra.Command{
	Use:   "y",
	Short: "List yesterday's entries",
	Long:  `List all entries logged yesterday, including overnight entries started the day before.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListLogs(deps(), window.Yesterday)
	},
}

// wCmd represents the week command
var wCmd = &cobra.Command{
	Use:   "w",
	Short: "List the last 7 days",
	Long:  `List all entries logged in the trailing 7-day window ending today.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListLogs(deps(), window.Week)
	},
}

// mCmd represents the month command
var mCmd = &cobra.Command{
	Use:   "m",
	Short: "List the last month",
	Long:  `List all entries logged in the trailing one-month window ending today.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListLogs(deps(), window.Month)
	},
}

// allCmd represents the all command
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List every entry",
	Long:  `List the entire log collection, newest first.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListLogs(deps(), window.All)
	},
}

func init() {
	rootCmd.AddCommand(yCmd)
	rootCmd.AddCommand(wCmd)
	rootCmd.AddCommand(mCmd)
	rootCmd.AddCommand(allCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"actlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

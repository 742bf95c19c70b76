package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// configCmd represents the config parent command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and manage configuration",
	Long: `Show the active configuration, create a config file, or change settings.

Examples:
  actlog config                    Show the active configuration
  actlog config init               Create a sample config file
  actlog config set theme nord     Change the TUI theme`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps())
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value and persist it.

Supported keys:
  theme    TUI color theme (any bubbletint theme name)

Example:
  actlog config set theme nord`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d := deps()
		switch args[0] {
		case "theme":
			handlers.SetTheme(d, args[1])
		default:
			_, _ = fmt.Fprintf(d.Stderr, "Error: unknown config key %q (supported: theme)\n", args[0])
			d.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

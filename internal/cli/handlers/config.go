package handlers

import (
	"fmt"
	"strings"

	"actlog/internal/cli"
)

// ShowConfig prints the active configuration and its source path
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s", deps.Services.Config.GetPath())
	if !deps.Services.Config.Exists() {
		_, _ = fmt.Fprint(deps.Stdout, " (not created yet, using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "theme:          %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:       %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "default_window: %s\n", cfg.DefaultWindow)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", deps.Services.Config.GetPath())
}

// SetTheme updates the TUI theme and persists it
func SetTheme(deps *cli.Deps, theme string) {
	if err := deps.Services.Config.SetTheme(theme); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Theme set to %q\n", theme)
}

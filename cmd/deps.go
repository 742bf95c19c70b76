package cmd

import (
	"actlog/internal/cli"
)

// deps returns the active CLI dependencies. Commands resolve them at Run
// time so tests can swap them with SetDeps.
func deps() *cli.Deps {
	return cli.GetDeps()
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	cli.SetDeps(d)
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	cli.ResetDeps()
}

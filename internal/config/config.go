// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"actlog/internal/osutil"
	"actlog/internal/window"
)

const (
	// AppName is the application name used for config directory
	AppName = "actlog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// EnvFile is an optional dotenv file loaded from the config directory;
	// it can set ACTLOG_DATA_DIR to relocate the snapshot files.
	EnvFile = ".env"
)

// Config represents the application configuration
type Config struct {
	// Theme is the TUI color theme name (a bubbletint tint id)
	Theme string `toml:"theme"`
	// Timezone defines the timezone used to resolve "today" (IANA name or "Local")
	Timezone string `toml:"timezone"`
	// DefaultWindow is the window listed when no window is given
	// (today, yesterday, week, month, all)
	DefaultWindow string `toml:"default_window"`
}

// DefaultConfig returns a Config with the defaults:
// - theme: "dracula"
// - timezone: "Local" (use system local timezone)
// - default_window: "today"
func DefaultConfig() Config {
	return Config{
		Theme:         "dracula",
		Timezone:      "Local",
		DefaultWindow: "today",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadEnv loads the optional .env file next to the config file into the
// process environment. A missing file is not an error.
func LoadEnv() {
	configPath, err := GetConfigPath()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), EnvFile))
}

// Load reads and validates the config file at the given path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LoadOrDefault reads the config file if it exists, otherwise returns the
// defaults. A file that exists but does not validate is an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	return Load(path)
}

// Normalize cleans up field values: empty fields fall back to defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}
	if c.DefaultWindow == "" {
		c.DefaultWindow = defaults.DefaultWindow
	}
}

// Validate checks field values. Theme names are not validated here; an
// unknown theme falls back to the default at TUI startup.
func (c Config) Validate() error {
	if _, err := window.Parse(c.DefaultWindow); err != nil {
		return fmt.Errorf("invalid default_window: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone to a *time.Location.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Now returns the current instant in the configured timezone, falling back
// to local time when the timezone fails to resolve.
func (c Config) Now() time.Time {
	loc, err := c.Location()
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# actlog configuration file

# TUI color theme (any bubbletint tint id, e.g. "dracula", "nord", "gruvbox_dark")
theme = "dracula"

# Timezone: IANA timezone name (e.g. "America/New_York") or "Local"
timezone = "Local"

# Window listed when no window is given: today, yesterday, week, month, all
default_window = "today"
`
}

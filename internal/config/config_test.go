package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "dracula" {
		t.Errorf("DefaultConfig().Theme = %q, expected %q", cfg.Theme, "dracula")
	}
	if cfg.Timezone != "Local" {
		t.Errorf("DefaultConfig().Timezone = %q, expected %q", cfg.Timezone, "Local")
	}
	if cfg.DefaultWindow != "today" {
		t.Errorf("DefaultConfig().DefaultWindow = %q, expected %q", cfg.DefaultWindow, "today")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate: %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		wantTheme     string
		wantTimezone  string
		wantWindow    string
	}{
		{
			name: "all fields set",
			configContent: `theme = "nord"
timezone = "America/New_York"
default_window = "week"`,
			wantTheme:    "nord",
			wantTimezone: "America/New_York",
			wantWindow:   "week",
		},
		{
			name:          "partial config falls back to defaults",
			configContent: `theme = "gruvbox_dark"`,
			wantTheme:     "gruvbox_dark",
			wantTimezone:  "Local",
			wantWindow:    "today",
		},
		{
			name:          "empty file is all defaults",
			configContent: "",
			wantTheme:     "dracula",
			wantTimezone:  "Local",
			wantWindow:    "today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			cfg, err := Load(tmpFile)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("Theme = %q, want %q", cfg.Theme, tt.wantTheme)
			}
			if cfg.Timezone != tt.wantTimezone {
				t.Errorf("Timezone = %q, want %q", cfg.Timezone, tt.wantTimezone)
			}
			if cfg.DefaultWindow != tt.wantWindow {
				t.Errorf("DefaultWindow = %q, want %q", cfg.DefaultWindow, tt.wantWindow)
			}
		})
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
	}{
		{name: "broken toml", configContent: `theme = `},
		{name: "bad window", configContent: `default_window = "fortnight"`},
		{name: "bad timezone", configContent: `timezone = "Mars/Olympus_Mons"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			if _, err := Load(tmpFile); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault on missing file = %+v, want defaults", cfg)
	}
}

func TestGenerateSampleConfig_ParsesAndValidates(t *testing.T) {
	tmpFile := createTempConfigFile(t, GenerateSampleConfig())

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := DefaultConfig()
	loc, err := cfg.Location()
	if err != nil || loc == nil {
		t.Fatalf("Location() for Local: %v", err)
	}

	cfg.Timezone = "Europe/London"
	loc, err = cfg.Location()
	if err != nil {
		t.Fatalf("Location() for Europe/London: %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("Location() = %s, want Europe/London", loc)
	}
}

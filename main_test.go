package main

import (
	"os"
	"testing"
)

func TestRun_Help(t *testing.T) {
	t.Setenv("ACTLOG_DATA_DIR", t.TempDir())

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"actlog", "--help"}

	if code := run(); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestVersionDefaults(t *testing.T) {
	if version == "" || commit == "" || date == "" {
		t.Error("expected version variables to have defaults")
	}
}

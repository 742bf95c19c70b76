package handlers

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"actlog/internal/cli"
	"actlog/internal/config"
	"actlog/internal/service"
)

// testDeps wires deps over temp storage with captured output and exit codes.
type testDeps struct {
	*cli.Deps
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	exited   bool
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	tmpDir := t.TempDir()

	services := service.NewServicesWithPaths(
		filepath.Join(tmpDir, "logs.json"),
		filepath.Join(tmpDir, "trash.jsonl"),
		filepath.Join(tmpDir, "categories.json"),
		filepath.Join(tmpDir, "config.toml"),
		config.DefaultConfig(),
	)

	td := &testDeps{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	td.Deps = &cli.Deps{
		Stdout:   td.stdout,
		Stderr:   td.stderr,
		Stdin:    strings.NewReader(""),
		Services: services,
		Config:   config.DefaultConfig(),
		Exit: func(code int) {
			td.exitCode = code
			td.exited = true
		},
	}
	return td
}

func (td *testDeps) withStdin(input string) *testDeps {
	td.Stdin = strings.NewReader(input)
	return td
}

func (td *testDeps) assertNoExit(t *testing.T) {
	t.Helper()
	if td.exited {
		t.Fatalf("unexpected exit(%d), stderr: %s", td.exitCode, td.stderr.String())
	}
}

func (td *testDeps) assertExit(t *testing.T) {
	t.Helper()
	if !td.exited {
		t.Fatalf("expected non-zero exit, stdout: %s", td.stdout.String())
	}
}

func (td *testDeps) assertStdoutContains(t *testing.T, want string) {
	t.Helper()
	if !strings.Contains(td.stdout.String(), want) {
		t.Errorf("stdout missing %q, got:\n%s", want, td.stdout.String())
	}
}

func (td *testDeps) assertStderrContains(t *testing.T, want string) {
	t.Helper()
	if !strings.Contains(td.stderr.String(), want) {
		t.Errorf("stderr missing %q, got:\n%s", want, td.stderr.String())
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshotFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestCreateBackup_MissingSnapshotIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")

	if err := CreateBackup(path); err != nil {
		t.Fatalf("CreateBackup on missing snapshot: %v", err)
	}
	if backups := ListBackups(path); len(backups) != 0 {
		t.Errorf("no backups expected, got %v", backups)
	}
}

func TestCreateBackup_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")

	for _, gen := range []string{"v1", "v2", "v3", "v4"} {
		writeSnapshotFile(t, path, gen)
		if err := CreateBackup(path); err != nil {
			t.Fatalf("CreateBackup(%s): %v", gen, err)
		}
	}

	backups := ListBackups(path)
	if len(backups) != MaxBackupCount {
		t.Fatalf("got %d backups, want %d", len(backups), MaxBackupCount)
	}

	// Most recent backup holds the latest pre-backup content, the oldest
	// kept one is two generations back.
	if got := readFile(t, BackupPath(path, 1)); got != "v4" {
		t.Errorf(".bak.1 = %q, want v4", got)
	}
	if got := readFile(t, BackupPath(path, 3)); got != "v2" {
		t.Errorf(".bak.3 = %q, want v2", got)
	}
}

func TestRestoreBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")

	writeSnapshotFile(t, path, "good state")
	if err := CreateBackup(path); err != nil {
		t.Fatal(err)
	}
	writeSnapshotFile(t, path, "bad import")

	if err := RestoreBackup(path, 1); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}
	if got := readFile(t, path); got != "good state" {
		t.Errorf("restored content = %q, want %q", got, "good state")
	}

	// The pre-restore state was itself backed up.
	if got := readFile(t, BackupPath(path, 1)); got != "bad import" {
		t.Errorf("pre-restore backup = %q, want %q", got, "bad import")
	}
}

func TestRestoreBackup_InvalidNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")

	if err := RestoreBackup(path, 0); err == nil {
		t.Error("expected error for backup number 0")
	}
	if err := RestoreBackup(path, MaxBackupCount+1); err == nil {
		t.Error("expected error for backup number beyond max")
	}
	if err := RestoreBackup(path, 1); err == nil {
		t.Error("expected error when no backup exists")
	}
}

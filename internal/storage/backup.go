package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given snapshot with the
// given rotation number. Backups are named <snapshot>.bak.N where lower
// numbers are more recent (.bak.1 is the newest).
func BackupPath(snapshotPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", snapshotPath, BackupSuffix, n)
}

// rotateBackups shifts existing backups to make room for a new one:
// .bak.2 -> .bak.3, .bak.1 -> .bak.2, dropping the oldest.
func rotateBackups(snapshotPath string) error {
	oldest := BackupPath(snapshotPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(snapshotPath, i)
		next := BackupPath(snapshotPath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// CreateBackup copies the snapshot to .bak.1 after rotating older backups.
// Taken before wholesale-replace operations (CSV import, category reset).
// A missing snapshot is not an error; there is simply nothing to back up.
func CreateBackup(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(snapshotPath); err != nil {
		return err
	}

	return copyFile(snapshotPath, BackupPath(snapshotPath, 1))
}

// BackupInfo describes one available backup file.
type BackupInfo struct {
	Number int    // rotation number (1 is most recent)
	Path   string // full path to the backup file
}

// ListBackups returns the available backups of a snapshot, most recent
// first. Returns an empty slice when none exist.
func ListBackups(snapshotPath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		path := BackupPath(snapshotPath, i)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: path})
		}
	}
	return backups
}

// RestoreBackup replaces the snapshot with backup number n (1 is most
// recent). The current state is backed up first so a restore is itself
// undoable.
func RestoreBackup(snapshotPath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := BackupPath(snapshotPath, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if err := CreateBackup(snapshotPath); err != nil {
		return err
	}

	return copyFile(backupPath, snapshotPath)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = destFile.Close() }()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// Package storage persists the log and category collections as whole-file
// JSON snapshots. Every mutation rewrites the full collection; there is no
// incremental log. Writes go through a temp file and rename so a crash
// never leaves a half-written snapshot behind.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"actlog/internal/category"
	"actlog/internal/logbook"
	"actlog/internal/osutil"
)

const (
	// AppName is the application name used for the data directory
	AppName = "actlog"
	// LogsFile is the snapshot file holding the full log collection
	LogsFile = "logs.json"
	// CategoriesFile is the snapshot file holding the category taxonomy
	CategoriesFile = "categories.json"

	// DataDirEnv overrides the data directory location when set.
	DataDirEnv = "ACTLOG_DATA_DIR"
)

// CorruptSnapshotError reports a snapshot file that exists but does not
// parse. Readers treat it as an empty collection and surface the warning
// instead of failing.
type CorruptSnapshotError struct {
	Path string
	Err  error
}

func (e *CorruptSnapshotError) Error() string {
	return fmt.Sprintf("corrupt snapshot %s: %v", e.Path, e.Err)
}

func (e *CorruptSnapshotError) Unwrap() error { return e.Err }

// DataDir returns the directory holding the snapshot files, creating it if
// needed. ACTLOG_DATA_DIR wins over the platform config directory.
func DataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// GetLogsPath returns the path to the log snapshot file.
func GetLogsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsFile), nil
}

// GetCategoriesPath returns the path to the category snapshot file.
func GetCategoriesPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CategoriesFile), nil
}

// ReadLogs reads the full log collection from the snapshot file.
// A missing file yields an empty collection. A file that exists but does
// not parse yields an empty collection and a *CorruptSnapshotError so the
// caller can warn without crashing.
func ReadLogs(path string) ([]logbook.Entry, error) {
	entries := []logbook.Entry{}
	err := readSnapshot(path, &entries)
	if err != nil {
		return []logbook.Entry{}, err
	}
	return entries, nil
}

// WriteLogs writes the full log collection snapshot.
func WriteLogs(path string, entries []logbook.Entry) error {
	return writeSnapshot(path, entries)
}

// ReadCategories reads the category taxonomy from the snapshot file.
// Missing and corrupt files behave as in ReadLogs, except the empty result
// is nil so callers can fall back to the default taxonomy.
func ReadCategories(path string) ([]category.Category, error) {
	var cats []category.Category
	if err := readSnapshot(path, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// WriteCategories writes the category taxonomy snapshot.
func WriteCategories(path string, cats []category.Category) error {
	return writeSnapshot(path, cats)
}

func readSnapshot(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &CorruptSnapshotError{Path: path, Err: err}
	}
	return nil
}

// writeSnapshot marshals v and atomically replaces the snapshot file.
func writeSnapshot(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}

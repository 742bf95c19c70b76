package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"actlog/internal/logbook"
)

// TrashFile is the JSON Lines file holding recently deleted entries.
// Deleted entries leave the canonical snapshot entirely; they linger here so
// a delete can be undone for a while.
const TrashFile = "trash.jsonl"

// TrashRetention is how long deleted entries stay recoverable.
const TrashRetention = 7 * 24 * time.Hour

// ErrTrashEmpty is returned when there is nothing to undo.
var ErrTrashEmpty = errors.New("no deleted entries found")

// TrashedEntry is a deleted log entry plus its deletion time.
type TrashedEntry struct {
	Entry     logbook.Entry `json:"entry"`
	DeletedAt time.Time     `json:"deleted_at"`
}

// GetTrashPath returns the path to the trash file.
func GetTrashPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TrashFile), nil
}

// AppendTrash appends a deleted entry to the trash file.
// Uses O_APPEND so concurrent deletes never interleave within a line.
func AppendTrash(path string, e logbook.Entry, deletedAt time.Time) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	line, err := json.Marshal(TrashedEntry{Entry: e, DeletedAt: deletedAt})
	if err != nil {
		return err
	}

	_, err = file.WriteString(string(line) + "\n")
	return err
}

// ReadTrash reads all trashed entries. A missing file yields an empty
// slice; malformed lines are skipped for fault tolerance.
func ReadTrash(path string) ([]TrashedEntry, error) {
	trashed := []TrashedEntry{}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return trashed, nil
		}
		return trashed, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var t TrashedEntry
		if err := json.Unmarshal(scanner.Bytes(), &t); err != nil {
			continue
		}
		trashed = append(trashed, t)
	}

	if err := scanner.Err(); err != nil {
		return trashed, err
	}
	return trashed, nil
}

// writeTrash rewrites the whole trash file.
func writeTrash(path string, trashed []TrashedEntry) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	for _, t := range trashed {
		line, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// PopMostRecent removes and returns the most recently deleted entry.
// Returns ErrTrashEmpty when the trash holds nothing.
func PopMostRecent(path string) (logbook.Entry, error) {
	trashed, err := ReadTrash(path)
	if err != nil {
		return logbook.Entry{}, err
	}

	mostRecent := -1
	for i, t := range trashed {
		if mostRecent == -1 || t.DeletedAt.After(trashed[mostRecent].DeletedAt) {
			mostRecent = i
		}
	}
	if mostRecent == -1 {
		return logbook.Entry{}, ErrTrashEmpty
	}

	restored := trashed[mostRecent].Entry
	remaining := append(trashed[:mostRecent], trashed[mostRecent+1:]...)

	if err := writeTrash(path, remaining); err != nil {
		return logbook.Entry{}, err
	}
	return restored, nil
}

// CleanupOldTrash drops trashed entries older than TrashRetention and
// returns how many were dropped.
func CleanupOldTrash(path string, now time.Time) (int, error) {
	trashed, err := ReadTrash(path)
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-TrashRetention)
	kept := make([]TrashedEntry, 0, len(trashed))
	dropped := 0
	for _, t := range trashed {
		if t.DeletedAt.Before(cutoff) {
			dropped++
		} else {
			kept = append(kept, t)
		}
	}

	if dropped > 0 {
		if err := writeTrash(path, kept); err != nil {
			return 0, err
		}
	}
	return dropped, nil
}

// PurgeTrash permanently removes all trashed entries and returns the count.
// This operation cannot be undone.
func PurgeTrash(path string) (int, error) {
	trashed, err := ReadTrash(path)
	if err != nil {
		return 0, err
	}
	if len(trashed) == 0 {
		return 0, nil
	}
	if err := writeTrash(path, nil); err != nil {
		return 0, err
	}
	return len(trashed), nil
}

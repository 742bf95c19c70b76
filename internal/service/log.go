package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"actlog/internal/config"
	"actlog/internal/logbook"
	"actlog/internal/storage"
	"actlog/internal/window"
)

// Common errors for the log service
var (
	ErrEntryNotFound      = errors.New("log entry not found")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
	ErrNoDeletedEntries   = storage.ErrTrashEmpty
)

// LogService owns the canonical log collection. The collection is held in
// memory and the full snapshot is rewritten synchronously on every mutation;
// other components only ever see copies.
type LogService struct {
	logsPath  string
	trashPath string
	config    config.Config

	// The CLI is single-shot, but TUI commands run off the update loop, so
	// access to the cached collection is serialized.
	mu      sync.Mutex
	entries []logbook.Entry
	loaded  bool
	warning error // corrupt-snapshot warning from the initial load, if any
}

// NewLogService creates a new LogService over the given snapshot and trash
// file paths.
func NewLogService(logsPath, trashPath string, cfg config.Config) *LogService {
	return &LogService{
		logsPath:  logsPath,
		trashPath: trashPath,
		config:    cfg,
	}
}

// load reads the snapshot into memory once. A corrupt snapshot degrades to
// an empty collection with the warning kept for SnapshotWarning.
func (s *LogService) load() error {
	if s.loaded {
		return nil
	}

	entries, err := storage.ReadLogs(s.logsPath)
	if err != nil {
		var corrupt *storage.CorruptSnapshotError
		if !errors.As(err, &corrupt) {
			return fmt.Errorf("failed to read log snapshot: %w", err)
		}
		s.warning = err
	}

	s.entries = entries
	s.loaded = true
	return nil
}

// persist writes the full in-memory collection back to the snapshot file.
func (s *LogService) persist() error {
	if err := storage.WriteLogs(s.logsPath, s.entries); err != nil {
		return fmt.Errorf("failed to persist log snapshot: %w", err)
	}
	return nil
}

// SnapshotWarning returns the corrupt-snapshot warning from the initial
// load, or nil. The collection still works, starting empty.
func (s *LogService) SnapshotWarning() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.load()
	return s.warning
}

// Add appends the entry as given and persists the collection. Ids are the
// caller's responsibility and are not checked for uniqueness.
func (s *LogService) Add(e logbook.Entry) (logbook.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return logbook.Entry{}, err
	}

	s.entries = append(s.entries, e)
	if err := s.persist(); err != nil {
		return logbook.Entry{}, err
	}
	return e, nil
}

// Create builds a new entry from its parts, computing the duration from the
// clock times (with midnight wraparound), and adds it.
func (s *LogService) Create(date, categoryName, subcategoryName, start, end string) (*logbook.Entry, error) {
	if _, err := time.Parse(logbook.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	minutes, err := logbook.ComputeDuration(start, end)
	if err != nil {
		return nil, err
	}

	if categoryName == "" {
		categoryName = logbook.UncategorizedName
	}
	if subcategoryName == "" {
		subcategoryName = logbook.NoSubcategoryName
	}

	e := logbook.Entry{
		ID:              logbook.NewID(),
		Date:            date,
		Category:        categoryName,
		Subcategory:     subcategoryName,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
	}

	added, err := s.Add(e)
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// Update shallow-merges the patch over the entry with the given id, stamps
// LastModified, and persists. The merge retains the stored duration when
// the patch does not carry one; recomputation is the edit path's job (see
// Edit). Returns ErrEntryNotFound for unknown ids.
func (s *LogService) Update(id string, patch logbook.Patch) (*logbook.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}

		merged := patch.Apply(e)
		now := time.Now()
		merged.LastModified = &now
		s.entries[i] = merged

		if err := s.persist(); err != nil {
			return nil, err
		}
		return &merged, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Edit applies a user edit. Whenever the patch touches either clock time
// the duration is recomputed from the merged times and written through,
// keeping the duration invariant regardless of what the caller sent.
func (s *LogService) Edit(id string, patch logbook.Patch) (*logbook.Entry, error) {
	if patch == (logbook.Patch{}) {
		return nil, ErrNoChangesSpecified
	}

	if patch.ChangesTimes() {
		current, err := s.Get(id)
		if err != nil {
			return nil, err
		}

		merged := patch.Apply(*current)
		minutes, err := logbook.ComputeDuration(merged.StartTime, merged.EndTime)
		if err != nil {
			return nil, err
		}
		patch.DurationMinutes = &minutes
	}

	return s.Update(id, patch)
}

// GetByIndex resolves a 1-based index into the date-descending listing of
// the full collection, the numbering shown by the list commands.
func (s *LogService) GetByIndex(index int) (*logbook.Entry, error) {
	result, err := s.ListWindow(window.All)
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(result.Entries) {
		return nil, fmt.Errorf("%w: %d (have %d entries)", ErrIndexOutOfRange, index, len(result.Entries))
	}
	entry := result.Entries[index-1]
	return &entry, nil
}

// Get returns a copy of the entry with the given id.
func (s *LogService) Get(id string) (*logbook.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	for _, e := range s.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Delete removes the entry with the given id. Unknown ids are a no-op.
// The removed entry goes to the trash so the delete can be undone; trash
// older than the retention period is dropped opportunistically.
func (s *LogService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}

		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		if err := s.persist(); err != nil {
			return err
		}

		if err := storage.AppendTrash(s.trashPath, e, time.Now()); err != nil {
			return fmt.Errorf("entry deleted but not recoverable: %w", err)
		}
		_, _ = storage.CleanupOldTrash(s.trashPath, time.Now())
		return nil
	}

	return nil
}

// Undo re-inserts the most recently deleted entry and returns it.
func (s *LogService) Undo() (*logbook.Entry, error) {
	restored, err := storage.PopMostRecent(s.trashPath)
	if err != nil {
		return nil, err
	}

	added, err := s.Add(restored)
	if err != nil {
		// Put the record back so a failed restore keeps it recoverable.
		if trashErr := storage.AppendTrash(s.trashPath, restored, time.Now()); trashErr != nil {
			return nil, fmt.Errorf("undo failed and the entry could not be re-trashed: %w", err)
		}
		return nil, err
	}
	return &added, nil
}

// PurgeTrash permanently empties the trash and returns the count removed.
func (s *LogService) PurgeTrash() (int, error) {
	return storage.PurgeTrash(s.trashPath)
}

// List returns a copy of the full collection in insertion order.
func (s *LogService) List() ([]logbook.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	snapshot := make([]logbook.Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot, nil
}

// ListWindow filters the collection by the given window and returns the
// result sorted by date descending for display, along with totals.
func (s *LogService) ListWindow(w window.Window) (*ListResult, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	now := s.config.Now()
	filtered := window.Filter(entries, w, now)
	sorted := logbook.SortByDateDesc(filtered)

	total := 0
	for _, e := range sorted {
		total += e.DurationMinutes
	}

	return &ListResult{
		Entries:      sorted,
		Window:       w,
		Now:          now,
		TotalMinutes: total,
	}, nil
}

// ReplaceAll swaps in a whole new collection (CSV import). The previous
// snapshot is backed up first so a bad import can be rolled back.
func (s *LogService) ReplaceAll(entries []logbook.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.CreateBackup(s.logsPath); err != nil {
		return fmt.Errorf("failed to back up log snapshot: %w", err)
	}

	s.entries = make([]logbook.Entry, len(entries))
	copy(s.entries, entries)
	s.loaded = true
	s.warning = nil

	return s.persist()
}

// RewriteCategoryRefs rewrites entries referencing the removed category
// name to the sentinels and persists in one snapshot write, so no persisted
// state ever references the deleted name. Returns the rewrite count.
func (s *LogService) RewriteCategoryRefs(categoryName string) (int, error) {
	return s.rewrite(func(e *logbook.Entry) bool {
		if e.Category != categoryName {
			return false
		}
		e.Category = logbook.UncategorizedName
		e.Subcategory = logbook.NoSubcategoryName
		return true
	})
}

// RewriteSubcategoryRefs rewrites entries referencing the removed
// subcategory under the given category to the subcategory sentinel.
func (s *LogService) RewriteSubcategoryRefs(categoryName, subcategoryName string) (int, error) {
	return s.rewrite(func(e *logbook.Entry) bool {
		if e.Category != categoryName || e.Subcategory != subcategoryName {
			return false
		}
		e.Subcategory = logbook.NoSubcategoryName
		return true
	})
}

func (s *LogService) rewrite(apply func(*logbook.Entry) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return 0, err
	}

	changed := 0
	now := time.Now()
	for i := range s.entries {
		if apply(&s.entries[i]) {
			s.entries[i].LastModified = &now
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	if err := s.persist(); err != nil {
		return 0, err
	}
	return changed, nil
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"actlog/internal/category"
	"actlog/internal/logbook"
	"actlog/internal/storage"
)

// Common errors for the category service
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrSubcategoryExists   = errors.New("subcategory already exists")
	ErrCategoryReserved    = errors.New("category is reserved and cannot be removed")
)

// CategoryService manages the taxonomy snapshot. Removals cascade into the
// log collection: affected entries are rewritten to the sentinel names and
// persisted before the taxonomy change itself is written, so a crash in
// between never leaves a log pointing at a missing category.
type CategoryService struct {
	path string
	logs *LogService

	mu         sync.Mutex
	categories []category.Category
	loaded     bool
	warning    error // corrupt-snapshot warning from the initial load, if any
}

// NewCategoryService creates a new CategoryService over the given snapshot
// path, cascading removals into the given log service.
func NewCategoryService(path string, logs *LogService) *CategoryService {
	return &CategoryService{path: path, logs: logs}
}

// load reads the snapshot into memory once. A corrupt snapshot degrades to
// the default taxonomy with the warning kept for SnapshotWarning; the
// corrupt file is left in place until the next mutation persists.
func (s *CategoryService) load() error {
	if s.loaded {
		return nil
	}

	categories, err := storage.ReadCategories(s.path)
	if err != nil {
		var corrupt *storage.CorruptSnapshotError
		if !errors.As(err, &corrupt) {
			return fmt.Errorf("failed to read category snapshot: %w", err)
		}
		s.warning = err
		categories = nil
	}
	if categories == nil {
		categories = category.Defaults()
	}

	s.categories = categories
	s.loaded = true
	return nil
}

// SnapshotWarning returns the corrupt-snapshot warning from the initial
// load, or nil. The taxonomy still works, starting from the defaults.
func (s *CategoryService) SnapshotWarning() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.load()
	return s.warning
}

func (s *CategoryService) persist() error {
	if err := storage.WriteCategories(s.path, s.categories); err != nil {
		return fmt.Errorf("failed to persist category snapshot: %w", err)
	}
	return nil
}

// List returns a copy of the taxonomy. A missing snapshot yields the
// built-in defaults.
func (s *CategoryService) List() ([]category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	snapshot := make([]category.Category, len(s.categories))
	for i, c := range s.categories {
		snapshot[i] = c
		snapshot[i].Subcategories = append([]category.Subcategory(nil), c.Subcategories...)
	}
	return snapshot, nil
}

// Find returns the category with the given name (case-insensitive).
func (s *CategoryService) Find(name string) (*category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	if c := s.find(name); c != nil {
		found := *c
		found.Subcategories = append([]category.Subcategory(nil), c.Subcategories...)
		return &found, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
}

func (s *CategoryService) find(name string) *category.Category {
	for i := range s.categories {
		if strings.EqualFold(s.categories[i].Name, name) {
			return &s.categories[i]
		}
	}
	return nil
}

// Add creates a new category. Every category carries the sentinel
// subcategory so entries under it always have a valid subcategory target.
func (s *CategoryService) Add(name string) (*category.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	if s.find(name) != nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryExists, name)
	}

	c := category.Category{
		ID:   logbook.NewID(),
		Name: name,
		Subcategories: []category.Subcategory{
			{ID: logbook.NewID(), Name: logbook.NoSubcategoryName},
		},
	}
	s.categories = append(s.categories, c)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddSubcategory adds a subcategory under an existing category.
func (s *CategoryService) AddSubcategory(categoryName, subName string) (*category.Subcategory, error) {
	subName = strings.TrimSpace(subName)
	if subName == "" {
		return nil, errors.New("subcategory name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	c := s.find(categoryName)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryName)
	}
	if category.FindSubcategory(*c, subName) != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrSubcategoryExists, c.Name, subName)
	}

	sub := category.Subcategory{ID: logbook.NewID(), Name: subName}
	c.Subcategories = append(c.Subcategories, sub)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteCategory removes a category. Log entries under it are rewritten to
// the Uncategorized/None sentinels first. The Uncategorized category itself
// is the cascade target and cannot be removed.
func (s *CategoryService) DeleteCategory(name string) (*CascadeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	c := s.find(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	if strings.EqualFold(c.Name, logbook.UncategorizedName) {
		return nil, fmt.Errorf("%w: %s", ErrCategoryReserved, c.Name)
	}

	rewritten, err := s.logs.RewriteCategoryRefs(c.Name)
	if err != nil {
		return nil, err
	}

	kept := s.categories[:0]
	for _, existing := range s.categories {
		if !strings.EqualFold(existing.Name, c.Name) {
			kept = append(kept, existing)
		}
	}
	s.categories = kept

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &CascadeResult{RewrittenLogs: rewritten}, nil
}

// DeleteSubcategory removes a subcategory, rewriting affected log entries
// to the None sentinel first. The sentinel itself cannot be removed.
func (s *CategoryService) DeleteSubcategory(categoryName, subName string) (*CascadeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	c := s.find(categoryName)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryName)
	}

	sub := category.FindSubcategory(*c, subName)
	if sub == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrSubcategoryNotFound, c.Name, subName)
	}
	if strings.EqualFold(sub.Name, logbook.NoSubcategoryName) {
		return nil, fmt.Errorf("%w: %s/%s", ErrCategoryReserved, c.Name, sub.Name)
	}

	rewritten, err := s.logs.RewriteSubcategoryRefs(c.Name, sub.Name)
	if err != nil {
		return nil, err
	}

	kept := c.Subcategories[:0]
	for _, existing := range c.Subcategories {
		if !strings.EqualFold(existing.Name, sub.Name) {
			kept = append(kept, existing)
		}
	}
	c.Subcategories = kept

	if err := s.persist(); err != nil {
		return nil, err
	}
	return &CascadeResult{RewrittenLogs: rewritten}, nil
}

// Reset restores the built-in default taxonomy, backing up the current
// snapshot first. Log entries are left untouched.
func (s *CategoryService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.CreateBackup(s.path); err != nil {
		return fmt.Errorf("failed to back up category snapshot: %w", err)
	}

	s.categories = category.Defaults()
	s.loaded = true
	return s.persist()
}

// ReplaceAll swaps in a whole new taxonomy (CSV import), backing up the
// current snapshot first.
func (s *CategoryService) ReplaceAll(categories []category.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.CreateBackup(s.path); err != nil {
		return fmt.Errorf("failed to back up category snapshot: %w", err)
	}

	s.categories = categories
	s.loaded = true
	return s.persist()
}

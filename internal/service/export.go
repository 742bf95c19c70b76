package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"actlog/internal/category"
	"actlog/internal/logbook"
)

// logHeader is the column order of the log interchange format. Import
// accepts columns in any order but requires these names.
var logHeader = []string{"id", "date", "category", "subcategory", "start_time", "end_time", "duration_minutes"}

var categoryHeader = []string{"category", "subcategory"}

// ExportService round-trips the log collection and the taxonomy through
// CSV. Import is a wholesale replacement of the target collection.
type ExportService struct {
	logs       *LogService
	categories *CategoryService
}

// NewExportService creates a new ExportService over the given services.
func NewExportService(logs *LogService, categories *CategoryService) *ExportService {
	return &ExportService{logs: logs, categories: categories}
}

// ExportLogs writes the full log collection as CSV, one row per entry.
func (s *ExportService) ExportLogs(w io.Writer) (int, error) {
	entries, err := s.logs.List()
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(logHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Date,
			e.Category,
			e.Subcategory,
			e.StartTime,
			e.EndTime,
			strconv.Itoa(e.DurationMinutes),
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return len(entries), nil
}

// ExportCategories writes the taxonomy as CSV, one row per
// (category, subcategory) pair. A category with no subcategories still
// gets a row with an empty subcategory column.
func (s *ExportService) ExportCategories(w io.Writer) (int, error) {
	categories, err := s.categories.List()
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(categoryHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	rows := 0
	for _, c := range categories {
		if len(c.Subcategories) == 0 {
			if err := cw.Write([]string{c.Name, ""}); err != nil {
				return 0, fmt.Errorf("failed to write CSV row: %w", err)
			}
			rows++
			continue
		}
		for _, sub := range c.Subcategories {
			if err := cw.Write([]string{c.Name, sub.Name}); err != nil {
				return 0, fmt.Errorf("failed to write CSV row: %w", err)
			}
			rows++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return rows, nil
}

// ImportLogs parses a log CSV and replaces the entire log collection with
// its rows. The previous snapshot is backed up first. A row with an
// unparseable duration but valid clock times gets the duration recomputed;
// rows missing required columns entirely are skipped and counted.
func (s *ExportService) ImportLogs(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index, err := columnIndex(header, logHeader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	var entries []logbook.Entry

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		e, repaired, ok := entryFromRow(row, index)
		if !ok {
			result.Skipped++
			continue
		}
		if repaired {
			result.Repaired++
		}
		entries = append(entries, e)
	}

	if err := s.logs.ReplaceAll(entries); err != nil {
		return nil, err
	}

	result.Imported = len(entries)
	return result, nil
}

// ImportCategories parses a category-pair CSV and replaces the taxonomy.
// Pairs sharing a category name fold into one category; empty subcategory
// cells are ignored. New ids are minted since pairs carry none.
func (s *ExportService) ImportCategories(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index, err := columnIndex(header, categoryHeader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	var categories []category.Category
	byName := map[string]int{}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		name := strings.TrimSpace(cell(row, index["category"]))
		if name == "" {
			result.Skipped++
			continue
		}

		pos, seen := byName[strings.ToLower(name)]
		if !seen {
			pos = len(categories)
			byName[strings.ToLower(name)] = pos
			categories = append(categories, category.Category{ID: logbook.NewID(), Name: name})
		}

		subName := strings.TrimSpace(cell(row, index["subcategory"]))
		if subName == "" {
			continue
		}
		if category.FindSubcategory(categories[pos], subName) == nil {
			categories[pos].Subcategories = append(categories[pos].Subcategories,
				category.Subcategory{ID: logbook.NewID(), Name: subName})
		}
	}

	if err := s.categories.ReplaceAll(categories); err != nil {
		return nil, err
	}

	result.Imported = len(categories)
	return result, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("CSV missing required column %q", name)
		}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// entryFromRow builds an entry from a CSV row. Rows need a date and both
// clock times; the duration cell is trusted when it parses and recomputed
// from the times when it does not.
func entryFromRow(row []string, index map[string]int) (e logbook.Entry, repaired, ok bool) {
	e = logbook.Entry{
		ID:          strings.TrimSpace(cell(row, index["id"])),
		Date:        strings.TrimSpace(cell(row, index["date"])),
		Category:    strings.TrimSpace(cell(row, index["category"])),
		Subcategory: strings.TrimSpace(cell(row, index["subcategory"])),
		StartTime:   strings.TrimSpace(cell(row, index["start_time"])),
		EndTime:     strings.TrimSpace(cell(row, index["end_time"])),
	}

	if e.Date == "" || e.StartTime == "" || e.EndTime == "" {
		return logbook.Entry{}, false, false
	}

	if minutes, err := strconv.Atoi(strings.TrimSpace(cell(row, index["duration_minutes"]))); err == nil {
		e.DurationMinutes = minutes
		return e, false, true
	}

	minutes, err := logbook.ComputeDuration(e.StartTime, e.EndTime)
	if err != nil {
		return logbook.Entry{}, false, false
	}
	e.DurationMinutes = minutes
	return e, true, true
}

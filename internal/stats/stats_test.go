package stats

import (
	"testing"

	"actlog/internal/logbook"
)

func sampleEntries() []logbook.Entry {
	return []logbook.Entry{
		{ID: "1", Date: "2024-01-01", Category: "Work", Subcategory: "Coding", DurationMinutes: 120},
		{ID: "2", Date: "2024-01-01", Category: "Work", Subcategory: "Meetings", DurationMinutes: 30},
		{ID: "3", Date: "2024-01-02", Category: "Eat", Subcategory: "Lunch", DurationMinutes: 45},
		{ID: "4", Date: "2024-01-02", Category: "Work", Subcategory: "Coding", DurationMinutes: 60},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEntries())

	if s.TotalMinutes != 255 {
		t.Errorf("TotalMinutes = %d, want 255", s.TotalMinutes)
	}
	if s.EntryCount != 4 {
		t.Errorf("EntryCount = %d, want 4", s.EntryCount)
	}
	if s.DaysWithEntries != 2 {
		t.Errorf("DaysWithEntries = %d, want 2", s.DaysWithEntries)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalMinutes != 0 || s.EntryCount != 0 || s.DaysWithEntries != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func TestBreakdown_ByCategory(t *testing.T) {
	totals := Breakdown(sampleEntries(), ByCategory)

	if len(totals) != 2 {
		t.Fatalf("got %d groups, want 2", len(totals))
	}
	if totals[0].Name != "Work" || totals[0].TotalMinutes != 210 || totals[0].EntryCount != 3 {
		t.Errorf("top group = %+v, want Work/210/3", totals[0])
	}
	if totals[1].Name != "Eat" || totals[1].TotalMinutes != 45 {
		t.Errorf("second group = %+v, want Eat/45", totals[1])
	}
}

func TestBreakdown_BySubcategory(t *testing.T) {
	totals := Breakdown(sampleEntries(), BySubcategory)

	if len(totals) != 3 {
		t.Fatalf("got %d groups, want 3", len(totals))
	}
	if totals[0].Name != "Coding" || totals[0].TotalMinutes != 180 {
		t.Errorf("top group = %+v, want Coding/180", totals[0])
	}
}

func TestBreakdown_ByDate(t *testing.T) {
	totals := Breakdown(sampleEntries(), ByDate)

	if len(totals) != 2 {
		t.Fatalf("got %d groups, want 2", len(totals))
	}
	if totals[0].Name != "2024-01-01" || totals[0].TotalMinutes != 150 {
		t.Errorf("top group = %+v, want 2024-01-01/150", totals[0])
	}
}

func TestBreakdown_TiesSortedByName(t *testing.T) {
	entries := []logbook.Entry{
		{Category: "Zebra", DurationMinutes: 10},
		{Category: "Apple", DurationMinutes: 10},
	}

	totals := Breakdown(entries, ByCategory)
	if totals[0].Name != "Apple" || totals[1].Name != "Zebra" {
		t.Errorf("ties should sort by name: %+v", totals)
	}
}

func TestBreakdown_SkipsEmptyKeys(t *testing.T) {
	entries := []logbook.Entry{
		{Category: "", DurationMinutes: 10},
		{Category: "Work", DurationMinutes: 20},
	}

	totals := Breakdown(entries, ByCategory)
	if len(totals) != 1 || totals[0].Name != "Work" {
		t.Errorf("empty keys should be skipped: %+v", totals)
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input string
		want  Dimension
		ok    bool
	}{
		{"category", ByCategory, true},
		{"subcategory", BySubcategory, true},
		{"date", ByDate, true},
		{"", ByCategory, true},
		{"project", ByCategory, false},
	}

	for _, tt := range tests {
		got, ok := ParseDimension(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDimension(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

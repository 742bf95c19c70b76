package service

import (
	"bytes"
	"strings"
	"testing"

	"actlog/internal/logbook"
)

func TestExportService_RoundTrip(t *testing.T) {
	svc := newTestServices(t)

	original := []logbook.Entry{
		{ID: "a1", Date: "2024-01-15", Category: "Work", Subcategory: "Meetings", StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90},
		{ID: "a2", Date: "2024-01-15", Category: "Sleep", Subcategory: "None", StartTime: "23:30", EndTime: "00:45", DurationMinutes: 75},
	}
	for _, e := range original {
		if _, err := svc.Log.Add(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var buf bytes.Buffer
	count, err := svc.Export.ExportLogs(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 exported entries, got %d", count)
	}

	result, err := svc.Export.ImportLogs(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 || result.Repaired != 0 {
		t.Errorf("unexpected import result: %+v", result)
	}

	entries, err := svc.Log.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != len(original) {
		t.Fatalf("expected %d entries, got %d", len(original), len(entries))
	}
	for i, want := range original {
		got := entries[i]
		if got.ID != want.ID || got.Date != want.Date || got.Category != want.Category ||
			got.Subcategory != want.Subcategory || got.StartTime != want.StartTime ||
			got.EndTime != want.EndTime || got.DurationMinutes != want.DurationMinutes {
			t.Errorf("entry %d not reconstructed: want %+v, got %+v", i, want, got)
		}
	}
}

func TestExportService_ExportLogsHeader(t *testing.T) {
	svc := newTestServices(t)

	var buf bytes.Buffer
	if _, err := svc.Export.ExportLogs(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "id,date,category,subcategory,start_time,end_time,duration_minutes"
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if strings.TrimSpace(first) != want {
		t.Errorf("expected header %q, got %q", want, first)
	}
}

func TestExportService_ImportReplacesWholesale(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Log.Create("2024-01-01", "Work", "None", "09:00", "10:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	csv := "id,date,category,subcategory,start_time,end_time,duration_minutes\n" +
		"new1,2024-02-01,Study,Reading,18:00,19:00,60\n"

	result, err := svc.Export.ImportLogs(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported entry, got %d", result.Imported)
	}

	entries, err := svc.Log.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "new1" {
		t.Errorf("expected prior collection replaced, got %+v", entries)
	}
}

func TestExportService_ImportRepairsDuration(t *testing.T) {
	svc := newTestServices(t)

	csv := "id,date,category,subcategory,start_time,end_time,duration_minutes\n" +
		"r1,2024-01-15,Sleep,None,23:30,00:45,garbage\n"

	result, err := svc.Export.ImportLogs(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Repaired != 1 {
		t.Errorf("expected 1 repaired row, got %d", result.Repaired)
	}

	entries, err := svc.Log.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].DurationMinutes != 75 {
		t.Errorf("expected recomputed duration 75, got %d", entries[0].DurationMinutes)
	}
}

func TestExportService_ImportSkipsMalformedRows(t *testing.T) {
	svc := newTestServices(t)

	csv := "id,date,category,subcategory,start_time,end_time,duration_minutes\n" +
		"ok,2024-01-15,Work,None,09:00,10:00,60\n" +
		",,Work,None,09:00,10:00,60\n" + // missing date
		"bad,2024-01-15,Work,None,,10:00,garbage\n" // missing start time, duration unrepairable

	result, err := svc.Export.ImportLogs(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported entry, got %d", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", result.Skipped)
	}
}

func TestExportService_ImportRejectsBadHeader(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Export.ImportLogs(strings.NewReader("foo,bar\n1,2\n")); err == nil {
		t.Error("expected error for missing columns")
	}
	if _, err := svc.Export.ImportLogs(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestExportService_CategoriesRoundTrip(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Category.Add("Gardening"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Category.AddSubcategory("Gardening", "Weeding"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := svc.Export.ExportCategories(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if strings.TrimSpace(first) != "category,subcategory" {
		t.Errorf("expected header 'category,subcategory', got %q", first)
	}

	result, err := svc.Export.ImportCategories(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported == 0 {
		t.Fatal("expected imported categories")
	}

	imported, err := svc.Category.Find("Gardening")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make([]string, len(imported.Subcategories))
	for i, sub := range imported.Subcategories {
		names[i] = sub.Name
	}
	if !contains(names, "Weeding") || !contains(names, "None") {
		t.Errorf("expected subcategories reconstructed, got %v", names)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

package cli

import (
	"testing"

	"actlog/internal/logbook"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{30, "30m"},
		{59, "59m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{1440, "24h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	day := logbook.Entry{StartTime: "09:00", EndTime: "10:30"}
	if got := FormatTimeRange(day); got != "09:00-10:30" {
		t.Errorf("expected '09:00-10:30', got %q", got)
	}

	overnight := logbook.Entry{StartTime: "23:30", EndTime: "00:45"}
	if got := FormatTimeRange(overnight); got != "23:30-00:45 (+1d)" {
		t.Errorf("expected overnight marker, got %q", got)
	}
}

func TestFormatActivity(t *testing.T) {
	tests := []struct {
		name string
		e    logbook.Entry
		want string
	}{
		{"with subcategory", logbook.Entry{Category: "Work", Subcategory: "Meetings"}, "Work/Meetings"},
		{"sentinel subcategory elided", logbook.Entry{Category: "Sleep", Subcategory: logbook.NoSubcategoryName}, "Sleep"},
		{"empty subcategory elided", logbook.Entry{Category: "Sleep"}, "Sleep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatActivity(tt.e); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize("entry", 1); got != "entry" {
		t.Errorf("expected 'entry', got %q", got)
	}
	if got := Pluralize("row", 2); got != "rows" {
		t.Errorf("expected 'rows', got %q", got)
	}
	if got := Pluralize("log", 0); got != "logs" {
		t.Errorf("expected 'logs', got %q", got)
	}
}

func TestSpansMultipleDays(t *testing.T) {
	same := []logbook.Entry{{Date: "2024-01-15"}, {Date: "2024-01-15"}}
	if SpansMultipleDays(same) {
		t.Error("expected false for same-day entries")
	}

	multi := []logbook.Entry{{Date: "2024-01-15"}, {Date: "2024-01-16"}}
	if !SpansMultipleDays(multi) {
		t.Error("expected true for multi-day entries")
	}

	if SpansMultipleDays(nil) || SpansMultipleDays(multi[:1]) {
		t.Error("expected false for fewer than 2 entries")
	}
}

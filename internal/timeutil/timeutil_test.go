package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2024, 1, 15, 14, 30, 45, 123, time.UTC)
	got := StartOfDay(input)

	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != input.Location() {
		t.Errorf("expected location preserved, got %v", got.Location())
	}
}

func TestIsInRange(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"inside", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), true},
		{"equal to start", start, true},
		{"equal to end", end, true},
		{"before start", time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC), false},
		{"after end", time.Date(2024, 1, 20, 0, 0, 1, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInRange(tt.t, start, end); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"ISO format", "2024-01-15", "2024-01-15", false},
		{"slash format", "15/01/2024", "2024-01-15", false},
		{"garbage", "yesterday-ish", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if FormatDate(got) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, FormatDate(got))
			}
		})
	}
}

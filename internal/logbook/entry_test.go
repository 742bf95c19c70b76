package logbook

import (
	"testing"
	"time"
)

func TestEntry_SpansMidnight(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "same day", start: "09:00", end: "10:00", want: false},
		{name: "crosses midnight", start: "23:30", end: "00:45", want: true},
		{name: "zero length", start: "12:00", end: "12:00", want: false},
		{name: "malformed start", start: "nope", end: "10:00", want: false},
		{name: "malformed end", start: "10:00", end: "25:61", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{StartTime: tt.start, EndTime: tt.end}
			if got := e.SpansMidnight(); got != tt.want {
				t.Errorf("SpansMidnight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	base := Entry{
		ID:              "1",
		Date:            "2024-01-01",
		Category:        "Work",
		Subcategory:     "Coding",
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: 60,
	}

	t.Run("empty patch leaves entry unchanged", func(t *testing.T) {
		if got := (Patch{}).Apply(base); got != base {
			t.Errorf("empty patch changed entry: %+v", got)
		}
	})

	t.Run("patched fields win, others retained", func(t *testing.T) {
		cat := "Leisure"
		end := "11:30"
		got := Patch{Category: &cat, EndTime: &end}.Apply(base)

		if got.Category != "Leisure" {
			t.Errorf("Category = %q, want Leisure", got.Category)
		}
		if got.EndTime != "11:30" {
			t.Errorf("EndTime = %q, want 11:30", got.EndTime)
		}
		if got.Subcategory != "Coding" || got.Date != "2024-01-01" {
			t.Errorf("unpatched fields changed: %+v", got)
		}
		// The merge itself never infers a duration from new times.
		if got.DurationMinutes != 60 {
			t.Errorf("DurationMinutes = %d, want 60 (merge must not recompute)", got.DurationMinutes)
		}
	})

	t.Run("explicit duration overrides", func(t *testing.T) {
		d := 90
		if got := (Patch{DurationMinutes: &d}).Apply(base); got.DurationMinutes != 90 {
			t.Errorf("DurationMinutes = %d, want 90", got.DurationMinutes)
		}
	})
}

func TestPatch_ChangesTimes(t *testing.T) {
	s := "08:00"
	if (Patch{}).ChangesTimes() {
		t.Error("empty patch should not report time changes")
	}
	if !(Patch{StartTime: &s}).ChangesTimes() {
		t.Error("start time patch should report time changes")
	}
	if !(Patch{EndTime: &s}).ChangesTimes() {
		t.Error("end time patch should report time changes")
	}
}

func TestNewID_CreationOrdered(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id <= prev && len(id) == len(prev) {
			t.Fatalf("ids not increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestSortByDateDesc(t *testing.T) {
	entries := []Entry{
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: "2024-03-15"},
		{ID: "c", Date: "2024-02-10"},
		{ID: "d", Date: "2024-03-15"},
		{ID: "e", Date: "not-a-date"},
	}

	sorted := SortByDateDesc(entries)

	wantOrder := []string{"b", "d", "c", "a", "e"}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (order %v)", i, sorted[i].ID, id, sorted)
		}
	}

	// Input order must be untouched.
	if entries[0].ID != "a" || entries[4].ID != "e" {
		t.Error("SortByDateDesc mutated its input")
	}
}

func TestEntry_LastModifiedOmitted(t *testing.T) {
	e := Entry{ID: "1"}
	if e.LastModified != nil {
		t.Fatal("zero entry should have nil LastModified")
	}
	now := time.Now()
	e.LastModified = &now
	if e.LastModified == nil {
		t.Fatal("LastModified not set")
	}
}

package category

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	categories := Defaults()
	if len(categories) == 0 {
		t.Fatal("expected non-empty default taxonomy")
	}

	if categories[0].Name != "Uncategorized" {
		t.Errorf("expected 'Uncategorized' first, got %q", categories[0].Name)
	}
	if len(categories[0].Subcategories) != 1 || categories[0].Subcategories[0].Name != "None" {
		t.Errorf("expected Uncategorized to carry only 'None', got %+v", categories[0].Subcategories)
	}

	seen := map[string]bool{}
	for _, c := range categories {
		if c.ID == "" {
			t.Errorf("category %q has no id", c.Name)
		}
		if seen[c.Name] {
			t.Errorf("duplicate category %q", c.Name)
		}
		seen[c.Name] = true
		for _, sub := range c.Subcategories {
			if sub.ID == "" {
				t.Errorf("subcategory %q/%q has no id", c.Name, sub.Name)
			}
		}
	}

	for _, want := range []string{"Eat", "Workout", "Study", "Work", "Leisure", "Sleep", "Chores"} {
		if !seen[want] {
			t.Errorf("expected default category %q", want)
		}
	}
}

func TestDefaultsReturnsFreshCopies(t *testing.T) {
	first := Defaults()
	first[0].Name = "mutated"
	first[1].Subcategories[0].Name = "mutated"

	second := Defaults()
	if second[0].Name == "mutated" {
		t.Error("mutating one copy must not affect another")
	}
	if second[1].Subcategories[0].Name == "mutated" {
		t.Error("mutating nested slices must not affect another copy")
	}
}

func TestFindSubcategory(t *testing.T) {
	c := Category{
		Name: "Eat",
		Subcategories: []Subcategory{
			{ID: "1", Name: "Breakfast"},
			{ID: "2", Name: "None"},
		},
	}

	if sub := FindSubcategory(c, "breakfast"); sub == nil || sub.ID != "1" {
		t.Errorf("expected case-insensitive match, got %+v", sub)
	}
	if sub := FindSubcategory(c, "Brunch"); sub != nil {
		t.Errorf("expected nil for unknown name, got %+v", sub)
	}
}

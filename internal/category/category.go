// Package category defines the activity taxonomy: named categories with
// ordered subcategories, plus the default set users start from.
package category

import (
	"strings"

	"actlog/internal/logbook"
)

// Subcategory is a named child of a category.
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups activities under a unique name with an ordered list of
// subcategories.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// FindSubcategory returns the subcategory with the given name
// (case-insensitive), or nil.
func FindSubcategory(c Category, name string) *Subcategory {
	for i := range c.Subcategories {
		if strings.EqualFold(c.Subcategories[i].Name, name) {
			return &c.Subcategories[i]
		}
	}
	return nil
}

// Defaults returns the starting taxonomy. The "Uncategorized" category is
// the cascade sentinel target and is expected to always exist.
func Defaults() []Category {
	return []Category{
		{
			ID:            "default",
			Name:          logbook.UncategorizedName,
			Subcategories: []Subcategory{{ID: "none", Name: logbook.NoSubcategoryName}},
		},
		{
			ID:   "eat",
			Name: "Eat",
			Subcategories: []Subcategory{
				{ID: "eat-1", Name: "Breakfast"},
				{ID: "eat-2", Name: "Lunch"},
				{ID: "eat-3", Name: "Dinner"},
				{ID: "eat-4", Name: "Snack"},
			},
		},
		{
			ID:   "workout",
			Name: "Workout",
			Subcategories: []Subcategory{
				{ID: "workout-1", Name: "Cardio"},
				{ID: "workout-2", Name: "Strength"},
				{ID: "workout-3", Name: "Yoga"},
				{ID: "workout-4", Name: "Stretching"},
			},
		},
		{
			ID:   "study",
			Name: "Study",
			Subcategories: []Subcategory{
				{ID: "study-1", Name: "Reading"},
				{ID: "study-2", Name: "Writing"},
				{ID: "study-3", Name: "Research"},
				{ID: "study-4", Name: "Practice"},
			},
		},
		{
			ID:   "work",
			Name: "Work",
			Subcategories: []Subcategory{
				{ID: "work-1", Name: "Meetings"},
				{ID: "work-2", Name: "Coding"},
				{ID: "work-3", Name: "Planning"},
				{ID: "work-4", Name: "Admin"},
			},
		},
		{
			ID:   "leisure",
			Name: "Leisure",
			Subcategories: []Subcategory{
				{ID: "leisure-1", Name: "Gaming"},
				{ID: "leisure-2", Name: "TV/Movies"},
				{ID: "leisure-3", Name: "Socializing"},
				{ID: "leisure-4", Name: "Hobbies"},
			},
		},
		{
			ID:   "sleep",
			Name: "Sleep",
			Subcategories: []Subcategory{
				{ID: "sleep-1", Name: "Nap"},
				{ID: "sleep-2", Name: "Night Sleep"},
			},
		},
		{
			ID:   "chores",
			Name: "Chores",
			Subcategories: []Subcategory{
				{ID: "chores-1", Name: "Cleaning"},
				{ID: "chores-2", Name: "Cooking"},
				{ID: "chores-3", Name: "Shopping"},
				{ID: "chores-4", Name: "Laundry"},
			},
		},
	}
}

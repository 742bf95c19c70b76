package handlers

import (
	"errors"
	"fmt"
	"strings"

	"actlog/internal/cli"
	"actlog/internal/service"
)

// ListCategories prints the taxonomy
func ListCategories(deps *cli.Deps) {
	if warning := deps.Services.Category.SnapshotWarning(); warning != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %v (starting from the default taxonomy)\n\n", warning)
	}

	categories, err := deps.Services.Category.List()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Categories:")
	for _, c := range categories {
		names := make([]string, len(c.Subcategories))
		for i, sub := range c.Subcategories {
			names[i] = sub.Name
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s: %s\n", c.Name, strings.Join(names, ", "))
	}
}

// AddCategory creates a new category
func AddCategory(deps *cli.Deps, name string) {
	created, err := deps.Services.Category.Add(name)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: category %q already exists\n", name)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added category: %s\n", created.Name)
}

// AddSubcategory creates a new subcategory under an existing category
func AddSubcategory(deps *cli.Deps, categoryName, subName string) {
	created, err := deps.Services.Category.AddSubcategory(categoryName, subName)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: category %q not found\n", categoryName)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List categories with 'actlog categories'")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added subcategory: %s/%s\n", categoryName, created.Name)
}

// RemoveCategory deletes a category, rewriting its entries to the
// Uncategorized sentinel
func RemoveCategory(deps *cli.Deps, name string, skipConfirm bool) {
	if !skipConfirm {
		_, _ = fmt.Fprintf(deps.Stdout, "Removing %q moves its entries to Uncategorized.\n", name)
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
			return
		}
	}

	result, err := deps.Services.Category.DeleteCategory(name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: category %q not found\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List categories with 'actlog categories'")
		case errors.Is(err, service.ErrCategoryReserved):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %q is the fallback category and cannot be removed\n", name)
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed category: %s\n", name)
	if result.RewrittenLogs > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Moved %d %s to Uncategorized\n",
			result.RewrittenLogs, cli.Pluralize("entry", result.RewrittenLogs))
	}
}

// RemoveSubcategory deletes a subcategory, rewriting its entries to the
// None sentinel
func RemoveSubcategory(deps *cli.Deps, categoryName, subName string, skipConfirm bool) {
	if !skipConfirm {
		_, _ = fmt.Fprintf(deps.Stdout, "Removing %s/%s moves its entries to %s/None.\n", categoryName, subName, categoryName)
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
			return
		}
	}

	result, err := deps.Services.Category.DeleteSubcategory(categoryName, subName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: category %q not found\n", categoryName)
		case errors.Is(err, service.ErrSubcategoryNotFound):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: subcategory %s/%s not found\n", categoryName, subName)
		case errors.Is(err, service.ErrCategoryReserved):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: the None subcategory cannot be removed\n")
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed subcategory: %s/%s\n", categoryName, subName)
	if result.RewrittenLogs > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Moved %d %s to %s/None\n",
			result.RewrittenLogs, cli.Pluralize("entry", result.RewrittenLogs), categoryName)
	}
}

// ResetCategories restores the default taxonomy
func ResetCategories(deps *cli.Deps, skipConfirm bool) {
	if !skipConfirm {
		_, _ = fmt.Fprintln(deps.Stdout, "This replaces the taxonomy with the defaults (a backup is taken first).")
		if !promptConfirmation(deps.Stdout, deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
			return
		}
	}

	if err := deps.Services.Category.Reset(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Categories reset to defaults")
}

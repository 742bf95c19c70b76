package handlers

import (
	"strings"
	"testing"
)

func TestExportLogsHandler(t *testing.T) {
	td := newTestDeps(t)

	AddLog(td.Deps, "2024-01-15", "Work", "Meetings", "09:00", "10:30")
	td.stdout.Reset()

	ExportLogs(td.Deps)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "id,date,category,subcategory,start_time,end_time,duration_minutes")
	td.assertStdoutContains(t, "2024-01-15,Work,Meetings,09:00,10:30,90")
}

func TestExportCategoriesHandler(t *testing.T) {
	td := newTestDeps(t)

	ExportCategories(td.Deps)
	td.assertNoExit(t)
	td.assertStdoutContains(t, "category,subcategory")
	td.assertStdoutContains(t, "Eat,Breakfast")
}

func TestImportLogsHandler(t *testing.T) {
	td := newTestDeps(t)

	csv := "id,date,category,subcategory,start_time,end_time,duration_minutes\n" +
		"a1,2024-01-15,Work,None,09:00,10:00,60\n" +
		"a2,2024-01-15,Sleep,None,23:30,00:45,oops\n" +
		",,Work,None,09:00,10:00,60\n"

	ImportLogs(td.Deps, strings.NewReader(csv))
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Imported 2 entries")
	td.assertStderrContains(t, "recomputed the duration of 1 row")
	td.assertStderrContains(t, "skipped 1 malformed row")
}

func TestImportLogsHandlerBadHeader(t *testing.T) {
	td := newTestDeps(t)

	ImportLogs(td.Deps, strings.NewReader("foo,bar\n"))
	td.assertExit(t)
	td.assertStderrContains(t, "Hint: Expected the columns produced by 'actlog export logs'")
}

func TestImportCategoriesHandler(t *testing.T) {
	td := newTestDeps(t)

	csv := "category,subcategory\nGardening,Weeding\nGardening,Watering\n"
	ImportCategories(td.Deps, strings.NewReader(csv))
	td.assertNoExit(t)
	td.assertStdoutContains(t, "Imported 1 categories")
}

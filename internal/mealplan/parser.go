package mealplan

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Parse reads one meal-plan workbook and produces its Document. The
// filename supplies the year hint for M/D date cells; site selects
// the fallback column template. Only an unreadable container is an
// error: a readable sheet with no recognizable dates yields a
// document with a nil WeekStart and no days.
func Parse(r io.Reader, filename, site string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Filename: filename, Err: err}
	}

	sheet, grid, err := loadGrid(data)
	if err != nil {
		return nil, &ParseError{Filename: filename, Err: err}
	}

	hint, hintOK := filenameDateHint(filename)
	cols := resolveColumns(detectColumns(grid), site)
	days := accumulateDays(grid, cols, hint, hintOK)

	doc := &Document{
		Site:   site,
		Source: Source{Filename: filename, Sheet: sheet},
		Days:   days,
	}
	if ws, ok := weekStartOf(days); ok {
		doc.WeekStart = &ws
	}
	return doc, nil
}

// ParseFile parses the workbook at path; the base name becomes the
// document's source filename (and so the date hint).
func ParseFile(path, site string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Base(path), site)
}

// accumulateDays folds over the grid rows with the current date as
// the only loop state. A row whose first cell parses as a date
// anchors a new current day and still contributes its meal columns:
// the templates merge the date cell down a day's rows, so the first
// menu row is the date row itself. Rows before the first anchor are
// header noise.
func accumulateDays(g rawGrid, cols columnMap, hint dateHint, hintOK bool) map[string]DayMenu {
	days := make(map[string]DayMenu)
	currentDate := ""

	extraLabels := make([]string, 0, len(cols.extras))
	for label := range cols.extras {
		extraLabels = append(extraLabels, label)
	}
	sort.Strings(extraLabels)

	for _, row := range g {
		var first cell
		if len(row) > 0 {
			first = row[0]
		}
		if iso, ok := normalizeCellDate(first, hint, hintOK); ok {
			currentDate = iso
			if _, ok := days[iso]; !ok {
				days[iso] = newDayMenu()
			}
		}
		if currentDate == "" {
			continue
		}

		day := days[currentDate]
		day.Breakfast = appendColumns(day.Breakfast, row, cols.breakfast)
		day.Lunch = appendColumns(day.Lunch, row, cols.lunch)
		day.Dinner = appendColumns(day.Dinner, row, cols.dinner)
		for _, label := range extraLabels {
			items := collectColumns(row, cols.extras[label])
			if len(items) == 0 {
				continue
			}
			if day.Extras == nil {
				day.Extras = make(map[string][]string)
			}
			day.Extras[label] = append(day.Extras[label], items...)
		}
		days[currentDate] = day
	}

	dedupDays(days)
	return days
}

func appendColumns(bucket []string, row []cell, cols []int) []string {
	return append(bucket, collectColumns(row, cols)...)
}

// collectColumns splits every configured cell of one row, in
// configured-column order.
func collectColumns(row []cell, cols []int) []string {
	var items []string
	for _, col := range cols {
		if col >= len(row) {
			continue
		}
		items = append(items, splitMenuItems(row[col])...)
	}
	return items
}

// dedupDays applies per-bucket deduplication and removes extras
// labels that end up empty.
func dedupDays(days map[string]DayMenu) {
	for key, day := range days {
		day.Breakfast = dedupItems(day.Breakfast)
		day.Lunch = dedupItems(day.Lunch)
		day.Dinner = dedupItems(day.Dinner)
		for label, items := range day.Extras {
			items = dedupItems(items)
			if len(items) == 0 {
				delete(day.Extras, label)
				continue
			}
			day.Extras[label] = items
		}
		if len(day.Extras) == 0 {
			day.Extras = nil
		}
		days[key] = day
	}
}

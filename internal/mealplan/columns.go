package mealplan

import (
	"sort"
	"strings"
)

// headerScanRows caps how deep the detector looks for header
// keywords. Real templates put every header within the first few
// rows; 35 leaves room for decorated multi-band layouts.
const headerScanRows = 35

// Keyword families for header detection, Korean first, English as a
// fallback for translated sheets. Corner labels mark rotating
// self-serve stations: a corner hit suppresses every meal family for
// that cell, so "중식코너" does not register as a lunch column.
var (
	breakfastWords = []string{"조식", "아침", "breakfast"}
	lunchWords     = []string{"중식", "점심", "lunch"}
	dinnerWords    = []string{"석식", "저녁", "dinner"}
	nightWords     = []string{"야식", "night"}
	saladWords     = []string{"샐러드", "salad"}
	cornerWords    = []string{"코너", "corner"}
)

// siteMain is the only site with its own column template; every
// other site shares the cancer-building layout.
const siteMain = "main"

// columnMap fixes which grid columns feed each bucket for one parse.
// Extras maps a bucket label (night, salad) to its columns.
type columnMap struct {
	breakfast []int
	lunch     []int
	dinner    []int
	extras    map[string][]int
}

// detectedColumns is the raw detector output. Night and salad are
// detected alongside the meals but the merge step never consumes
// them: extras columns always come from the site template.
type detectedColumns struct {
	breakfast []int
	lunch     []int
	dinner    []int
	night     []int
	salad     []int
}

// detectColumns scans the top of the grid for header keywords and
// records, per family, every column where one appears.
func detectColumns(g rawGrid) detectedColumns {
	breakfast := map[int]bool{}
	lunch := map[int]bool{}
	dinner := map[int]bool{}
	night := map[int]bool{}
	salad := map[int]bool{}

	for i, row := range g {
		if i >= headerScanRows {
			break
		}
		for col, c := range row {
			if c.kind != cellText {
				continue
			}
			label := normalizeLabel(c.text)
			if label == "" {
				continue
			}
			if containsAny(label, cornerWords) {
				continue
			}
			if containsAny(label, breakfastWords) {
				breakfast[col] = true
			}
			if containsAny(label, lunchWords) {
				lunch[col] = true
			}
			if containsAny(label, dinnerWords) {
				dinner[col] = true
			}
			if containsAny(label, nightWords) {
				night[col] = true
			}
			if containsAny(label, saladWords) {
				salad[col] = true
			}
		}
	}

	return detectedColumns{
		breakfast: sortedCols(breakfast),
		lunch:     sortedCols(lunch),
		dinner:    sortedCols(dinner),
		night:     sortedCols(night),
		salad:     sortedCols(salad),
	}
}

// fallbackColumns returns the fixed per-site column template. Column
// 0 is always the date column and never feeds a bucket.
func fallbackColumns(site string) columnMap {
	if site == siteMain {
		return columnMap{
			breakfast: []int{1},
			lunch:     []int{3, 4},
			dinner:    []int{5, 6},
			extras:    map[string][]int{"night": {7, 8}},
		}
	}
	return columnMap{
		breakfast: []int{1, 2},
		lunch:     []int{3, 4},
		dinner:    []int{5, 6},
		extras:    map[string][]int{"salad": {7}, "night": {8}},
	}
}

// resolveColumns merges detection over the site template. A detected
// meal category replaces the template's columns only when non-empty;
// extras stay on the template unconditionally.
func resolveColumns(det detectedColumns, site string) columnMap {
	cols := fallbackColumns(site)
	if len(det.breakfast) > 0 {
		cols.breakfast = det.breakfast
	}
	if len(det.lunch) > 0 {
		cols.lunch = det.lunch
	}
	if len(det.dinner) > 0 {
		cols.dinner = det.dinner
	}
	return cols
}

// normalizeLabel lowercases and removes all whitespace, so "A 코너"
// and "a코너" compare equal.
func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func containsAny(label string, words []string) bool {
	for _, w := range words {
		if strings.Contains(label, w) {
			return true
		}
	}
	return false
}

func sortedCols(set map[int]bool) []int {
	if len(set) == 0 {
		return nil
	}
	cols := make([]int, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

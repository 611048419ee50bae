package mealplan

import (
	"strconv"
	"time"
)

// cellKind discriminates the raw value variants a worksheet cell can
// hold. Every consumer switches over all four kinds.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellNumber
	cellDate
)

// cell is one raw grid value. The field selected by kind is the only
// meaningful one; the zero value is an empty cell.
type cell struct {
	kind cellKind
	text string
	num  float64
	date time.Time
}

// rawGrid is the rectangular materialization of one worksheet.
// It exists only for the duration of a single parse.
type rawGrid [][]cell

// asText coerces a cell to the textual form the menu splitter works
// on. Numbers render without trailing zeros; date cells never feed
// menu buckets in real sheets but format canonically if they do.
func (c cell) asText() string {
	switch c.kind {
	case cellEmpty:
		return ""
	case cellText:
		return c.text
	case cellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case cellDate:
		return c.date.Format(isoDate)
	}
	return ""
}

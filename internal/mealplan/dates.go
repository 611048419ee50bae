package mealplan

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const isoDate = "2006-01-02"

// dateHint is a (year, month, day) triple lifted from an upload's
// filename, e.g. 260112_식단표.xlsx. Only the year is consumed
// downstream, to disambiguate M/D date cells; the sheet wins whenever
// it carries a full date.
type dateHint struct {
	year  int
	month int
	day   int
}

// filenameHintRe matches a 6-digit run not flanked by further digits.
var filenameHintRe = regexp.MustCompile(`(?:^|\D)(\d{6})(?:\D|$)`)

// filenameDateHint extracts a YYMMDD hint from an upload filename.
// Two-digit years map into 2000-2099. The triple is reported as-is,
// without calendar validation.
func filenameDateHint(name string) (dateHint, bool) {
	m := filenameHintRe.FindStringSubmatch(name)
	if m == nil {
		return dateHint{}, false
	}
	digits := m[1]
	y, _ := strconv.Atoi(digits[0:2])
	mo, _ := strconv.Atoi(digits[2:4])
	d, _ := strconv.Atoi(digits[4:6])
	return dateHint{year: 2000 + y, month: mo, day: d}, true
}

var (
	mdDateRe  = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{1,2})`)
	isoDateRe = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
)

// normalizeCellDate resolves a raw cell to a canonical YYYY-MM-DD
// string. Recognized forms, first success wins: native date cells,
// numeric serial dates, M/D text (year from the filename hint, else
// the current year), and YYYY-M-D text. Anything else is not a date.
func normalizeCellDate(c cell, hint dateHint, hintOK bool) (string, bool) {
	switch c.kind {
	case cellEmpty:
		return "", false

	case cellDate:
		return c.date.Format(isoDate), true

	case cellNumber:
		if math.IsNaN(c.num) || math.IsInf(c.num, 0) {
			return "", false
		}
		t, err := excelize.ExcelDateToTime(c.num, false)
		if err != nil {
			return "", false
		}
		return t.Format(isoDate), true

	case cellText:
		if m := mdDateRe.FindStringSubmatch(c.text); m != nil {
			mo, _ := strconv.Atoi(m[1])
			d, _ := strconv.Atoi(m[2])
			year := time.Now().Year()
			if hintOK {
				year = hint.year
			}
			if t, ok := civilDate(year, mo, d); ok {
				return t.Format(isoDate), true
			}
		}
		if m := isoDateRe.FindStringSubmatch(c.text); m != nil {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			if t, ok := civilDate(y, mo, d); ok {
				return t.Format(isoDate), true
			}
		}
		return "", false
	}
	return "", false
}

// civilDate validates a calendar date the strict way: time.Date
// normalizes overflow (Feb 30 becomes Mar 2), so build and compare
// back.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// weekStartOf computes the Monday of the week containing the earliest
// day key. Sundays align to the Monday six days back, so a week is
// Monday through Sunday.
func weekStartOf(days map[string]DayMenu) (string, bool) {
	earliest := ""
	for d := range days {
		if earliest == "" || d < earliest {
			earliest = d
		}
	}
	if earliest == "" {
		return "", false
	}

	t, err := time.Parse(isoDate, earliest)
	if err != nil {
		return "", false
	}

	back := int(t.Weekday()) - int(time.Monday)
	if back < 0 {
		back += 7
	}
	return t.AddDate(0, 0, -back).Format(isoDate), true
}

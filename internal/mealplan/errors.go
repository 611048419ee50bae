package mealplan

import (
	"errors"
	"fmt"
)

// ErrContainerUnreadable marks workbooks that cannot be opened at
// all: wrong magic bytes, truncated archives, encrypted files. It is
// the only failure Parse reports; everything else degrades to an
// emptier document.
var ErrContainerUnreadable = errors.New("workbook container unreadable")

// ErrNoWeekStart is returned by the service when a sheet parsed
// cleanly but contained no recognizable date cells, leaving no week
// to file the document under.
var ErrNoWeekStart = errors.New("no recognizable dates in sheet")

// ParseError wraps a parse failure with the filename it happened on.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

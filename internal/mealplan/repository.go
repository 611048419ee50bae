package mealplan

import (
	"context"
	"errors"
)

// ErrWeekNotFound is returned when no stored plan matches a lookup.
var ErrWeekNotFound = errors.New("meal plan not found")

// Repository defines all database operations for meal-plan
// documents. Stored payloads round-trip as raw JSON bytes, so reads
// serve exactly what ingestion wrote.
type Repository interface {

	// Insert or replace the document for (site, weekStart).
	Put(
		ctx context.Context,
		site string,
		weekStart string,
		doc *Document,
	) error

	// Raw payload for one stored week.
	Get(
		ctx context.Context,
		site string,
		weekStart string,
	) ([]byte, error)

	// Most recently ingested week for a site.
	GetLatest(
		ctx context.Context,
		site string,
	) (weekStart string, payload []byte, err error)

	// All stored week keys for a site, newest week first.
	ListWeeks(
		ctx context.Context,
		site string,
	) ([]string, error)
}

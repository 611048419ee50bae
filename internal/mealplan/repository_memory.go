package mealplan

import (
	"context"
	"encoding/json"
	"sort"
)

// MemoryRepository is an in-memory Repository for tests and local
// development. Not safe for concurrent use.
type MemoryRepository struct {
	entries map[string]*memoryEntry
	seq     int
}

type memoryEntry struct {
	site      string
	weekStart string
	payload   []byte
	seq       int // monotonic stand-in for updated_at ordering
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]*memoryEntry)}
}

func (r *MemoryRepository) Put(ctx context.Context, site, weekStart string, doc *Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	r.seq++
	r.entries[site+"|"+weekStart] = &memoryEntry{
		site:      site,
		weekStart: weekStart,
		payload:   payload,
		seq:       r.seq,
	}
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, site, weekStart string) ([]byte, error) {
	e, ok := r.entries[site+"|"+weekStart]
	if !ok {
		return nil, ErrWeekNotFound
	}
	return e.payload, nil
}

func (r *MemoryRepository) GetLatest(ctx context.Context, site string) (string, []byte, error) {
	var latest *memoryEntry
	for _, e := range r.entries {
		if e.site != site {
			continue
		}
		if latest == nil || e.seq > latest.seq {
			latest = e
		}
	}
	if latest == nil {
		return "", nil, ErrWeekNotFound
	}
	return latest.weekStart, latest.payload, nil
}

func (r *MemoryRepository) ListWeeks(ctx context.Context, site string) ([]string, error) {
	weeks := []string{}
	for _, e := range r.entries {
		if e.site == site {
			weeks = append(weeks, e.weekStart)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks, nil
}

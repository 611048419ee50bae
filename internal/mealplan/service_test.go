package mealplan

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// recordingArchiver captures Upload calls; fail makes every call
// return an error.
type recordingArchiver struct {
	keys         []string
	contentTypes []string
	fail         bool
}

func (a *recordingArchiver) Upload(ctx context.Context, key, contentType string, data []byte) error {
	a.keys = append(a.keys, key)
	a.contentTypes = append(a.contentTypes, contentType)
	if a.fail {
		return errors.New("bucket unavailable")
	}
	return nil
}

// TestServiceIngest tests the happy path: parse, store, archive under
// a site/week-scoped key
func TestServiceIngest(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	arc := &recordingArchiver{}
	svc := NewService(repo, arc)

	data := buildWorkbook(t, map[string]any{
		"A2": "1/12(월)",
		"D2": "김치찌개",
	})

	doc, err := svc.Ingest(ctx, "main", "260112_식단표.xlsx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if doc.WeekStart == nil || *doc.WeekStart != "2026-01-12" {
		t.Fatalf("weekStart = %v, want 2026-01-12", doc.WeekStart)
	}

	if _, err := repo.Get(ctx, "main", "2026-01-12"); err != nil {
		t.Errorf("stored week missing: %v", err)
	}

	if len(arc.keys) != 1 {
		t.Fatalf("archive calls = %d, want 1", len(arc.keys))
	}
	if !strings.HasPrefix(arc.keys[0], "plans/main/2026-01-12/") || !strings.HasSuffix(arc.keys[0], ".xlsx") {
		t.Errorf("archive key = %q, want plans/main/2026-01-12/<id>.xlsx", arc.keys[0])
	}
	if want := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"; arc.contentTypes[0] != want {
		t.Errorf("content type = %q, want %q", arc.contentTypes[0], want)
	}
}

// TestServiceIngestNoWeek tests that a sheet without dates is
// rejected before anything is stored or archived
func TestServiceIngestNoWeek(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	arc := &recordingArchiver{}
	svc := NewService(repo, arc)

	data := buildWorkbook(t, map[string]any{"A1": "공지사항"})

	if _, err := svc.Ingest(ctx, "main", "공지.xlsx", bytes.NewReader(data)); !errors.Is(err, ErrNoWeekStart) {
		t.Fatalf("err = %v, want ErrNoWeekStart", err)
	}

	if weeks, _ := repo.ListWeeks(ctx, "main"); len(weeks) != 0 {
		t.Errorf("weeks = %v, want none stored", weeks)
	}
	if len(arc.keys) != 0 {
		t.Errorf("archive calls = %d, want 0", len(arc.keys))
	}
}

// TestServiceIngestArchiveFailure tests that a failed archive upload
// does not fail the ingest
func TestServiceIngestArchiveFailure(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo, &recordingArchiver{fail: true})

	data := buildWorkbook(t, map[string]any{
		"A2": "1/12(월)",
		"D2": "비빔밥",
	})

	if _, err := svc.Ingest(ctx, "main", "260112_식단표.xlsx", bytes.NewReader(data)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if _, err := repo.Get(ctx, "main", "2026-01-12"); err != nil {
		t.Errorf("stored week missing: %v", err)
	}
}

// TestServiceIngestUnreadable tests that parse errors pass through
// with the container sentinel intact
func TestServiceIngestUnreadable(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.Ingest(ctx, "main", "bad.xlsx", strings.NewReader("not a workbook"))
	if !errors.Is(err, ErrContainerUnreadable) {
		t.Fatalf("err = %v, want ErrContainerUnreadable", err)
	}
}

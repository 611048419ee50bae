package mealplan

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Archiver stores original workbook bytes so a bad parse can be
// replayed later from the source file. A nil Archiver disables
// archiving.
type Archiver interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) error
}

// MaxUploadBytes caps accepted workbook size. The weekly templates
// are well under 1 MiB; anything bigger is not a meal plan.
const MaxUploadBytes = 10 << 20

type Service struct {
	repo    Repository
	archive Archiver
}

func NewService(repo Repository, archive Archiver) *Service {
	return &Service{repo: repo, archive: archive}
}

// --------------------------------------------------
// INGEST WORKBOOK (PARSE + UPSERT + ARCHIVE)
// --------------------------------------------------
func (s *Service) Ingest(
	ctx context.Context,
	site string,
	filename string,
	file io.Reader,
) (*Document, error) {

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(bytes.NewReader(data), filename, site)
	if err != nil {
		return nil, err
	}

	if doc.WeekStart == nil {
		return nil, ErrNoWeekStart
	}

	if err := s.repo.Put(ctx, site, *doc.WeekStart, doc); err != nil {
		return nil, err
	}

	// The parsed document is already stored; an archive failure must
	// not fail the upload.
	if s.archive != nil {
		ext := strings.ToLower(filepath.Ext(filename))
		key := fmt.Sprintf(
			"plans/%s/%s/%s%s",
			site,
			*doc.WeekStart,
			uuid.New().String(),
			ext,
		)
		if err := s.archive.Upload(ctx, key, contentTypeForExt(ext), data); err != nil {
			log.Printf("⚠️ Archive failed for %s week %s: %v", site, *doc.WeekStart, err)
		}
	}

	return doc, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	}
	return "application/octet-stream"
}

// --------------------------------------------------
// READ SIDE (PASSTHROUGH TO REPOSITORY)
// --------------------------------------------------
func (s *Service) GetWeek(ctx context.Context, site, weekStart string) ([]byte, error) {
	return s.repo.Get(ctx, site, weekStart)
}

func (s *Service) GetLatest(ctx context.Context, site string) (string, []byte, error) {
	return s.repo.GetLatest(ctx, site)
}

func (s *Service) ListWeeks(ctx context.Context, site string) ([]string, error) {
	return s.repo.ListWeeks(ctx, site)
}

package db

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/weirdogene/meal/internal/mealplan"
)

// TestConnectPostgres tests the Postgres connection and the meal_weeks
// round trip against a real DATABASE_URL
func TestConnectPostgres(t *testing.T) {
	// Save original DATABASE_URL
	originalDSN := os.Getenv("DATABASE_URL")
	defer func() {
		if originalDSN != "" {
			os.Setenv("DATABASE_URL", originalDSN)
		} else {
			os.Unsetenv("DATABASE_URL")
		}
	}()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	ctx := context.Background()
	repo := mealplan.NewPostgresRepository(pool)

	week := "2026-01-12"
	day := mealplan.DayMenu{
		Breakfast: []string{},
		Lunch:     []string{"김치찌개"},
		Dinner:    []string{},
	}
	doc := &mealplan.Document{
		Site:      "dbtest",
		Source:    mealplan.Source{Filename: "260112_식단표.xlsx", Sheet: "식단표"},
		WeekStart: &week,
		Days:      map[string]mealplan.DayMenu{week: day},
	}

	defer pool.Exec(ctx, `DELETE FROM meal_weeks WHERE site = 'dbtest'`)

	if err := repo.Put(ctx, "dbtest", week, doc); err != nil {
		t.Fatalf("put: %v", err)
	}

	payload, err := repo.Get(ctx, "dbtest", week)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var stored mealplan.Document
	if err := json.Unmarshal(payload, &stored); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if stored.Site != "dbtest" || stored.WeekStart == nil || *stored.WeekStart != week {
		t.Errorf("stored doc = %+v", stored)
	}

	weeks, err := repo.ListWeeks(ctx, "dbtest")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(weeks) != 1 || weeks[0] != week {
		t.Errorf("weeks = %v, want [%s]", weeks, week)
	}
}

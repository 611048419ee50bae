package main

import (
	"context"
	"log"
	"os"

	"github.com/weirdogene/meal/internal/archive"
	"github.com/weirdogene/meal/internal/db"
	"github.com/weirdogene/meal/internal/mealplan"
	"github.com/weirdogene/meal/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"UPLOAD_TOKEN",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── ARCHIVE (OPTIONAL) ─────────────────────────
	var archiver mealplan.Archiver
	arc, err := archive.FromEnv(context.Background())
	if err != nil {
		log.Fatal("❌ Archive init failed: ", err)
	}
	if arc != nil {
		archiver = arc
		log.Println("✅ Workbook archive enabled")
	}

	// ───────────────────────── SERVICE + ROUTES ─────────────────────────
	repo := mealplan.NewPostgresRepository(pgDB)
	service := mealplan.NewService(repo, archiver)
	handler := mealplan.NewHandler(service)

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	r := router.New(handler, os.Getenv("UPLOAD_TOKEN"), staticDir)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}

package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MEAL WEEKS
	// -------------------------------
	mealWeeksSQL := `
		CREATE TABLE IF NOT EXISTS meal_weeks (
			site VARCHAR(64) NOT NULL,
			week_start DATE NOT NULL,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (site, week_start)
		)
	`
	if _, err := db.Exec(ctx, mealWeeksSQL); err != nil {
		return err
	}

	// Latest-week lookups order by upload time within a site
	latestIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_meal_weeks_site_updated
		ON meal_weeks (site, updated_at DESC)
	`
	if _, err := db.Exec(ctx, latestIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

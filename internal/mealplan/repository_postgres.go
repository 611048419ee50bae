package mealplan

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// UPSERT WEEK (LAST WRITE WINS)
// --------------------------------------------------
func (r *PostgresRepository) Put(
	ctx context.Context,
	site string,
	weekStart string,
	doc *Document,
) error {

	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO meal_weeks (site, week_start, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (site, week_start)
		DO UPDATE SET payload = EXCLUDED.payload,
		              updated_at = now()
	`, site, weekStart, payload)

	return err
}

// --------------------------------------------------
// GET ONE WEEK (RAW PAYLOAD)
// --------------------------------------------------
func (r *PostgresRepository) Get(
	ctx context.Context,
	site string,
	weekStart string,
) ([]byte, error) {

	var payload []byte

	err := r.db.QueryRow(ctx, `
		SELECT payload
		FROM meal_weeks
		WHERE site = $1
		  AND week_start = $2
	`, site, weekStart).Scan(&payload)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}

	return payload, nil
}

// --------------------------------------------------
// GET LATEST WEEK (MOST RECENT UPLOAD, NOT MAX WEEK)
// --------------------------------------------------
func (r *PostgresRepository) GetLatest(
	ctx context.Context,
	site string,
) (string, []byte, error) {

	var (
		weekStart string
		payload   []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT to_char(week_start, 'YYYY-MM-DD'), payload
		FROM meal_weeks
		WHERE site = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, site).Scan(&weekStart, &payload)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrWeekNotFound
		}
		return "", nil, err
	}

	return weekStart, payload, nil
}

// --------------------------------------------------
// LIST WEEKS (NEWEST WEEK FIRST)
// --------------------------------------------------
func (r *PostgresRepository) ListWeeks(
	ctx context.Context,
	site string,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT to_char(week_start, 'YYYY-MM-DD')
		FROM meal_weeks
		WHERE site = $1
		ORDER BY week_start DESC
	`, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := []string{}

	for rows.Next() {
		var week string
		if err := rows.Scan(&week); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}

	return weeks, rows.Err()
}

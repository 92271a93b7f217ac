package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"meeting-host-service/internal/domain"
	"os"
)

// Initialize the Postgres database schema: the leg dataset and the route cache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLegsQuery := `
	CREATE TABLE IF NOT EXISTS travel_legs (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		duration_hours DOUBLE PRECISION NOT NULL CHECK (duration_hours >= 0),
		co2_kg DOUBLE PRECISION NOT NULL CHECK (co2_kg >= 0),
		mode TEXT NOT NULL DEFAULT 'flight'
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_travel_legs_origin
	ON travel_legs(origin);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		routes JSONB NOT NULL,
		stored_at TIMESTAMPTZ NOT NULL
	);
	`

	statements := []string{
		createLegsQuery,
		createIndexQuery,
		createRouteCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the contents of travel_legs with legs, preserving their order.
func SeedLegs(ctx context.Context, db *sql.DB, legs []domain.Leg) error {
	if db == nil {
		return errors.New("seed legs: DB is nil")
	}

	for i, leg := range legs {
		if err := domain.ValidateLeg(leg); err != nil {
			return fmt.Errorf("seed legs: item at index %d: %w", i+1, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed legs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE travel_legs RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("seed legs: truncate: %w", err)
	}

	query := `
	INSERT INTO travel_legs (
		origin,
		destination,
		duration_hours,
		co2_kg,
		mode
	)
	VALUES ($1, $2, $3, $4, $5);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed legs: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range legs {
		mode := l.Mode
		if mode == "" {
			mode = domain.DefaultMode
		}
		if _, err := stmt.ExecContext(ctx, l.Origin, l.Destination, l.DurationHours, l.CO2Kg, mode); err != nil {
			return fmt.Errorf("seed legs: insert row %d (%s->%s): %w", i+1, l.Origin, l.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed legs: commit tx: %w", err)
	}

	return nil
}

// Populate travel_legs from a CSV file.
func SeedFromCSV(ctx context.Context, db *sql.DB, csvPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("seed legs: read %q: %w", csvPath, err)
	}
	defer f.Close()

	legs, err := ReadLegsCSV(f)
	if err != nil {
		return fmt.Errorf("seed legs: parse csv: %w", err)
	}

	return SeedLegs(ctx, db, legs)
}

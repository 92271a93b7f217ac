package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"meeting-host-service/internal/domain"
)

// SQL-backed implementation of the LegRepository port.
type SQLLegRepository struct{ DB *sql.DB }

func NewSQLLegRepository(db *sql.DB) *SQLLegRepository {
	return &SQLLegRepository{DB: db}
}

// Return all legs stored in the database, in insertion order.
func (s *SQLLegRepository) ListLegs(ctx context.Context) ([]domain.Leg, error) {
	if s.DB == nil {
		return nil, errors.New("sql leg repository: DB is nil")
	}

	query := `
	SELECT
		origin,
		destination,
		duration_hours,
		co2_kg,
		mode
	FROM travel_legs
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list legs: query travel_legs table: %w", err)
	}
	defer rows.Close()

	legs := make([]domain.Leg, 0, 256)
	for rows.Next() {
		var leg domain.Leg
		if err := rows.Scan(&leg.Origin, &leg.Destination, &leg.DurationHours, &leg.CO2Kg, &leg.Mode); err != nil {
			return nil, fmt.Errorf("list legs: scan row: %w", err)
		}
		legs = append(legs, leg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list legs: row iteration: %w", err)
	}

	return legs, nil
}

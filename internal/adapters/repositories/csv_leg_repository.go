package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"meeting-host-service/internal/domain"
	"os"
	"strconv"
	"strings"
)

var requiredColumns = []string{"origin", "destination", "duration_hours", "co2_kg"}

// CSV-backed implementation of the LegRepository port.
// The file is read on every call; callers build the graph once.
type CSVLegRepository struct{ Path string }

func NewCSVLegRepository(path string) *CSVLegRepository {
	return &CSVLegRepository{Path: path}
}

// Return all legs stored in the CSV file, in file order.
func (r *CSVLegRepository) ListLegs(ctx context.Context) ([]domain.Leg, error) {
	if strings.TrimSpace(r.Path) == "" {
		return nil, errors.New("csv leg repository: path is empty")
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("list legs: open %q: %w", r.Path, err)
	}
	defer f.Close()

	legs, err := ReadLegsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("list legs: %q: %w", r.Path, err)
	}
	return legs, nil
}

// ReadLegsCSV decodes header-addressed leg records. Columns may appear in any
// order; extra columns are ignored and a missing or empty mode means "flight".
func ReadLegsCSV(r io.Reader) ([]domain.Leg, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read legs csv: header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("read legs csv: missing column %q", col)
		}
	}
	modeIdx, hasMode := index["mode"]

	legs := make([]domain.Leg, 0, 256)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read legs csv: line %d: %w", line, err)
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(record[index["duration_hours"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("read legs csv: line %d: duration_hours: %w", line, err)
		}
		co2, err := strconv.ParseFloat(strings.TrimSpace(record[index["co2_kg"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("read legs csv: line %d: co2_kg: %w", line, err)
		}

		leg := domain.Leg{
			Origin:        strings.TrimSpace(record[index["origin"]]),
			Destination:   strings.TrimSpace(record[index["destination"]]),
			DurationHours: duration,
			CO2Kg:         co2,
			Mode:          domain.DefaultMode,
		}
		if hasMode {
			if m := strings.TrimSpace(record[modeIdx]); m != "" {
				leg.Mode = m
			}
		}
		if err := domain.ValidateLeg(leg); err != nil {
			return nil, fmt.Errorf("read legs csv: line %d: %w", line, err)
		}

		legs = append(legs, leg)
	}

	return legs, nil
}

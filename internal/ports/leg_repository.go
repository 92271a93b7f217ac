package ports

import (
	"context"
	"meeting-host-service/internal/domain"
)

// Port: a boundary for retrieving the travel dataset from a data source.
type LegRepository interface {
	// Return every travel leg in dataset order.
	ListLegs(ctx context.Context) ([]domain.Leg, error)
}

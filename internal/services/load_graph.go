package services

import (
	"context"
	"errors"
	"fmt"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/ports"
)

// LoadGraph reads every leg from repo and builds the travel graph.
func LoadGraph(ctx context.Context, repo ports.LegRepository) (*domain.Graph, error) {
	if repo == nil {
		return nil, errors.New("load graph: repository must be non-nil")
	}

	legs, err := repo.ListLegs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	if len(legs) == 0 {
		return nil, errors.New("load graph: dataset contains no legs")
	}

	for i, leg := range legs {
		if err := domain.ValidateLeg(leg); err != nil {
			return nil, fmt.Errorf("load graph: leg #%d: %w", i+1, err)
		}
	}

	return domain.NewGraph(legs), nil
}

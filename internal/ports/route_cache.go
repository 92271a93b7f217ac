package ports

import (
	"context"
	"fmt"
	"meeting-host-service/internal/domain"
)

// Identifies one route search: the graph it ran on, its bounds and endpoints.
type RouteKey struct {
	Fingerprint uint64
	MaxHops     int
	MaxRoutes   int
	Origin      string
	Destination string
}

// String renders the key for storage. Names are quoted so that separators
// inside a location name cannot make two keys collide.
func (k RouteKey) String() string {
	return fmt.Sprintf("%016x:%d:%d:%q:%q", k.Fingerprint, k.MaxHops, k.MaxRoutes, k.Origin, k.Destination)
}

// Contract for caching Pareto route sets between solve calls.
type RouteCache interface {
	// Return the cached routes for key; found is false on a miss.
	GetRoutes(ctx context.Context, key RouteKey) (routes []domain.Route, found bool, err error)
	// Store routes for key. An empty set is a valid value (unreachable).
	PutRoutes(ctx context.Context, key RouteKey, routes []domain.Route) error
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/platform/obs"
	"meeting-host-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const routeKeyPrefix = "meet:routes:"

// RedisRouteCache is a Redis-backed cache for origin->destination Pareto route sets.
// Keys embed the graph fingerprint, so entries for a changed dataset are never read.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisRouteCache returns a cache whose entries expire after ttl (0 keeps them forever).
func NewRedisRouteCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl, logger: logger}
}

// Fetch the cached route set for key.
func (c *RedisRouteCache) GetRoutes(
	ctx context.Context,
	key ports.RouteKey,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, c.logger, "routes.cache.GetRoutes")(&err)

	if c.client == nil {
		return nil, false, errors.New("route cache: redis client is nil")
	}

	b, err := c.client.Get(ctx, routeKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache %s: %w", key, err)
	}

	var routes []domain.Route
	if err := json.Unmarshal(b, &routes); err != nil {
		return nil, false, fmt.Errorf("get route cache %s: decode: %w", key, err)
	}
	if routes == nil {
		routes = []domain.Route{}
	}

	return routes, true, nil
}

// Store the route set for key, replacing any previous value.
func (c *RedisRouteCache) PutRoutes(ctx context.Context, key ports.RouteKey, routes []domain.Route) error {
	if c.client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if key.Origin == "" || key.Destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	if routes == nil {
		routes = []domain.Route{}
	}
	b, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert route cache %s: encode: %w", key, err)
	}

	if err := c.client.Set(ctx, routeKeyPrefix+key.String(), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache %s: %w", key, err)
	}
	return nil
}

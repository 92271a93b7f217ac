package cache

import (
	"context"
	"testing"
	"time"

	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisRouteCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRouteCache(client, ttl, zerolog.Nop()), mr
}

func testKey() ports.RouteKey {
	return ports.RouteKey{Fingerprint: 0xabc, MaxHops: 4, MaxRoutes: 20, Origin: "Paris", Destination: "Berlin"}
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()

	_, found, err := c.GetRoutes(ctx, testKey())
	require.NoError(t, err)
	assert.False(t, found)

	routes := []domain.Route{
		domain.NewRoute([]domain.Leg{{Origin: "Paris", Destination: "Berlin", DurationHours: 2, CO2Kg: 120, Mode: "flight"}}),
		domain.NewRoute([]domain.Leg{{Origin: "Paris", Destination: "Berlin", DurationHours: 8, CO2Kg: 15, Mode: "train"}}),
	}
	require.NoError(t, c.PutRoutes(ctx, testKey(), routes))

	got, found, err := c.GetRoutes(ctx, testKey())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, routes, got)

	other := testKey()
	other.MaxHops = 2
	_, found, err = c.GetRoutes(ctx, other)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisRouteCacheEmptySetIsAHit(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.PutRoutes(ctx, testKey(), nil))

	got, found, err := c.GetRoutes(ctx, testKey())
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRedisRouteCacheTTL(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.PutRoutes(ctx, testKey(), []domain.Route{}))
	assert.Equal(t, time.Minute, mr.TTL(routeKeyPrefix+testKey().String()))

	mr.FastForward(2 * time.Minute)
	_, found, err := c.GetRoutes(ctx, testKey())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisRouteCacheErrors(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, mr.Set(routeKeyPrefix+testKey().String(), "not json"))
	_, _, err := c.GetRoutes(ctx, testKey())
	assert.ErrorContains(t, err, "decode")

	bad := testKey()
	bad.Origin = ""
	assert.Error(t, c.PutRoutes(ctx, bad, nil))

	mr.SetError("LOADING")
	_, _, err = c.GetRoutes(ctx, testKey())
	assert.Error(t, err)

	var nilClient RedisRouteCache
	_, _, err = nilClient.GetRoutes(ctx, testKey())
	assert.Error(t, err)
}

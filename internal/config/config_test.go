package config

import (
	"os"
	"path/filepath"
	"testing"

	"meeting-host-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MEET_CONFIG", "PORT", "MEET_HTTP_ADDR", "MEET_MAX_HOPS", "MEET_MAX_ROUTES",
		"MEET_WORKERS", "MEET_DURATION_WEIGHT", "MEET_EMISSION_WEIGHT", "MEET_HOST_WEIGHTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, domain.DefaultRoutePreference(), c.RoutePreference())
	assert.Equal(t, domain.DefaultSearchLimits(), c.SearchLimits())
	assert.Equal(t, domain.DefaultHostWeights(), c.Solver.HostWeights)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
solver:
  max_hops: 3
  duration_weight: 0.2
  emission_weight: 0.8
  host_weights:
    total_co2: 1
    average_travel_hours: 0
    gini_travel_hours: 0
    max_travel_hours: 0
cache:
  redis_url: redis://localhost:6379/0
`), 0o644))

	clearEnv(t)
	t.Setenv("MEET_CONFIG", path)
	t.Setenv("MEET_MAX_ROUTES", "7")
	t.Setenv("PORT", "9100")
	t.Setenv("MEET_HOST_WEIGHTS", "gini_travel_hours=0.5, ")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9100", c.Server.Addr)
	assert.Equal(t, domain.SearchLimits{MaxHops: 3, MaxRoutes: 7}, c.SearchLimits())
	assert.Equal(t, 0.8, c.RoutePreference().EmissionWeight)
	assert.Equal(t, domain.HostWeights{TotalCO2: 1, GiniTravelHours: 0.5}, c.Solver.HostWeights)
	assert.Equal(t, "redis://localhost:6379/0", c.Cache.RedisURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"non-numeric hops": {"MEET_MAX_HOPS", "many"},
		"zero hops":        {"MEET_MAX_HOPS", "0"},
		"zero workers":     {"MEET_WORKERS", "0"},
		"negative weight":  {"MEET_DURATION_WEIGHT", "-1"},
		"unknown metric":   {"MEET_HOST_WEIGHTS", "speed=1"},
		"missing file":     {"MEET_CONFIG", "/nonexistent/meet.yaml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("MEET_TEST_VALUE", "")
	assert.Equal(t, "fallback", Get("MEET_TEST_VALUE", "fallback"))
	t.Setenv("MEET_TEST_VALUE", "set")
	assert.Equal(t, "set", Get("MEET_TEST_VALUE", "fallback"))
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"meeting-host-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the server, CLI and dbtool.
type Config struct {
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Dataset struct {
		// CSV file used when no database is configured.
		Path        string `yaml:"path"`
		DatabaseURL string `yaml:"database_url"`
	} `yaml:"dataset"`
	Cache struct {
		RedisURL   string `yaml:"redis_url"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Solver struct {
		DurationWeight  float64            `yaml:"duration_weight"`
		EmissionWeight  float64            `yaml:"emission_weight"`
		MaxHops         int                `yaml:"max_hops"`
		MaxRoutes       int                `yaml:"max_routes"`
		Workers         int                `yaml:"workers"`
		MaxAlternatives int                `yaml:"max_alternatives"`
		HostWeights     domain.HostWeights `yaml:"host_weights"`
	} `yaml:"solver"`
}

func defaultConfig() Config {
	var c Config
	c.Server.Addr = ":8080"
	c.Server.ReadTimeoutSeconds = 10
	c.Server.WriteTimeoutSeconds = 60
	c.Server.IdleTimeoutSeconds = 60
	c.Logging.Level = "info"
	c.Dataset.Path = "data/connections.csv"
	c.Cache.TTLSeconds = 3600

	pref := domain.DefaultRoutePreference()
	limits := domain.DefaultSearchLimits()
	c.Solver.DurationWeight = pref.DurationWeight
	c.Solver.EmissionWeight = pref.EmissionWeight
	c.Solver.MaxHops = limits.MaxHops
	c.Solver.MaxRoutes = limits.MaxRoutes
	c.Solver.Workers = 4
	c.Solver.MaxAlternatives = 10
	c.Solver.HostWeights = domain.DefaultHostWeights()
	return c
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration from defaults, an optional YAML file named by
// MEET_CONFIG, and environment overrides, in that order.
func Load() (Config, error) {
	c := defaultConfig()

	if path := os.Getenv("MEET_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("MEET_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MEET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MEET_LOG_PRETTY"); v == "1" || v == "true" {
		c.Logging.Pretty = true
	}
	c.Dataset.Path = Get("DATASET_PATH", c.Dataset.Path)
	c.Dataset.DatabaseURL = Get("DATABASE_URL", c.Dataset.DatabaseURL)
	c.Cache.RedisURL = Get("REDIS_URL", c.Cache.RedisURL)

	ints := []struct {
		key string
		dst *int
	}{
		{"MEET_CACHE_TTL_SECONDS", &c.Cache.TTLSeconds},
		{"MEET_MAX_HOPS", &c.Solver.MaxHops},
		{"MEET_MAX_ROUTES", &c.Solver.MaxRoutes},
		{"MEET_WORKERS", &c.Solver.Workers},
	}
	for _, it := range ints {
		if v := strings.TrimSpace(os.Getenv(it.key)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("load config: %s=%q: %w", it.key, v, err)
			}
			*it.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"MEET_DURATION_WEIGHT", &c.Solver.DurationWeight},
		{"MEET_EMISSION_WEIGHT", &c.Solver.EmissionWeight},
	}
	for _, it := range floats {
		if v := strings.TrimSpace(os.Getenv(it.key)); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Config{}, fmt.Errorf("load config: %s=%q: %w", it.key, v, err)
			}
			*it.dst = f
		}
	}

	// Comma-separated metric=value pairs, e.g. "total_co2=0.5,gini_travel_hours=0.3".
	if v := os.Getenv("MEET_HOST_WEIGHTS"); v != "" {
		for _, item := range strings.Split(v, ",") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			if err := c.Solver.HostWeights.ParseOverride(item); err != nil {
				return Config{}, fmt.Errorf("load config: MEET_HOST_WEIGHTS: %w", err)
			}
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects solver defaults that would make every request fail.
func (c Config) Validate() error {
	if c.Solver.MaxHops < 1 {
		return fmt.Errorf("validate config: max_hops must be >= 1, got %d", c.Solver.MaxHops)
	}
	if c.Solver.MaxRoutes < 1 {
		return fmt.Errorf("validate config: max_routes must be >= 1, got %d", c.Solver.MaxRoutes)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("validate config: workers must be >= 1, got %d", c.Solver.Workers)
	}
	if c.Solver.DurationWeight < 0 || c.Solver.EmissionWeight < 0 || c.Solver.DurationWeight+c.Solver.EmissionWeight == 0 {
		return fmt.Errorf("validate config: route weights duration=%v emission=%v: %w",
			c.Solver.DurationWeight, c.Solver.EmissionWeight, domain.ErrInvalidWeights)
	}
	if err := c.Solver.HostWeights.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("validate config: cache ttl must be >= 0, got %d", c.Cache.TTLSeconds)
	}
	return nil
}

// RoutePreference returns the configured default route preference.
func (c Config) RoutePreference() domain.RoutePreference {
	return domain.RoutePreference{DurationWeight: c.Solver.DurationWeight, EmissionWeight: c.Solver.EmissionWeight}
}

// SearchLimits returns the configured default search bounds.
func (c Config) SearchLimits() domain.SearchLimits {
	return domain.SearchLimits{MaxHops: c.Solver.MaxHops, MaxRoutes: c.Solver.MaxRoutes}
}

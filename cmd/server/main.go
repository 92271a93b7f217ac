package main

import (
	"context"
	"database/sql"
	"errors"
	"meeting-host-service/internal/adapters/cache"
	"meeting-host-service/internal/adapters/repositories"
	"meeting-host-service/internal/api"
	"meeting-host-service/internal/api/handlers"
	"meeting-host-service/internal/config"
	"meeting-host-service/internal/platform/db"
	"meeting-host-service/internal/platform/logging"
	"meeting-host-service/internal/platform/metrics"
	"meeting-host-service/internal/ports"
	"meeting-host-service/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires the leg source (CSV or Postgres) and the optional route cache
// behind ports, loads the travel graph once and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", false)
		fallback.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)
	if envErr != nil {
		logger.Info().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn *sql.DB
	if cfg.Dataset.DatabaseURL != "" {
		conn, err = db.Open(ctx, cfg.Dataset.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("open database")
		}
		defer conn.Close()
	}

	repo := openLegRepository(cfg, conn)

	graph, err := services.LoadGraph(ctx, repo)
	if err != nil {
		logger.Fatal().Err(err).Msg("load travel graph")
	}
	logger.Info().Int("legs", graph.LegCount()).Int("hosts", len(graph.CandidateHosts())).Msg("travel graph loaded")

	routeCache, closeCache, err := openRouteCache(ctx, cfg, conn, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open route cache")
	}
	defer closeCache()

	registry := metrics.Init(logger)
	solver := services.NewSolver(routeCache, cfg.Solver.Workers, logger)
	router := api.NewRouter(api.RouterDeps{
		Solver: solver,
		Graph:  graph,
		Defaults: handlers.SolveDefaults{
			Preference:      cfg.RoutePreference(),
			Weights:         cfg.Solver.HostWeights,
			Limits:          cfg.SearchLimits(),
			MaxAlternatives: cfg.Solver.MaxAlternatives,
		},
		Metrics: metrics.Handler(registry),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}

// Prefer Postgres when a database is open; otherwise read the CSV dataset.
func openLegRepository(cfg config.Config, conn *sql.DB) ports.LegRepository {
	if conn == nil {
		return repositories.NewCSVLegRepository(cfg.Dataset.Path)
	}
	return repositories.NewSQLLegRepository(conn)
}

// Redis is preferred, then the route_cache table when Postgres is configured.
// Without either every request searches directly.
func openRouteCache(ctx context.Context, cfg config.Config, conn *sql.DB, logger zerolog.Logger) (ports.RouteCache, func(), error) {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	if cfg.Cache.RedisURL == "" {
		if conn != nil {
			logger.Info().Dur("ttl", ttl).Msg("route cache backed by postgres")
			return cache.NewSQLRouteCache(conn, ttl, logger), func() {}, nil
		}
		logger.Info().Msg("route cache disabled (REDIS_URL not set)")
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return cache.NewRedisRouteCache(client, ttl, logger), func() { _ = client.Close() }, nil
}

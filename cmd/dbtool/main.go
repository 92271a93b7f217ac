package main

import (
	"context"
	"database/sql"
	"meeting-host-service/internal/adapters/cache"
	"meeting-host-service/internal/adapters/repositories"
	"meeting-host-service/internal/config"
	"meeting-host-service/internal/platform/db"
	"meeting-host-service/internal/platform/logging"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// dbtool creates the schema, loads travel_legs from a CSV dataset and prunes
// expired route cache rows.
func main() {
	logger := newLogger()
	ctx := context.Background()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ttlSeconds, err := strconv.Atoi(config.Get("MEET_CACHE_TTL_SECONDS", "3600"))
	if err != nil {
		logger.Fatal().Err(err).Msg("parse MEET_CACHE_TTL_SECONDS")
	}
	routeCache := cache.NewSQLRouteCache(conn, time.Duration(ttlSeconds)*time.Second, logger)

	seedPath := config.Get("SEED_PATH", "data/connections.csv")
	if err := initAndSeed(ctx, logger, conn, routeCache, seedPath); err != nil {
		logger.Fatal().Err(err).Msg("init and seed")
	}
}

// newLogger loads .env before reading MEET_LOG_LEVEL so the file can set it.
func newLogger() zerolog.Logger {
	envErr := godotenv.Load()

	logger := logging.New(config.Get("MEET_LOG_LEVEL", "info"), true)
	if envErr != nil {
		logger.Info().Msg("no .env file found (using environment variables)")
	}
	return logger
}

func initAndSeed(ctx context.Context, logger zerolog.Logger, conn *sql.DB, routeCache *cache.SQLRouteCache, seedPath string) error {
	logger.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info().Msg("schema ready")

	logger.Info().Str("path", seedPath).Msg("seeding travel legs")
	if err := repositories.SeedFromCSV(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info().Msg("seeding complete")

	pruned, err := routeCache.Prune(ctx)
	if err != nil {
		return err
	}
	logger.Info().Int64("rows", pruned).Msg("expired route cache entries pruned")

	return nil
}

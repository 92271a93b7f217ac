package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"meeting-host-service/internal/adapters/repositories"
	"meeting-host-service/internal/api/dto"
	"meeting-host-service/internal/config"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/platform/logging"
	"meeting-host-service/internal/services"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// solve ranks meeting hosts for a scenario file against a connections CSV and
// prints the result as JSON.
func main() {
	_ = godotenv.Load()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: solve SCENARIO.json CONNECTIONS.csv [flags]")
		fs.PrintDefaults()
	}

	durationWeight := fs.Float64("duration-weight", cfg.Solver.DurationWeight, "weight for travel time when ranking routes")
	emissionWeight := fs.Float64("emission-weight", cfg.Solver.EmissionWeight, "weight for emissions when ranking routes")
	hostWeights := fs.StringArray("host-weight", nil, "override a host scoring weight as metric=value (repeatable)")
	alternatives := fs.Int("alternatives", 0, "number of alternative host locations to include")
	maxHops := fs.Int("max-hops", cfg.Solver.MaxHops, "maximum legs per route")
	maxRoutes := fs.Int("max-routes", cfg.Solver.MaxRoutes, "maximum Pareto routes kept per office and host")
	workers := fs.Int("workers", cfg.Solver.Workers, "hosts evaluated concurrently")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	logger := logging.New(*logLevel, true)

	sc, err := loadScenario(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("load scenario")
		return 1
	}

	graph, err := services.LoadGraph(ctx, repositories.NewCSVLegRepository(fs.Arg(1)))
	if err != nil {
		logger.Error().Err(err).Msg("load connections")
		return 1
	}

	weights := cfg.Solver.HostWeights
	for _, override := range *hostWeights {
		if err := weights.ParseOverride(override); err != nil {
			logger.Error().Err(err).Msg("parse host weight")
			return 2
		}
	}
	if *alternatives < 0 {
		logger.Error().Int("alternatives", *alternatives).Msg("alternatives must be >= 0")
		return 2
	}
	if *maxHops < 1 || *maxRoutes < 1 {
		logger.Error().Int("max_hops", *maxHops).Int("max_routes", *maxRoutes).Msg("search limits must be >= 1")
		return 2
	}

	solver := services.NewSolver(nil, *workers, logger)
	res, err := solver.Solve(ctx, graph, services.SolveRequest{
		Scenario:     sc,
		Preference:   domain.RoutePreference{DurationWeight: *durationWeight, EmissionWeight: *emissionWeight},
		Weights:      weights,
		Limits:       domain.SearchLimits{MaxHops: *maxHops, MaxRoutes: *maxRoutes},
		Alternatives: *alternatives,
	})
	if err != nil {
		logger.Error().Err(err).Msg("solve")
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error().Err(err).Msg("encode result")
		return 1
	}
	return 0
}

func loadScenario(path string) (domain.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: read %q: %w", path, err)
	}

	var payload dto.ScenarioPayload
	if err := json.Unmarshal(b, &payload); err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: parse %q: %v: %w", path, err, domain.ErrInvalidScenario)
	}

	sc, err := payload.ToDomain()
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	return sc, nil
}

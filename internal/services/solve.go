package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/platform/metrics"
	"meeting-host-service/internal/platform/obs"
	"meeting-host-service/internal/ports"

	"github.com/rs/zerolog"
)

type SolveRequest struct {
	Scenario     domain.Scenario
	Preference   domain.RoutePreference
	Weights      domain.HostWeights
	Limits       domain.SearchLimits
	Alternatives int
}

// Solver ranks candidate hosts for a scenario and renders the winner.
// A Solver is safe for concurrent use; it holds no per-call state.
type Solver struct {
	cache   ports.RouteCache
	workers int
	logger  zerolog.Logger
}

// NewSolver returns a Solver. cache may be nil to always search directly.
func NewSolver(cache ports.RouteCache, workers int, logger zerolog.Logger) *Solver {
	return &Solver{cache: cache, workers: max(workers, 1), logger: logger}
}

// Solve validates the event window, scores every host in g and builds the result.
// The window is checked before any route search runs.
func (s *Solver) Solve(ctx context.Context, g *domain.Graph, req SolveRequest) (_ *domain.Result, err error) {
	defer obs.Time(ctx, s.logger, "solver.Solve")(&err)

	start := time.Now()
	defer func() {
		metrics.SolveLatencyMs.Observe(float64(time.Since(start).Milliseconds()))
		metrics.SolvesTotal.WithLabelValues(solveOutcome(err)).Inc()
	}()

	if g == nil {
		return nil, errors.New("solve: graph must be non-nil")
	}
	if _, _, err := req.Scenario.EventDates(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	hosts := g.CandidateHosts()
	ranked, err := ScoreHosts(ctx, g, req.Scenario, ScoreOptions{
		Preference: req.Preference,
		Weights:    req.Weights,
		Limits:     req.Limits,
		Finder:     s.finder(g, req.Limits),
		Workers:    s.workers,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoFeasibleHost) {
			metrics.HostsEvaluatedTotal.Add(float64(len(hosts)))
			metrics.HostsExcludedTotal.Add(float64(len(hosts)))
		}
		return nil, fmt.Errorf("solve: %w", err)
	}

	metrics.HostsEvaluatedTotal.Add(float64(len(hosts)))
	metrics.HostsExcludedTotal.Add(float64(len(hosts) - len(ranked)))

	s.logger.Info().
		Str("req_id", obs.RequestID(ctx)).
		Int("candidates", len(hosts)).
		Int("feasible", len(ranked)).
		Str("host", ranked[0].Host).
		Float64("score", ranked[0].CompositeScore).
		Msg("hosts ranked")

	res, err := BuildResult(req.Scenario, ranked, req.Alternatives)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return res, nil
}

// finder wraps route search with the optional cache. Cache failures are
// logged and never fail the solve; the search simply runs again.
func (s *Solver) finder(g *domain.Graph, limits domain.SearchLimits) RouteFinder {
	search := func(origin, destination string) []domain.Route {
		metrics.RouteSearchesTotal.Inc()
		return SearchRoutes(g, origin, destination, limits)
	}

	if s.cache == nil {
		return func(_ context.Context, origin, destination string) []domain.Route {
			return search(origin, destination)
		}
	}

	return func(ctx context.Context, origin, destination string) []domain.Route {
		key := ports.RouteKey{
			Fingerprint: g.Fingerprint(),
			MaxHops:     limits.MaxHops,
			MaxRoutes:   limits.MaxRoutes,
			Origin:      origin,
			Destination: destination,
		}

		routes, found, err := s.cache.GetRoutes(ctx, key)
		switch {
		case err != nil:
			metrics.RouteCacheErrorsTotal.WithLabelValues("get").Inc()
			s.logger.Warn().Str("req_id", obs.RequestID(ctx)).Str("key", key.String()).Err(err).Msg("route cache get failed")
		case found:
			metrics.RouteCacheHitsTotal.Inc()
			return routes
		default:
			metrics.RouteCacheMissesTotal.Inc()
		}

		routes = search(origin, destination)
		if err := s.cache.PutRoutes(ctx, key, routes); err != nil {
			metrics.RouteCacheErrorsTotal.WithLabelValues("put").Inc()
			s.logger.Warn().Str("req_id", obs.RequestID(ctx)).Str("key", key.String()).Err(err).Msg("route cache put failed")
		}
		return routes
	}
}

func solveOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNoFeasibleHost):
		return "no_feasible_host"
	case errors.Is(err, domain.ErrWindowTooShort):
		return "window_too_short"
	case errors.Is(err, domain.ErrInvalidWeights):
		return "invalid_weights"
	case errors.Is(err, domain.ErrInvalidScenario):
		return "invalid_scenario"
	default:
		return "error"
	}
}

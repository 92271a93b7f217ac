package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"meeting-host-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// RouteFinder returns the Pareto-optimal routes from origin to destination.
// Implementations must be safe for concurrent use.
type RouteFinder func(ctx context.Context, origin, destination string) []domain.Route

// DirectFinder searches g on every call with the given limits.
func DirectFinder(g *domain.Graph, limits domain.SearchLimits) RouteFinder {
	return func(_ context.Context, origin, destination string) []domain.Route {
		return SearchRoutes(g, origin, destination, limits)
	}
}

type ScoreOptions struct {
	Preference domain.RoutePreference
	Weights    domain.HostWeights
	Limits     domain.SearchLimits
	// Finder defaults to DirectFinder over the scored graph.
	Finder RouteFinder
	// Workers bounds concurrent host evaluations; values < 1 mean 1.
	Workers int
}

// EvaluateHost resolves one route per attending office and aggregates them.
//
// Offices co-located with host travel zero hours without a search. Any office
// that cannot reach host makes the whole host infeasible (ErrNoFeasibleRoute).
// The returned evaluation is not yet scored.
func EvaluateHost(
	ctx context.Context,
	sc domain.Scenario,
	host string,
	pref domain.RoutePreference,
	find RouteFinder,
) (*domain.CandidateEvaluation, error) {
	ev := &domain.CandidateEvaluation{
		Host:        host,
		Routes:      make(map[string]domain.Route),
		OfficeHours: make(map[string]float64),
		OfficeCO2:   make(map[string]float64),
	}

	for _, office := range sc.AttendingOffices() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if office == host {
			ev.Routes[office] = domain.NewRoute(nil)
			ev.OfficeHours[office] = 0
			ev.OfficeCO2[office] = 0
			continue
		}

		routes := find(ctx, office, host)
		if len(routes) == 0 {
			return nil, fmt.Errorf("evaluate host %q: office %q: %w", host, office, domain.ErrNoFeasibleRoute)
		}

		chosen, err := SelectRoute(routes, pref)
		if err != nil {
			return nil, fmt.Errorf("evaluate host %q: office %q: %w", host, office, err)
		}

		// Attendees travel there and back on the same route.
		ev.Routes[office] = chosen
		ev.OfficeHours[office] = chosen.TotalDuration * 2
		ev.OfficeCO2[office] = chosen.TotalCO2 * 2
	}

	ev.Stats = ComputeTravelStats(ev.OfficeHours, sc.Attendees, ev.OfficeCO2)
	return ev, nil
}

// ScoreHosts evaluates every candidate host in g and ranks the feasible ones.
//
// Each positively weighted metric is min-max normalized across the hosts that
// survived this call only, so scores are relative to this candidate set. The
// composite is the weighted mean of normalized metrics, in [0,1], lower is
// better. Hosts are evaluated concurrently; the ranking is a stable sort over
// the sorted host list and does not depend on completion order.
func ScoreHosts(
	ctx context.Context,
	g *domain.Graph,
	sc domain.Scenario,
	opts ScoreOptions,
) ([]domain.CandidateEvaluation, error) {
	if g == nil {
		return nil, errors.New("score hosts: graph must be non-nil")
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("score hosts: %w", err)
	}
	if err := validatePreference(opts.Preference); err != nil {
		return nil, fmt.Errorf("score hosts: %w", err)
	}

	find := opts.Finder
	if find == nil {
		find = DirectFinder(g, opts.Limits)
	}

	hosts := g.CandidateHosts()
	slots := make([]*domain.CandidateEvaluation, len(hosts))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(max(opts.Workers, 1))
	for i, host := range hosts {
		i, host := i, host
		grp.Go(func() error {
			ev, err := EvaluateHost(gctx, sc, host, opts.Preference, find)
			if errors.Is(err, domain.ErrNoFeasibleRoute) {
				return nil
			}
			if err != nil {
				return err
			}
			slots[i] = ev
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("score hosts: %w", err)
	}

	ranked := make([]domain.CandidateEvaluation, 0, len(hosts))
	for _, ev := range slots {
		if ev != nil {
			ranked = append(ranked, *ev)
		}
	}
	if len(ranked) == 0 {
		return nil, fmt.Errorf("score hosts: %d candidate hosts checked: %w", len(hosts), domain.ErrNoFeasibleHost)
	}

	applyScores(ranked, opts.Weights)

	slices.SortStableFunc(ranked, func(a, b domain.CandidateEvaluation) int {
		return cmp.Compare(a.CompositeScore, b.CompositeScore)
	})

	return ranked, nil
}

func applyScores(evals []domain.CandidateEvaluation, weights domain.HostWeights) {
	active := weights.Active()

	normalized := make(map[domain.Metric][]float64, len(active))
	totalWeight := 0.0
	for _, m := range active {
		column := make([]float64, len(evals))
		for i, ev := range evals {
			column[i] = ev.Stats.Value(m)
		}
		normalized[m] = minMaxNormalize(column)
		totalWeight += weights.Weight(m)
	}

	for i := range evals {
		breakdown := make(map[domain.Metric]float64, len(active))
		sum := 0.0
		for _, m := range active {
			component := normalized[m][i] * weights.Weight(m)
			breakdown[m] = component
			sum += component
		}
		evals[i].Breakdown = breakdown
		evals[i].CompositeScore = math.Min(sum/totalWeight, 1)
	}
}

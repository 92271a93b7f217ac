package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	SolveLatencyMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solve_latency_ms",
		Help:    "End-to-end solve latency",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
	SolvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "solves_total",
		Help: "Solve calls by outcome",
	}, []string{"outcome"})
	HostsEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hosts_evaluated_total",
		Help: "Candidate hosts evaluated",
	})
	HostsExcludedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hosts_excluded_total",
		Help: "Candidate hosts excluded because an office could not reach them",
	})
	RouteSearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_searches_total",
		Help: "Pareto route searches executed",
	})
	RouteCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_cache_hits_total",
		Help: "Route sets served from cache",
	})
	RouteCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_cache_misses_total",
		Help: "Route set cache misses",
	})
	RouteCacheErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_cache_errors_total",
		Help: "Route cache failures by operation",
	}, []string{"op"})
)

// Init registers all collectors on a fresh registry.
func Init(logger zerolog.Logger) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	toRegister := []prometheus.Collector{
		SolveLatencyMs, SolvesTotal,
		HostsEvaluatedTotal, HostsExcludedTotal,
		RouteSearchesTotal, RouteCacheHitsTotal, RouteCacheMissesTotal, RouteCacheErrorsTotal,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := reg.Register(c); err != nil {
			logger.Warn().Err(err).Msg("metrics: register collector")
		}
	}
	logger.Info().Msg("prometheus metrics initialized")
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

package api

import (
	"meeting-host-service/internal/api/handlers"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/services"
	"net/http"

	"github.com/rs/zerolog"
)

// Dependencies needed to serve the API.
type RouterDeps struct {
	Solver   *services.Solver
	Graph    *domain.Graph
	Defaults handlers.SolveDefaults
	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
	Logger  zerolog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Graph: deps.Graph}
	hostHandler := &handlers.HostHandler{Graph: deps.Graph}
	solveHandler := &handlers.SolveHandler{
		Solver:   deps.Solver,
		Graph:    deps.Graph,
		Defaults: deps.Defaults,
	}

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/hosts", hostHandler.List)
	mux.HandleFunc("/solve", solveHandler.Solve)
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics)
	}

	return requestIDMiddleware(deps.Logger, loggingMiddleware(mux))
}

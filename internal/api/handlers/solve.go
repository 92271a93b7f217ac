package handlers

import (
	"errors"
	"fmt"
	"meeting-host-service/internal/api/dto"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/services"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	maxHopsLimit   = 8
	maxRoutesLimit = 200
)

// Defaults applied to fields a solve request leaves unset.
type SolveDefaults struct {
	Preference      domain.RoutePreference
	Weights         domain.HostWeights
	Limits          domain.SearchLimits
	MaxAlternatives int
}

type SolveHandler struct {
	Solver   *services.Solver
	Graph    *domain.Graph
	Defaults SolveDefaults
}

// Solve ranks candidate hosts for the posted scenario and returns the winner.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq, err := h.toServiceRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Solver.Solve(r.Context(), h.Graph, svcReq)
	if err != nil {
		status, msg := solveErrorStatus(err)
		if status == http.StatusInternalServerError {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("solve failed")
		}
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SolveHandler) toServiceRequest(req dto.SolveRequest) (services.SolveRequest, error) {
	sc, err := req.Scenario.ToDomain()
	if err != nil {
		return services.SolveRequest{}, err
	}

	pref := h.Defaults.Preference
	if req.DurationWeight != nil {
		pref.DurationWeight = *req.DurationWeight
	}
	if req.EmissionWeight != nil {
		pref.EmissionWeight = *req.EmissionWeight
	}

	weights := h.Defaults.Weights
	if err := weights.Apply(req.HostWeights); err != nil {
		return services.SolveRequest{}, err
	}

	limits := h.Defaults.Limits
	if req.MaxHops != 0 {
		limits.MaxHops = req.MaxHops
	}
	if req.MaxRoutes != 0 {
		limits.MaxRoutes = req.MaxRoutes
	}
	if limits.MaxHops < 1 || limits.MaxHops > maxHopsLimit {
		return services.SolveRequest{}, fmt.Errorf("max_hops must be between 1 and %d", maxHopsLimit)
	}
	if limits.MaxRoutes < 1 || limits.MaxRoutes > maxRoutesLimit {
		return services.SolveRequest{}, fmt.Errorf("max_routes must be between 1 and %d", maxRoutesLimit)
	}

	if req.Alternatives < 0 || req.Alternatives > h.Defaults.MaxAlternatives {
		return services.SolveRequest{}, fmt.Errorf("alternatives must be between 0 and %d", h.Defaults.MaxAlternatives)
	}

	return services.SolveRequest{
		Scenario:     sc,
		Preference:   pref,
		Weights:      weights,
		Limits:       limits,
		Alternatives: req.Alternatives,
	}, nil
}

// Map solver errors onto HTTP statuses without leaking internals.
func solveErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidScenario), errors.Is(err, domain.ErrInvalidWeights):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrWindowTooShort):
		return http.StatusUnprocessableEntity, domain.ErrWindowTooShort.Error()
	case errors.Is(err, domain.ErrNoFeasibleHost):
		return http.StatusNotFound, domain.ErrNoFeasibleHost.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

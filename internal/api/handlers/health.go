package handlers

import (
	"meeting-host-service/internal/domain"
	"net/http"
)

// HealthHandler reports liveness together with the size of the loaded travel graph.
type HealthHandler struct {
	Graph *domain.Graph
}

type healthResponse struct {
	Status string `json:"status"`
	Legs   int    `json:"legs"`
	Hosts  int    `json:"hosts"`
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// A server without a graph cannot answer /solve.
	if h.Graph == nil || h.Graph.LegCount() == 0 {
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "no travel graph loaded"})
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{
		Status: "ok",
		Legs:   h.Graph.LegCount(),
		Hosts:  len(h.Graph.CandidateHosts()),
	})
}

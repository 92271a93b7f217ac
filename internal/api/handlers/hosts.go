package handlers

import (
	"meeting-host-service/internal/api/dto"
	"meeting-host-service/internal/domain"
	"net/http"
)

// HostHandler exposes the candidate host set derived from the loaded dataset.
type HostHandler struct {
	Graph *domain.Graph
}

func (h *HostHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HostsResponse{
		Hosts:    h.Graph.CandidateHosts(),
		LegCount: h.Graph.LegCount(),
	})
}

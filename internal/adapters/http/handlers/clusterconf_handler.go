package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// ClusterConfHandler serves the read-only cluster_conf endpoints.
type ClusterConfHandler struct {
	svc ports.ConfigService
}

// NewClusterConfHandler creates a new ClusterConfHandler with the given service port.
func NewClusterConfHandler(svc ports.ConfigService) *ClusterConfHandler {
	return &ClusterConfHandler{svc: svc}
}

// List handles GET /api/cluster_conf.
func (h *ClusterConfHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOptionListResponse(opts))
}

// Get handles GET /api/cluster_conf/{name}.
func (h *ClusterConfHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	opt, err := h.svc.Get(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOptionResponse(opt))
}

// Filter handles GET /api/cluster_conf/filter?names=a,b.
func (h *ClusterConfHandler) Filter(w http.ResponseWriter, r *http.Request) {
	names, err := parseNames(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	opts, err := h.svc.Filter(r.Context(), names)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOptionListResponse(opts))
}

package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/clusterconf/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

// AdminHandler serves the administrative write channel. Writes it accepts
// reach cluster_conf readers only after the next snapshot refresh.
type AdminHandler struct {
	svc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler with the given service port.
func NewAdminHandler(svc ports.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Dump handles GET /api/admin/config.
func (h *AdminHandler) Dump(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Dump(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverrideListResponse(list))
}

// Set handles PUT /api/admin/config/{section}/{name}.
func (h *AdminHandler) Set(w http.ResponseWriter, r *http.Request) {
	section, name, err := sectionAndName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetOverrideRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	o, err := h.svc.Set(r.Context(), section, name, *req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverrideResponse(o))
}

// Remove handles DELETE /api/admin/config/{section}/{name}.
func (h *AdminHandler) Remove(w http.ResponseWriter, r *http.Request) {
	section, name, err := sectionAndName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Remove(r.Context(), section, name); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkSet handles POST /api/admin/config/bulk.
func (h *AdminHandler) BulkSet(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkSetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkSet(r.Context(), req.ToSetRequests())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkSetResponse(result))
}

// Apply handles POST /api/admin/config/apply.
func (h *AdminHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Apply(r.Context(), req.ToChanges()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

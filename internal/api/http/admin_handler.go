package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alumni-jobboard-backend/internal/domain"
)

func (h *Handler) handleListVerifications(w http.ResponseWriter, r *http.Request) {
	status := domain.VerificationStatus(r.URL.Query().Get("status"))
	profiles, err := h.svc.Admin.ListVerifications(r.Context(), CallerID(r.Context()), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []domain.VerificationProfile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.Admin.ListMembers(r.Context(), CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["accountID"]
	if err := h.svc.Admin.Approve(r.Context(), CallerID(r.Context()), target); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"account_id": target, "status": string(domain.VerificationApproved)})
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["accountID"]
	if err := h.svc.Admin.Reject(r.Context(), CallerID(r.Context()), target); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"account_id": target, "status": string(domain.VerificationRejected)})
}

func (h *Handler) handleSetRole(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["accountID"]
	var req struct {
		Role domain.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Roles.SetRole(r.Context(), CallerID(r.Context()), target, req.Role); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"account_id": target, "role": string(req.Role)})
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["accountID"]
	var req struct {
		Status domain.VerificationStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Verification.SetStatus(r.Context(), CallerID(r.Context()), target, req.Status); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"account_id": target, "status": string(req.Status)})
}

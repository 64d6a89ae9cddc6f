package http

import (
	"net/http"

	"alumni-jobboard-backend/internal/domain"
)

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (h *Handler) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Verification.GetProfile(r.Context(), CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleMyRole reports the effective role; an account with no assignment
// reads as alumni.
func (h *Handler) handleMyRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.svc.Roles.GetEffectiveRole(r.Context(), CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Role{"role": role.OrDefault()})
}

func (h *Handler) handleMyVerification(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Verification.GetStatus(r.Context(), CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.VerificationStatus{"status": status})
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	page, size := queryPage(r)
	notes, total, err := h.svc.Notifications.GetNotifications(r.Context(), CallerID(r.Context()), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, notificationListResponse{Notifications: notes, Total: total})
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Notifications.MarkAsRead(r.Context(), CallerID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"read": id})
}

func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Community.Directory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Community.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

package http

import (
	"net/http"

	"alumni-jobboard-backend/internal/domain"
)

type applyRequest struct {
	CoverLetter     string `json:"cover_letter"`
	ResumeReference string `json:"resume_reference"`
}

type decideRequest struct {
	Outcome domain.ApplicationStatus `json:"outcome"`
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.svc.Applications.Submit(r.Context(), CallerID(r.Context()), jobID, req.CoverLetter, req.ResumeReference)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	apps, err := h.svc.Applications.ListForJob(r.Context(), jobID, CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if apps == nil {
		apps = []domain.ApplicationDetail{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *Handler) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.Applications.ListForApplicant(r.Context(), CallerID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if apps == nil {
		apps = []domain.ApplicationSummary{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *Handler) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.svc.Applications.Get(r.Context(), CallerID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req decideRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.svc.Applications.Decide(r.Context(), CallerID(r.Context()), id, req.Outcome)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

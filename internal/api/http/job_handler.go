package http

import (
	"net/http"

	"alumni-jobboard-backend/internal/domain"
)

type jobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (j jobRequest) toDomain(id int32) *domain.JobPosting {
	return &domain.JobPosting{
		ID:          id,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Type:        j.Type,
		Description: j.Description,
	}
}

type jobListResponse struct {
	Jobs  []domain.JobPosting `json:"jobs"`
	Total int                 `json:"total"`
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	page, size := queryPage(r)
	jobs, total, err := h.svc.Jobs.ListActive(r.Context(), CallerID(r.Context()), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	writeJSON(w, http.StatusOK, jobListResponse{Jobs: jobs, Total: total})
}

func (h *Handler) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	job, err := h.svc.Jobs.Get(r.Context(), CallerID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	job := req.toDomain(0)
	if err := h.svc.Jobs.Create(r.Context(), CallerID(r.Context()), job); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *Handler) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	job := req.toDomain(id)
	if err := h.svc.Jobs.Update(r.Context(), CallerID(r.Context()), job); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) handleSetJobActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req struct {
		Active *bool `json:"active"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Active == nil {
		writeError(w, r, domain.NewError(domain.KindInvalidInput, "active is required", nil))
		return
	}
	job, err := h.svc.Jobs.SetActive(r.Context(), CallerID(r.Context()), id, *req.Active)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt32(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Jobs.Delete(r.Context(), CallerID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"deleted": id})
}

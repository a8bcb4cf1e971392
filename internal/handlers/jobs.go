package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"alexjohnson.dev/internal/services"
)

// JobHandler handles job-related endpoints
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(js *services.JobService) *JobHandler {
	return &JobHandler{jobService: js}
}

// ListJobs handles GET /api/jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.jobService.GetAll())
}

// GetJob handles GET /api/jobs/{slug}
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	res := h.jobService.GetBySlug(chi.URLParam(r, "slug"))
	annotateResolution(r, "job", res.Slug, res.Found())
	if !res.Found() {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	respondJSON(w, http.StatusOK, res.Record)
}

package handler

import (
	"net/http"
	"strings"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

// JobsHandler serves the async job handles recorded by the pool.
type JobsHandler struct {
	jobs *store.JobStore
}

func NewJobsHandler(jobs *store.JobStore) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List retrieves all jobs
// @Summary List all jobs
// @Description Get every submitted job with its current status, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /jobs [get]
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Get retrieves one job by ID
// @Summary Get job
// @Description Retrieve status, result and error detail for one job handle
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} map[string]interface{} "Job ID is required"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id} [get]
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	// Extract job ID from URL path
	path := r.URL.Path
	prefix := "/api/v1/jobs/"

	if !strings.HasPrefix(path, prefix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	jobID := path[len(prefix):]
	if jobID == "" {
		http.Error(w, "Job ID is required", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.Get(jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

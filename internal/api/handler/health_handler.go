package handler

import (
	"net/http"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

// HealthHandler reports whether both backing stores answer.
type HealthHandler struct {
	docs *store.Store
	jobs *store.JobStore
}

func NewHealthHandler(docs *store.Store, jobs *store.JobStore) *HealthHandler {
	return &HealthHandler{docs: docs, jobs: jobs}
}

// Check reports service health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Failure 503 {object} map[string]interface{} "A backing store is unreachable"
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.docs.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	if err := h.jobs.Ping(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

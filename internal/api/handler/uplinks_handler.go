package handler

import (
	"net/http"
	"strconv"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/job"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
)

// UplinksHandler exposes the uplinks domain: ingestion, reports, the
// hot-temperature export, the full async run and the activity log.
type UplinksHandler struct {
	job  *job.UplinksJob
	pool *job.Pool
	sink *logsink.Sink
}

func NewUplinksHandler(uplinks *job.UplinksJob, pool *job.Pool, sink *logsink.Sink) *UplinksHandler {
	return &UplinksHandler{job: uplinks, pool: pool, sink: sink}
}

// Ingest loads the device CSV into the uplinks collection
// @Summary Ingest uplink devices CSV
// @Description Load the uplink devices CSV snapshot, skipping dev_eui values already stored
// @Tags uplinks
// @Produce json
// @Success 200 {object} map[string]interface{} "Insert count"
// @Failure 500 {object} map[string]interface{} "Ingestion failed"
// @Router /uplinks/ingest [post]
func (h *UplinksHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	res, err := h.job.Ingest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Ingestion completed",
		"inserted": res.Inserted,
	})
}

// Top returns the devices with the most uplink documents
// @Summary Top devices by uplink count
// @Tags uplinks
// @Produce json
// @Param n query int false "Number of devices" default(10)
// @Success 200 {array} model.DeviceCount
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /uplinks/top [get]
func (h *UplinksHandler) Top(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			n = parsed
		}
	}

	out, err := h.job.TopDevices(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// AvgSignal returns per-device mean rssi and snr
// @Summary Average rssi and snr per device
// @Tags uplinks
// @Produce json
// @Success 200 {array} model.DeviceSignal
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /uplinks/avg-rssi-snr [get]
func (h *UplinksHandler) AvgSignal(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.AvgSignal(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// AvgWeather returns per-gateway mean temperature and humidity
// @Summary Average temperature and humidity per gateway
// @Tags uplinks
// @Produce json
// @Success 200 {array} model.GatewayWeather
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /uplinks/avg-weather [get]
func (h *UplinksHandler) AvgWeather(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.AvgWeather(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Duplicates returns devices holding two or more documents
// @Summary Devices with duplicate documents
// @Tags uplinks
// @Produce json
// @Success 200 {array} model.DeviceCount
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /uplinks/duplicates [get]
func (h *UplinksHandler) Duplicates(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.Duplicates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ExportHotTemps writes documents above the temperature threshold to disk
// @Summary Export hot-temperature documents
// @Description Write every document with temperature above 35 to the fixed export file
// @Tags uplinks
// @Produce json
// @Success 200 {object} map[string]interface{} "Export count and path"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /uplinks/export-hot-temps [post]
func (h *UplinksHandler) ExportHotTemps(w http.ResponseWriter, r *http.Request) {
	res, err := h.job.ExportHotTemps(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Export completed",
		"exported": res.Exported,
		"path":     res.Path,
	})
}

// RunAllAsync queues ingestion plus every uplinks report as one job
// @Summary Run the full uplinks pipeline asynchronously
// @Tags uplinks
// @Produce json
// @Success 202 {object} map[string]interface{} "Job handle"
// @Failure 500 {object} map[string]interface{} "Submit failed"
// @Router /uplinks/run-all-async [post]
func (h *UplinksHandler) RunAllAsync(w http.ResponseWriter, r *http.Request) {
	id, err := h.pool.Submit(h.job)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "Full uplinks run queued",
		"task_id": id,
		"status":  "pending",
	})
}

// Logs returns the uplinks activity log
// @Summary Uplinks activity log
// @Tags uplinks
// @Produce plain
// @Success 200 {string} string "Log content"
// @Failure 404 {object} map[string]interface{} "No log written yet"
// @Router /uplinks/logs [get]
func (h *UplinksHandler) Logs(w http.ResponseWriter, r *http.Request) {
	content, err := h.sink.Read()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(content))
}

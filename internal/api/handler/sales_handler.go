package handler

import (
	"net/http"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/job"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
)

// SalesHandler exposes the sales domain: ingestion, the revenue reports,
// the full async run and the activity log.
type SalesHandler struct {
	job  *job.SalesJob
	pool *job.Pool
	sink *logsink.Sink
}

func NewSalesHandler(sales *job.SalesJob, pool *job.Pool, sink *logsink.Sink) *SalesHandler {
	return &SalesHandler{job: sales, pool: pool, sink: sink}
}

// Ingest loads the orders CSV into the sales collection
// @Summary Ingest orders CSV
// @Description Load the orders CSV snapshot, skipping (Order ID, Product ID) pairs already stored
// @Tags sales
// @Produce json
// @Success 200 {object} map[string]interface{} "Insert count"
// @Failure 500 {object} map[string]interface{} "Ingestion failed"
// @Router /sales/ingest [post]
func (h *SalesHandler) Ingest(w http.ResponseWriter, r *http.Request) {
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

// TopProducts returns the five products with the highest summed sales
// @Summary Top five products by gross sales
// @Tags sales
// @Produce json
// @Success 200 {array} model.ProductSales
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /sales/top-products [get]
func (h *SalesHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.TopProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// MonthlyRevenue returns summed sales per calendar month
// @Summary Monthly revenue
// @Tags sales
// @Produce json
// @Success 200 {array} model.MonthRevenue
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /sales/monthly-revenue [get]
func (h *SalesHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.MonthlyRevenue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// AvgByCategory returns mean sales per category and sub-category
// @Summary Average sales by category and sub-category
// @Tags sales
// @Produce json
// @Success 200 {array} model.CategoryAvg
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /sales/avg-by-category [get]
func (h *SalesHandler) AvgByCategory(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.AvgByCategory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// AnnualGrowth returns yearly totals with year-over-year growth
// @Summary Annual sales growth
// @Tags sales
// @Produce json
// @Success 200 {array} model.YearGrowth
// @Failure 500 {object} map[string]interface{} "Aggregation failed"
// @Router /sales/annual-growth [get]
func (h *SalesHandler) AnnualGrowth(w http.ResponseWriter, r *http.Request) {
	out, err := h.job.AnnualGrowth(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// RunAllAsync queues ingestion plus every sales report as one job
// @Summary Run the full sales pipeline asynchronously
// @Tags sales
// @Produce json
// @Success 202 {object} map[string]interface{} "Job handle"
// @Failure 500 {object} map[string]interface{} "Submit failed"
// @Router /sales/run-all-async [post]
func (h *SalesHandler) RunAllAsync(w http.ResponseWriter, r *http.Request) {
	id, err := h.pool.Submit(h.job)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "Full sales run queued",
		"task_id": id,
		"status":  "pending",
	})
}

// Logs returns the sales activity log
// @Summary Sales activity log
// @Tags sales
// @Produce plain
// @Success 200 {string} string "Log content"
// @Failure 404 {object} map[string]interface{} "No log written yet"
// @Router /sales/logs [get]
func (h *SalesHandler) Logs(w http.ResponseWriter, r *http.Request) {
	content, err := h.sink.Read()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(content))
}

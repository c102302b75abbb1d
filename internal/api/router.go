package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/api/handler"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/router"
)

// Handlers carries the constructed handlers for route registration.
type Handlers struct {
	Uplinks *handler.UplinksHandler
	Sales   *handler.SalesHandler
	Jobs    *handler.JobsHandler
	Health  *handler.HealthHandler
}

func RegisterRoutes(r *router.Router, h Handlers) {
	r.POST("/api/v1/uplinks/ingest", h.Uplinks.Ingest)
	r.GET("/api/v1/uplinks/top", h.Uplinks.Top)
	r.GET("/api/v1/uplinks/avg-rssi-snr", h.Uplinks.AvgSignal)
	r.GET("/api/v1/uplinks/avg-weather", h.Uplinks.AvgWeather)
	r.GET("/api/v1/uplinks/duplicates", h.Uplinks.Duplicates)
	r.POST("/api/v1/uplinks/export-hot-temps", h.Uplinks.ExportHotTemps)
	r.POST("/api/v1/uplinks/run-all-async", h.Uplinks.RunAllAsync)
	r.GET("/api/v1/uplinks/logs", h.Uplinks.Logs)

	r.POST("/api/v1/sales/ingest", h.Sales.Ingest)
	r.GET("/api/v1/sales/top-products", h.Sales.TopProducts)
	r.GET("/api/v1/sales/monthly-revenue", h.Sales.MonthlyRevenue)
	r.GET("/api/v1/sales/avg-by-category", h.Sales.AvgByCategory)
	r.GET("/api/v1/sales/annual-growth", h.Sales.AnnualGrowth)
	r.POST("/api/v1/sales/run-all-async", h.Sales.RunAllAsync)
	r.GET("/api/v1/sales/logs", h.Sales.Logs)

	r.GET("/api/v1/jobs", h.Jobs.List)
	// Generic job route last
	r.GET("/api/v1/jobs/*", h.Jobs.Get)

	r.GET("/health", h.Health.Check)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}

package model

// Document is a schema-agnostic map for any stored record.
// Extra CSV columns pass through ingestion untouched.
type Document map[string]interface{}

// IngestResult reports how many rows an ingestion call actually inserted.
type IngestResult struct {
	Inserted int `json:"inserted"`
}

// ExportResult reports the outcome of a file export.
type ExportResult struct {
	Exported int    `json:"exported"`
	Path     string `json:"path"`
}

// DeviceCount is one group of a per-device document count.
type DeviceCount struct {
	DeviceID string `json:"device_id"`
	Count    int    `json:"count"`
}

// DeviceSignal carries per-device mean signal quality.
type DeviceSignal struct {
	DeviceID string  `json:"device_id"`
	AvgRSSI  float64 `json:"avg_rssi"`
	AvgSNR   float64 `json:"avg_snr"`
}

// GatewayWeather carries per-gateway mean weather readings.
type GatewayWeather struct {
	GatewayID   string  `json:"gateway_id"`
	AvgTemp     float64 `json:"avg_temp"`
	AvgHumidity float64 `json:"avg_humidity"`
}

// ProductSales is one group of summed sales per product.
type ProductSales struct {
	ProductID string  `json:"product_id"`
	GrossSale float64 `json:"gross_sale"`
}

// MonthRevenue is the summed revenue for one "YYYY-MM" month.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"monthly_revenue"`
}

// SubCategoryAvg is the mean sales for one sub-category.
type SubCategoryAvg struct {
	SubCategory string  `json:"sub_category"`
	AvgSales    float64 `json:"avg_sales"`
}

// CategoryAvg groups sub-category averages under their category.
type CategoryAvg struct {
	Category      string           `json:"category"`
	SubCategories []SubCategoryAvg `json:"sub_categories"`
}

// YearGrowth is one year's total sales with growth against the previous
// year. GrowthPct is nil for the first year in the series.
type YearGrowth struct {
	Year       string   `json:"year"`
	TotalSales float64  `json:"total_sales"`
	GrowthPct  *float64 `json:"growth_pct"`
}

// JobResult maps report name to its computed value. It is produced fresh on
// every job run and never persisted as an entity, only returned or stored
// against the job handle.
type JobResult map[string]interface{}

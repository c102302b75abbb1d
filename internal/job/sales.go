package job

import (
	"context"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/engine"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
)

// SalesJob drives the sales domain: order CSV ingestion and the revenue
// report catalog, with every outcome appended to the sales activity log.
type SalesJob struct {
	ingestor *engine.Ingestor
	reports  *engine.SalesReports
	sink     *logsink.Sink
	csvPath  string
}

func NewSalesJob(ingestor *engine.Ingestor, reports *engine.SalesReports, sink *logsink.Sink, csvPath string) *SalesJob {
	return &SalesJob{
		ingestor: ingestor,
		reports:  reports,
		sink:     sink,
		csvPath:  csvPath,
	}
}

func (j *SalesJob) Domain() string {
	return DomainSales
}

// Ingest loads the orders CSV snapshot, skipping rows whose
// (Order ID, Product ID) pair is already stored.
func (j *SalesJob) Ingest(ctx context.Context) (model.IngestResult, error) {
	res, err := j.ingestor.Ingest(ctx, j.csvPath)
	if err != nil {
		j.sink.Errorf("Error in ingest_data: %v", err)
		return model.IngestResult{}, err
	}
	if res.Inserted == 0 {
		j.sink.Infof("No new entries to insert.")
	} else {
		j.sink.Infof("Inserted %d in collection sales.", res.Inserted)
	}
	return res, nil
}

// TopProducts returns the five products with the highest summed sales.
func (j *SalesJob) TopProducts(ctx context.Context) ([]model.ProductSales, error) {
	out, err := j.reports.TopFive(ctx)
	if err != nil {
		j.sink.Errorf("Error in top_five: %v", err)
		return nil, err
	}
	j.sink.Infof("Displayed top 5 products.")
	return out, nil
}

// MonthlyRevenue returns the summed sales per calendar month.
func (j *SalesJob) MonthlyRevenue(ctx context.Context) ([]model.MonthRevenue, error) {
	out, err := j.reports.MonthlyRevenue(ctx)
	if err != nil {
		j.sink.Errorf("Error in monthly_revenue: %v", err)
		return nil, err
	}
	j.sink.Infof("Displayed monthly revenue.")
	return out, nil
}

// AvgByCategory returns the mean sales per category and sub-category.
func (j *SalesJob) AvgByCategory(ctx context.Context) ([]model.CategoryAvg, error) {
	out, err := j.reports.AvgSales(ctx)
	if err != nil {
		j.sink.Errorf("Error in avg_sales: %v", err)
		return nil, err
	}
	j.sink.Infof("Displayed average sales by category and sub-category.")
	return out, nil
}

// AnnualGrowth returns the yearly sales totals with year-over-year growth.
func (j *SalesJob) AnnualGrowth(ctx context.Context) ([]model.YearGrowth, error) {
	out, err := j.reports.AnnualGrowth(ctx)
	if err != nil {
		j.sink.Errorf("Error in annual_growth: %v", err)
		return nil, err
	}
	j.sink.Infof("Displayed annual growth.")
	return out, nil
}

// RunAll ingests the CSV and then runs every sales report in a fixed order.
// The first failure aborts the run; monthly revenue is truncated to its
// first ten months in the stored result.
func (j *SalesJob) RunAll(ctx context.Context) (model.JobResult, error) {
	ingest, err := j.Ingest(ctx)
	if err != nil {
		return nil, err
	}

	top, err := j.TopProducts(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := j.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := j.AvgByCategory(ctx)
	if err != nil {
		return nil, err
	}
	growth, err := j.AnnualGrowth(ctx)
	if err != nil {
		return nil, err
	}

	return model.JobResult{
		"ingest":          ingest,
		"top5":            top,
		"monthly_revenue": firstN(monthly, 10),
		"avg_sales":       avg,
		"annual_growth":   growth,
	}, nil
}

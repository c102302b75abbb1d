package job

import (
	"context"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/engine"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
)

// Domain names as stored on jobs and used for log file naming.
const (
	DomainUplinks = "uplinks"
	DomainSales   = "sales"
)

// UplinksJob drives the uplinks domain: CSV ingestion, the report catalog
// and the hot-temperature export. Every invocation outcome is appended to
// the domain's activity log, whether the call came from a handler, the
// scheduler or a queued run.
type UplinksJob struct {
	ingestor   *engine.Ingestor
	reports    *engine.UplinkReports
	sink       *logsink.Sink
	csvPath    string
	exportPath string
}

func NewUplinksJob(ingestor *engine.Ingestor, reports *engine.UplinkReports, sink *logsink.Sink, csvPath, exportPath string) *UplinksJob {
	return &UplinksJob{
		ingestor:   ingestor,
		reports:    reports,
		sink:       sink,
		csvPath:    csvPath,
		exportPath: exportPath,
	}
}

func (j *UplinksJob) Domain() string {
	return DomainUplinks
}

// Ingest loads the device CSV snapshot, skipping dev_eui values already
// stored.
func (j *UplinksJob) Ingest(ctx context.Context) (model.IngestResult, error) {
	res, err := j.ingestor.Ingest(ctx, j.csvPath)
	if err != nil {
		j.sink.Errorf("Error in ingest_data: %v", err)
		return model.IngestResult{}, err
	}
	if res.Inserted == 0 {
		j.sink.Infof("No new entries to insert.")
	} else {
		j.sink.Infof("Inserted %d new entries into collection uplinks.", res.Inserted)
	}
	return res, nil
}

// TopDevices returns the n devices with the most uplink documents.
func (j *UplinksJob) TopDevices(ctx context.Context, n int) ([]model.DeviceCount, error) {
	out, err := j.reports.HighestUplinks(ctx, n)
	if err != nil {
		j.sink.Errorf("Error in highest_uplinks: %v", err)
		return nil, err
	}
	j.sink.Infof("Fetched top %d devices with highest uplinks.", n)
	return out, nil
}

// AvgSignal returns the per-device mean rssi and snr.
func (j *UplinksJob) AvgSignal(ctx context.Context) ([]model.DeviceSignal, error) {
	out, err := j.reports.AvgRSSISNR(ctx)
	if err != nil {
		j.sink.Errorf("Error in avg_rssi_snr: %v", err)
		return nil, err
	}
	j.sink.Infof("%d unique devices found, avg rssi and snr calculated.", len(out))
	return out, nil
}

// AvgWeather returns the per-gateway mean temperature and humidity.
func (j *UplinksJob) AvgWeather(ctx context.Context) ([]model.GatewayWeather, error) {
	out, err := j.reports.AvgWeather(ctx)
	if err != nil {
		j.sink.Errorf("Error in avg_weather: %v", err)
		return nil, err
	}
	j.sink.Infof("%d total records after getting avg temperature and humidity for each gateway_id.", len(out))
	return out, nil
}

// Duplicates returns the devices holding two or more documents.
func (j *UplinksJob) Duplicates(ctx context.Context) ([]model.DeviceCount, error) {
	out, err := j.reports.Duplicates(ctx)
	if err != nil {
		j.sink.Errorf("Error in get_duplicates: %v", err)
		return nil, err
	}
	j.sink.Infof("There are %d device_ids with duplicate documents.", len(out))
	return out, nil
}

// ExportHotTemps writes every document above the temperature threshold to
// the fixed export file.
func (j *UplinksJob) ExportHotTemps(ctx context.Context) (model.ExportResult, error) {
	res, err := j.reports.ExportHotTemps(ctx, j.exportPath)
	if err != nil {
		j.sink.Errorf("Error in export_hot_temps: %v", err)
		return model.ExportResult{}, err
	}
	j.sink.Infof("%d documents exported to %s", res.Exported, res.Path)
	return res, nil
}

// RunAll ingests the CSV and then runs every uplinks report plus the
// export, in a fixed order. The first failure aborts the run; the result
// keeps the list reports truncated to their first ten entries.
func (j *UplinksJob) RunAll(ctx context.Context) (model.JobResult, error) {
	ingest, err := j.Ingest(ctx)
	if err != nil {
		return nil, err
	}

	top, err := j.TopDevices(ctx, 10)
	if err != nil {
		return nil, err
	}
	signal, err := j.AvgSignal(ctx)
	if err != nil {
		return nil, err
	}
	weather, err := j.AvgWeather(ctx)
	if err != nil {
		return nil, err
	}
	duplicates, err := j.Duplicates(ctx)
	if err != nil {
		return nil, err
	}
	export, err := j.ExportHotTemps(ctx)
	if err != nil {
		return nil, err
	}

	return model.JobResult{
		"ingest":             ingest,
		"top10":              top,
		"avg_rssi_snr_top10": firstN(signal, 10),
		"avg_weather_top10":  firstN(weather, 10),
		"duplicates_top10":   firstN(duplicates, 10),
		"export":             export,
	}, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

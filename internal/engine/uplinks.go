package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

// hotTempThreshold is the strict lower bound for the hot-temperature export.
const hotTempThreshold = 35.0

// UplinkReports is the fixed, read-only report catalog over the uplinks
// collection. Equal-count rankings break ties on ascending ID so the output
// order is deterministic.
type UplinkReports struct {
	coll store.Collection
}

func NewUplinkReports(coll store.Collection) *UplinkReports {
	return &UplinkReports{coll: coll}
}

// HighestUplinks returns the n devices with the most uplink documents.
func (r *UplinkReports) HighestUplinks(ctx context.Context, n int) ([]model.DeviceCount, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"device_id"}})
	if err != nil {
		return nil, fmt.Errorf("%w: highest_uplinks: %v", ErrAggregation, err)
	}

	groups := groupByField(docs, "device_id")
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].N != groups[j].N {
			return groups[i].N > groups[j].N
		}
		return groups[i].Key < groups[j].Key
	})

	if n < len(groups) {
		groups = groups[:n]
	}

	out := make([]model.DeviceCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.DeviceCount{DeviceID: g.Key, Count: g.N})
	}
	return out, nil
}

// AvgRSSISNR returns the mean rssi and snr per device, worst signal first.
func (r *UplinkReports) AvgRSSISNR(ctx context.Context) ([]model.DeviceSignal, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"device_id", "rssi", "snr"}})
	if err != nil {
		return nil, fmt.Errorf("%w: avg_rssi_snr: %v", ErrAggregation, err)
	}

	groups := groupByField(docs, "device_id", "rssi", "snr")
	out := make([]model.DeviceSignal, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.DeviceSignal{
			DeviceID: g.Key,
			AvgRSSI:  g.Avg("rssi"),
			AvgSNR:   g.Avg("snr"),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRSSI != out[j].AvgRSSI {
			return out[i].AvgRSSI < out[j].AvgRSSI
		}
		if out[i].AvgSNR != out[j].AvgSNR {
			return out[i].AvgSNR < out[j].AvgSNR
		}
		return out[i].DeviceID < out[j].DeviceID
	})
	return out, nil
}

// AvgWeather returns the mean temperature and humidity per gateway, coldest
// first.
func (r *UplinkReports) AvgWeather(ctx context.Context) ([]model.GatewayWeather, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"gateway_id", "temperature", "humidity"}})
	if err != nil {
		return nil, fmt.Errorf("%w: avg_weather: %v", ErrAggregation, err)
	}

	groups := groupByField(docs, "gateway_id", "temperature", "humidity")
	out := make([]model.GatewayWeather, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.GatewayWeather{
			GatewayID:   g.Key,
			AvgTemp:     g.Avg("temperature"),
			AvgHumidity: g.Avg("humidity"),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgTemp != out[j].AvgTemp {
			return out[i].AvgTemp < out[j].AvgTemp
		}
		return out[i].GatewayID < out[j].GatewayID
	})
	return out, nil
}

// Duplicates returns the devices holding two or more documents, most
// duplicated first.
func (r *UplinkReports) Duplicates(ctx context.Context) ([]model.DeviceCount, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"device_id"}})
	if err != nil {
		return nil, fmt.Errorf("%w: get_duplicates: %v", ErrAggregation, err)
	}

	groups := groupByField(docs, "device_id")
	out := make([]model.DeviceCount, 0)
	for _, g := range groups {
		if g.N >= 2 {
			out = append(out, model.DeviceCount{DeviceID: g.Key, Count: g.N})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].DeviceID < out[j].DeviceID
	})
	return out, nil
}

// ExportHotTemps writes every document with temperature strictly above 35,
// projected to device_id/latitude/longitude/temperature, as a pretty-printed
// JSON array at path. Parent directories are created and an existing file is
// overwritten.
func (r *UplinkReports) ExportHotTemps(ctx context.Context, path string) (model.ExportResult, error) {
	docs, err := r.coll.Find(ctx, store.Query{
		Gt:     map[string]float64{"temperature": hotTempThreshold},
		Fields: []string{"device_id", "latitude", "longitude", "temperature"},
	})
	if err != nil {
		return model.ExportResult{}, fmt.Errorf("%w: export_hot_temps: %v", ErrAggregation, err)
	}
	if docs == nil {
		docs = []model.Document{}
	}

	payload, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return model.ExportResult{}, fmt.Errorf("%w: export_hot_temps: encode: %v", ErrAggregation, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return model.ExportResult{}, fmt.Errorf("%w: export_hot_temps: %v", ErrAggregation, err)
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return model.ExportResult{}, fmt.Errorf("%w: export_hot_temps: %v", ErrAggregation, err)
	}

	return model.ExportResult{Exported: len(docs), Path: path}, nil
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/api/handler"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/engine"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/job"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/router"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

type fakeCollection struct {
	docs []model.Document
}

func (c *fakeCollection) Find(_ context.Context, q store.Query) ([]model.Document, error) {
	var out []model.Document
	for _, doc := range c.docs {
		keep := true
		for field, min := range q.Gt {
			if !(utils.Numeric(doc[field]) > min) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		if len(q.Fields) == 0 {
			out = append(out, doc)
			continue
		}
		projected := make(model.Document, len(q.Fields))
		for _, field := range q.Fields {
			if v, ok := doc[field]; ok {
				projected[field] = v
			}
		}
		out = append(out, projected)
	}
	return out, nil
}

func (c *fakeCollection) InsertMany(_ context.Context, docs []model.Document) (int, error) {
	c.docs = append(c.docs, docs...)
	return len(docs), nil
}

type testAPI struct {
	router *router.Router
	jobs   *store.JobStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	dir := t.TempDir()

	uplinksCSV := filepath.Join(dir, "lorawan_uplink_devices.csv")
	require.NoError(t, os.WriteFile(uplinksCSV, []byte(
		"device_id,dev_eui,gateway_id,rssi,snr,temperature,humidity\n"+
			"dev-1,00AA,gw-1,-70,9,40,60\n"+
			"dev-2,00AB,gw-1,-80,7,20,55\n"), 0644))

	salesCSV := filepath.Join(dir, "orders.csv")
	require.NoError(t, os.WriteFile(salesCSV, []byte(
		"Order ID,Product ID,Order Date,Sales,Category,Sub-Category\n"+
			"o1,P-1,15/03/2021,100,Furniture,Chairs\n"+
			"o2,P-2,20/06/2022,150,Technology,Phones\n"), 0644))

	jobs, err := store.OpenJobs(filepath.Join(dir, "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { jobs.Close() })

	pool := job.NewPool(context.Background(), jobs, 1, zap.NewNop().Sugar())
	t.Cleanup(pool.Stop)

	uplinksColl := &fakeCollection{}
	uplinksSink := logsink.New(filepath.Join(dir, "logs"), job.DomainUplinks)
	t.Cleanup(func() { uplinksSink.Close() })
	uplinksJob := job.NewUplinksJob(
		engine.NewIngestor(uplinksColl, "dev_eui"),
		engine.NewUplinkReports(uplinksColl),
		uplinksSink, uplinksCSV, filepath.Join(dir, "temp_detail.json"))

	salesColl := &fakeCollection{}
	salesSink := logsink.New(filepath.Join(dir, "logs"), job.DomainSales)
	t.Cleanup(func() { salesSink.Close() })
	salesJob := job.NewSalesJob(
		engine.NewIngestor(salesColl, "Order ID", "Product ID"),
		engine.NewSalesReports(salesColl),
		salesSink, salesCSV)

	r := router.New()
	RegisterRoutes(r, Handlers{
		Uplinks: handler.NewUplinksHandler(uplinksJob, pool, uplinksSink),
		Sales:   handler.NewSalesHandler(salesJob, pool, salesSink),
		Jobs:    handler.NewJobsHandler(jobs),
	})
	return &testAPI{router: r, jobs: jobs}
}

func (a *testAPI) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestIngestAndReportsOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/uplinks/ingest")
	require.Equal(t, http.StatusOK, rec.Code)

	var ingest map[string]interface{}
	decode(t, rec, &ingest)
	assert.Equal(t, 2.0, ingest["inserted"])

	rec = api.do(http.MethodGet, "/api/v1/uplinks/top?n=1")
	require.Equal(t, http.StatusOK, rec.Code)
	var top []model.DeviceCount
	decode(t, rec, &top)
	require.Len(t, top, 1)
	assert.Equal(t, 1, top[0].Count)

	rec = api.do(http.MethodGet, "/api/v1/uplinks/avg-weather")
	require.Equal(t, http.StatusOK, rec.Code)
	var weather []model.GatewayWeather
	decode(t, rec, &weather)
	require.Len(t, weather, 1)
	assert.Equal(t, 30.0, weather[0].AvgTemp)

	rec = api.do(http.MethodPost, "/api/v1/uplinks/export-hot-temps")
	require.Equal(t, http.StatusOK, rec.Code)
	var export map[string]interface{}
	decode(t, rec, &export)
	assert.Equal(t, 1.0, export["exported"])
}

func TestSalesReportsOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/sales/ingest")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/sales/annual-growth")
	require.Equal(t, http.StatusOK, rec.Code)
	var growth []model.YearGrowth
	decode(t, rec, &growth)
	require.Len(t, growth, 2)
	assert.Nil(t, growth[0].GrowthPct)
	require.NotNil(t, growth[1].GrowthPct)
	assert.Equal(t, 50.0, *growth[1].GrowthPct)

	rec = api.do(http.MethodGet, "/api/v1/sales/top-products")
	require.Equal(t, http.StatusOK, rec.Code)
	var top []model.ProductSales
	decode(t, rec, &top)
	assert.Len(t, top, 2)
}

func TestRunAllAsyncReturnsRetrievableHandle(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/sales/run-all-async")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var accepted map[string]interface{}
	decode(t, rec, &accepted)
	taskID, ok := accepted["task_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, taskID)

	require.Eventually(t, func() bool {
		job, err := api.jobs.Get(taskID)
		return err == nil && job.Status == model.JobCompleted
	}, 2*time.Second, 10*time.Millisecond)

	rec = api.do(http.MethodGet, "/api/v1/jobs/"+taskID)
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Job
	decode(t, rec, &got)
	assert.Equal(t, job.DomainSales, got.Domain)
	assert.Contains(t, got.Result, "top5")
	assert.Contains(t, got.Result, "annual_growth")
}

func TestJobsEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/jobs/no-such-id")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/uplinks/logs")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/uplinks/ingest").Code)

	rec = api.do(http.MethodGet, "/api/v1/uplinks/logs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inserted 2 new entries into collection uplinks.")

	// domains keep separate logs
	rec = api.do(http.MethodGet, "/api/v1/sales/logs")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/nothing").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, api.do(http.MethodDelete, "/api/v1/jobs").Code)
}

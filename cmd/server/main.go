package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/Ayush29Ayush/Zenner-IOT-Analytics/docs"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/api"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/api/handler"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/config"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/engine"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/job"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/logsink"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/router"
)

// @title Zenner IoT Analytics API
// @version 1.0
// @description Ingestion, deduplication and reporting over IoT uplinks and retail sales data.
// @BasePath /api/v1
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.FromEnv()
	if err != nil {
		sugar.Fatalw("config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docStore, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		sugar.Fatalw("mongo connect", "error", err)
	}
	defer docStore.Close(context.Background())

	jobStore, err := store.OpenJobs(cfg.JobsDBPath)
	if err != nil {
		sugar.Fatalw("job store open", "error", err)
	}
	defer jobStore.Close()

	uplinksSink := logsink.New(cfg.LogDir(), job.DomainUplinks)
	defer uplinksSink.Close()
	salesSink := logsink.New(cfg.LogDir(), job.DomainSales)
	defer salesSink.Close()

	uplinksColl := docStore.Collection("uplinks")
	uplinksJob := job.NewUplinksJob(
		engine.NewIngestor(uplinksColl, "dev_eui"),
		engine.NewUplinkReports(uplinksColl),
		uplinksSink,
		cfg.UplinksCSV(),
		cfg.HotTempsExport(),
	)

	salesColl := docStore.Collection("sales")
	salesJob := job.NewSalesJob(
		engine.NewIngestor(salesColl, "Order ID", "Product ID"),
		engine.NewSalesReports(salesColl),
		salesSink,
		cfg.SalesCSV(),
	)

	pool := job.NewPool(ctx, jobStore, cfg.JobWorkers, sugar)
	defer pool.Stop()

	sched, err := job.NewScheduler(cfg.Timezone, pool, sugar)
	if err != nil {
		sugar.Fatalw("scheduler", "error", err)
	}
	if err := sched.Add(cfg.UplinksCron, uplinksJob); err != nil {
		sugar.Fatalw("scheduler", "error", err)
	}
	if err := sched.Add(cfg.SalesCron, salesJob); err != nil {
		sugar.Fatalw("scheduler", "error", err)
	}
	sched.Start()
	defer sched.Stop()

	r := router.New()
	api.RegisterRoutes(r, api.Handlers{
		Uplinks: handler.NewUplinksHandler(uplinksJob, pool, uplinksSink),
		Sales:   handler.NewSalesHandler(salesJob, pool, salesSink),
		Jobs:    handler.NewJobsHandler(jobStore),
		Health:  handler.NewHealthHandler(docStore, jobStore),
	})

	go func() {
		if err := r.Start(cfg.HTTPAddr); err != nil {
			sugar.Fatalw("http server", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")
}

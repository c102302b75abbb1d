package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is the environment-provided configuration for the service. CSV
// inputs, the export file and the activity logs all live under MediaRoot.
type Config struct {
	HTTPAddr    string
	MongoURI    string
	MongoDB     string
	JobsDBPath  string
	MediaRoot   string
	UplinksCron string
	SalesCron   string
	JobWorkers  int
	Timezone    string
}

type ErrorCode string

const (
	ErrorMissingMongoURI   ErrorCode = "missing_mongo_uri"
	ErrorMissingMongoDB    ErrorCode = "missing_mongo_db"
	ErrorInvalidJobWorkers ErrorCode = "invalid_job_workers"
)

// Error reports an unusable environment value.
type Error struct {
	Code  ErrorCode
	Value string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "invalid config"
	}
	switch e.Code {
	case ErrorMissingMongoURI:
		return "MONGODB_URI is required"
	case ErrorMissingMongoDB:
		return "MONGODB_DB is required"
	case ErrorInvalidJobWorkers:
		return fmt.Sprintf("invalid JOB_WORKERS=%q; expected positive integer", e.Value)
	default:
		return "invalid config"
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// FromEnv resolves the configuration from environment variables. The mongo
// endpoint and database name have no safe default and must be set.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		MongoURI:    strings.TrimSpace(os.Getenv("MONGODB_URI")),
		MongoDB:     strings.TrimSpace(os.Getenv("MONGODB_DB")),
		JobsDBPath:  getenv("JOBS_DB_PATH", "jobs.db"),
		MediaRoot:   getenv("MEDIA_ROOT", "media"),
		UplinksCron: getenv("UPLINKS_CRON", "* * * * *"),
		SalesCron:   getenv("SALES_CRON", "0 12 * * *"),
		Timezone:    getenv("TIME_ZONE", "UTC"),
		JobWorkers:  2,
	}

	if cfg.MongoURI == "" {
		return Config{}, &Error{Code: ErrorMissingMongoURI}
	}
	if cfg.MongoDB == "" {
		return Config{}, &Error{Code: ErrorMissingMongoDB}
	}

	if raw := strings.TrimSpace(os.Getenv("JOB_WORKERS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, &Error{Code: ErrorInvalidJobWorkers, Value: raw, Cause: err}
		}
		cfg.JobWorkers = n
	}

	return cfg, nil
}

// Fixed per-domain file locations under MediaRoot.

func (c Config) UplinksCSV() string {
	return filepath.Join(c.MediaRoot, "lorawan_uplink_devices.csv")
}

func (c Config) SalesCSV() string {
	return filepath.Join(c.MediaRoot, "orders.csv")
}

func (c Config) HotTempsExport() string {
	return filepath.Join(c.MediaRoot, "temp_detail.json")
}

func (c Config) LogDir() string {
	return filepath.Join(c.MediaRoot, "logs")
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

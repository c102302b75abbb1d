package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
)

// ErrJobNotFound is returned when a job handle has no stored record.
var ErrJobNotFound = errors.New("job not found")

// JobStore persists async job handles, statuses and results so a submitted
// job can be retrieved later by ID.
type JobStore struct {
	db *sql.DB
}

// OpenJobs opens (or creates) the sqlite-backed job store.
func OpenJobs(dbPath string) (*JobStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	jobTable := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		domain TEXT,
		status TEXT,
		result TEXT,
		error_message TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	if _, err := db.Exec(jobTable); err != nil {
		db.Close()
		return nil, err
	}

	return &JobStore{db: db}, nil
}

// Create stores a new pending job.
func (js *JobStore) Create(id, domain string) error {
	now := time.Now().UTC()
	_, err := js.db.Exec(`INSERT INTO jobs (id, domain, status, result, error_message, created_at, updated_at) VALUES (?, ?, ?, '', '', ?, ?)`,
		id, domain, model.JobPending, now, now)
	return err
}

// UpdateStatus moves a job to a new status.
func (js *JobStore) UpdateStatus(id, status string) error {
	now := time.Now().UTC()
	_, err := js.db.Exec(`UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?`, status, now, id)
	return err
}

// SaveResult marks a job completed and stores its result payload.
func (js *JobStore) SaveResult(id string, result model.JobResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = js.db.Exec(`UPDATE jobs SET status = ?, result = ?, updated_at = ? WHERE id = ?`,
		model.JobCompleted, string(payload), now, id)
	return err
}

// SaveError marks a job failed and records the error detail.
func (js *JobStore) SaveError(id string, jobErr error) error {
	if jobErr == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := js.db.Exec(`UPDATE jobs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		model.JobFailed, jobErr.Error(), now, id)
	return err
}

// Get fetches one job by ID.
func (js *JobStore) Get(id string) (model.Job, error) {
	var job model.Job
	var result, errMsg string

	err := js.db.QueryRow(`SELECT id, domain, status, result, error_message, created_at, updated_at FROM jobs WHERE id = ?`, id).
		Scan(&job.ID, &job.Domain, &job.Status, &result, &errMsg, &job.CreatedAt, &job.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Job{}, ErrJobNotFound
	}
	if err != nil {
		return model.Job{}, err
	}

	if result != "" {
		if err := json.Unmarshal([]byte(result), &job.Result); err != nil {
			return model.Job{}, err
		}
	}
	job.Error = errMsg
	return job, nil
}

// List returns all jobs, newest first.
func (js *JobStore) List() ([]model.Job, error) {
	rows, err := js.db.Query(`SELECT id, domain, status, error_message, created_at, updated_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var job model.Job
		if err := rows.Scan(&job.ID, &job.Domain, &job.Status, &job.Error, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (js *JobStore) Ping() error {
	return js.db.Ping()
}

func (js *JobStore) Close() error {
	return js.db.Close()
}

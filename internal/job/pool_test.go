package job

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

type stubRunner struct {
	domain string
	result model.JobResult
	err    error
}

func (r *stubRunner) Domain() string { return r.domain }

func (r *stubRunner) RunAll(context.Context) (model.JobResult, error) {
	return r.result, r.err
}

func newJobStore(t *testing.T) *store.JobStore {
	t.Helper()
	jobs, err := store.OpenJobs(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { jobs.Close() })
	return jobs
}

func waitForStatus(t *testing.T, jobs *store.JobStore, id, status string) model.Job {
	t.Helper()
	var got model.Job
	require.Eventually(t, func() bool {
		job, err := jobs.Get(id)
		if err != nil {
			return false
		}
		got = job
		return job.Status == status
	}, 2*time.Second, 10*time.Millisecond)
	return got
}

func TestPoolRunsSubmittedJob(t *testing.T) {
	jobs := newJobStore(t)
	pool := NewPool(context.Background(), jobs, 2, zap.NewNop().Sugar())
	defer pool.Stop()

	id, err := pool.Submit(&stubRunner{
		domain: DomainUplinks,
		result: model.JobResult{"ingest": map[string]interface{}{"inserted": 3}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	job := waitForStatus(t, jobs, id, model.JobCompleted)
	assert.Equal(t, DomainUplinks, job.Domain)
	assert.Contains(t, job.Result, "ingest")
}

func TestPoolRecordsFailure(t *testing.T) {
	jobs := newJobStore(t)
	pool := NewPool(context.Background(), jobs, 1, zap.NewNop().Sugar())
	defer pool.Stop()

	id, err := pool.Submit(&stubRunner{domain: DomainSales, err: errStoreDown})
	require.NoError(t, err)

	job := waitForStatus(t, jobs, id, model.JobFailed)
	assert.Equal(t, "store down", job.Error)
	assert.Nil(t, job.Result)
}

func TestPoolHandleVisibleBeforeCompletion(t *testing.T) {
	jobs := newJobStore(t)
	pool := NewPool(context.Background(), jobs, 1, zap.NewNop().Sugar())
	defer pool.Stop()

	id, err := pool.Submit(&stubRunner{domain: DomainUplinks, result: model.JobResult{}})
	require.NoError(t, err)

	// the pending row exists as soon as Submit returns
	job, err := jobs.Get(id)
	require.NoError(t, err)
	assert.Equal(t, DomainUplinks, job.Domain)
}

func TestPoolSubmitAfterStop(t *testing.T) {
	jobs := newJobStore(t)
	pool := NewPool(context.Background(), jobs, 1, zap.NewNop().Sugar())
	pool.Stop()

	_, err := pool.Submit(&stubRunner{domain: DomainUplinks})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestSchedulerRejectsBadInput(t *testing.T) {
	jobs := newJobStore(t)
	pool := NewPool(context.Background(), jobs, 1, zap.NewNop().Sugar())
	defer pool.Stop()

	_, err := NewScheduler("Not/AZone", pool, zap.NewNop().Sugar())
	assert.Error(t, err)

	sched, err := NewScheduler("UTC", pool, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Error(t, sched.Add("not a cron spec", &stubRunner{domain: DomainUplinks}))
	assert.NoError(t, sched.Add("* * * * *", &stubRunner{domain: DomainUplinks}))
}

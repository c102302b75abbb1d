package job

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
)

// ErrPoolClosed is returned by Submit after the pool has been stopped.
var ErrPoolClosed = errors.New("job pool closed")

// Runner is a full domain run submittable to the pool. Both UplinksJob and
// SalesJob satisfy it.
type Runner interface {
	Domain() string
	RunAll(ctx context.Context) (model.JobResult, error)
}

type task struct {
	id     string
	runner Runner
}

// Pool executes submitted domain runs on a fixed set of workers, recording
// each run's lifecycle in the job store so callers can poll the handle.
type Pool struct {
	jobs   *store.JobStore
	logger *zap.SugaredLogger
	tasks  chan task
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts workers goroutines draining the queue. ctx cancellation
// propagates into running jobs; stop with Stop to also drain the queue.
func NewPool(ctx context.Context, jobs *store.JobStore, workers int, logger *zap.SugaredLogger) *Pool {
	p := &Pool{
		jobs:   jobs,
		logger: logger,
		tasks:  make(chan task, 64),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	return p
}

// Submit queues a full domain run and returns its job handle. The job row
// is created pending before Submit returns, so the handle is immediately
// retrievable.
func (p *Pool) Submit(runner Runner) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return "", ErrPoolClosed
	}

	id := uuid.NewString()
	if err := p.jobs.Create(id, runner.Domain()); err != nil {
		return "", err
	}

	p.tasks <- task{id: id, runner: runner}
	p.logger.Infow("job queued", "task_id", id, "domain", runner.Domain())
	return id, nil
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for t := range p.tasks {
		p.run(ctx, t)
	}
}

func (p *Pool) run(ctx context.Context, t task) {
	if err := p.jobs.UpdateStatus(t.id, model.JobRunning); err != nil {
		p.logger.Errorw("job status update failed", "task_id", t.id, "error", err)
	}

	result, err := t.runner.RunAll(ctx)
	if err != nil {
		if saveErr := p.jobs.SaveError(t.id, err); saveErr != nil {
			p.logger.Errorw("job error save failed", "task_id", t.id, "error", saveErr)
		}
		p.logger.Errorw("job failed", "task_id", t.id, "domain", t.runner.Domain(), "error", err)
		return
	}

	if err := p.jobs.SaveResult(t.id, result); err != nil {
		p.logger.Errorw("job result save failed", "task_id", t.id, "error", err)
		return
	}
	p.logger.Infow("job completed", "task_id", t.id, "domain", t.runner.Domain())
}

package job

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler submits full domain runs to the pool on cron cadences, standing
// in for an external beat process.
type Scheduler struct {
	cron   *cron.Cron
	pool   *Pool
	logger *zap.SugaredLogger
}

// NewScheduler builds a scheduler evaluating cron expressions in the given
// IANA timezone.
func NewScheduler(timezone string, pool *Pool, logger *zap.SugaredLogger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %v", timezone, err)
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		pool:   pool,
		logger: logger,
	}, nil
}

// Add registers a domain run on a standard 5-field cron expression.
func (s *Scheduler) Add(spec string, runner Runner) error {
	_, err := s.cron.AddFunc(spec, func() {
		id, err := s.pool.Submit(runner)
		if err != nil {
			s.logger.Errorw("scheduled run submit failed", "domain", runner.Domain(), "error", err)
			return
		}
		s.logger.Infow("scheduled run submitted", "domain", runner.Domain(), "task_id", id)
	})
	if err != nil {
		return fmt.Errorf("schedule %s run on %q: %v", runner.Domain(), spec, err)
	}
	return nil
}

// Start begins firing entries in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for entries already firing to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

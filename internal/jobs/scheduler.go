package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs registered jobs on cron schedules. It is a thin wrapper
// over robfig/cron that injects a context and keeps job registration
// failures visible at startup instead of at first run.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{cron: cron.New(), logger: logger}
}

// Register schedules fn using a standard 5-field cron expression. The
// expression must already be validated by config loading; an invalid one
// is returned as an error here as well.
func (s *Scheduler) Register(name, schedule string, fn func(context.Context)) error {
	_, err := s.cron.AddFunc(schedule, func() {
		fn(context.Background())
	})
	if err != nil {
		return err
	}
	s.logger.Info("background job scheduled", "job", name, "schedule", schedule)
	return nil
}

// Start launches the scheduler in its own goroutine. It is a no-op for an
// empty scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling new runs and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

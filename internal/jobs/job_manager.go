// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the deadline sweep, which
// keeps response windows moving without external triggers.
package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deadlineSweepJob *DeadlineSweepJob
}

// NewJobManager creates a job manager wiring command handlers to their jobs.
func NewJobManager(
	sweepHandler commands.SweepDeadlinesCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineSweepJob: NewDeadlineSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineSweepJob.Stop()
}

package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeadlineSweepJob periodically fires the deadline sweep so response windows
// expire even when no request arrives. Each run finds orders with due
// deadlines and applies their automatic transitions (auto-complete,
// auto-cancel, dispute default judgment).
type DeadlineSweepJob struct {
	handler  commands.SweepDeadlinesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeadlineSweepJob creates the sweep job with a six-field cron schedule,
// for example "*/30 * * * * *" for every thirty seconds.
func NewDeadlineSweepJob(
	handler commands.SweepDeadlinesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeadlineSweepJob {
	return &DeadlineSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "deadline_sweep_job"),
	}
}

// Start begins running the sweep on its schedule.
func (j *DeadlineSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepDeadlinesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Deadline sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *DeadlineSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline sweep job stopped")
}

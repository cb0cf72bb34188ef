package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionSweepSchedule runs the sweeper once a minute.
const DefaultSessionSweepSchedule = "0 * * * * *"

type sessionExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireSessionsCommand) (int, error)
}

// SessionSweeperJob evicts checkout sessions idle for longer than their TTL.
type SessionSweeperJob struct {
	handler  sessionExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionSweeperJob(handler sessionExpirer, schedule string, logger *slog.Logger) *SessionSweeperJob {
	if schedule == "" {
		schedule = DefaultSessionSweepSchedule
	}
	return &SessionSweeperJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweeper_job"),
	}
}

// RunOnce performs a single sweep and reports how many sessions were removed.
func (j *SessionSweeperJob) RunOnce(ctx context.Context) int {
	removed, err := j.handler.Handle(ctx, commands.NewExpireSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep failed", "error", err)
		return 0
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired checkout sessions removed", "count", removed)
	}
	return removed
}

func (j *SessionSweeperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *SessionSweeperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}

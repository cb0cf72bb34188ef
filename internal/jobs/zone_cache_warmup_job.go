package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultZoneWarmupSchedule refreshes the zone cache every five minutes.
const DefaultZoneWarmupSchedule = "0 */5 * * * *"

type zoneRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshZonesCommand) (int, error)
}

// ZoneCacheWarmupJob reloads delivery zones into the cache ahead of expiry,
// so checkout rarely pays for a cache miss.
type ZoneCacheWarmupJob struct {
	handler  zoneRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewZoneCacheWarmupJob(handler zoneRefresher, schedule string, logger *slog.Logger) *ZoneCacheWarmupJob {
	if schedule == "" {
		schedule = DefaultZoneWarmupSchedule
	}
	return &ZoneCacheWarmupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "zone_cache_warmup_job"),
	}
}

// RunOnce refreshes the cache and reports whether it succeeded.
func (j *ZoneCacheWarmupJob) RunOnce(ctx context.Context) bool {
	n, err := j.handler.Handle(ctx, commands.NewRefreshZonesCommand())
	if err != nil {
		j.logger.WarnContext(ctx, "Zone cache refresh failed", "error", err)
		return false
	}
	j.logger.DebugContext(ctx, "Zone cache refreshed", "zones", n)
	return true
}

// Start warms the cache immediately, then on schedule.
func (j *ZoneCacheWarmupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.RunOnce(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone cache warmup job started", "schedule", j.schedule)
	return nil
}

func (j *ZoneCacheWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Zone cache warmup job stopped")
}

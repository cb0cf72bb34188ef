// Package jobs runs the storefront's scheduled background tasks on
// github.com/robfig/cron/v3 (six-field specs, seconds first).
//
// # Available Jobs
//
//  1. SessionSweeperJob removes checkout sessions that have been idle longer
//     than the configured TTL. Default schedule: every minute.
//  2. ZoneCacheWarmupJob reloads delivery zones from PostgreSQL into Valkey.
//     It runs once on start, then every five minutes by default. It is only
//     created when a zone cache is configured.
//
// # Usage
//
//	sweeper := jobs.NewSessionSweeperJob(expireHandler, cfg.SessionSweepSchedule, logger)
//	warmup := jobs.NewZoneCacheWarmupJob(refreshHandler, cfg.ZoneWarmupSchedule, logger)
//	jobManager := jobs.NewJobManager(sweeper, warmup)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick. A refresh failure
// leaves the previous cached copy in place.
package jobs

package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	jobs    []job
	started []job
}

// NewJobManager takes the jobs to run. A nil warmup job is skipped, which is
// the case when no zone cache is configured.
func NewJobManager(sweeper *SessionSweeperJob, warmup *ZoneCacheWarmupJob) *JobManager {
	jm := &JobManager{}
	if sweeper != nil {
		jm.jobs = append(jm.jobs, sweeper)
	}
	if warmup != nil {
		jm.jobs = append(jm.jobs, warmup)
	}
	return jm
}

// StartAll starts every job. If one fails, the jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %T: %w", j, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

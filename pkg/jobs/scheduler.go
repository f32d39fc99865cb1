package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/jobrun"
)

// pollInterval is how often the scheduler checks cron jobs. Schedules have
// minute precision, so 30s keeps firing within a minute of the mark.
const pollInterval = 30 * time.Second

// Scheduler fires cron-triggered jobs. It polls rather than keeping timers
// per job so schedule edits take effect without re-registration.
type Scheduler struct {
	client   *ent.Client
	engine   *Engine
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(client *ent.Client, engine *Engine) *Scheduler {
	return &Scheduler{
		client:   client,
		engine:   engine,
		interval: pollInterval,
		logger:   slog.Default(),
	}
}

// SetPollInterval overrides the default tick rate. Call before Run.
func (s *Scheduler) SetPollInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Run polls until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, time.Now())
		}
	}
}

// tick fires every enabled cron job whose schedule has come due since its
// last run. lastRunAt is claimed before work starts so a slow run can't be
// double-fired by the next tick.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	jobs, err := s.client.Job.Query().
		Where(
			job.TriggerTypeEQ(job.TriggerTypeCron),
			job.IsEnabled(true),
		).
		All(ctx)
	if err != nil {
		s.logger.Warn("Failed to load cron jobs", "error", err)
		return
	}

	for _, j := range jobs {
		if j.CronSchedule == "" {
			continue
		}
		schedule, err := cron.ParseStandard(j.CronSchedule)
		if err != nil {
			// Malformed schedules disable firing until corrected; the job
			// itself stays visible and editable.
			s.logger.Warn("Invalid cron schedule, skipping job",
				"job_id", j.ID, "schedule", j.CronSchedule, "error", err)
			continue
		}

		since := j.CreatedAt
		if j.LastRunAt != nil {
			since = *j.LastRunAt
		}
		if schedule.Next(since).After(now) {
			continue
		}

		if err := s.client.Job.UpdateOneID(j.ID).SetLastRunAt(now).Exec(ctx); err != nil {
			s.logger.Warn("Failed to claim cron job", "job_id", j.ID, "error", err)
			continue
		}
		if _, err := s.engine.startRun(ctx, j, jobrun.TriggeredByCron, ""); err != nil {
			s.logger.Warn("Cron job run failed to start", "job_id", j.ID, "error", err)
		}
	}
}

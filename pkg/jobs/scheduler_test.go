package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/job"
)

func seedCronJob(t *testing.T, client *ent.Client, schedule string, lastRun *time.Time) *ent.Job {
	t.Helper()
	create := client.Job.Create().
		SetID("cron-1").
		SetOrganizationID("org-1").
		SetUserID("user-1").
		SetName("hourly-report").
		SetTriggerType(job.TriggerTypeCron).
		SetCronSchedule(schedule)
	if lastRun != nil {
		create.SetLastRunAt(*lastRun)
	}
	j, err := create.Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestTickFiresDueJob(t *testing.T) {
	env := newTestEnv(t)
	last := time.Now().Add(-2 * time.Minute)
	seedCronJob(t, env.client, "* * * * *", &last)
	s := NewScheduler(env.client, env.engine)

	now := time.Now()
	s.tick(context.Background(), now)

	runs := runsFor(t, env.client, "cron-1")
	require.Len(t, runs, 1)
	assert.Equal(t, "cron", string(runs[0].TriggeredBy))

	// lastRunAt was claimed at tick time.
	j, err := env.client.Job.Get(context.Background(), "cron-1")
	require.NoError(t, err)
	require.NotNil(t, j.LastRunAt)
	assert.WithinDuration(t, now, *j.LastRunAt, time.Second)
}

func TestTickSkipsJobNotDue(t *testing.T) {
	env := newTestEnv(t)
	last := time.Now()
	seedCronJob(t, env.client, "* * * * *", &last)
	s := NewScheduler(env.client, env.engine)

	s.tick(context.Background(), time.Now())
	assert.Empty(t, runsFor(t, env.client, "cron-1"))
}

func TestTickDoesNotDoubleFire(t *testing.T) {
	env := newTestEnv(t)
	last := time.Now().Add(-2 * time.Minute)
	seedCronJob(t, env.client, "* * * * *", &last)
	s := NewScheduler(env.client, env.engine)

	s.tick(context.Background(), time.Now())
	s.tick(context.Background(), time.Now())

	assert.Len(t, runsFor(t, env.client, "cron-1"), 1)
}

func TestTickSkipsMalformedSchedule(t *testing.T) {
	env := newTestEnv(t)
	seedCronJob(t, env.client, "every day at noon", nil)
	s := NewScheduler(env.client, env.engine)

	s.tick(context.Background(), time.Now())
	assert.Empty(t, runsFor(t, env.client, "cron-1"))

	// The job stays visible and enabled for correction.
	j, err := env.client.Job.Get(context.Background(), "cron-1")
	require.NoError(t, err)
	assert.True(t, j.IsEnabled)
}

func TestTickSkipsDisabledJobs(t *testing.T) {
	env := newTestEnv(t)
	last := time.Now().Add(-2 * time.Minute)
	j := seedCronJob(t, env.client, "* * * * *", &last)
	_, err := j.Update().SetIsEnabled(false).Save(context.Background())
	require.NoError(t, err)
	s := NewScheduler(env.client, env.engine)

	s.tick(context.Background(), time.Now())
	assert.Empty(t, runsFor(t, env.client, "cron-1"))
}

func TestTickNeverRunJobUsesCreatedAt(t *testing.T) {
	env := newTestEnv(t)
	// Freshly created: next fire is the upcoming minute, so nothing yet.
	seedCronJob(t, env.client, "* * * * *", nil)
	s := NewScheduler(env.client, env.engine)

	s.tick(context.Background(), time.Now())
	assert.Empty(t, runsFor(t, env.client, "cron-1"))

	// Once the minute boundary has passed, it fires.
	s.tick(context.Background(), time.Now().Add(2*time.Minute))
	assert.Len(t, runsFor(t, env.client, "cron-1"), 1)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/pkg/models"
)

func TestJobCreateWebhookGeneratesSecret(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "alert-intake",
		TriggerType: job.TriggerTypeWebhook,
		Prompt:      "Investigate the alert payload.",
	})
	require.NoError(t, err)
	assert.Len(t, j.WebhookSecret, 64)
	assert.True(t, j.IsEnabled)

	// A caller-provided secret is kept as-is.
	j2, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:          "alert-intake-2",
		TriggerType:   job.TriggerTypeWebhook,
		WebhookSecret: "provided",
	})
	require.NoError(t, err)
	assert.Equal(t, "provided", j2.WebhookSecret)
}

func TestJobCreateCronValidatesSchedule(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	var ve *ValidationError
	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "nightly",
		TriggerType: job.TriggerTypeCron,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cron_schedule", ve.Field)

	_, err = svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:         "nightly",
		TriggerType:  job.TriggerTypeCron,
		CronSchedule: "every night",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cron_schedule", ve.Field)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:         "nightly",
		TriggerType:  job.TriggerTypeCron,
		CronSchedule: "0 3 * * *",
	})
	require.NoError(t, err)
	assert.Equal(t, "0 3 * * *", j.CronSchedule)
}

func TestJobCreateChecksHostOwnership(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)
	seedHost(t, client, "host-1", "org-2")

	_, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "probe",
		TriggerType: job.TriggerTypeWebhook,
		HostIDs:     []string{"host-1"},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "host_ids", ve.Field)
}

func TestJobUpdatePartial(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:         "nightly",
		TriggerType:  job.TriggerTypeCron,
		CronSchedule: "0 3 * * *",
		Prompt:       "Check backups.",
	})
	require.NoError(t, err)

	disabled := false
	updated, err := svc.Update(context.Background(), "org-1", j.ID, models.UpdateJobRequest{
		IsEnabled: &disabled,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsEnabled)
	assert.Equal(t, "Check backups.", updated.Prompt)

	bad := "at dawn"
	_, err = svc.Update(context.Background(), "org-1", j.ID, models.UpdateJobRequest{
		CronSchedule: &bad,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cron_schedule", ve.Field)
}

func TestJobUpdateCannotClearWebhookSecret(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "alert-intake",
		TriggerType: job.TriggerTypeWebhook,
	})
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), "org-1", j.ID, models.UpdateJobRequest{
		WebhookSecret: &empty,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "webhook_secret", ve.Field)
}

func TestJobDeleteKeepsRunHistory(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "alert-intake",
		TriggerType: job.TriggerTypeWebhook,
	})
	require.NoError(t, err)
	require.NoError(t, client.JobRun.Create().
		SetID("run-1").
		SetJobID(j.ID).
		SetOrganizationID("org-1").
		SetTriggeredBy("webhook").
		Exec(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "org-1", j.ID))

	_, err = svc.Get(context.Background(), "org-1", j.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	n, err := client.JobRun.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestJobRunsNewestFirst(t *testing.T) {
	client := newTestClient(t)
	svc := NewJobService(client)

	j, err := svc.Create(context.Background(), "org-1", "user-1", models.CreateJobRequest{
		Name:        "alert-intake",
		TriggerType: job.TriggerTypeWebhook,
	})
	require.NoError(t, err)
	for _, id := range []string{"run-1", "run-2"} {
		require.NoError(t, client.JobRun.Create().
			SetID(id).
			SetJobID(j.ID).
			SetOrganizationID("org-1").
			SetTriggeredBy("webhook").
			Exec(context.Background()))
	}

	runs, err := svc.Runs(context.Background(), "org-1", j.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, runs.TotalCount)
	assert.Len(t, runs.Runs, 1)
}

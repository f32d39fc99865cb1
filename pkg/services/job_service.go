package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/host"
	entjob "github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/jobrun"
	"github.com/infrallm/infrallm/pkg/models"
)

// JobService manages triggered workloads: cron-scheduled prompts and
// webhook-invoked ones.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// Create stores a job. Webhook jobs without a configured secret get a
// generated one so the ingress endpoint is never open.
func (s *JobService) Create(httpCtx context.Context, orgID, userID string, req models.CreateJobRequest) (*ent.Job, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	switch req.TriggerType {
	case entjob.TriggerTypeCron:
		if req.CronSchedule == "" {
			return nil, NewValidationError("cron_schedule", "required for cron jobs")
		}
		if _, err := cron.ParseStandard(req.CronSchedule); err != nil {
			return nil, NewValidationError("cron_schedule", err.Error())
		}
	case entjob.TriggerTypeWebhook:
	default:
		return nil, NewValidationError("trigger_type", "must be cron or webhook")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if len(req.HostIDs) > 0 {
		count, err := s.client.Host.Query().
			Where(host.OrganizationID(orgID), host.IDIn(req.HostIDs...)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check hosts: %w", err)
		}
		if count != len(req.HostIDs) {
			return nil, NewValidationError("host_ids", "unknown host")
		}
	}

	secret := req.WebhookSecret
	if req.TriggerType == entjob.TriggerTypeWebhook && secret == "" {
		var err error
		secret, err = generateWebhookSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate webhook secret: %w", err)
		}
	}

	create := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetUserID(userID).
		SetName(req.Name).
		SetTriggerType(req.TriggerType).
		SetCronSchedule(req.CronSchedule).
		SetWebhookSecret(secret).
		SetPrompt(req.Prompt).
		SetAutoRunLlm(req.AutoRunLlm)
	if len(req.HostIDs) > 0 {
		create.SetHostIds(req.HostIDs)
	}
	if req.IsEnabled != nil {
		create.SetIsEnabled(*req.IsEnabled)
	}

	j, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// List returns the organization's jobs.
func (s *JobService) List(httpCtx context.Context, orgID string) (*models.JobListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	jobs, err := s.client.Job.Query().
		Where(entjob.OrganizationID(orgID)).
		Order(ent.Asc(entjob.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return &models.JobListResponse{Jobs: jobs, TotalCount: len(jobs)}, nil
}

// Get returns one job scoped to the organization.
func (s *JobService) Get(httpCtx context.Context, orgID, jobID string) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()
	return s.getScoped(ctx, orgID, jobID)
}

// Update applies partial changes to a job.
func (s *JobService) Update(httpCtx context.Context, orgID, jobID string, req models.UpdateJobRequest) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	j, err := s.getScoped(ctx, orgID, jobID)
	if err != nil {
		return nil, err
	}

	update := j.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.CronSchedule != nil {
		if j.TriggerType == entjob.TriggerTypeCron {
			if *req.CronSchedule == "" {
				return nil, NewValidationError("cron_schedule", "required for cron jobs")
			}
			if _, err := cron.ParseStandard(*req.CronSchedule); err != nil {
				return nil, NewValidationError("cron_schedule", err.Error())
			}
		}
		update.SetCronSchedule(*req.CronSchedule)
	}
	if req.WebhookSecret != nil {
		if j.TriggerType == entjob.TriggerTypeWebhook && *req.WebhookSecret == "" {
			return nil, NewValidationError("webhook_secret", "cannot be empty for webhook jobs")
		}
		update.SetWebhookSecret(*req.WebhookSecret)
	}
	if req.Prompt != nil {
		update.SetPrompt(*req.Prompt)
	}
	if req.HostIDs != nil {
		if len(*req.HostIDs) > 0 {
			count, err := s.client.Host.Query().
				Where(host.OrganizationID(orgID), host.IDIn(*req.HostIDs...)).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to check hosts: %w", err)
			}
			if count != len(*req.HostIDs) {
				return nil, NewValidationError("host_ids", "unknown host")
			}
		}
		update.SetHostIds(*req.HostIDs)
	}
	if req.AutoRunLlm != nil {
		update.SetAutoRunLlm(*req.AutoRunLlm)
	}
	if req.IsEnabled != nil {
		update.SetIsEnabled(*req.IsEnabled)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

// Delete removes a job. Run history is kept for audit purposes.
func (s *JobService) Delete(httpCtx context.Context, orgID, jobID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	j, err := s.getScoped(ctx, orgID, jobID)
	if err != nil {
		return err
	}
	if err := s.client.Job.DeleteOneID(j.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// Runs returns a job's run history, newest first.
func (s *JobService) Runs(httpCtx context.Context, orgID, jobID string, limit int) (*models.JobRunListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if _, err := s.getScoped(ctx, orgID, jobID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	total, err := s.client.JobRun.Query().
		Where(jobrun.JobID(jobID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count job runs: %w", err)
	}
	runs, err := s.client.JobRun.Query().
		Where(jobrun.JobID(jobID)).
		Order(ent.Desc(jobrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job runs: %w", err)
	}
	return &models.JobRunListResponse{Runs: runs, TotalCount: total}, nil
}

func (s *JobService) getScoped(ctx context.Context, orgID, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(entjob.ID(jobID), entjob.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func generateWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

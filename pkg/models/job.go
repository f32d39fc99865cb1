package models

import (
	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/job"
)

// CreateJobRequest contains fields for creating a triggered workload
type CreateJobRequest struct {
	Name          string          `json:"name"`
	TriggerType   job.TriggerType `json:"trigger_type"`
	CronSchedule  string          `json:"cron_schedule,omitempty"`
	WebhookSecret string          `json:"webhook_secret,omitempty"`
	Prompt        string          `json:"prompt,omitempty"`
	HostIDs       []string        `json:"host_ids,omitempty"`
	AutoRunLlm    bool            `json:"auto_run_llm,omitempty"`
	IsEnabled     *bool           `json:"is_enabled,omitempty"`
}

// UpdateJobRequest contains fields for updating a job. Nil pointers leave the
// corresponding field unchanged.
type UpdateJobRequest struct {
	Name          *string   `json:"name,omitempty"`
	CronSchedule  *string   `json:"cron_schedule,omitempty"`
	WebhookSecret *string   `json:"webhook_secret,omitempty"`
	Prompt        *string   `json:"prompt,omitempty"`
	HostIDs       *[]string `json:"host_ids,omitempty"`
	AutoRunLlm    *bool     `json:"auto_run_llm,omitempty"`
	IsEnabled     *bool     `json:"is_enabled,omitempty"`
}

// JobListResponse contains an organization's jobs
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
}

// JobRunListResponse contains a job's run history, newest first
type JobRunListResponse struct {
	Runs       []*ent.JobRun `json:"runs"`
	TotalCount int           `json:"total_count"`
}

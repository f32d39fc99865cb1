// Package jobs runs triggered workloads: webhook-invoked and
// cron-scheduled jobs whose runs can drive an LLM session.
package jobs

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/jobrun"
	"github.com/infrallm/infrallm/pkg/chattask"
	"github.com/infrallm/infrallm/pkg/orchestrator"
	"github.com/infrallm/infrallm/pkg/services"
)

// RunTimeout bounds one job run's LLM conversation.
const RunTimeout = 5 * time.Minute

// ErrBadSecret is returned for webhook calls with a wrong or missing secret.
var ErrBadSecret = errors.New("webhook secret mismatch")

// ErrJobDisabled is returned when a disabled job is triggered.
var ErrJobDisabled = errors.New("job is disabled")

// Conversations is the slice of the orchestrator the engine needs.
// Satisfied by *orchestrator.Orchestrator.
type Conversations interface {
	SendMessageStream(ctx context.Context, sessionID, userMessage, modelOverride string, cb orchestrator.Callbacks) (*ent.Message, error)
}

// Engine creates job runs and drives their LLM sessions through the chat
// task manager so job sessions obey the same single-writer rule as chats.
type Engine struct {
	client        *ent.Client
	conversations Conversations
	tasks         *chattask.Manager
	runDeadline   time.Duration
	logger        *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(client *ent.Client, conversations Conversations, tasks *chattask.Manager) *Engine {
	return &Engine{
		client:        client,
		conversations: conversations,
		tasks:         tasks,
		runDeadline:   RunTimeout,
		logger:        slog.Default(),
	}
}

// SetRunDeadline overrides the time cap for one job run's LLM conversation.
func (e *Engine) SetRunDeadline(d time.Duration) {
	if d > 0 {
		e.runDeadline = d
	}
}

// HandleWebhook validates the shared secret and starts a run for the job.
// The run is returned in its initial state; LLM processing continues in the
// background.
func (e *Engine) HandleWebhook(ctx context.Context, jobID, secret string, payload []byte) (*ent.JobRun, error) {
	j, err := e.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	// Constant-time compare; an empty configured secret never matches.
	if j.WebhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(j.WebhookSecret)) != 1 {
		return nil, ErrBadSecret
	}
	if !j.IsEnabled {
		return nil, ErrJobDisabled
	}

	return e.startRun(ctx, j, jobrun.TriggeredByWebhook, string(payload))
}

// RunManual starts a run for the job on explicit user request. The job must
// belong to orgID.
func (e *Engine) RunManual(ctx context.Context, orgID, jobID string) (*ent.JobRun, error) {
	j, err := e.client.Job.Query().
		Where(job.ID(jobID), job.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if !j.IsEnabled {
		return nil, ErrJobDisabled
	}
	return e.startRun(ctx, j, jobrun.TriggeredByManual, "")
}

// startRun records the run and, for auto-run jobs, spawns the LLM session.
// Jobs without autoRunLlm complete immediately; the run is a delivery
// receipt for the payload.
func (e *Engine) startRun(ctx context.Context, j *ent.Job, trigger jobrun.TriggeredBy, payload string) (*ent.JobRun, error) {
	create := e.client.JobRun.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(j.OrganizationID).
		SetJobID(j.ID).
		SetTriggeredBy(trigger).
		SetStatus(jobrun.StatusReceived)
	if payload != "" {
		create.SetPayload(payload)
	}
	run, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job run: %w", err)
	}

	if !j.AutoRunLlm {
		if err := e.client.JobRun.UpdateOneID(run.ID).
			SetStatus(jobrun.StatusCompleted).
			SetFinishedAt(time.Now()).
			Exec(ctx); err != nil {
			e.logger.Warn("Failed to complete job run", "run_id", run.ID, "error", err)
		}
		return run, nil
	}

	sess, err := e.client.Session.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(j.OrganizationID).
		SetUserID(j.UserID).
		SetHostIds(j.HostIds).
		SetIsJobRunSession(true).
		SetTitle(fmt.Sprintf("Job: %s", j.Name)).
		Save(ctx)
	if err != nil {
		e.failRun(run.ID, fmt.Errorf("failed to create session: %w", err))
		return run, nil
	}
	if err := e.client.JobRun.UpdateOneID(run.ID).SetSessionID(sess.ID).Exec(ctx); err != nil {
		e.logger.Warn("Failed to link run session", "run_id", run.ID, "error", err)
	}

	userMessage := buildRunMessage(j, payload)
	err = e.tasks.Start(sess.ID, func(taskCtx context.Context) {
		runCtx, cancel := context.WithTimeout(taskCtx, e.runDeadline)
		defer cancel()
		e.processRun(runCtx, run.ID, sess.ID, userMessage)
	})
	if err != nil {
		e.failRun(run.ID, err)
	}
	return run, nil
}

func (e *Engine) processRun(ctx context.Context, runID, sessionID, userMessage string) {
	msg, err := e.conversations.SendMessageStream(ctx, sessionID, userMessage, "", orchestrator.Callbacks{})
	if err != nil {
		e.failRun(runID, err)
		return
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = e.client.JobRun.UpdateOneID(runID).
		SetStatus(jobrun.StatusCompleted).
		SetResponse(msg.Content).
		SetFinishedAt(time.Now()).
		Exec(saveCtx)
	if err != nil {
		e.logger.Warn("Failed to complete job run", "run_id", runID, "error", err)
	}
}

func (e *Engine) failRun(runID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := e.client.JobRun.UpdateOneID(runID).
		SetStatus(jobrun.StatusFailed).
		SetError(cause.Error()).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		e.logger.Warn("Failed to mark job run failed", "run_id", runID, "error", err)
	}
}

// buildRunMessage synthesizes the user message a job run submits to the
// assistant.
func buildRunMessage(j *ent.Job, payload string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Automated job %q triggered.\n", j.Name)
	if j.Prompt != "" {
		sb.WriteString("\n")
		sb.WriteString(j.Prompt)
		sb.WriteString("\n")
	}
	if payload != "" {
		sb.WriteString("\nTrigger payload:\n")
		sb.WriteString(payload)
	}
	return sb.String()
}

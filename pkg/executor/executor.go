// Package executor runs shell commands on remote hosts behind the policy
// gate: every call is validated, executed against the SSH pool, recorded as
// a CommandExecution row, and audited.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/policy"
	"github.com/infrallm/infrallm/pkg/services"
	"github.com/infrallm/infrallm/pkg/sshpool"
)

// ReasonApprovalRequired denies approval-flagged commands arriving outside
// an interactive approval flow.
const ReasonApprovalRequired = "Approval required"

// ReasonConcurrencyLimit denies commands that would exceed the tightest
// max_concurrent_commands cap among the user's policies.
const ReasonConcurrencyLimit = "Concurrency limit reached"

// DryRunPrefix prefixes the synthetic stdout of dry-run executions.
const DryRunPrefix = "[dry-run] "

// Runner abstracts the SSH pool's exec surface. *sshpool.Pool satisfies it.
type Runner interface {
	Stream(ctx context.Context, hostID, command string, timeout time.Duration, onChunk func(string)) (*sshpool.RunResult, error)
}

// Request describes one command execution.
type Request struct {
	OrgID     string
	UserID    string
	HostID    string
	SessionID string
	Command   string
	Reasoning string // LLM-provided justification, audited verbatim
	DryRun    bool
	Timeout   time.Duration // 0 uses the executor default
}

// Result is the recorded outcome of an allowed execution.
type Result struct {
	ExecutionID string
	ExitCode    int
	Stdout      string
	Stderr      string
	DurationMs  int64
	WasDryRun   bool
}

// Executor gates, runs, records, and audits commands.
type Executor struct {
	client         *ent.Client
	policies       *policy.Engine
	runner         Runner
	auditor        *audit.Logger
	defaultTimeout time.Duration
}

// New creates an Executor.
func New(client *ent.Client, policies *policy.Engine, runner Runner, auditor *audit.Logger, defaultTimeout time.Duration) *Executor {
	if defaultTimeout <= 0 {
		defaultTimeout = 120 * time.Second
	}
	return &Executor{
		client:         client,
		policies:       policies,
		runner:         runner,
		auditor:        auditor,
		defaultTimeout: defaultTimeout,
	}
}

// Execute runs a command to completion and returns the full result.
func (e *Executor) Execute(ctx context.Context, req Request) (*Result, error) {
	return e.ExecuteStream(ctx, req, nil)
}

// ExecuteStream behaves like Execute but forwards stdout chunks to onChunk
// as they arrive. A non-zero exit code is carried in the result, not an
// error; denials and transport failures are errors.
func (e *Executor) ExecuteStream(ctx context.Context, req Request, onChunk func(string)) (*Result, error) {
	decision, err := e.policies.ValidateCommand(ctx, req.OrgID, req.UserID, req.HostID, req.Command)
	if err != nil {
		return nil, fmt.Errorf("policy evaluation failed: %w", err)
	}

	if !decision.Allowed {
		e.auditDenied(ctx, req, decision.Reason, decision.MatchedPattern, decision.InvalidPatterns)
		return nil, &services.PolicyDeniedError{Reason: decision.Reason, MatchedPattern: decision.MatchedPattern}
	}
	if decision.RequiresApproval {
		// No interactive approval flow is wired here; approval-required
		// outside one is a hard deny.
		e.auditDenied(ctx, req, ReasonApprovalRequired, "", decision.InvalidPatterns)
		return nil, &services.PolicyDeniedError{Reason: ReasonApprovalRequired}
	}
	if !e.policies.AcquireSlot(req.UserID, decision.CapPolicyID, decision.MaxConcurrent) {
		e.auditDenied(ctx, req, ReasonConcurrencyLimit, "", nil)
		return nil, &services.PolicyDeniedError{Reason: ReasonConcurrencyLimit}
	}
	defer e.policies.ReleaseSlot(req.UserID, decision.CapPolicyID)

	if req.DryRun {
		return e.recordResult(ctx, req, &sshpool.RunResult{
			ExitCode: 0,
			Stdout:   DryRunPrefix + req.Command,
		}, true, decision.InvalidPatterns)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = e.defaultTimeout
	}

	runResult, err := e.runner.Stream(ctx, req.HostID, req.Command, timeout, onChunk)
	if err != nil {
		if errors.Is(err, sshpool.ErrUnreachable) {
			e.markHostUnreachable(req.HostID)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, services.NewUpstreamError("ssh", err)
	}

	return e.recordResult(ctx, req, runResult, false, decision.InvalidPatterns)
}

func (e *Executor) recordResult(ctx context.Context, req Request, run *sshpool.RunResult, dryRun bool, invalidPatterns []string) (*Result, error) {
	executionID := uuid.New().String()
	durationMs := run.Duration.Milliseconds()

	create := e.client.CommandExecution.Create().
		SetID(executionID).
		SetOrganizationID(req.OrgID).
		SetUserID(req.UserID).
		SetHostID(req.HostID).
		SetCommand(req.Command).
		SetExitCode(run.ExitCode).
		SetStdout(run.Stdout).
		SetStderr(run.Stderr).
		SetDurationMs(durationMs).
		SetWasDryRun(dryRun).
		SetCreatedAt(time.Now())
	if req.SessionID != "" {
		create.SetSessionID(req.SessionID)
	}
	if err := create.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record command execution: %w", err)
	}

	metadata := map[string]any{"command": req.Command}
	if dryRun {
		metadata["dry_run"] = true
	}
	if len(invalidPatterns) > 0 {
		metadata["invalid_patterns"] = invalidPatterns
	}
	err := e.auditor.Record(ctx, audit.Event{
		OrgID:        req.OrgID,
		EventType:    auditlog.EventTypeCommandExecuted,
		UserID:       req.UserID,
		HostID:       req.HostID,
		ExecutionID:  executionID,
		WasAllowed:   audit.Bool(true),
		LLMReasoning: req.Reasoning,
		Metadata:     metadata,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		ExecutionID: executionID,
		ExitCode:    run.ExitCode,
		Stdout:      run.Stdout,
		Stderr:      run.Stderr,
		DurationMs:  durationMs,
		WasDryRun:   dryRun,
	}, nil
}

func (e *Executor) auditDenied(ctx context.Context, req Request, reason, matchedPattern string, invalidPatterns []string) {
	metadata := map[string]any{"command": req.Command}
	if matchedPattern != "" {
		metadata["matched_pattern"] = matchedPattern
	}
	if len(invalidPatterns) > 0 {
		metadata["invalid_patterns"] = invalidPatterns
	}
	err := e.auditor.Record(ctx, audit.Event{
		OrgID:        req.OrgID,
		EventType:    auditlog.EventTypeCommandDenied,
		UserID:       req.UserID,
		HostID:       req.HostID,
		WasAllowed:   audit.Bool(false),
		DenialReason: reason,
		LLMReasoning: req.Reasoning,
		Metadata:     metadata,
	})
	if err != nil {
		slog.Error("Failed to audit denied command", "host_id", req.HostID, "error", err)
	}
}

func (e *Executor) markHostUnreachable(hostID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := e.client.Host.UpdateOneID(hostID).
		SetStatus(host.StatusUnreachable).
		SetLastHealthCheck(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to mark host unreachable", "host_id", hostID, "error", err)
	}
}

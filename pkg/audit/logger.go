// Package audit appends structured events to the immutable audit log.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
)

// Event is one audit record to append. OrgID and EventType are required;
// the rest depends on the event kind.
type Event struct {
	OrgID        string
	EventType    auditlog.EventType
	UserID       string
	HostID       string
	ExecutionID  string
	WasAllowed   *bool
	DenialReason string
	LLMReasoning string
	// Metadata is serialized to JSON and stored opaquely. The executed
	// command, matched patterns, and invalid-pattern reports live here.
	Metadata map[string]any
}

// Logger writes append-only audit rows.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a Logger backed by the database.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// Record appends one event. Failures are returned to the caller, never
// swallowed; callers decide whether a lost audit row is fatal.
func (l *Logger) Record(ctx context.Context, ev Event) error {
	if ev.OrgID == "" {
		return fmt.Errorf("audit event missing organization id")
	}

	create := l.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(ev.OrgID).
		SetEventType(ev.EventType).
		SetCreatedAt(time.Now())

	if ev.UserID != "" {
		create.SetUserID(ev.UserID)
	}
	if ev.HostID != "" {
		create.SetHostID(ev.HostID)
	}
	if ev.ExecutionID != "" {
		create.SetExecutionID(ev.ExecutionID)
	}
	if ev.WasAllowed != nil {
		create.SetWasAllowed(*ev.WasAllowed)
	}
	if ev.DenialReason != "" {
		create.SetDenialReason(ev.DenialReason)
	}
	if ev.LLMReasoning != "" {
		create.SetLlmReasoning(ev.LLMReasoning)
	}
	if len(ev.Metadata) > 0 {
		raw, err := json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
		create.SetMetadataJSON(string(raw))
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// Bool is a convenience for populating Event.WasAllowed.
func Bool(v bool) *bool {
	return &v
}

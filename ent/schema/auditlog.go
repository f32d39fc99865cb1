package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog is append-only: rows are never updated or deleted.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_log_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.Enum("event_type").
			Values(
				"command_executed",
				"command_denied",
				"host_added",
				"host_removed",
				"policy_changed",
				"session_started",
				"session_ended",
				"credential_added",
				"credential_removed",
			).
			Immutable(),
		field.String("user_id").
			Optional().
			Immutable(),
		field.String("host_id").
			Optional().
			Immutable(),
		field.String("execution_id").
			Optional().
			Immutable(),
		field.Bool("was_allowed").
			Optional().
			Nillable().
			Immutable(),
		field.Text("denial_reason").
			Optional().
			Immutable(),
		field.Text("llm_reasoning").
			Optional().
			Immutable(),
		field.Text("metadata_json").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "created_at"),
		index.Fields("organization_id", "event_type"),
	}
}

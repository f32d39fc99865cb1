package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommandExecution is the immutable record of one shell execution.
type CommandExecution struct {
	ent.Schema
}

// Fields of the CommandExecution.
func (CommandExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("host_id").
			Immutable(),
		field.String("session_id").
			Optional(),
		field.Text("command").
			Immutable(),
		field.Int("exit_code").
			Immutable(),
		field.Text("stdout").
			Immutable(),
		field.Text("stderr").
			Immutable(),
		field.Int64("duration_ms").
			Immutable(),
		field.Bool("was_dry_run").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CommandExecution.
func (CommandExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "host_id"),
		index.Fields("session_id"),
	}
}

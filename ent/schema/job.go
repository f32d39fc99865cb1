package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job is a triggered workload: cron-scheduled or webhook-invoked.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("owner; LLM sessions spawned by runs act as this user"),
		field.String("name").
			NotEmpty(),
		field.Enum("trigger_type").
			Values("cron", "webhook"),
		field.String("cron_schedule").
			Optional().
			Comment("standard 5-field cron expression"),
		field.String("webhook_secret").
			Optional().
			Sensitive(),
		field.Text("prompt").
			Optional(),
		field.JSON("host_ids", []string{}).
			Optional(),
		field.Bool("auto_run_llm").
			Default(false),
		field.Bool("is_enabled").
			Default(true),
		field.Time("last_run_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("trigger_type", "is_enabled"),
	}
}

// JobRun is one execution instance of a Job.
type JobRun struct {
	ent.Schema
}

// Fields of the JobRun.
func (JobRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_run_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Enum("triggered_by").
			Values("cron", "webhook", "manual").
			Immutable(),
		field.Enum("status").
			Values("received", "completed", "failed").
			Default("received"),
		field.Text("payload").
			Optional(),
		field.Text("response").
			Optional(),
		field.Text("error").
			Optional(),
		field.String("session_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the JobRun.
func (JobRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("job_id", "created_at"),
	}
}

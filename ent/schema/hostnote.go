package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HostNote is free-text operational knowledge the assistant maintains per host.
// Unique on (organization_id, host_id), enforced by upsert.
type HostNote struct {
	ent.Schema
}

// Fields of the HostNote.
func (HostNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("host_note_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("host_id").
			Immutable(),
		field.Text("content"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the HostNote.
func (HostNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "host_id").
			Unique(),
	}
}

// PromptSettings holds per (org, user) prompt customization.
type PromptSettings struct {
	ent.Schema
}

// Fields of the PromptSettings.
func (PromptSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_settings_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("system_prompt").
			Optional(),
		field.Text("personalization_prompt").
			Optional(),
		field.String("default_model").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PromptSettings.
func (PromptSettings) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "user_id").
			Unique(),
	}
}

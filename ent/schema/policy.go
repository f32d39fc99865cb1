package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AccessPolicy holds ordered allow/deny command patterns plus execution flags.
// (Named AccessPolicy because ent reserves the identifier "Policy"; the table
// name is pinned to "policies".)
type AccessPolicy struct {
	ent.Schema
}

// Fields of the AccessPolicy.
func (AccessPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("policy_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.JSON("allowed_command_patterns", []string{}).
			Optional().
			Comment("regular expressions, full-match semantics"),
		field.JSON("denied_command_patterns", []string{}).
			Optional(),
		field.Bool("require_approval").
			Default(false),
		field.Int("max_concurrent_commands").
			Default(0).
			Comment("0 = unlimited"),
		field.Bool("is_enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AccessPolicy.
func (AccessPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}

// Annotations of the AccessPolicy.
func (AccessPolicy) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "policies"},
	}
}

// UserPolicy binds a policy to a user, optionally scoped to a single host.
// A nil host_id means the assignment is global for that user.
type UserPolicy struct {
	ent.Schema
}

// Fields of the UserPolicy.
func (UserPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_policy_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("policy_id").
			Immutable(),
		field.String("host_id").
			Optional().
			Nillable().
			Comment("nil = global assignment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UserPolicy.
func (UserPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "user_id"),
		index.Fields("policy_id"),
	}
}

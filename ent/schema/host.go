package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Host is an SSH endpoint managed by the fleet.
type Host struct {
	ent.Schema
}

// Fields of the Host.
func (Host) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("host_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("hostname").
			NotEmpty(),
		field.Int("port").
			Default(22),
		field.String("username").
			Optional(),
		field.String("credential_id").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("environment").
			Optional().
			Comment("e.g. production, staging"),
		field.Enum("status").
			Values("healthy", "degraded", "unreachable", "unknown").
			Default("unknown"),
		field.Bool("allow_insecure_ssl").
			Default(false).
			Comment("skip SSH host key verification"),
		field.Time("last_health_check").
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

// Indexes of the Host.
func (Host) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "status"),
	}
}

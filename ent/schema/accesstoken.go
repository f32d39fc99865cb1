package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AccessToken is a long-lived API credential. Only the SHA-256 of the raw
// token is stored; the raw value is returned exactly once at creation.
type AccessToken struct {
	ent.Schema
}

// Fields of the AccessToken.
func (AccessToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("access_token_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("token_hash").
			Unique().
			Immutable().
			Comment("hex SHA-256 of the raw token"),
		field.Bool("is_active").
			Default(true),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AccessToken.
func (AccessToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "user_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Credential is a named secret. The value is always stored as an ENC:v1
// envelope (legacy rows may hold plaintext) and is never returned to clients.
type Credential struct {
	ent.Schema
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("kind").
			Values("password", "ssh_key", "api_token"),
		field.String("encrypted_value").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Credential.
func (Credential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds an identity. Organization membership (with role) lives in
// Membership so a user can belong to more than one tenant.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("display_name").
			NotEmpty(),
		field.String("password_hash").
			Sensitive().
			Comment("bcrypt hash; never serialized"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Membership binds a user to an organization with a role.
type Membership struct {
	ent.Schema
}

// Fields of the Membership.
func (Membership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("membership_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("owner", "admin", "member").
			Default("member"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Membership.
func (Membership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}

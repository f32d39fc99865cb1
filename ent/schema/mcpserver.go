package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// McpServer is an external MCP endpoint, reachable over HTTP or as a
// long-lived stdio subprocess.
type McpServer struct {
	ent.Schema
}

// Fields of the McpServer.
func (McpServer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mcp_server_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("used in the mcp__{server}__{tool} namespace; no underscores"),
		field.Enum("transport_type").
			Values("http", "stdio"),
		field.String("base_url").
			Optional(),
		field.String("api_key_encrypted").
			Optional().
			Sensitive(),
		field.Bool("verify_ssl").
			Default(true),
		field.String("command").
			Optional().
			Comment("required when transport_type=stdio"),
		field.JSON("arguments", []string{}).
			Optional(),
		field.String("working_directory").
			Optional(),
		field.JSON("environment_variables", map[string]string{}).
			Optional(),
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

// Indexes of the McpServer.
func (McpServer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "name").
			Unique(),
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/mcpserver"
)

// McpServer is the model entity for the McpServer schema.
type McpServer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// used in the mcp__{server}__{tool} namespace; no underscores
	Name string `json:"name,omitempty"`
	// TransportType holds the value of the "transport_type" field.
	TransportType mcpserver.TransportType `json:"transport_type,omitempty"`
	// BaseURL holds the value of the "base_url" field.
	BaseURL string `json:"base_url,omitempty"`
	// APIKeyEncrypted holds the value of the "api_key_encrypted" field.
	APIKeyEncrypted string `json:"-"`
	// VerifySsl holds the value of the "verify_ssl" field.
	VerifySsl bool `json:"verify_ssl,omitempty"`
	// required when transport_type=stdio
	Command string `json:"command,omitempty"`
	// Arguments holds the value of the "arguments" field.
	Arguments []string `json:"arguments,omitempty"`
	// WorkingDirectory holds the value of the "working_directory" field.
	WorkingDirectory string `json:"working_directory,omitempty"`
	// EnvironmentVariables holds the value of the "environment_variables" field.
	EnvironmentVariables map[string]string `json:"environment_variables,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*McpServer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mcpserver.FieldArguments, mcpserver.FieldEnvironmentVariables:
			values[i] = new([]byte)
		case mcpserver.FieldVerifySsl, mcpserver.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case mcpserver.FieldID, mcpserver.FieldOrganizationID, mcpserver.FieldName, mcpserver.FieldTransportType, mcpserver.FieldBaseURL, mcpserver.FieldAPIKeyEncrypted, mcpserver.FieldCommand, mcpserver.FieldWorkingDirectory:
			values[i] = new(sql.NullString)
		case mcpserver.FieldCreatedAt, mcpserver.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the McpServer fields.
func (_m *McpServer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mcpserver.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mcpserver.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case mcpserver.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mcpserver.FieldTransportType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport_type", values[i])
			} else if value.Valid {
				_m.TransportType = mcpserver.TransportType(value.String)
			}
		case mcpserver.FieldBaseURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_url", values[i])
			} else if value.Valid {
				_m.BaseURL = value.String
			}
		case mcpserver.FieldAPIKeyEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_encrypted", values[i])
			} else if value.Valid {
				_m.APIKeyEncrypted = value.String
			}
		case mcpserver.FieldVerifySsl:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verify_ssl", values[i])
			} else if value.Valid {
				_m.VerifySsl = value.Bool
			}
		case mcpserver.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case mcpserver.FieldArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Arguments); err != nil {
					return fmt.Errorf("unmarshal field arguments: %w", err)
				}
			}
		case mcpserver.FieldWorkingDirectory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field working_directory", values[i])
			} else if value.Valid {
				_m.WorkingDirectory = value.String
			}
		case mcpserver.FieldEnvironmentVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field environment_variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnvironmentVariables); err != nil {
					return fmt.Errorf("unmarshal field environment_variables: %w", err)
				}
			}
		case mcpserver.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case mcpserver.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mcpserver.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the McpServer.
// This includes values selected through modifiers, order, etc.
func (_m *McpServer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this McpServer.
// Note that you need to call McpServer.Unwrap() before calling this method if this McpServer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *McpServer) Update() *McpServerUpdateOne {
	return NewMcpServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the McpServer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *McpServer) Unwrap() *McpServer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: McpServer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *McpServer) String() string {
	var builder strings.Builder
	builder.WriteString("McpServer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("transport_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransportType))
	builder.WriteString(", ")
	builder.WriteString("base_url=")
	builder.WriteString(_m.BaseURL)
	builder.WriteString(", ")
	builder.WriteString("api_key_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("verify_ssl=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerifySsl))
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Arguments))
	builder.WriteString(", ")
	builder.WriteString("working_directory=")
	builder.WriteString(_m.WorkingDirectory)
	builder.WriteString(", ")
	builder.WriteString("environment_variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnvironmentVariables))
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// McpServers is a parsable slice of McpServer.
type McpServers []*McpServer

// Code generated by ent, DO NOT EDIT.

package mcpserver

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mcpserver type in the database.
	Label = "mcp_server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mcp_server_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTransportType holds the string denoting the transport_type field in the database.
	FieldTransportType = "transport_type"
	// FieldBaseURL holds the string denoting the base_url field in the database.
	FieldBaseURL = "base_url"
	// FieldAPIKeyEncrypted holds the string denoting the api_key_encrypted field in the database.
	FieldAPIKeyEncrypted = "api_key_encrypted"
	// FieldVerifySsl holds the string denoting the verify_ssl field in the database.
	FieldVerifySsl = "verify_ssl"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldArguments holds the string denoting the arguments field in the database.
	FieldArguments = "arguments"
	// FieldWorkingDirectory holds the string denoting the working_directory field in the database.
	FieldWorkingDirectory = "working_directory"
	// FieldEnvironmentVariables holds the string denoting the environment_variables field in the database.
	FieldEnvironmentVariables = "environment_variables"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the mcpserver in the database.
	Table = "mcp_servers"
)

// Columns holds all SQL columns for mcpserver fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldName,
	FieldTransportType,
	FieldBaseURL,
	FieldAPIKeyEncrypted,
	FieldVerifySsl,
	FieldCommand,
	FieldArguments,
	FieldWorkingDirectory,
	FieldEnvironmentVariables,
	FieldIsEnabled,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultVerifySsl holds the default value on creation for the "verify_ssl" field.
	DefaultVerifySsl bool
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TransportType defines the type for the "transport_type" enum field.
type TransportType string

// TransportType values.
const (
	TransportTypeHTTP  TransportType = "http"
	TransportTypeStdio TransportType = "stdio"
)

func (tt TransportType) String() string {
	return string(tt)
}

// TransportTypeValidator is a validator for the "transport_type" field enum values. It is called by the builders before save.
func TransportTypeValidator(tt TransportType) error {
	switch tt {
	case TransportTypeHTTP, TransportTypeStdio:
		return nil
	default:
		return fmt.Errorf("mcpserver: invalid enum value for transport_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the McpServer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTransportType orders the results by the transport_type field.
func ByTransportType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransportType, opts...).ToFunc()
}

// ByBaseURL orders the results by the base_url field.
func ByBaseURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseURL, opts...).ToFunc()
}

// ByAPIKeyEncrypted orders the results by the api_key_encrypted field.
func ByAPIKeyEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyEncrypted, opts...).ToFunc()
}

// ByVerifySsl orders the results by the verify_ssl field.
func ByVerifySsl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifySsl, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByWorkingDirectory orders the results by the working_directory field.
func ByWorkingDirectory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDirectory, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package accesspolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the accesspolicy type in the database.
	Label = "access_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "policy_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAllowedCommandPatterns holds the string denoting the allowed_command_patterns field in the database.
	FieldAllowedCommandPatterns = "allowed_command_patterns"
	// FieldDeniedCommandPatterns holds the string denoting the denied_command_patterns field in the database.
	FieldDeniedCommandPatterns = "denied_command_patterns"
	// FieldRequireApproval holds the string denoting the require_approval field in the database.
	FieldRequireApproval = "require_approval"
	// FieldMaxConcurrentCommands holds the string denoting the max_concurrent_commands field in the database.
	FieldMaxConcurrentCommands = "max_concurrent_commands"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the accesspolicy in the database.
	Table = "policies"
)

// Columns holds all SQL columns for accesspolicy fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldName,
	FieldDescription,
	FieldAllowedCommandPatterns,
	FieldDeniedCommandPatterns,
	FieldRequireApproval,
	FieldMaxConcurrentCommands,
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
	// DefaultRequireApproval holds the default value on creation for the "require_approval" field.
	DefaultRequireApproval bool
	// DefaultMaxConcurrentCommands holds the default value on creation for the "max_concurrent_commands" field.
	DefaultMaxConcurrentCommands int
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AccessPolicy queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequireApproval orders the results by the require_approval field.
func ByRequireApproval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireApproval, opts...).ToFunc()
}

// ByMaxConcurrentCommands orders the results by the max_concurrent_commands field.
func ByMaxConcurrentCommands(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrentCommands, opts...).ToFunc()
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

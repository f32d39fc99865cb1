// Code generated by ent, DO NOT EDIT.

package promptsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the promptsettings type in the database.
	Label = "prompt_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_settings_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldPersonalizationPrompt holds the string denoting the personalization_prompt field in the database.
	FieldPersonalizationPrompt = "personalization_prompt"
	// FieldDefaultModel holds the string denoting the default_model field in the database.
	FieldDefaultModel = "default_model"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the promptsettings in the database.
	Table = "prompt_settings"
)

// Columns holds all SQL columns for promptsettings fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldUserID,
	FieldSystemPrompt,
	FieldPersonalizationPrompt,
	FieldDefaultModel,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PromptSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByPersonalizationPrompt orders the results by the personalization_prompt field.
func ByPersonalizationPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalizationPrompt, opts...).ToFunc()
}

// ByDefaultModel orders the results by the default_model field.
func ByDefaultModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultModel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

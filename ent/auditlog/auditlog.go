// Code generated by ent, DO NOT EDIT.

package auditlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditlog type in the database.
	Label = "audit_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_log_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldHostID holds the string denoting the host_id field in the database.
	FieldHostID = "host_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldWasAllowed holds the string denoting the was_allowed field in the database.
	FieldWasAllowed = "was_allowed"
	// FieldDenialReason holds the string denoting the denial_reason field in the database.
	FieldDenialReason = "denial_reason"
	// FieldLlmReasoning holds the string denoting the llm_reasoning field in the database.
	FieldLlmReasoning = "llm_reasoning"
	// FieldMetadataJSON holds the string denoting the metadata_json field in the database.
	FieldMetadataJSON = "metadata_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the auditlog in the database.
	Table = "audit_logs"
)

// Columns holds all SQL columns for auditlog fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldEventType,
	FieldUserID,
	FieldHostID,
	FieldExecutionID,
	FieldWasAllowed,
	FieldDenialReason,
	FieldLlmReasoning,
	FieldMetadataJSON,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeCommandExecuted   EventType = "command_executed"
	EventTypeCommandDenied     EventType = "command_denied"
	EventTypeHostAdded         EventType = "host_added"
	EventTypeHostRemoved       EventType = "host_removed"
	EventTypePolicyChanged     EventType = "policy_changed"
	EventTypeSessionStarted    EventType = "session_started"
	EventTypeSessionEnded      EventType = "session_ended"
	EventTypeCredentialAdded   EventType = "credential_added"
	EventTypeCredentialRemoved EventType = "credential_removed"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeCommandExecuted, EventTypeCommandDenied, EventTypeHostAdded, EventTypeHostRemoved, EventTypePolicyChanged, EventTypeSessionStarted, EventTypeSessionEnded, EventTypeCredentialAdded, EventTypeCredentialRemoved:
		return nil
	default:
		return fmt.Errorf("auditlog: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the AuditLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByHostID orders the results by the host_id field.
func ByHostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByWasAllowed orders the results by the was_allowed field.
func ByWasAllowed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasAllowed, opts...).ToFunc()
}

// ByDenialReason orders the results by the denial_reason field.
func ByDenialReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDenialReason, opts...).ToFunc()
}

// ByLlmReasoning orders the results by the llm_reasoning field.
func ByLlmReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmReasoning, opts...).ToFunc()
}

// ByMetadataJSON orders the results by the metadata_json field.
func ByMetadataJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetadataJSON, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package jobrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the jobrun type in the database.
	Label = "job_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_run_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the jobrun in the database.
	Table = "job_runs"
)

// Columns holds all SQL columns for jobrun fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldJobID,
	FieldTriggeredBy,
	FieldStatus,
	FieldPayload,
	FieldResponse,
	FieldError,
	FieldSessionID,
	FieldCreatedAt,
	FieldFinishedAt,
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

// TriggeredBy defines the type for the "triggered_by" enum field.
type TriggeredBy string

// TriggeredBy values.
const (
	TriggeredByCron    TriggeredBy = "cron"
	TriggeredByWebhook TriggeredBy = "webhook"
	TriggeredByManual  TriggeredBy = "manual"
)

func (tb TriggeredBy) String() string {
	return string(tb)
}

// TriggeredByValidator is a validator for the "triggered_by" field enum values. It is called by the builders before save.
func TriggeredByValidator(tb TriggeredBy) error {
	switch tb {
	case TriggeredByCron, TriggeredByWebhook, TriggeredByManual:
		return nil
	default:
		return fmt.Errorf("jobrun: invalid enum value for triggered_by field: %q", tb)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusReceived is the default value of the Status enum.
const DefaultStatus = StatusReceived

// Status values.
const (
	StatusReceived  Status = "received"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReceived, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("jobrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the JobRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

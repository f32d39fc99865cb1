// Code generated by ent, DO NOT EDIT.

package commandexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldOrganizationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldUserID, v))
}

// HostID applies equality check predicate on the "host_id" field. It's identical to HostIDEQ.
func HostID(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldHostID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldSessionID, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldCommand, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldExitCode, v))
}

// Stdout applies equality check predicate on the "stdout" field. It's identical to StdoutEQ.
func Stdout(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldStdout, v))
}

// Stderr applies equality check predicate on the "stderr" field. It's identical to StderrEQ.
func Stderr(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldStderr, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldDurationMs, v))
}

// WasDryRun applies equality check predicate on the "was_dry_run" field. It's identical to WasDryRunEQ.
func WasDryRun(v bool) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldWasDryRun, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldOrganizationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldUserID, v))
}

// HostIDEQ applies the EQ predicate on the "host_id" field.
func HostIDEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldHostID, v))
}

// HostIDNEQ applies the NEQ predicate on the "host_id" field.
func HostIDNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldHostID, v))
}

// HostIDIn applies the In predicate on the "host_id" field.
func HostIDIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldHostID, vs...))
}

// HostIDNotIn applies the NotIn predicate on the "host_id" field.
func HostIDNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldHostID, vs...))
}

// HostIDGT applies the GT predicate on the "host_id" field.
func HostIDGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldHostID, v))
}

// HostIDGTE applies the GTE predicate on the "host_id" field.
func HostIDGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldHostID, v))
}

// HostIDLT applies the LT predicate on the "host_id" field.
func HostIDLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldHostID, v))
}

// HostIDLTE applies the LTE predicate on the "host_id" field.
func HostIDLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldHostID, v))
}

// HostIDContains applies the Contains predicate on the "host_id" field.
func HostIDContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldHostID, v))
}

// HostIDHasPrefix applies the HasPrefix predicate on the "host_id" field.
func HostIDHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldHostID, v))
}

// HostIDHasSuffix applies the HasSuffix predicate on the "host_id" field.
func HostIDHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldHostID, v))
}

// HostIDEqualFold applies the EqualFold predicate on the "host_id" field.
func HostIDEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldHostID, v))
}

// HostIDContainsFold applies the ContainsFold predicate on the "host_id" field.
func HostIDContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldHostID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldSessionID, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldCommand, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldExitCode, v))
}

// StdoutEQ applies the EQ predicate on the "stdout" field.
func StdoutEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldStdout, v))
}

// StdoutNEQ applies the NEQ predicate on the "stdout" field.
func StdoutNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldStdout, v))
}

// StdoutIn applies the In predicate on the "stdout" field.
func StdoutIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldStdout, vs...))
}

// StdoutNotIn applies the NotIn predicate on the "stdout" field.
func StdoutNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldStdout, vs...))
}

// StdoutGT applies the GT predicate on the "stdout" field.
func StdoutGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldStdout, v))
}

// StdoutGTE applies the GTE predicate on the "stdout" field.
func StdoutGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldStdout, v))
}

// StdoutLT applies the LT predicate on the "stdout" field.
func StdoutLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldStdout, v))
}

// StdoutLTE applies the LTE predicate on the "stdout" field.
func StdoutLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldStdout, v))
}

// StdoutContains applies the Contains predicate on the "stdout" field.
func StdoutContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldStdout, v))
}

// StdoutHasPrefix applies the HasPrefix predicate on the "stdout" field.
func StdoutHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldStdout, v))
}

// StdoutHasSuffix applies the HasSuffix predicate on the "stdout" field.
func StdoutHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldStdout, v))
}

// StdoutEqualFold applies the EqualFold predicate on the "stdout" field.
func StdoutEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldStdout, v))
}

// StdoutContainsFold applies the ContainsFold predicate on the "stdout" field.
func StdoutContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldStdout, v))
}

// StderrEQ applies the EQ predicate on the "stderr" field.
func StderrEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldStderr, v))
}

// StderrNEQ applies the NEQ predicate on the "stderr" field.
func StderrNEQ(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldStderr, v))
}

// StderrIn applies the In predicate on the "stderr" field.
func StderrIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldStderr, vs...))
}

// StderrNotIn applies the NotIn predicate on the "stderr" field.
func StderrNotIn(vs ...string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldStderr, vs...))
}

// StderrGT applies the GT predicate on the "stderr" field.
func StderrGT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldStderr, v))
}

// StderrGTE applies the GTE predicate on the "stderr" field.
func StderrGTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldStderr, v))
}

// StderrLT applies the LT predicate on the "stderr" field.
func StderrLT(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldStderr, v))
}

// StderrLTE applies the LTE predicate on the "stderr" field.
func StderrLTE(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldStderr, v))
}

// StderrContains applies the Contains predicate on the "stderr" field.
func StderrContains(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContains(FieldStderr, v))
}

// StderrHasPrefix applies the HasPrefix predicate on the "stderr" field.
func StderrHasPrefix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasPrefix(FieldStderr, v))
}

// StderrHasSuffix applies the HasSuffix predicate on the "stderr" field.
func StderrHasSuffix(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldHasSuffix(FieldStderr, v))
}

// StderrEqualFold applies the EqualFold predicate on the "stderr" field.
func StderrEqualFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEqualFold(FieldStderr, v))
}

// StderrContainsFold applies the ContainsFold predicate on the "stderr" field.
func StderrContainsFold(v string) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldContainsFold(FieldStderr, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldDurationMs, v))
}

// WasDryRunEQ applies the EQ predicate on the "was_dry_run" field.
func WasDryRunEQ(v bool) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldWasDryRun, v))
}

// WasDryRunNEQ applies the NEQ predicate on the "was_dry_run" field.
func WasDryRunNEQ(v bool) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldWasDryRun, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommandExecution {
	return predicate.CommandExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommandExecution) predicate.CommandExecution {
	return predicate.CommandExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommandExecution) predicate.CommandExecution {
	return predicate.CommandExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommandExecution) predicate.CommandExecution {
	return predicate.CommandExecution(sql.NotPredicates(p))
}

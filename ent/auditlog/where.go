// Code generated by ent, DO NOT EDIT.

package auditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldOrganizationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldUserID, v))
}

// HostID applies equality check predicate on the "host_id" field. It's identical to HostIDEQ.
func HostID(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldHostID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldExecutionID, v))
}

// WasAllowed applies equality check predicate on the "was_allowed" field. It's identical to WasAllowedEQ.
func WasAllowed(v bool) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldWasAllowed, v))
}

// DenialReason applies equality check predicate on the "denial_reason" field. It's identical to DenialReasonEQ.
func DenialReason(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldDenialReason, v))
}

// LlmReasoning applies equality check predicate on the "llm_reasoning" field. It's identical to LlmReasoningEQ.
func LlmReasoning(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldLlmReasoning, v))
}

// MetadataJSON applies equality check predicate on the "metadata_json" field. It's identical to MetadataJSONEQ.
func MetadataJSON(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldMetadataJSON, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldOrganizationID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldEventType, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldUserID, v))
}

// HostIDEQ applies the EQ predicate on the "host_id" field.
func HostIDEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldHostID, v))
}

// HostIDNEQ applies the NEQ predicate on the "host_id" field.
func HostIDNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldHostID, v))
}

// HostIDIn applies the In predicate on the "host_id" field.
func HostIDIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldHostID, vs...))
}

// HostIDNotIn applies the NotIn predicate on the "host_id" field.
func HostIDNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldHostID, vs...))
}

// HostIDGT applies the GT predicate on the "host_id" field.
func HostIDGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldHostID, v))
}

// HostIDGTE applies the GTE predicate on the "host_id" field.
func HostIDGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldHostID, v))
}

// HostIDLT applies the LT predicate on the "host_id" field.
func HostIDLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldHostID, v))
}

// HostIDLTE applies the LTE predicate on the "host_id" field.
func HostIDLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldHostID, v))
}

// HostIDContains applies the Contains predicate on the "host_id" field.
func HostIDContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldHostID, v))
}

// HostIDHasPrefix applies the HasPrefix predicate on the "host_id" field.
func HostIDHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldHostID, v))
}

// HostIDHasSuffix applies the HasSuffix predicate on the "host_id" field.
func HostIDHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldHostID, v))
}

// HostIDIsNil applies the IsNil predicate on the "host_id" field.
func HostIDIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldHostID))
}

// HostIDNotNil applies the NotNil predicate on the "host_id" field.
func HostIDNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldHostID))
}

// HostIDEqualFold applies the EqualFold predicate on the "host_id" field.
func HostIDEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldHostID, v))
}

// HostIDContainsFold applies the ContainsFold predicate on the "host_id" field.
func HostIDContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldHostID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldExecutionID, v))
}

// WasAllowedEQ applies the EQ predicate on the "was_allowed" field.
func WasAllowedEQ(v bool) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldWasAllowed, v))
}

// WasAllowedNEQ applies the NEQ predicate on the "was_allowed" field.
func WasAllowedNEQ(v bool) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldWasAllowed, v))
}

// WasAllowedIsNil applies the IsNil predicate on the "was_allowed" field.
func WasAllowedIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldWasAllowed))
}

// WasAllowedNotNil applies the NotNil predicate on the "was_allowed" field.
func WasAllowedNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldWasAllowed))
}

// DenialReasonEQ applies the EQ predicate on the "denial_reason" field.
func DenialReasonEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldDenialReason, v))
}

// DenialReasonNEQ applies the NEQ predicate on the "denial_reason" field.
func DenialReasonNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldDenialReason, v))
}

// DenialReasonIn applies the In predicate on the "denial_reason" field.
func DenialReasonIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldDenialReason, vs...))
}

// DenialReasonNotIn applies the NotIn predicate on the "denial_reason" field.
func DenialReasonNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldDenialReason, vs...))
}

// DenialReasonGT applies the GT predicate on the "denial_reason" field.
func DenialReasonGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldDenialReason, v))
}

// DenialReasonGTE applies the GTE predicate on the "denial_reason" field.
func DenialReasonGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldDenialReason, v))
}

// DenialReasonLT applies the LT predicate on the "denial_reason" field.
func DenialReasonLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldDenialReason, v))
}

// DenialReasonLTE applies the LTE predicate on the "denial_reason" field.
func DenialReasonLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldDenialReason, v))
}

// DenialReasonContains applies the Contains predicate on the "denial_reason" field.
func DenialReasonContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldDenialReason, v))
}

// DenialReasonHasPrefix applies the HasPrefix predicate on the "denial_reason" field.
func DenialReasonHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldDenialReason, v))
}

// DenialReasonHasSuffix applies the HasSuffix predicate on the "denial_reason" field.
func DenialReasonHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldDenialReason, v))
}

// DenialReasonIsNil applies the IsNil predicate on the "denial_reason" field.
func DenialReasonIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldDenialReason))
}

// DenialReasonNotNil applies the NotNil predicate on the "denial_reason" field.
func DenialReasonNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldDenialReason))
}

// DenialReasonEqualFold applies the EqualFold predicate on the "denial_reason" field.
func DenialReasonEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldDenialReason, v))
}

// DenialReasonContainsFold applies the ContainsFold predicate on the "denial_reason" field.
func DenialReasonContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldDenialReason, v))
}

// LlmReasoningEQ applies the EQ predicate on the "llm_reasoning" field.
func LlmReasoningEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldLlmReasoning, v))
}

// LlmReasoningNEQ applies the NEQ predicate on the "llm_reasoning" field.
func LlmReasoningNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldLlmReasoning, v))
}

// LlmReasoningIn applies the In predicate on the "llm_reasoning" field.
func LlmReasoningIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldLlmReasoning, vs...))
}

// LlmReasoningNotIn applies the NotIn predicate on the "llm_reasoning" field.
func LlmReasoningNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldLlmReasoning, vs...))
}

// LlmReasoningGT applies the GT predicate on the "llm_reasoning" field.
func LlmReasoningGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldLlmReasoning, v))
}

// LlmReasoningGTE applies the GTE predicate on the "llm_reasoning" field.
func LlmReasoningGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldLlmReasoning, v))
}

// LlmReasoningLT applies the LT predicate on the "llm_reasoning" field.
func LlmReasoningLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldLlmReasoning, v))
}

// LlmReasoningLTE applies the LTE predicate on the "llm_reasoning" field.
func LlmReasoningLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldLlmReasoning, v))
}

// LlmReasoningContains applies the Contains predicate on the "llm_reasoning" field.
func LlmReasoningContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldLlmReasoning, v))
}

// LlmReasoningHasPrefix applies the HasPrefix predicate on the "llm_reasoning" field.
func LlmReasoningHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldLlmReasoning, v))
}

// LlmReasoningHasSuffix applies the HasSuffix predicate on the "llm_reasoning" field.
func LlmReasoningHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldLlmReasoning, v))
}

// LlmReasoningIsNil applies the IsNil predicate on the "llm_reasoning" field.
func LlmReasoningIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldLlmReasoning))
}

// LlmReasoningNotNil applies the NotNil predicate on the "llm_reasoning" field.
func LlmReasoningNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldLlmReasoning))
}

// LlmReasoningEqualFold applies the EqualFold predicate on the "llm_reasoning" field.
func LlmReasoningEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldLlmReasoning, v))
}

// LlmReasoningContainsFold applies the ContainsFold predicate on the "llm_reasoning" field.
func LlmReasoningContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldLlmReasoning, v))
}

// MetadataJSONEQ applies the EQ predicate on the "metadata_json" field.
func MetadataJSONEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldMetadataJSON, v))
}

// MetadataJSONNEQ applies the NEQ predicate on the "metadata_json" field.
func MetadataJSONNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldMetadataJSON, v))
}

// MetadataJSONIn applies the In predicate on the "metadata_json" field.
func MetadataJSONIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldMetadataJSON, vs...))
}

// MetadataJSONNotIn applies the NotIn predicate on the "metadata_json" field.
func MetadataJSONNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldMetadataJSON, vs...))
}

// MetadataJSONGT applies the GT predicate on the "metadata_json" field.
func MetadataJSONGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldMetadataJSON, v))
}

// MetadataJSONGTE applies the GTE predicate on the "metadata_json" field.
func MetadataJSONGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldMetadataJSON, v))
}

// MetadataJSONLT applies the LT predicate on the "metadata_json" field.
func MetadataJSONLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldMetadataJSON, v))
}

// MetadataJSONLTE applies the LTE predicate on the "metadata_json" field.
func MetadataJSONLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldMetadataJSON, v))
}

// MetadataJSONContains applies the Contains predicate on the "metadata_json" field.
func MetadataJSONContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldMetadataJSON, v))
}

// MetadataJSONHasPrefix applies the HasPrefix predicate on the "metadata_json" field.
func MetadataJSONHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldMetadataJSON, v))
}

// MetadataJSONHasSuffix applies the HasSuffix predicate on the "metadata_json" field.
func MetadataJSONHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldMetadataJSON, v))
}

// MetadataJSONIsNil applies the IsNil predicate on the "metadata_json" field.
func MetadataJSONIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldMetadataJSON))
}

// MetadataJSONNotNil applies the NotNil predicate on the "metadata_json" field.
func MetadataJSONNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldMetadataJSON))
}

// MetadataJSONEqualFold applies the EqualFold predicate on the "metadata_json" field.
func MetadataJSONEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldMetadataJSON, v))
}

// MetadataJSONContainsFold applies the ContainsFold predicate on the "metadata_json" field.
func MetadataJSONContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldMetadataJSON, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.NotPredicates(p))
}

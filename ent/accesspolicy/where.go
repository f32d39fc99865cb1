// Code generated by ent, DO NOT EDIT.

package accesspolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldOrganizationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldDescription, v))
}

// RequireApproval applies equality check predicate on the "require_approval" field. It's identical to RequireApprovalEQ.
func RequireApproval(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldRequireApproval, v))
}

// MaxConcurrentCommands applies equality check predicate on the "max_concurrent_commands" field. It's identical to MaxConcurrentCommandsEQ.
func MaxConcurrentCommands(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldMaxConcurrentCommands, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldIsEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContainsFold(FieldOrganizationID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldContainsFold(FieldDescription, v))
}

// AllowedCommandPatternsIsNil applies the IsNil predicate on the "allowed_command_patterns" field.
func AllowedCommandPatternsIsNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIsNull(FieldAllowedCommandPatterns))
}

// AllowedCommandPatternsNotNil applies the NotNil predicate on the "allowed_command_patterns" field.
func AllowedCommandPatternsNotNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotNull(FieldAllowedCommandPatterns))
}

// DeniedCommandPatternsIsNil applies the IsNil predicate on the "denied_command_patterns" field.
func DeniedCommandPatternsIsNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIsNull(FieldDeniedCommandPatterns))
}

// DeniedCommandPatternsNotNil applies the NotNil predicate on the "denied_command_patterns" field.
func DeniedCommandPatternsNotNil() predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotNull(FieldDeniedCommandPatterns))
}

// RequireApprovalEQ applies the EQ predicate on the "require_approval" field.
func RequireApprovalEQ(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldRequireApproval, v))
}

// RequireApprovalNEQ applies the NEQ predicate on the "require_approval" field.
func RequireApprovalNEQ(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldRequireApproval, v))
}

// MaxConcurrentCommandsEQ applies the EQ predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsEQ(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldMaxConcurrentCommands, v))
}

// MaxConcurrentCommandsNEQ applies the NEQ predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsNEQ(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldMaxConcurrentCommands, v))
}

// MaxConcurrentCommandsIn applies the In predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsIn(vs ...int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldMaxConcurrentCommands, vs...))
}

// MaxConcurrentCommandsNotIn applies the NotIn predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsNotIn(vs ...int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldMaxConcurrentCommands, vs...))
}

// MaxConcurrentCommandsGT applies the GT predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsGT(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldMaxConcurrentCommands, v))
}

// MaxConcurrentCommandsGTE applies the GTE predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsGTE(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldMaxConcurrentCommands, v))
}

// MaxConcurrentCommandsLT applies the LT predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsLT(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldMaxConcurrentCommands, v))
}

// MaxConcurrentCommandsLTE applies the LTE predicate on the "max_concurrent_commands" field.
func MaxConcurrentCommandsLTE(v int) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldMaxConcurrentCommands, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldIsEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AccessPolicy) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AccessPolicy) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AccessPolicy) predicate.AccessPolicy {
	return predicate.AccessPolicy(sql.NotPredicates(p))
}

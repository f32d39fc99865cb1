// Code generated by ent, DO NOT EDIT.

package promptsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldOrganizationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldUserID, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldSystemPrompt, v))
}

// PersonalizationPrompt applies equality check predicate on the "personalization_prompt" field. It's identical to PersonalizationPromptEQ.
func PersonalizationPrompt(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldPersonalizationPrompt, v))
}

// DefaultModel applies equality check predicate on the "default_model" field. It's identical to DefaultModelEQ.
func DefaultModel(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldDefaultModel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldOrganizationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldUserID, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// PersonalizationPromptEQ applies the EQ predicate on the "personalization_prompt" field.
func PersonalizationPromptEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptNEQ applies the NEQ predicate on the "personalization_prompt" field.
func PersonalizationPromptNEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptIn applies the In predicate on the "personalization_prompt" field.
func PersonalizationPromptIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldPersonalizationPrompt, vs...))
}

// PersonalizationPromptNotIn applies the NotIn predicate on the "personalization_prompt" field.
func PersonalizationPromptNotIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldPersonalizationPrompt, vs...))
}

// PersonalizationPromptGT applies the GT predicate on the "personalization_prompt" field.
func PersonalizationPromptGT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptGTE applies the GTE predicate on the "personalization_prompt" field.
func PersonalizationPromptGTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptLT applies the LT predicate on the "personalization_prompt" field.
func PersonalizationPromptLT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptLTE applies the LTE predicate on the "personalization_prompt" field.
func PersonalizationPromptLTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptContains applies the Contains predicate on the "personalization_prompt" field.
func PersonalizationPromptContains(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContains(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptHasPrefix applies the HasPrefix predicate on the "personalization_prompt" field.
func PersonalizationPromptHasPrefix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasPrefix(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptHasSuffix applies the HasSuffix predicate on the "personalization_prompt" field.
func PersonalizationPromptHasSuffix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasSuffix(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptIsNil applies the IsNil predicate on the "personalization_prompt" field.
func PersonalizationPromptIsNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIsNull(FieldPersonalizationPrompt))
}

// PersonalizationPromptNotNil applies the NotNil predicate on the "personalization_prompt" field.
func PersonalizationPromptNotNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotNull(FieldPersonalizationPrompt))
}

// PersonalizationPromptEqualFold applies the EqualFold predicate on the "personalization_prompt" field.
func PersonalizationPromptEqualFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldPersonalizationPrompt, v))
}

// PersonalizationPromptContainsFold applies the ContainsFold predicate on the "personalization_prompt" field.
func PersonalizationPromptContainsFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldPersonalizationPrompt, v))
}

// DefaultModelEQ applies the EQ predicate on the "default_model" field.
func DefaultModelEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldDefaultModel, v))
}

// DefaultModelNEQ applies the NEQ predicate on the "default_model" field.
func DefaultModelNEQ(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldDefaultModel, v))
}

// DefaultModelIn applies the In predicate on the "default_model" field.
func DefaultModelIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldDefaultModel, vs...))
}

// DefaultModelNotIn applies the NotIn predicate on the "default_model" field.
func DefaultModelNotIn(vs ...string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldDefaultModel, vs...))
}

// DefaultModelGT applies the GT predicate on the "default_model" field.
func DefaultModelGT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldDefaultModel, v))
}

// DefaultModelGTE applies the GTE predicate on the "default_model" field.
func DefaultModelGTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldDefaultModel, v))
}

// DefaultModelLT applies the LT predicate on the "default_model" field.
func DefaultModelLT(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldDefaultModel, v))
}

// DefaultModelLTE applies the LTE predicate on the "default_model" field.
func DefaultModelLTE(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldDefaultModel, v))
}

// DefaultModelContains applies the Contains predicate on the "default_model" field.
func DefaultModelContains(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContains(FieldDefaultModel, v))
}

// DefaultModelHasPrefix applies the HasPrefix predicate on the "default_model" field.
func DefaultModelHasPrefix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasPrefix(FieldDefaultModel, v))
}

// DefaultModelHasSuffix applies the HasSuffix predicate on the "default_model" field.
func DefaultModelHasSuffix(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldHasSuffix(FieldDefaultModel, v))
}

// DefaultModelIsNil applies the IsNil predicate on the "default_model" field.
func DefaultModelIsNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIsNull(FieldDefaultModel))
}

// DefaultModelNotNil applies the NotNil predicate on the "default_model" field.
func DefaultModelNotNil() predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotNull(FieldDefaultModel))
}

// DefaultModelEqualFold applies the EqualFold predicate on the "default_model" field.
func DefaultModelEqualFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEqualFold(FieldDefaultModel, v))
}

// DefaultModelContainsFold applies the ContainsFold predicate on the "default_model" field.
func DefaultModelContainsFold(v string) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldContainsFold(FieldDefaultModel, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PromptSettings {
	return predicate.PromptSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptSettings) predicate.PromptSettings {
	return predicate.PromptSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptSettings) predicate.PromptSettings {
	return predicate.PromptSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptSettings) predicate.PromptSettings {
	return predicate.PromptSettings(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package mcpserver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldOrganizationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldName, v))
}

// BaseURL applies equality check predicate on the "base_url" field. It's identical to BaseURLEQ.
func BaseURL(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldBaseURL, v))
}

// APIKeyEncrypted applies equality check predicate on the "api_key_encrypted" field. It's identical to APIKeyEncryptedEQ.
func APIKeyEncrypted(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldAPIKeyEncrypted, v))
}

// VerifySsl applies equality check predicate on the "verify_ssl" field. It's identical to VerifySslEQ.
func VerifySsl(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldVerifySsl, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldCommand, v))
}

// WorkingDirectory applies equality check predicate on the "working_directory" field. It's identical to WorkingDirectoryEQ.
func WorkingDirectory(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldWorkingDirectory, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldIsEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldOrganizationID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldName, v))
}

// TransportTypeEQ applies the EQ predicate on the "transport_type" field.
func TransportTypeEQ(v TransportType) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldTransportType, v))
}

// TransportTypeNEQ applies the NEQ predicate on the "transport_type" field.
func TransportTypeNEQ(v TransportType) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldTransportType, v))
}

// TransportTypeIn applies the In predicate on the "transport_type" field.
func TransportTypeIn(vs ...TransportType) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldTransportType, vs...))
}

// TransportTypeNotIn applies the NotIn predicate on the "transport_type" field.
func TransportTypeNotIn(vs ...TransportType) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldTransportType, vs...))
}

// BaseURLEQ applies the EQ predicate on the "base_url" field.
func BaseURLEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldBaseURL, v))
}

// BaseURLNEQ applies the NEQ predicate on the "base_url" field.
func BaseURLNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldBaseURL, v))
}

// BaseURLIn applies the In predicate on the "base_url" field.
func BaseURLIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldBaseURL, vs...))
}

// BaseURLNotIn applies the NotIn predicate on the "base_url" field.
func BaseURLNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldBaseURL, vs...))
}

// BaseURLGT applies the GT predicate on the "base_url" field.
func BaseURLGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldBaseURL, v))
}

// BaseURLGTE applies the GTE predicate on the "base_url" field.
func BaseURLGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldBaseURL, v))
}

// BaseURLLT applies the LT predicate on the "base_url" field.
func BaseURLLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldBaseURL, v))
}

// BaseURLLTE applies the LTE predicate on the "base_url" field.
func BaseURLLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldBaseURL, v))
}

// BaseURLContains applies the Contains predicate on the "base_url" field.
func BaseURLContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldBaseURL, v))
}

// BaseURLHasPrefix applies the HasPrefix predicate on the "base_url" field.
func BaseURLHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldBaseURL, v))
}

// BaseURLHasSuffix applies the HasSuffix predicate on the "base_url" field.
func BaseURLHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldBaseURL, v))
}

// BaseURLIsNil applies the IsNil predicate on the "base_url" field.
func BaseURLIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldBaseURL))
}

// BaseURLNotNil applies the NotNil predicate on the "base_url" field.
func BaseURLNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldBaseURL))
}

// BaseURLEqualFold applies the EqualFold predicate on the "base_url" field.
func BaseURLEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldBaseURL, v))
}

// BaseURLContainsFold applies the ContainsFold predicate on the "base_url" field.
func BaseURLContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldBaseURL, v))
}

// APIKeyEncryptedEQ applies the EQ predicate on the "api_key_encrypted" field.
func APIKeyEncryptedEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedNEQ applies the NEQ predicate on the "api_key_encrypted" field.
func APIKeyEncryptedNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedIn applies the In predicate on the "api_key_encrypted" field.
func APIKeyEncryptedIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldAPIKeyEncrypted, vs...))
}

// APIKeyEncryptedNotIn applies the NotIn predicate on the "api_key_encrypted" field.
func APIKeyEncryptedNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldAPIKeyEncrypted, vs...))
}

// APIKeyEncryptedGT applies the GT predicate on the "api_key_encrypted" field.
func APIKeyEncryptedGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedGTE applies the GTE predicate on the "api_key_encrypted" field.
func APIKeyEncryptedGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedLT applies the LT predicate on the "api_key_encrypted" field.
func APIKeyEncryptedLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedLTE applies the LTE predicate on the "api_key_encrypted" field.
func APIKeyEncryptedLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedContains applies the Contains predicate on the "api_key_encrypted" field.
func APIKeyEncryptedContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedHasPrefix applies the HasPrefix predicate on the "api_key_encrypted" field.
func APIKeyEncryptedHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedHasSuffix applies the HasSuffix predicate on the "api_key_encrypted" field.
func APIKeyEncryptedHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedIsNil applies the IsNil predicate on the "api_key_encrypted" field.
func APIKeyEncryptedIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldAPIKeyEncrypted))
}

// APIKeyEncryptedNotNil applies the NotNil predicate on the "api_key_encrypted" field.
func APIKeyEncryptedNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldAPIKeyEncrypted))
}

// APIKeyEncryptedEqualFold applies the EqualFold predicate on the "api_key_encrypted" field.
func APIKeyEncryptedEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedContainsFold applies the ContainsFold predicate on the "api_key_encrypted" field.
func APIKeyEncryptedContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldAPIKeyEncrypted, v))
}

// VerifySslEQ applies the EQ predicate on the "verify_ssl" field.
func VerifySslEQ(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldVerifySsl, v))
}

// VerifySslNEQ applies the NEQ predicate on the "verify_ssl" field.
func VerifySslNEQ(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldVerifySsl, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldCommand, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldArguments))
}

// WorkingDirectoryEQ applies the EQ predicate on the "working_directory" field.
func WorkingDirectoryEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryNEQ applies the NEQ predicate on the "working_directory" field.
func WorkingDirectoryNEQ(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryIn applies the In predicate on the "working_directory" field.
func WorkingDirectoryIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryNotIn applies the NotIn predicate on the "working_directory" field.
func WorkingDirectoryNotIn(vs ...string) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryGT applies the GT predicate on the "working_directory" field.
func WorkingDirectoryGT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldWorkingDirectory, v))
}

// WorkingDirectoryGTE applies the GTE predicate on the "working_directory" field.
func WorkingDirectoryGTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryLT applies the LT predicate on the "working_directory" field.
func WorkingDirectoryLT(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldWorkingDirectory, v))
}

// WorkingDirectoryLTE applies the LTE predicate on the "working_directory" field.
func WorkingDirectoryLTE(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryContains applies the Contains predicate on the "working_directory" field.
func WorkingDirectoryContains(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContains(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasPrefix applies the HasPrefix predicate on the "working_directory" field.
func WorkingDirectoryHasPrefix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasPrefix(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasSuffix applies the HasSuffix predicate on the "working_directory" field.
func WorkingDirectoryHasSuffix(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldHasSuffix(FieldWorkingDirectory, v))
}

// WorkingDirectoryIsNil applies the IsNil predicate on the "working_directory" field.
func WorkingDirectoryIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldWorkingDirectory))
}

// WorkingDirectoryNotNil applies the NotNil predicate on the "working_directory" field.
func WorkingDirectoryNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldWorkingDirectory))
}

// WorkingDirectoryEqualFold applies the EqualFold predicate on the "working_directory" field.
func WorkingDirectoryEqualFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldEqualFold(FieldWorkingDirectory, v))
}

// WorkingDirectoryContainsFold applies the ContainsFold predicate on the "working_directory" field.
func WorkingDirectoryContainsFold(v string) predicate.McpServer {
	return predicate.McpServer(sql.FieldContainsFold(FieldWorkingDirectory, v))
}

// EnvironmentVariablesIsNil applies the IsNil predicate on the "environment_variables" field.
func EnvironmentVariablesIsNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldIsNull(FieldEnvironmentVariables))
}

// EnvironmentVariablesNotNil applies the NotNil predicate on the "environment_variables" field.
func EnvironmentVariablesNotNil() predicate.McpServer {
	return predicate.McpServer(sql.FieldNotNull(FieldEnvironmentVariables))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldIsEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.McpServer {
	return predicate.McpServer(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.McpServer) predicate.McpServer {
	return predicate.McpServer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.McpServer) predicate.McpServer {
	return predicate.McpServer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.McpServer) predicate.McpServer {
	return predicate.McpServer(sql.NotPredicates(p))
}

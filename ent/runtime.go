// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/infrallm/infrallm/ent/accesspolicy"
	"github.com/infrallm/infrallm/ent/accesstoken"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/commandexecution"
	"github.com/infrallm/infrallm/ent/credential"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/hostnote"
	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/jobrun"
	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/ent/membership"
	"github.com/infrallm/infrallm/ent/message"
	"github.com/infrallm/infrallm/ent/organization"
	"github.com/infrallm/infrallm/ent/promptsettings"
	"github.com/infrallm/infrallm/ent/schema"
	"github.com/infrallm/infrallm/ent/session"
	"github.com/infrallm/infrallm/ent/user"
	"github.com/infrallm/infrallm/ent/userpolicy"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accesspolicyFields := schema.AccessPolicy{}.Fields()
	_ = accesspolicyFields
	// accesspolicyDescName is the schema descriptor for name field.
	accesspolicyDescName := accesspolicyFields[2].Descriptor()
	// accesspolicy.NameValidator is a validator for the "name" field. It is called by the builders before save.
	accesspolicy.NameValidator = accesspolicyDescName.Validators[0].(func(string) error)
	// accesspolicyDescRequireApproval is the schema descriptor for require_approval field.
	accesspolicyDescRequireApproval := accesspolicyFields[6].Descriptor()
	// accesspolicy.DefaultRequireApproval holds the default value on creation for the require_approval field.
	accesspolicy.DefaultRequireApproval = accesspolicyDescRequireApproval.Default.(bool)
	// accesspolicyDescMaxConcurrentCommands is the schema descriptor for max_concurrent_commands field.
	accesspolicyDescMaxConcurrentCommands := accesspolicyFields[7].Descriptor()
	// accesspolicy.DefaultMaxConcurrentCommands holds the default value on creation for the max_concurrent_commands field.
	accesspolicy.DefaultMaxConcurrentCommands = accesspolicyDescMaxConcurrentCommands.Default.(int)
	// accesspolicyDescIsEnabled is the schema descriptor for is_enabled field.
	accesspolicyDescIsEnabled := accesspolicyFields[8].Descriptor()
	// accesspolicy.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	accesspolicy.DefaultIsEnabled = accesspolicyDescIsEnabled.Default.(bool)
	// accesspolicyDescCreatedAt is the schema descriptor for created_at field.
	accesspolicyDescCreatedAt := accesspolicyFields[9].Descriptor()
	// accesspolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	accesspolicy.DefaultCreatedAt = accesspolicyDescCreatedAt.Default.(func() time.Time)
	// accesspolicyDescUpdatedAt is the schema descriptor for updated_at field.
	accesspolicyDescUpdatedAt := accesspolicyFields[10].Descriptor()
	// accesspolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	accesspolicy.DefaultUpdatedAt = accesspolicyDescUpdatedAt.Default.(func() time.Time)
	// accesspolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	accesspolicy.UpdateDefaultUpdatedAt = accesspolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	accesstokenFields := schema.AccessToken{}.Fields()
	_ = accesstokenFields
	// accesstokenDescName is the schema descriptor for name field.
	accesstokenDescName := accesstokenFields[3].Descriptor()
	// accesstoken.NameValidator is a validator for the "name" field. It is called by the builders before save.
	accesstoken.NameValidator = accesstokenDescName.Validators[0].(func(string) error)
	// accesstokenDescIsActive is the schema descriptor for is_active field.
	accesstokenDescIsActive := accesstokenFields[5].Descriptor()
	// accesstoken.DefaultIsActive holds the default value on creation for the is_active field.
	accesstoken.DefaultIsActive = accesstokenDescIsActive.Default.(bool)
	// accesstokenDescCreatedAt is the schema descriptor for created_at field.
	accesstokenDescCreatedAt := accesstokenFields[8].Descriptor()
	// accesstoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	accesstoken.DefaultCreatedAt = accesstokenDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[10].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	commandexecutionFields := schema.CommandExecution{}.Fields()
	_ = commandexecutionFields
	// commandexecutionDescWasDryRun is the schema descriptor for was_dry_run field.
	commandexecutionDescWasDryRun := commandexecutionFields[10].Descriptor()
	// commandexecution.DefaultWasDryRun holds the default value on creation for the was_dry_run field.
	commandexecution.DefaultWasDryRun = commandexecutionDescWasDryRun.Default.(bool)
	// commandexecutionDescCreatedAt is the schema descriptor for created_at field.
	commandexecutionDescCreatedAt := commandexecutionFields[11].Descriptor()
	// commandexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	commandexecution.DefaultCreatedAt = commandexecutionDescCreatedAt.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescName is the schema descriptor for name field.
	credentialDescName := credentialFields[2].Descriptor()
	// credential.NameValidator is a validator for the "name" field. It is called by the builders before save.
	credential.NameValidator = credentialDescName.Validators[0].(func(string) error)
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[5].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialFields[6].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	hostFields := schema.Host{}.Fields()
	_ = hostFields
	// hostDescName is the schema descriptor for name field.
	hostDescName := hostFields[2].Descriptor()
	// host.NameValidator is a validator for the "name" field. It is called by the builders before save.
	host.NameValidator = hostDescName.Validators[0].(func(string) error)
	// hostDescHostname is the schema descriptor for hostname field.
	hostDescHostname := hostFields[3].Descriptor()
	// host.HostnameValidator is a validator for the "hostname" field. It is called by the builders before save.
	host.HostnameValidator = hostDescHostname.Validators[0].(func(string) error)
	// hostDescPort is the schema descriptor for port field.
	hostDescPort := hostFields[4].Descriptor()
	// host.DefaultPort holds the default value on creation for the port field.
	host.DefaultPort = hostDescPort.Default.(int)
	// hostDescAllowInsecureSsl is the schema descriptor for allow_insecure_ssl field.
	hostDescAllowInsecureSsl := hostFields[10].Descriptor()
	// host.DefaultAllowInsecureSsl holds the default value on creation for the allow_insecure_ssl field.
	host.DefaultAllowInsecureSsl = hostDescAllowInsecureSsl.Default.(bool)
	// hostDescCreatedAt is the schema descriptor for created_at field.
	hostDescCreatedAt := hostFields[12].Descriptor()
	// host.DefaultCreatedAt holds the default value on creation for the created_at field.
	host.DefaultCreatedAt = hostDescCreatedAt.Default.(func() time.Time)
	// hostDescUpdatedAt is the schema descriptor for updated_at field.
	hostDescUpdatedAt := hostFields[13].Descriptor()
	// host.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	host.DefaultUpdatedAt = hostDescUpdatedAt.Default.(func() time.Time)
	// host.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	host.UpdateDefaultUpdatedAt = hostDescUpdatedAt.UpdateDefault.(func() time.Time)
	hostnoteFields := schema.HostNote{}.Fields()
	_ = hostnoteFields
	// hostnoteDescUpdatedAt is the schema descriptor for updated_at field.
	hostnoteDescUpdatedAt := hostnoteFields[4].Descriptor()
	// hostnote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hostnote.DefaultUpdatedAt = hostnoteDescUpdatedAt.Default.(func() time.Time)
	// hostnote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hostnote.UpdateDefaultUpdatedAt = hostnoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[3].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescAutoRunLlm is the schema descriptor for auto_run_llm field.
	jobDescAutoRunLlm := jobFields[9].Descriptor()
	// job.DefaultAutoRunLlm holds the default value on creation for the auto_run_llm field.
	job.DefaultAutoRunLlm = jobDescAutoRunLlm.Default.(bool)
	// jobDescIsEnabled is the schema descriptor for is_enabled field.
	jobDescIsEnabled := jobFields[10].Descriptor()
	// job.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	job.DefaultIsEnabled = jobDescIsEnabled.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[12].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[13].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobrunFields := schema.JobRun{}.Fields()
	_ = jobrunFields
	// jobrunDescCreatedAt is the schema descriptor for created_at field.
	jobrunDescCreatedAt := jobrunFields[9].Descriptor()
	// jobrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobrun.DefaultCreatedAt = jobrunDescCreatedAt.Default.(func() time.Time)
	mcpserverFields := schema.McpServer{}.Fields()
	_ = mcpserverFields
	// mcpserverDescName is the schema descriptor for name field.
	mcpserverDescName := mcpserverFields[2].Descriptor()
	// mcpserver.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mcpserver.NameValidator = mcpserverDescName.Validators[0].(func(string) error)
	// mcpserverDescVerifySsl is the schema descriptor for verify_ssl field.
	mcpserverDescVerifySsl := mcpserverFields[6].Descriptor()
	// mcpserver.DefaultVerifySsl holds the default value on creation for the verify_ssl field.
	mcpserver.DefaultVerifySsl = mcpserverDescVerifySsl.Default.(bool)
	// mcpserverDescIsEnabled is the schema descriptor for is_enabled field.
	mcpserverDescIsEnabled := mcpserverFields[11].Descriptor()
	// mcpserver.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	mcpserver.DefaultIsEnabled = mcpserverDescIsEnabled.Default.(bool)
	// mcpserverDescCreatedAt is the schema descriptor for created_at field.
	mcpserverDescCreatedAt := mcpserverFields[12].Descriptor()
	// mcpserver.DefaultCreatedAt holds the default value on creation for the created_at field.
	mcpserver.DefaultCreatedAt = mcpserverDescCreatedAt.Default.(func() time.Time)
	// mcpserverDescUpdatedAt is the schema descriptor for updated_at field.
	mcpserverDescUpdatedAt := mcpserverFields[13].Descriptor()
	// mcpserver.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mcpserver.DefaultUpdatedAt = mcpserverDescUpdatedAt.Default.(func() time.Time)
	// mcpserver.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mcpserver.UpdateDefaultUpdatedAt = mcpserverDescUpdatedAt.UpdateDefault.(func() time.Time)
	membershipFields := schema.Membership{}.Fields()
	_ = membershipFields
	// membershipDescCreatedAt is the schema descriptor for created_at field.
	membershipDescCreatedAt := membershipFields[4].Descriptor()
	// membership.DefaultCreatedAt holds the default value on creation for the created_at field.
	membership.DefaultCreatedAt = membershipDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescTokensUsed is the schema descriptor for tokens_used field.
	messageDescTokensUsed := messageFields[5].Descriptor()
	// message.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	message.DefaultTokensUsed = messageDescTokensUsed.Default.(int)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[2].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	promptsettingsFields := schema.PromptSettings{}.Fields()
	_ = promptsettingsFields
	// promptsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	promptsettingsDescUpdatedAt := promptsettingsFields[6].Descriptor()
	// promptsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promptsettings.DefaultUpdatedAt = promptsettingsDescUpdatedAt.Default.(func() time.Time)
	// promptsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promptsettings.UpdateDefaultUpdatedAt = promptsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescIsJobRunSession is the schema descriptor for is_job_run_session field.
	sessionDescIsJobRunSession := sessionFields[5].Descriptor()
	// session.DefaultIsJobRunSession holds the default value on creation for the is_job_run_session field.
	session.DefaultIsJobRunSession = sessionDescIsJobRunSession.Default.(bool)
	// sessionDescTotalTokens is the schema descriptor for total_tokens field.
	sessionDescTotalTokens := sessionFields[6].Descriptor()
	// session.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	session.DefaultTotalTokens = sessionDescTotalTokens.Default.(int)
	// sessionDescTotalCost is the schema descriptor for total_cost field.
	sessionDescTotalCost := sessionFields[7].Descriptor()
	// session.DefaultTotalCost holds the default value on creation for the total_cost field.
	session.DefaultTotalCost = sessionDescTotalCost.Default.(float64)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[9].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	userpolicyFields := schema.UserPolicy{}.Fields()
	_ = userpolicyFields
	// userpolicyDescCreatedAt is the schema descriptor for created_at field.
	userpolicyDescCreatedAt := userpolicyFields[5].Descriptor()
	// userpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	userpolicy.DefaultCreatedAt = userpolicyDescCreatedAt.Default.(func() time.Time)
}

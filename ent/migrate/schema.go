// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PoliciesColumns holds the columns for the "policies" table.
	PoliciesColumns = []*schema.Column{
		{Name: "policy_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "allowed_command_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "denied_command_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "require_approval", Type: field.TypeBool, Default: false},
		{Name: "max_concurrent_commands", Type: field.TypeInt, Default: 0},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PoliciesTable holds the schema information for the "policies" table.
	PoliciesTable = &schema.Table{
		Name:       "policies",
		Columns:    PoliciesColumns,
		PrimaryKey: []*schema.Column{PoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accesspolicy_organization_id",
				Unique:  false,
				Columns: []*schema.Column{PoliciesColumns[1]},
			},
		},
	}
	// AccessTokensColumns holds the columns for the "access_tokens" table.
	AccessTokensColumns = []*schema.Column{
		{Name: "access_token_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccessTokensTable holds the schema information for the "access_tokens" table.
	AccessTokensTable = &schema.Table{
		Name:       "access_tokens",
		Columns:    AccessTokensColumns,
		PrimaryKey: []*schema.Column{AccessTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accesstoken_organization_id",
				Unique:  false,
				Columns: []*schema.Column{AccessTokensColumns[1]},
			},
			{
				Name:    "accesstoken_organization_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{AccessTokensColumns[1], AccessTokensColumns[2]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_log_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"command_executed", "command_denied", "host_added", "host_removed", "policy_changed", "session_started", "session_ended", "credential_added", "credential_removed"}},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "host_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "was_allowed", Type: field.TypeBool, Nullable: true},
		{Name: "denial_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "llm_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_organization_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_organization_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[2]},
			},
		},
	}
	// CommandExecutionsColumns holds the columns for the "command_executions" table.
	CommandExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "host_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "command", Type: field.TypeString, Size: 2147483647},
		{Name: "exit_code", Type: field.TypeInt},
		{Name: "stdout", Type: field.TypeString, Size: 2147483647},
		{Name: "stderr", Type: field.TypeString, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "was_dry_run", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CommandExecutionsTable holds the schema information for the "command_executions" table.
	CommandExecutionsTable = &schema.Table{
		Name:       "command_executions",
		Columns:    CommandExecutionsColumns,
		PrimaryKey: []*schema.Column{CommandExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commandexecution_organization_id",
				Unique:  false,
				Columns: []*schema.Column{CommandExecutionsColumns[1]},
			},
			{
				Name:    "commandexecution_organization_id_host_id",
				Unique:  false,
				Columns: []*schema.Column{CommandExecutionsColumns[1], CommandExecutionsColumns[3]},
			},
			{
				Name:    "commandexecution_session_id",
				Unique:  false,
				Columns: []*schema.Column{CommandExecutionsColumns[4]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "credential_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"password", "ssh_key", "api_token"}},
		{Name: "encrypted_value", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "credential_organization_id",
				Unique:  false,
				Columns: []*schema.Column{CredentialsColumns[1]},
			},
		},
	}
	// HostsColumns holds the columns for the "hosts" table.
	HostsColumns = []*schema.Column{
		{Name: "host_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "hostname", Type: field.TypeString},
		{Name: "port", Type: field.TypeInt, Default: 22},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "credential_id", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "environment", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"healthy", "degraded", "unreachable", "unknown"}, Default: "unknown"},
		{Name: "allow_insecure_ssl", Type: field.TypeBool, Default: false},
		{Name: "last_health_check", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HostsTable holds the schema information for the "hosts" table.
	HostsTable = &schema.Table{
		Name:       "hosts",
		Columns:    HostsColumns,
		PrimaryKey: []*schema.Column{HostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "host_organization_id",
				Unique:  false,
				Columns: []*schema.Column{HostsColumns[1]},
			},
			{
				Name:    "host_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{HostsColumns[1], HostsColumns[9]},
			},
		},
	}
	// HostNotesColumns holds the columns for the "host_notes" table.
	HostNotesColumns = []*schema.Column{
		{Name: "host_note_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "host_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HostNotesTable holds the schema information for the "host_notes" table.
	HostNotesTable = &schema.Table{
		Name:       "host_notes",
		Columns:    HostNotesColumns,
		PrimaryKey: []*schema.Column{HostNotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hostnote_organization_id_host_id",
				Unique:  true,
				Columns: []*schema.Column{HostNotesColumns[1], HostNotesColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"cron", "webhook"}},
		{Name: "cron_schedule", Type: field.TypeString, Nullable: true},
		{Name: "webhook_secret", Type: field.TypeString, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "host_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_run_llm", Type: field.TypeBool, Default: false},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_organization_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_trigger_type_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[10]},
			},
		},
	}
	// JobRunsColumns holds the columns for the "job_runs" table.
	JobRunsColumns = []*schema.Column{
		{Name: "job_run_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "triggered_by", Type: field.TypeEnum, Enums: []string{"cron", "webhook", "manual"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "completed", "failed"}, Default: "received"},
		{Name: "payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// JobRunsTable holds the schema information for the "job_runs" table.
	JobRunsTable = &schema.Table{
		Name:       "job_runs",
		Columns:    JobRunsColumns,
		PrimaryKey: []*schema.Column{JobRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobrun_organization_id",
				Unique:  false,
				Columns: []*schema.Column{JobRunsColumns[1]},
			},
			{
				Name:    "jobrun_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobRunsColumns[2], JobRunsColumns[9]},
			},
		},
	}
	// McpServersColumns holds the columns for the "mcp_servers" table.
	McpServersColumns = []*schema.Column{
		{Name: "mcp_server_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "transport_type", Type: field.TypeEnum, Enums: []string{"http", "stdio"}},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "api_key_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "verify_ssl", Type: field.TypeBool, Default: true},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "working_directory", Type: field.TypeString, Nullable: true},
		{Name: "environment_variables", Type: field.TypeJSON, Nullable: true},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// McpServersTable holds the schema information for the "mcp_servers" table.
	McpServersTable = &schema.Table{
		Name:       "mcp_servers",
		Columns:    McpServersColumns,
		PrimaryKey: []*schema.Column{McpServersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mcpserver_organization_id",
				Unique:  false,
				Columns: []*schema.Column{McpServersColumns[1]},
			},
			{
				Name:    "mcpserver_organization_id_name",
				Unique:  true,
				Columns: []*schema.Column{McpServersColumns[1], McpServersColumns[2]},
			},
		},
	}
	// MembershipsColumns holds the columns for the "memberships" table.
	MembershipsColumns = []*schema.Column{
		{Name: "membership_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "member"}, Default: "member"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MembershipsTable holds the schema information for the "memberships" table.
	MembershipsTable = &schema.Table{
		Name:       "memberships",
		Columns:    MembershipsColumns,
		PrimaryKey: []*schema.Column{MembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "membership_organization_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MembershipsColumns[1], MembershipsColumns[2]},
			},
			{
				Name:    "membership_user_id",
				Unique:  false,
				Columns: []*schema.Column{MembershipsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_call_trace", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "organization_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// PromptSettingsColumns holds the columns for the "prompt_settings" table.
	PromptSettingsColumns = []*schema.Column{
		{Name: "prompt_settings_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "personalization_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "default_model", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptSettingsTable holds the schema information for the "prompt_settings" table.
	PromptSettingsTable = &schema.Table{
		Name:       "prompt_settings",
		Columns:    PromptSettingsColumns,
		PrimaryKey: []*schema.Column{PromptSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptsettings_organization_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{PromptSettingsColumns[1], PromptSettingsColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "host_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "is_job_run_session", Type: field.TypeBool, Default: false},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_organization_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_organization_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserPoliciesColumns holds the columns for the "user_policies" table.
	UserPoliciesColumns = []*schema.Column{
		{Name: "user_policy_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "policy_id", Type: field.TypeString},
		{Name: "host_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserPoliciesTable holds the schema information for the "user_policies" table.
	UserPoliciesTable = &schema.Table{
		Name:       "user_policies",
		Columns:    UserPoliciesColumns,
		PrimaryKey: []*schema.Column{UserPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userpolicy_organization_id",
				Unique:  false,
				Columns: []*schema.Column{UserPoliciesColumns[1]},
			},
			{
				Name:    "userpolicy_organization_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserPoliciesColumns[1], UserPoliciesColumns[2]},
			},
			{
				Name:    "userpolicy_policy_id",
				Unique:  false,
				Columns: []*schema.Column{UserPoliciesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PoliciesTable,
		AccessTokensTable,
		AuditLogsTable,
		CommandExecutionsTable,
		CredentialsTable,
		HostsTable,
		HostNotesTable,
		JobsTable,
		JobRunsTable,
		McpServersTable,
		MembershipsTable,
		MessagesTable,
		OrganizationsTable,
		PromptSettingsTable,
		SessionsTable,
		UsersTable,
		UserPoliciesTable,
	}
)

func init() {
	PoliciesTable.Annotation = &entsql.Annotation{
		Table: "policies",
	}
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
}

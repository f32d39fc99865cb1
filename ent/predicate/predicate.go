// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AccessPolicy is the predicate function for accesspolicy builders.
type AccessPolicy func(*sql.Selector)

// AccessToken is the predicate function for accesstoken builders.
type AccessToken func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CommandExecution is the predicate function for commandexecution builders.
type CommandExecution func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// Host is the predicate function for host builders.
type Host func(*sql.Selector)

// HostNote is the predicate function for hostnote builders.
type HostNote func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobRun is the predicate function for jobrun builders.
type JobRun func(*sql.Selector)

// McpServer is the predicate function for mcpserver builders.
type McpServer func(*sql.Selector)

// Membership is the predicate function for membership builders.
type Membership func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// PromptSettings is the predicate function for promptsettings builders.
type PromptSettings func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserPolicy is the predicate function for userpolicy builders.
type UserPolicy func(*sql.Selector)

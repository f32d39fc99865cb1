package models

import (
	"github.com/infrallm/infrallm/ent"
)

// CreatePolicyRequest contains fields for creating a command policy
type CreatePolicyRequest struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description,omitempty"`
	AllowedCommandPatterns []string `json:"allowed_command_patterns"`
	DeniedCommandPatterns  []string `json:"denied_command_patterns,omitempty"`
	RequireApproval        bool     `json:"require_approval,omitempty"`
	MaxConcurrentCommands  int      `json:"max_concurrent_commands,omitempty"`
	IsEnabled              *bool    `json:"is_enabled,omitempty"`
}

// UpdatePolicyRequest contains fields for updating a policy. Nil pointers
// leave the corresponding field unchanged.
type UpdatePolicyRequest struct {
	Name                   *string   `json:"name,omitempty"`
	Description            *string   `json:"description,omitempty"`
	AllowedCommandPatterns *[]string `json:"allowed_command_patterns,omitempty"`
	DeniedCommandPatterns  *[]string `json:"denied_command_patterns,omitempty"`
	RequireApproval        *bool     `json:"require_approval,omitempty"`
	MaxConcurrentCommands  *int      `json:"max_concurrent_commands,omitempty"`
	IsEnabled              *bool     `json:"is_enabled,omitempty"`
}

// CreateAssignmentRequest binds a policy to a user, optionally scoped to a host
type CreateAssignmentRequest struct {
	UserID string `json:"user_id"`
	HostID string `json:"host_id,omitempty"` // empty = global for that user
}

// PolicyListResponse contains an organization's policies
type PolicyListResponse struct {
	Policies   []*ent.AccessPolicy `json:"policies"`
	TotalCount int                 `json:"total_count"`
}

// PolicyPreset is a ready-made policy template offered by the API
type PolicyPreset struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	AllowedCommandPatterns []string `json:"allowed_command_patterns"`
	DeniedCommandPatterns  []string `json:"denied_command_patterns"`
	RequireApproval        bool     `json:"require_approval"`
}

// TestPolicyRequest evaluates one policy against a command in isolation
type TestPolicyRequest struct {
	Command string `json:"command"`
}

// PolicyTestResult is the outcome of a single-policy dry evaluation
type PolicyTestResult struct {
	Allowed          bool   `json:"allowed"`
	RequiresApproval bool   `json:"requires_approval"`
	MatchedPattern   string `json:"matched_pattern,omitempty"`
	Reason           string `json:"reason"`
}

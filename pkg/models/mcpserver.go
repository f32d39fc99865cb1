package models

import (
	"time"

	"github.com/infrallm/infrallm/ent/mcpserver"
)

// CreateMcpServerRequest contains fields for registering an MCP server
type CreateMcpServerRequest struct {
	Name                 string                  `json:"name"`
	TransportType        mcpserver.TransportType `json:"transport_type"`
	BaseURL              string                  `json:"base_url,omitempty"`
	APIKey               string                  `json:"api_key,omitempty"`
	VerifySSL            *bool                   `json:"verify_ssl,omitempty"`
	Command              string                  `json:"command,omitempty"`
	Arguments            []string                `json:"arguments,omitempty"`
	WorkingDirectory     string                  `json:"working_directory,omitempty"`
	EnvironmentVariables map[string]string       `json:"environment_variables,omitempty"`
	IsEnabled            *bool                   `json:"is_enabled,omitempty"`
}

// McpServerResponse is the client-visible view of an MCP server.
// The encrypted API key is deliberately absent.
type McpServerResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	TransportType    mcpserver.TransportType `json:"transport_type"`
	BaseURL          string                  `json:"base_url,omitempty"`
	HasAPIKey        bool                    `json:"has_api_key"`
	VerifySSL        bool                    `json:"verify_ssl"`
	Command          string                  `json:"command,omitempty"`
	Arguments        []string                `json:"arguments,omitempty"`
	WorkingDirectory string                  `json:"working_directory,omitempty"`
	IsEnabled        bool                    `json:"is_enabled"`
	CreatedAt        time.Time               `json:"created_at"`
}

// McpServerListResponse contains an organization's MCP servers
type McpServerListResponse struct {
	Servers    []*McpServerResponse `json:"servers"`
	TotalCount int                  `json:"total_count"`
}

// McpTestResponse reports the outcome of probing an MCP server
type McpTestResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	ToolNames []string `json:"tool_names,omitempty"`
}

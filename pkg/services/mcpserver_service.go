package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/models"
)

// ToolCache is the slice of the MCP registry the service needs to keep
// cached sessions and tool listings coherent with the database.
// Satisfied by *mcp.Registry.
type ToolCache interface {
	Evict(serverID string)
}

// McpServerService manages external MCP server registrations.
type McpServerService struct {
	client    *ent.Client
	encryptor *crypto.Encryptor
	registry  ToolCache
}

// NewMcpServerService creates a McpServerService. registry may be nil in
// tests.
func NewMcpServerService(client *ent.Client, encryptor *crypto.Encryptor, registry ToolCache) *McpServerService {
	return &McpServerService{client: client, encryptor: encryptor, registry: registry}
}

// Create registers an MCP server. The API key, when present, is encrypted
// before persistence.
func (s *McpServerService) Create(httpCtx context.Context, orgID string, req models.CreateMcpServerRequest) (*models.McpServerResponse, error) {
	if err := validateMcpServer(req.Name, req.TransportType, req.BaseURL, req.Command); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	create := s.client.McpServer.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetTransportType(req.TransportType).
		SetBaseURL(req.BaseURL).
		SetCommand(req.Command).
		SetWorkingDirectory(req.WorkingDirectory)
	if req.APIKey != "" {
		encrypted, err := s.encryptor.Encrypt(req.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt API key: %w", err)
		}
		create.SetAPIKeyEncrypted(encrypted)
	}
	if req.VerifySSL != nil {
		create.SetVerifySsl(*req.VerifySSL)
	}
	if len(req.Arguments) > 0 {
		create.SetArguments(req.Arguments)
	}
	if len(req.EnvironmentVariables) > 0 {
		create.SetEnvironmentVariables(req.EnvironmentVariables)
	}
	if req.IsEnabled != nil {
		create.SetIsEnabled(*req.IsEnabled)
	}

	srv, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}
	return toMcpServerResponse(srv), nil
}

// List returns the organization's MCP servers without API keys.
func (s *McpServerService) List(httpCtx context.Context, orgID string) (*models.McpServerListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	servers, err := s.client.McpServer.Query().
		Where(mcpserver.OrganizationID(orgID)).
		Order(ent.Asc(mcpserver.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list MCP servers: %w", err)
	}

	out := make([]*models.McpServerResponse, len(servers))
	for i, srv := range servers {
		out[i] = toMcpServerResponse(srv)
	}
	return &models.McpServerListResponse{Servers: out, TotalCount: len(out)}, nil
}

// Get returns one MCP server scoped to the organization.
func (s *McpServerService) Get(httpCtx context.Context, orgID, serverID string) (*models.McpServerResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	srv, err := s.getScoped(ctx, orgID, serverID)
	if err != nil {
		return nil, err
	}
	return toMcpServerResponse(srv), nil
}

// Update applies partial changes and evicts any cached session so the next
// tool call sees the new configuration.
func (s *McpServerService) Update(httpCtx context.Context, orgID, serverID string, req models.CreateMcpServerRequest) (*models.McpServerResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	srv, err := s.getScoped(ctx, orgID, serverID)
	if err != nil {
		return nil, err
	}

	name := srv.Name
	if req.Name != "" {
		name = req.Name
	}
	transport := srv.TransportType
	if req.TransportType != "" {
		transport = req.TransportType
	}
	baseURL := srv.BaseURL
	if req.BaseURL != "" {
		baseURL = req.BaseURL
	}
	command := srv.Command
	if req.Command != "" {
		command = req.Command
	}
	if err := validateMcpServer(name, transport, baseURL, command); err != nil {
		return nil, err
	}

	update := srv.Update().
		SetName(name).
		SetTransportType(transport).
		SetBaseURL(baseURL).
		SetCommand(command)
	if req.APIKey != "" {
		encrypted, err := s.encryptor.Encrypt(req.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt API key: %w", err)
		}
		update.SetAPIKeyEncrypted(encrypted)
	}
	if req.VerifySSL != nil {
		update.SetVerifySsl(*req.VerifySSL)
	}
	if req.Arguments != nil {
		update.SetArguments(req.Arguments)
	}
	if req.WorkingDirectory != "" {
		update.SetWorkingDirectory(req.WorkingDirectory)
	}
	if req.EnvironmentVariables != nil {
		update.SetEnvironmentVariables(req.EnvironmentVariables)
	}
	if req.IsEnabled != nil {
		update.SetIsEnabled(*req.IsEnabled)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update MCP server: %w", err)
	}
	if s.registry != nil {
		s.registry.Evict(serverID)
	}
	return toMcpServerResponse(updated), nil
}

// Delete removes an MCP server and evicts its cached session.
func (s *McpServerService) Delete(httpCtx context.Context, orgID, serverID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	srv, err := s.getScoped(ctx, orgID, serverID)
	if err != nil {
		return err
	}
	if err := s.client.McpServer.DeleteOneID(srv.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete MCP server: %w", err)
	}
	if s.registry != nil {
		s.registry.Evict(serverID)
	}
	return nil
}

func (s *McpServerService) getScoped(ctx context.Context, orgID, serverID string) (*ent.McpServer, error) {
	srv, err := s.client.McpServer.Query().
		Where(mcpserver.ID(serverID), mcpserver.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get MCP server: %w", err)
	}
	return srv, nil
}

// validateMcpServer enforces the name and transport rules. Names become part
// of the mcp__{server}__{tool} namespace, so underscores would make tool
// names ambiguous to split.
func validateMcpServer(name string, transport mcpserver.TransportType, baseURL, command string) error {
	if name == "" {
		return NewValidationError("name", "required")
	}
	if strings.Contains(name, "_") {
		return NewValidationError("name", "must not contain underscores")
	}
	switch transport {
	case mcpserver.TransportTypeHTTP:
		if baseURL == "" {
			return NewValidationError("base_url", "required for http transport")
		}
	case mcpserver.TransportTypeStdio:
		if command == "" {
			return NewValidationError("command", "required for stdio transport")
		}
	default:
		return NewValidationError("transport_type", "must be http or stdio")
	}
	return nil
}

func toMcpServerResponse(srv *ent.McpServer) *models.McpServerResponse {
	return &models.McpServerResponse{
		ID:               srv.ID,
		Name:             srv.Name,
		TransportType:    srv.TransportType,
		BaseURL:          srv.BaseURL,
		HasAPIKey:        srv.APIKeyEncrypted != "",
		VerifySSL:        srv.VerifySsl,
		Command:          srv.Command,
		Arguments:        srv.Arguments,
		WorkingDirectory: srv.WorkingDirectory,
		IsEnabled:        srv.IsEnabled,
		CreatedAt:        srv.CreatedAt,
	}
}

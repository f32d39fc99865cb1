// Package services contains the business layer: org-scoped operations over
// the database with validation and tenant isolation. Cross-tenant reads
// surface ErrNotFound so other organizations stay invisible.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/credential"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/models"
)

// serviceTimeout bounds one service-layer database operation.
const serviceTimeout = 5 * time.Second

// ConnectionPool is the slice of the SSH pool the host service needs.
// Satisfied by *sshpool.Pool.
type ConnectionPool interface {
	Invalidate(hostID string)
	TestConnection(ctx context.Context, hostID string) error
}

// HostService manages the host inventory.
type HostService struct {
	client  *ent.Client
	pool    ConnectionPool
	auditor *audit.Logger
}

// NewHostService creates a HostService. pool may be nil in tests.
func NewHostService(client *ent.Client, pool ConnectionPool, auditor *audit.Logger) *HostService {
	return &HostService{client: client, pool: pool, auditor: auditor}
}

// Create registers a host.
func (s *HostService) Create(httpCtx context.Context, orgID, userID string, req models.CreateHostRequest) (*ent.Host, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Hostname == "" {
		return nil, NewValidationError("hostname", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if req.CredentialID != "" {
		ok, err := s.client.Credential.Query().
			Where(credential.ID(req.CredentialID), credential.OrganizationID(orgID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check credential: %w", err)
		}
		if !ok {
			return nil, NewValidationError("credential_id", "unknown credential")
		}
	}

	create := s.client.Host.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetHostname(req.Hostname).
		SetAllowInsecureSsl(req.AllowInsecureSsl)
	if req.Port != 0 {
		create.SetPort(req.Port)
	}
	if req.Username != "" {
		create.SetUsername(req.Username)
	}
	if req.CredentialID != "" {
		create.SetCredentialID(req.CredentialID)
	}
	if len(req.Tags) > 0 {
		create.SetTags(req.Tags)
	}
	if req.Environment != "" {
		create.SetEnvironment(req.Environment)
	}

	h, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create host: %w", err)
	}

	s.recordHostEvent(ctx, orgID, userID, h, "host_added")
	return h, nil
}

// List returns the organization's hosts.
func (s *HostService) List(httpCtx context.Context, orgID string) (*models.HostListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	hosts, err := s.client.Host.Query().
		Where(host.OrganizationID(orgID)).
		Order(ent.Asc(host.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hosts: %w", err)
	}
	return &models.HostListResponse{Hosts: hosts, TotalCount: len(hosts)}, nil
}

// Get returns one host scoped to the organization.
func (s *HostService) Get(httpCtx context.Context, orgID, hostID string) (*ent.Host, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()
	return s.get(ctx, orgID, hostID)
}

func (s *HostService) get(ctx context.Context, orgID, hostID string) (*ent.Host, error) {
	h, err := s.client.Host.Query().
		Where(host.ID(hostID), host.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get host: %w", err)
	}
	return h, nil
}

// Update applies partial changes and drops any pooled connections so the
// next command dials with the fresh settings.
func (s *HostService) Update(httpCtx context.Context, orgID, hostID string, req models.UpdateHostRequest) (*ent.Host, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	h, err := s.get(ctx, orgID, hostID)
	if err != nil {
		return nil, err
	}

	update := h.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Hostname != nil {
		if *req.Hostname == "" {
			return nil, NewValidationError("hostname", "cannot be empty")
		}
		update.SetHostname(*req.Hostname)
	}
	if req.Port != nil {
		update.SetPort(*req.Port)
	}
	if req.Username != nil {
		update.SetUsername(*req.Username)
	}
	if req.CredentialID != nil {
		if *req.CredentialID != "" {
			ok, err := s.client.Credential.Query().
				Where(credential.ID(*req.CredentialID), credential.OrganizationID(orgID)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to check credential: %w", err)
			}
			if !ok {
				return nil, NewValidationError("credential_id", "unknown credential")
			}
		}
		update.SetCredentialID(*req.CredentialID)
	}
	if req.Tags != nil {
		update.SetTags(*req.Tags)
	}
	if req.Environment != nil {
		update.SetEnvironment(*req.Environment)
	}
	if req.AllowInsecureSsl != nil {
		update.SetAllowInsecureSsl(*req.AllowInsecureSsl)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update host: %w", err)
	}
	if s.pool != nil {
		s.pool.Invalidate(hostID)
	}
	return updated, nil
}

// Delete removes the host and drops its pooled connections.
func (s *HostService) Delete(httpCtx context.Context, orgID, userID, hostID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	h, err := s.get(ctx, orgID, hostID)
	if err != nil {
		return err
	}
	if err := s.client.Host.DeleteOneID(h.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete host: %w", err)
	}
	if s.pool != nil {
		s.pool.Invalidate(hostID)
	}
	s.recordHostEvent(ctx, orgID, userID, h, "host_removed")
	return nil
}

// TestConnection probes the host over SSH and records the outcome on the
// host row: success clears status back to healthy, failure marks it
// unreachable.
func (s *HostService) TestConnection(httpCtx context.Context, orgID, hostID string) (*models.TestConnectionResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 15*time.Second)
	defer cancel()

	if _, err := s.get(ctx, orgID, hostID); err != nil {
		return nil, err
	}
	if s.pool == nil {
		return nil, fmt.Errorf("connection pool is not configured")
	}

	probeErr := s.pool.TestConnection(ctx, hostID)

	status := host.StatusHealthy
	if probeErr != nil {
		status = host.StatusUnreachable
	}
	err := s.client.Host.UpdateOneID(hostID).
		SetStatus(status).
		SetLastHealthCheck(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record health check: %w", err)
	}

	if probeErr != nil {
		return &models.TestConnectionResponse{Success: false, Message: probeErr.Error()}, nil
	}
	return &models.TestConnectionResponse{Success: true}, nil
}

func (s *HostService) recordHostEvent(ctx context.Context, orgID, userID string, h *ent.Host, eventType auditlog.EventType) {
	if s.auditor == nil {
		return
	}
	// Inventory audit is best-effort; the mutation already succeeded.
	_ = s.auditor.Record(ctx, audit.Event{
		OrgID:     orgID,
		EventType: eventType,
		UserID:    userID,
		HostID:    h.ID,
		Metadata:  map[string]any{"name": h.Name, "hostname": h.Hostname},
	})
}

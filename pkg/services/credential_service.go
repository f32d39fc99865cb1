package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/ent/credential"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/crypto"
	"github.com/infrallm/infrallm/pkg/models"
)

// CredentialService stores SSH and API secrets. Values are encrypted before
// they reach the database and are never returned to clients; only the
// executor path decrypts them.
type CredentialService struct {
	client    *ent.Client
	encryptor *crypto.Encryptor
	auditor   *audit.Logger
}

// NewCredentialService creates a CredentialService.
func NewCredentialService(client *ent.Client, encryptor *crypto.Encryptor, auditor *audit.Logger) *CredentialService {
	return &CredentialService{client: client, encryptor: encryptor, auditor: auditor}
}

// Create encrypts and stores a secret.
func (s *CredentialService) Create(httpCtx context.Context, orgID, userID string, req models.CreateCredentialRequest) (*models.CredentialResponse, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Value == "" {
		return nil, NewValidationError("value", "required")
	}
	switch req.Kind {
	case credential.KindPassword, credential.KindSSHKey, credential.KindAPIToken:
	default:
		return nil, NewValidationError("kind", "must be password, ssh_key or api_token")
	}

	encrypted, err := s.encryptor.Encrypt(req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt credential: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	c, err := s.client.Credential.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetKind(req.Kind).
		SetEncryptedValue(encrypted).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	s.recordEvent(ctx, orgID, userID, c, "credential_added")
	return toCredentialResponse(c), nil
}

// List returns the organization's credentials without values.
func (s *CredentialService) List(httpCtx context.Context, orgID string) (*models.CredentialListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	creds, err := s.client.Credential.Query().
		Where(credential.OrganizationID(orgID)).
		Order(ent.Asc(credential.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	out := make([]*models.CredentialResponse, len(creds))
	for i, c := range creds {
		out[i] = toCredentialResponse(c)
	}
	return &models.CredentialListResponse{Credentials: out, TotalCount: len(out)}, nil
}

// Get returns one credential without its value.
func (s *CredentialService) Get(httpCtx context.Context, orgID, credentialID string) (*models.CredentialResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	c, err := s.getScoped(ctx, orgID, credentialID)
	if err != nil {
		return nil, err
	}
	return toCredentialResponse(c), nil
}

// Delete removes a credential. Hosts still referencing it are rejected so
// inventory never points at a missing secret.
func (s *CredentialService) Delete(httpCtx context.Context, orgID, userID, credentialID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	c, err := s.getScoped(ctx, orgID, credentialID)
	if err != nil {
		return err
	}

	inUse, err := s.client.Host.Query().
		Where(host.OrganizationID(orgID), host.CredentialID(credentialID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check credential usage: %w", err)
	}
	if inUse {
		return NewValidationError("credential_id", "credential is in use by one or more hosts")
	}

	if err := s.client.Credential.DeleteOneID(c.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	s.recordEvent(ctx, orgID, userID, c, "credential_removed")
	return nil
}

func (s *CredentialService) getScoped(ctx context.Context, orgID, credentialID string) (*ent.Credential, error) {
	c, err := s.client.Credential.Query().
		Where(credential.ID(credentialID), credential.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return c, nil
}

func (s *CredentialService) recordEvent(ctx context.Context, orgID, userID string, c *ent.Credential, eventType auditlog.EventType) {
	if s.auditor == nil {
		return
	}
	// Only the name and kind go into the audit trail, never the value.
	_ = s.auditor.Record(ctx, audit.Event{
		OrgID:     orgID,
		EventType: eventType,
		UserID:    userID,
		Metadata:  map[string]any{"credential_id": c.ID, "name": c.Name, "kind": c.Kind},
	})
}

func toCredentialResponse(c *ent.Credential) *models.CredentialResponse {
	return &models.CredentialResponse{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      c.Kind,
		CreatedAt: c.CreatedAt,
	}
}

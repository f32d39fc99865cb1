package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/message"
	"github.com/infrallm/infrallm/ent/session"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/models"
)

// SessionService manages conversations and their message history.
type SessionService struct {
	client  *ent.Client
	auditor *audit.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(client *ent.Client, auditor *audit.Logger) *SessionService {
	return &SessionService{client: client, auditor: auditor}
}

// Create opens a conversation. Host ids are checked against the caller's
// inventory so a session can never reference another tenant's host.
func (s *SessionService) Create(httpCtx context.Context, orgID, userID string, req models.CreateSessionRequest) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if len(req.HostIDs) > 0 {
		count, err := s.client.Host.Query().
			Where(host.OrganizationID(orgID), host.IDIn(req.HostIDs...)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check hosts: %w", err)
		}
		if count != len(req.HostIDs) {
			return nil, NewValidationError("host_ids", "unknown host")
		}
	}

	create := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetUserID(userID).
		SetIsJobRunSession(req.IsJobRunSession)
	if len(req.HostIDs) > 0 {
		create.SetHostIds(req.HostIDs)
	}
	if req.Title != "" {
		create.SetTitle(req.Title)
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.auditor != nil {
		_ = s.auditor.Record(ctx, audit.Event{
			OrgID:     orgID,
			EventType: "session_started",
			UserID:    userID,
			Metadata:  map[string]any{"session_id": sess.ID},
		})
	}
	return sess, nil
}

// List returns the caller's sessions, most recently active first. Job-run
// sessions are included; the API layer decides how to present them.
func (s *SessionService) List(httpCtx context.Context, orgID, userID string) (*models.SessionListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	sessions, err := s.client.Session.Query().
		Where(session.OrganizationID(orgID), session.UserID(userID)).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &models.SessionListResponse{Sessions: sessions, TotalCount: len(sessions)}, nil
}

// Get returns one session owned by the caller.
func (s *SessionService) Get(httpCtx context.Context, orgID, userID, sessionID string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()
	return s.getOwned(ctx, orgID, userID, sessionID)
}

// Messages returns a session's history in creation order.
func (s *SessionService) Messages(httpCtx context.Context, orgID, userID, sessionID string) (*models.MessageListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if _, err := s.getOwned(ctx, orgID, userID, sessionID); err != nil {
		return nil, err
	}
	messages, err := s.client.Message.Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return &models.MessageListResponse{Messages: messages}, nil
}

// SetHosts replaces the session's host scope. Host ids go through the same
// inventory check as Create.
func (s *SessionService) SetHosts(httpCtx context.Context, orgID, userID, sessionID string, hostIDs []string) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	sess, err := s.getOwned(ctx, orgID, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if len(hostIDs) > 0 {
		count, err := s.client.Host.Query().
			Where(host.OrganizationID(orgID), host.IDIn(hostIDs...)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check hosts: %w", err)
		}
		if count != len(hostIDs) {
			return nil, NewValidationError("host_ids", "unknown host")
		}
	}

	sess, err = sess.Update().SetHostIds(hostIDs).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session hosts: %w", err)
	}
	return sess, nil
}

// Delete removes a session and its messages.
func (s *SessionService) Delete(httpCtx context.Context, orgID, userID, sessionID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	sess, err := s.getOwned(ctx, orgID, userID, sessionID)
	if err != nil {
		return err
	}

	if _, err := s.client.Message.Delete().
		Where(message.SessionID(sessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if err := s.client.Session.DeleteOneID(sess.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if s.auditor != nil {
		_ = s.auditor.Record(ctx, audit.Event{
			OrgID:     orgID,
			EventType: "session_ended",
			UserID:    userID,
			Metadata:  map[string]any{"session_id": sessionID},
		})
	}
	return nil
}

func (s *SessionService) getOwned(ctx context.Context, orgID, userID, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(
			session.ID(sessionID),
			session.OrganizationID(orgID),
			session.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/hostnote"
	"github.com/infrallm/infrallm/ent/promptsettings"
	"github.com/infrallm/infrallm/pkg/models"
)

// NoteService manages per-host operational notes and per-user prompt
// settings. Both feed the assistant's system prompt.
type NoteService struct {
	client *ent.Client
}

// NewNoteService creates a NoteService.
func NewNoteService(client *ent.Client) *NoteService {
	return &NoteService{client: client}
}

// GetHostNote returns the note for a host, or ErrNotFound when none exists.
func (s *NoteService) GetHostNote(httpCtx context.Context, orgID, hostID string) (*ent.HostNote, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	note, err := s.client.HostNote.Query().
		Where(hostnote.OrganizationID(orgID), hostnote.HostID(hostID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get host note: %w", err)
	}
	return note, nil
}

// UpsertHostNote replaces the note for a host, creating it on first write.
func (s *NoteService) UpsertHostNote(httpCtx context.Context, orgID, hostID, content string) (*ent.HostNote, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	ok, err := s.client.Host.Query().
		Where(host.ID(hostID), host.OrganizationID(orgID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check host: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	existing, err := s.client.HostNote.Query().
		Where(hostnote.OrganizationID(orgID), hostnote.HostID(hostID)).
		Only(ctx)
	if err == nil {
		updated, err := existing.Update().SetContent(content).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update host note: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query host note: %w", err)
	}

	note, err := s.client.HostNote.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetHostID(hostID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create host note: %w", err)
	}
	return note, nil
}

// DeleteHostNote removes a host's note.
func (s *NoteService) DeleteHostNote(httpCtx context.Context, orgID, hostID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	n, err := s.client.HostNote.Delete().
		Where(hostnote.OrganizationID(orgID), hostnote.HostID(hostID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete host note: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPromptSettings returns the caller's prompt customization. A user who
// never saved settings gets an empty value rather than an error.
func (s *NoteService) GetPromptSettings(httpCtx context.Context, orgID, userID string) (*ent.PromptSettings, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	ps, err := s.client.PromptSettings.Query().
		Where(promptsettings.OrganizationID(orgID), promptsettings.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ent.PromptSettings{OrganizationID: orgID, UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get prompt settings: %w", err)
	}
	return ps, nil
}

// UpdatePromptSettings applies partial changes to the caller's prompt
// customization, creating the row on first write.
func (s *NoteService) UpdatePromptSettings(httpCtx context.Context, orgID, userID string, req models.UpdatePromptSettingsRequest) (*ent.PromptSettings, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	existing, err := s.client.PromptSettings.Query().
		Where(promptsettings.OrganizationID(orgID), promptsettings.UserID(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query prompt settings: %w", err)
	}

	if ent.IsNotFound(err) {
		create := s.client.PromptSettings.Create().
			SetID(uuid.New().String()).
			SetOrganizationID(orgID).
			SetUserID(userID)
		if req.SystemPrompt != nil {
			create.SetSystemPrompt(*req.SystemPrompt)
		}
		if req.PersonalizationPrompt != nil {
			create.SetPersonalizationPrompt(*req.PersonalizationPrompt)
		}
		if req.DefaultModel != nil {
			create.SetDefaultModel(*req.DefaultModel)
		}
		ps, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create prompt settings: %w", err)
		}
		return ps, nil
	}

	update := existing.Update()
	if req.SystemPrompt != nil {
		update.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.PersonalizationPrompt != nil {
		update.SetPersonalizationPrompt(*req.PersonalizationPrompt)
	}
	if req.DefaultModel != nil {
		update.SetDefaultModel(*req.DefaultModel)
	}
	ps, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update prompt settings: %w", err)
	}
	return ps, nil
}

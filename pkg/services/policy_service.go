package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	entpolicy "github.com/infrallm/infrallm/ent/accesspolicy"
	"github.com/infrallm/infrallm/ent/user"
	"github.com/infrallm/infrallm/ent/userpolicy"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/models"
	"github.com/infrallm/infrallm/pkg/policy"
)

// policyPresets are ready-made templates surfaced by the API so a new
// organization does not start from a blank allowlist.
var policyPresets = []*models.PolicyPreset{
	{
		Name:        "read-only",
		Description: "Inspection commands only, nothing that mutates state",
		AllowedCommandPatterns: []string{
			`ls(\s.*)?`, `cat\s.*`, `tail(\s.*)?`, `head(\s.*)?`, `grep\s.*`,
			`ps(\s.*)?`, `top\s-b.*`, `df(\s.*)?`, `du(\s.*)?`, `free(\s.*)?`,
			`uptime`, `uname(\s.*)?`, `whoami`, `id(\s.*)?`, `hostname(\s.*)?`,
		},
		DeniedCommandPatterns: []string{`.*>.*`, `.*\brm\b.*`, `.*sudo.*`},
	},
	{
		Name:        "diagnostic",
		Description: "Read-only plus service status and journal inspection",
		AllowedCommandPatterns: []string{
			`ls(\s.*)?`, `cat\s.*`, `tail(\s.*)?`, `grep\s.*`, `ps(\s.*)?`,
			`df(\s.*)?`, `free(\s.*)?`, `uptime`, `ss(\s.*)?`, `ip\s.*`,
			`systemctl\s(status|list-units|is-active)(\s.*)?`,
			`journalctl\s.*`, `dig(\s.*)?`, `ping\s-c\s\d+\s.*`,
		},
		DeniedCommandPatterns: []string{`.*sudo.*`, `systemctl\s(start|stop|restart|reload).*`},
	},
	{
		Name:                   "admin",
		Description:            "Everything allowed, every command requires approval",
		AllowedCommandPatterns: []string{`.*`},
		RequireApproval:        true,
	},
}

// PolicyService manages command policies and their user assignments.
type PolicyService struct {
	client  *ent.Client
	engine  *policy.Engine
	auditor *audit.Logger
}

// NewPolicyService creates a PolicyService.
func NewPolicyService(client *ent.Client, engine *policy.Engine, auditor *audit.Logger) *PolicyService {
	return &PolicyService{client: client, engine: engine, auditor: auditor}
}

// Presets returns the built-in policy templates.
func (s *PolicyService) Presets() []*models.PolicyPreset {
	return policyPresets
}

// Create stores a policy. Patterns must be valid anchored-regex sources.
func (s *PolicyService) Create(httpCtx context.Context, orgID, userID string, req models.CreatePolicyRequest) (*ent.AccessPolicy, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := validatePatterns(req.AllowedCommandPatterns); err != nil {
		return nil, NewValidationError("allowed_command_patterns", err.Error())
	}
	if err := validatePatterns(req.DeniedCommandPatterns); err != nil {
		return nil, NewValidationError("denied_command_patterns", err.Error())
	}
	if req.MaxConcurrentCommands < 0 {
		return nil, NewValidationError("max_concurrent_commands", "cannot be negative")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	create := s.client.AccessPolicy.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetAllowedCommandPatterns(req.AllowedCommandPatterns).
		SetDeniedCommandPatterns(req.DeniedCommandPatterns).
		SetRequireApproval(req.RequireApproval).
		SetMaxConcurrentCommands(req.MaxConcurrentCommands)
	if req.IsEnabled != nil {
		create.SetIsEnabled(*req.IsEnabled)
	}

	p, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	s.recordChange(ctx, orgID, userID, p.ID, "created", p.Name)
	return p, nil
}

// List returns the organization's policies.
func (s *PolicyService) List(httpCtx context.Context, orgID string) (*models.PolicyListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	policies, err := s.client.AccessPolicy.Query().
		Where(entpolicy.OrganizationID(orgID)).
		Order(ent.Asc(entpolicy.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return &models.PolicyListResponse{Policies: policies, TotalCount: len(policies)}, nil
}

// Get returns one policy scoped to the organization.
func (s *PolicyService) Get(httpCtx context.Context, orgID, policyID string) (*ent.AccessPolicy, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()
	return s.getScoped(ctx, orgID, policyID)
}

// Update applies partial changes to a policy.
func (s *PolicyService) Update(httpCtx context.Context, orgID, userID, policyID string, req models.UpdatePolicyRequest) (*ent.AccessPolicy, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	p, err := s.getScoped(ctx, orgID, policyID)
	if err != nil {
		return nil, err
	}

	update := p.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.AllowedCommandPatterns != nil {
		if err := validatePatterns(*req.AllowedCommandPatterns); err != nil {
			return nil, NewValidationError("allowed_command_patterns", err.Error())
		}
		update.SetAllowedCommandPatterns(*req.AllowedCommandPatterns)
	}
	if req.DeniedCommandPatterns != nil {
		if err := validatePatterns(*req.DeniedCommandPatterns); err != nil {
			return nil, NewValidationError("denied_command_patterns", err.Error())
		}
		update.SetDeniedCommandPatterns(*req.DeniedCommandPatterns)
	}
	if req.RequireApproval != nil {
		update.SetRequireApproval(*req.RequireApproval)
	}
	if req.MaxConcurrentCommands != nil {
		if *req.MaxConcurrentCommands < 0 {
			return nil, NewValidationError("max_concurrent_commands", "cannot be negative")
		}
		update.SetMaxConcurrentCommands(*req.MaxConcurrentCommands)
	}
	if req.IsEnabled != nil {
		update.SetIsEnabled(*req.IsEnabled)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	s.recordChange(ctx, orgID, userID, policyID, "updated", updated.Name)
	return updated, nil
}

// Delete removes a policy and its assignments.
func (s *PolicyService) Delete(httpCtx context.Context, orgID, userID, policyID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	p, err := s.getScoped(ctx, orgID, policyID)
	if err != nil {
		return err
	}

	_, err = s.client.UserPolicy.Delete().
		Where(userpolicy.PolicyID(policyID), userpolicy.OrganizationID(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete policy assignments: %w", err)
	}
	if err := s.client.AccessPolicy.DeleteOneID(policyID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}

	s.recordChange(ctx, orgID, userID, policyID, "deleted", p.Name)
	return nil
}

// TestCommand dry-runs one policy against a command without touching any host.
func (s *PolicyService) TestCommand(httpCtx context.Context, orgID, policyID, command string) (*models.PolicyTestResult, error) {
	if command == "" {
		return nil, NewValidationError("command", "required")
	}
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()
	return s.engine.TestCommand(ctx, orgID, policyID, command)
}

// Assign binds a policy to a user, optionally scoped to a single host.
func (s *PolicyService) Assign(httpCtx context.Context, orgID, actorID, policyID string, req models.CreateAssignmentRequest) (*ent.UserPolicy, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if _, err := s.getScoped(ctx, orgID, policyID); err != nil {
		return nil, err
	}
	ok, err := s.client.User.Query().Where(user.ID(req.UserID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !ok {
		return nil, NewValidationError("user_id", "unknown user")
	}

	create := s.client.UserPolicy.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetPolicyID(policyID).
		SetUserID(req.UserID)
	if req.HostID != "" {
		create.SetHostID(req.HostID)
	}

	a, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.recordChange(ctx, orgID, actorID, policyID, "assigned", req.UserID)
	return a, nil
}

// Assignments lists a policy's bindings.
func (s *PolicyService) Assignments(httpCtx context.Context, orgID, policyID string) ([]*ent.UserPolicy, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	if _, err := s.getScoped(ctx, orgID, policyID); err != nil {
		return nil, err
	}
	assignments, err := s.client.UserPolicy.Query().
		Where(userpolicy.OrganizationID(orgID), userpolicy.PolicyID(policyID)).
		Order(ent.Asc(userpolicy.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// Unassign removes one policy binding.
func (s *PolicyService) Unassign(httpCtx context.Context, orgID, actorID, assignmentID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	a, err := s.client.UserPolicy.Query().
		Where(userpolicy.ID(assignmentID), userpolicy.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if err := s.client.UserPolicy.DeleteOneID(a.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.recordChange(ctx, orgID, actorID, a.PolicyID, "unassigned", a.UserID)
	return nil
}

func (s *PolicyService) getScoped(ctx context.Context, orgID, policyID string) (*ent.AccessPolicy, error) {
	p, err := s.client.AccessPolicy.Query().
		Where(entpolicy.ID(policyID), entpolicy.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	return p, nil
}

func (s *PolicyService) recordChange(ctx context.Context, orgID, userID, policyID, action, detail string) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Record(ctx, audit.Event{
		OrgID:     orgID,
		EventType: "policy_changed",
		UserID:    userID,
		Metadata:  map[string]any{"policy_id": policyID, "action": action, "detail": detail},
	})
}

// validatePatterns rejects regex sources that would silently deny at
// evaluation time.
func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return fmt.Errorf("empty pattern")
		}
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid pattern %q: %v", p, err)
		}
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/membership"
	"github.com/infrallm/infrallm/ent/user"
	"github.com/infrallm/infrallm/pkg/auth"
	"github.com/infrallm/infrallm/pkg/models"
)

const minPasswordLength = 8

// UserService handles registration and login. Registering bootstraps an
// organization with the new user as its owner.
type UserService struct {
	client *ent.Client
	tokens *auth.TokenManager
}

// NewUserService creates a UserService.
func NewUserService(client *ent.Client, tokens *auth.TokenManager) *UserService {
	return &UserService{client: client, tokens: tokens}
}

// Register creates a user, their organization and the owner membership in
// one transaction, then returns a session token.
func (s *UserService) Register(httpCtx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "valid email required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	orgName := strings.TrimSpace(req.OrganizationName)
	if orgName == "" {
		orgName = email[:strings.Index(email, "@")]
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	org, err := tx.Organization.Create().
		SetID(uuid.New().String()).
		SetName(orgName).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	u, err := tx.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetDisplayName(req.DisplayName).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	m, err := tx.Membership.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetRole(membership.RoleOwner).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	token, err := s.tokens.Generate(u.ID, u.Email, org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token: token,
		User:  toUserResponse(u, org.ID, m.Role),
	}, nil
}

// Login authenticates by email and password and returns a session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(httpCtx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrUnauthenticated
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	u, err := s.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrUnauthenticated
	}

	m, err := s.client.Membership.Query().
		Where(membership.UserID(u.ID)).
		Order(ent.Asc(membership.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}

	token, err := s.tokens.Generate(u.ID, u.Email, m.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token: token,
		User:  toUserResponse(u, m.OrganizationID, m.Role),
	}, nil
}

// Me returns the authenticated user's profile.
func (s *UserService) Me(httpCtx context.Context, orgID, userID string) (*models.UserResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	m, err := s.client.Membership.Query().
		Where(membership.UserID(userID), membership.OrganizationID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return toUserResponse(u, orgID, m.Role), nil
}

func toUserResponse(u *ent.User, orgID string, role membership.Role) *models.UserResponse {
	return &models.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		OrganizationID: orgID,
		Role:           role,
		CreatedAt:      u.CreatedAt,
	}
}

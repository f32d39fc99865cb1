package models

import (
	"time"

	"github.com/infrallm/infrallm/ent/membership"
)

// RegisterRequest creates a user and their organization
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	DisplayName      string `json:"display_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// LoginRequest authenticates a user with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the client-visible view of a user
type UserResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	DisplayName    string          `json:"display_name,omitempty"`
	OrganizationID string          `json:"organization_id"`
	Role           membership.Role `json:"role"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AuthResponse carries the session token plus the authenticated user
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

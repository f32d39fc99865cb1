package models

import (
	"time"

	"github.com/infrallm/infrallm/ent/credential"
)

// CreateCredentialRequest contains fields for storing a secret. Value is
// encrypted before persistence and never returned to clients.
type CreateCredentialRequest struct {
	Name  string          `json:"name"`
	Kind  credential.Kind `json:"kind"`
	Value string          `json:"value"`
}

// CredentialResponse is the client-visible view of a credential.
// The encrypted value is deliberately absent.
type CredentialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      credential.Kind `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
}

// CredentialListResponse contains an organization's credentials
type CredentialListResponse struct {
	Credentials []*CredentialResponse `json:"credentials"`
	TotalCount  int                   `json:"total_count"`
}

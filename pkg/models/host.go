// Package models contains request/response types shared between the API
// layer and the service layer.
package models

import (
	"github.com/infrallm/infrallm/ent"
)

// CreateHostRequest contains fields for registering a host
type CreateHostRequest struct {
	Name             string   `json:"name"`
	Hostname         string   `json:"hostname"`
	Port             int      `json:"port,omitempty"`
	Username         string   `json:"username,omitempty"`
	CredentialID     string   `json:"credential_id,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Environment      string   `json:"environment,omitempty"`
	AllowInsecureSsl bool     `json:"allow_insecure_ssl,omitempty"`
}

// UpdateHostRequest contains fields for updating a host. Nil pointers leave
// the corresponding field unchanged.
type UpdateHostRequest struct {
	Name             *string   `json:"name,omitempty"`
	Hostname         *string   `json:"hostname,omitempty"`
	Port             *int      `json:"port,omitempty"`
	Username         *string   `json:"username,omitempty"`
	CredentialID     *string   `json:"credential_id,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Environment      *string   `json:"environment,omitempty"`
	AllowInsecureSsl *bool     `json:"allow_insecure_ssl,omitempty"`
}

// HostListResponse contains the hosts visible to an organization
type HostListResponse struct {
	Hosts      []*ent.Host `json:"hosts"`
	TotalCount int         `json:"total_count"`
}

// TestConnectionResponse reports the outcome of a connectivity probe
type TestConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

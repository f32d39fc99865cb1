package models

import (
	"github.com/infrallm/infrallm/ent"
)

// CreateSessionRequest contains fields for opening a conversation
type CreateSessionRequest struct {
	UserID          string   `json:"user_id"`
	HostIDs         []string `json:"host_ids,omitempty"`
	Title           string   `json:"title,omitempty"`
	IsJobRunSession bool     `json:"is_job_run_session,omitempty"`
}

// SendMessageRequest submits a user message to a session
type SendMessageRequest struct {
	Content string   `json:"content"`
	HostIDs []string `json:"host_ids,omitempty"`
	Model   string   `json:"model,omitempty"`
}

// SessionListResponse contains a user's sessions, newest first
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
}

// MessageListResponse contains a session's messages in creation order
type MessageListResponse struct {
	Messages []*ent.Message `json:"messages"`
}

package models

import (
	"time"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
)

// AuditFilters contains filtering options for searching audit logs
type AuditFilters struct {
	EventType auditlog.EventType `json:"event_type,omitempty"`
	UserID    string             `json:"user_id,omitempty"`
	HostID    string             `json:"host_id,omitempty"`
	Since     *time.Time         `json:"since,omitempty"`
	Until     *time.Time         `json:"until,omitempty"`
	Limit     int                `json:"limit,omitempty"`
	Offset    int                `json:"offset,omitempty"`
}

// AuditListResponse contains a paginated audit log page, newest first
type AuditListResponse struct {
	Entries    []*ent.AuditLog `json:"entries"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

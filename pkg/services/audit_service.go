package services

import (
	"context"
	"fmt"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/pkg/models"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

// AuditService serves read access to the append-only audit log.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates an AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Search returns a filtered, paginated page of audit entries, newest first.
func (s *AuditService) Search(httpCtx context.Context, orgID string, filters models.AuditFilters) (*models.AuditListResponse, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	query := s.client.AuditLog.Query().
		Where(auditlog.OrganizationID(orgID))
	if filters.EventType != "" {
		query = query.Where(auditlog.EventTypeEQ(filters.EventType))
	}
	if filters.UserID != "" {
		query = query.Where(auditlog.UserID(filters.UserID))
	}
	if filters.HostID != "" {
		query = query.Where(auditlog.HostID(filters.HostID))
	}
	if filters.Since != nil {
		query = query.Where(auditlog.CreatedAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(auditlog.CreatedAtLT(*filters.Until))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries: %w", err)
	}
	entries, err := query.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search audit log: %w", err)
	}

	return &models.AuditListResponse{
		Entries:    entries,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

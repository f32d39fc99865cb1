package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/ent/auditlog"
	"github.com/infrallm/infrallm/pkg/models"
)

// auditSearchHandler serves the audit trail with optional filters. Times are
// RFC 3339; until is exclusive.
func (s *Server) auditSearchHandler(c *echo.Context) error {
	claims := claimsFrom(c)

	filters := models.AuditFilters{
		EventType: auditlog.EventType(c.QueryParam("event_type")),
		UserID:    c.QueryParam("user_id"),
		HostID:    c.QueryParam("host_id"),
	}

	if raw := c.QueryParam("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return newAPIError(http.StatusBadRequest, "invalid_argument", "since must be RFC 3339")
		}
		filters.Since = &ts
	}
	if raw := c.QueryParam("until"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return newAPIError(http.StatusBadRequest, "invalid_argument", "until must be RFC 3339")
		}
		filters.Until = &ts
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return newAPIError(http.StatusBadRequest, "invalid_argument", "limit must be an integer")
		}
		filters.Limit = n
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return newAPIError(http.StatusBadRequest, "invalid_argument", "offset must be an integer")
		}
		filters.Offset = n
	}

	resp, err := s.deps.Audit.Search(c.Request().Context(), claims.OrgID, filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

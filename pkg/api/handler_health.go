package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/database"
	"github.com/infrallm/infrallm/pkg/version"
)

func (s *Server) healthHandler(c *echo.Context) error {
	body := map[string]any{
		"status":  "ok",
		"version": version.Full(),
	}

	if s.deps.DB != nil {
		dbStatus, err := database.Health(c.Request().Context(), s.deps.DB)
		if err != nil {
			body["status"] = "degraded"
			body["database"] = map[string]string{"status": "unreachable"}
			return c.JSON(http.StatusServiceUnavailable, body)
		}
		body["database"] = dbStatus
	}
	if s.deps.Hub != nil {
		body["active_connections"] = s.deps.Hub.ActiveConnections()
	}
	return c.JSON(http.StatusOK, body)
}

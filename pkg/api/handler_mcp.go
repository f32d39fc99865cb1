package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listMcpServersHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.McpServers.List(c.Request().Context(), claims.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createMcpServerHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateMcpServerRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.McpServers.Create(c.Request().Context(), claims.OrgID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) getMcpServerHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.McpServers.Get(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) updateMcpServerHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateMcpServerRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.McpServers.Update(c.Request().Context(), claims.OrgID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteMcpServerHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.McpServers.Delete(c.Request().Context(), claims.OrgID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) testMcpServerHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if s.deps.Registry == nil {
		return newAPIError(http.StatusServiceUnavailable, "unavailable", "MCP support is not configured")
	}
	resp := s.deps.Registry.TestServer(c.Request().Context(), claims.OrgID, c.Param("id"))
	return c.JSON(http.StatusOK, resp)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listHostsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Hosts.List(c.Request().Context(), claims.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createHostHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateHostRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	h, err := s.deps.Hosts.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, h)
}

func (s *Server) getHostHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	h, err := s.deps.Hosts.Get(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, h)
}

func (s *Server) updateHostHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.UpdateHostRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	h, err := s.deps.Hosts.Update(c.Request().Context(), claims.OrgID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, h)
}

func (s *Server) deleteHostHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.Hosts.Delete(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) testHostConnectionHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Hosts.TestConnection(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listCredentialsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Credentials.List(c.Request().Context(), claims.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createCredentialHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateCredentialRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.Credentials.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) deleteCredentialHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.Credentials.Delete(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listAccessTokensHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.AccessTokens.List(c.Request().Context(), claims.OrgID, claims.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// createAccessTokenHandler returns the raw token exactly once; only its hash
// is stored.
func (s *Server) createAccessTokenHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateAccessTokenRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.AccessTokens.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) revokeAccessTokenHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.AccessTokens.Revoke(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteAccessTokenHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.AccessTokens.Delete(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) registerHandler(c *echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.Users.Register(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) loginHandler(c *echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	resp, err := s.deps.Users.Login(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) meHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Users.Me(c.Request().Context(), claims.OrgID, claims.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

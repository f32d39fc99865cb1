package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listPoliciesHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Policies.List(c.Request().Context(), claims.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) policyPresetsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Policies.Presets())
}

func (s *Server) createPolicyHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	p, err := s.deps.Policies.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) getPolicyHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	p, err := s.deps.Policies.Get(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) updatePolicyHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.UpdatePolicyRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	p, err := s.deps.Policies.Update(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deletePolicyHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.Policies.Delete(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) testPolicyHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.TestPolicyRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	result, err := s.deps.Policies.TestCommand(c.Request().Context(), claims.OrgID, c.Param("id"), req.Command)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) listAssignmentsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	assignments, err := s.deps.Policies.Assignments(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, assignments)
}

func (s *Server) createAssignmentHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	a, err := s.deps.Policies.Assign(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) deleteAssignmentHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.Policies.Unassign(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("aid")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

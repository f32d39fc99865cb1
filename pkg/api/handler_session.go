package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

func (s *Server) listSessionsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Sessions.List(c.Request().Context(), claims.OrgID, claims.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createSessionHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}
	// Callers never open job-run sessions through the API.
	req.IsJobRunSession = false

	sess, err := s.deps.Sessions.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sess)
}

func (s *Server) getSessionHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	sess, err := s.deps.Sessions.Get(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (s *Server) deleteSessionHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	sessionID := c.Param("id")
	s.deps.Tasks.Cancel(sessionID)
	if err := s.deps.Sessions.Delete(c.Request().Context(), claims.OrgID, claims.UserID, sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listMessagesHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Sessions.Messages(c.Request().Context(), claims.OrgID, claims.UserID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// sendMessageHandler accepts a user message and starts an assistant turn in
// the background. The reply streams over the chat hub; the HTTP response only
// acknowledges that the turn started.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	sessionID := c.Param("id")

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "content is required")
	}

	// Ownership check happens here; the orchestrator trusts its session id.
	if _, err := s.deps.Sessions.Get(c.Request().Context(), claims.OrgID, claims.UserID, sessionID); err != nil {
		return mapServiceError(err)
	}
	if req.HostIDs != nil {
		if _, err := s.deps.Sessions.SetHosts(c.Request().Context(), claims.OrgID, claims.UserID, sessionID, req.HostIDs); err != nil {
			return mapServiceError(err)
		}
	}

	if err := s.startChatTurn(claims, sessionID, req.Content, req.Model); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"session_id": sessionID,
		"status":     "processing",
	})
}

// cancelSessionHandler aborts the session's in-flight turn, if any.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	sessionID := c.Param("id")

	if _, err := s.deps.Sessions.Get(c.Request().Context(), claims.OrgID, claims.UserID, sessionID); err != nil {
		return mapServiceError(err)
	}

	canceled := s.deps.Tasks.Cancel(sessionID)
	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sessionID,
		"canceled":   canceled,
	})
}

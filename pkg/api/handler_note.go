package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/models"
)

// refreshNotePrompt is the canned instruction driving a note refresh turn.
const refreshNotePrompt = "Inspect this host (OS, services, disk and memory pressure, anything notable) " +
	"and refresh its operational note using the update_host_note tool. Reply with a short summary of what changed."

func (s *Server) getHostNoteHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	note, err := s.deps.Notes.GetHostNote(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.HostNoteResponse{HostNote: note})
}

func (s *Server) putHostNoteHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "content is required")
	}

	note, err := s.deps.Notes.UpsertHostNote(c.Request().Context(), claims.OrgID, c.Param("id"), req.Content)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.HostNoteResponse{HostNote: note})
}

// refreshHostNoteHandler asks the assistant to re-survey the host. The work
// runs on a hidden job-run session so it never shows up in the chat list.
func (s *Server) refreshHostNoteHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	hostID := c.Param("id")

	h, err := s.deps.Hosts.Get(c.Request().Context(), claims.OrgID, hostID)
	if err != nil {
		return mapServiceError(err)
	}

	sess, err := s.deps.Sessions.Create(c.Request().Context(), claims.OrgID, claims.UserID, models.CreateSessionRequest{
		HostIDs:         []string{h.ID},
		Title:           "Note refresh: " + h.Name,
		IsJobRunSession: true,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.startChatTurn(claims, sess.ID, refreshNotePrompt, ""); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"host_id":    hostID,
		"session_id": sess.ID,
		"status":     "processing",
	})
}

func (s *Server) getPromptSettingsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	settings, err := s.deps.Notes.GetPromptSettings(c.Request().Context(), claims.OrgID, claims.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (s *Server) updatePromptSettingsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.UpdatePromptSettingsRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	settings, err := s.deps.Notes.UpdatePromptSettings(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

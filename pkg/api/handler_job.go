package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/jobs"
	"github.com/infrallm/infrallm/pkg/models"
)

// maxWebhookBody bounds the payload a webhook caller can attach to a run.
const maxWebhookBody = 1 << 20

func (s *Server) listJobsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	resp, err := s.deps.Jobs.List(c.Request().Context(), claims.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createJobHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	j, err := s.deps.Jobs.Create(c.Request().Context(), claims.OrgID, claims.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, j)
}

func (s *Server) getJobHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	j, err := s.deps.Jobs.Get(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, j)
}

func (s *Server) updateJobHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	var req models.UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "invalid request body")
	}

	j, err := s.deps.Jobs.Update(c.Request().Context(), claims.OrgID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, j)
}

func (s *Server) deleteJobHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	if err := s.deps.Jobs.Delete(c.Request().Context(), claims.OrgID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) runJobHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	run, err := s.deps.JobsEngine.RunManual(c.Request().Context(), claims.OrgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, jobs.ErrJobDisabled) {
			return newAPIError(http.StatusConflict, "job_disabled", "job is disabled")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, run)
}

func (s *Server) listJobRunsHandler(c *echo.Context) error {
	claims := claimsFrom(c)
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return newAPIError(http.StatusBadRequest, "invalid_argument", "limit must be an integer")
		}
		limit = n
	}

	resp, err := s.deps.Jobs.Runs(c.Request().Context(), claims.OrgID, c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// jobWebhookHandler is the unauthenticated trigger. The per-job secret is the
// only credential; a mismatch looks identical to a missing job so the
// endpoint cannot be used to probe for job ids.
func (s *Server) jobWebhookHandler(c *echo.Context) error {
	jobID := c.Param("jobId")
	secret := c.QueryParam("secret")

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return newAPIError(http.StatusBadRequest, "invalid_argument", "failed to read payload")
	}

	run, err := s.deps.JobsEngine.HandleWebhook(c.Request().Context(), jobID, secret, payload)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrBadSecret):
			return newAPIError(http.StatusNotFound, "not_found", "resource not found")
		case errors.Is(err, jobs.ErrJobDisabled):
			return newAPIError(http.StatusConflict, "job_disabled", "job is disabled")
		default:
			return mapServiceError(err)
		}
	}
	return c.JSON(http.StatusAccepted, map[string]string{
		"run_id": run.ID,
		"status": string(run.Status),
	})
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/services"
)

// StatusClientClosedRequest mirrors nginx's non-standard 499 for turns
// abandoned by the client.
const StatusClientClosedRequest = 499

// errorEnvelope is the JSON body for every error response.
type errorEnvelope struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

// apiError carries the machine-readable code alongside the HTTP status.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return e.Message }

func newAPIError(status int, code, message string) *apiError {
	return &apiError{Status: status, Code: code, Message: message}
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return newAPIError(http.StatusBadRequest, "invalid_argument", validErr.Error())
	}
	var policyErr *services.PolicyDeniedError
	if errors.As(err, &policyErr) {
		return newAPIError(http.StatusForbidden, "policy_denied", policyErr.Reason)
	}
	var upstreamErr *services.UpstreamError
	if errors.As(err, &upstreamErr) {
		return newAPIError(http.StatusBadGateway, "upstream_failure", upstreamErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return newAPIError(http.StatusNotFound, "not_found", "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return newAPIError(http.StatusConflict, "already_exists", "resource already exists")
	}
	if errors.Is(err, services.ErrUnauthenticated) {
		return newAPIError(http.StatusUnauthorized, "unauthenticated", "invalid credentials")
	}
	if errors.Is(err, services.ErrForbidden) {
		return newAPIError(http.StatusForbidden, "forbidden", "access denied")
	}
	if errors.Is(err, context.Canceled) {
		return newAPIError(StatusClientClosedRequest, "canceled", "request canceled")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return newAPIError(http.StatusInternalServerError, "internal", "internal server error")
}

// httpErrorHandler renders every error as the standard envelope.
func httpErrorHandler(c *echo.Context, err error) {
	if resp, respErr := echo.UnwrapResponse(c.Response()); respErr == nil && resp.Committed {
		return
	}

	status := http.StatusInternalServerError
	code := "internal"
	message := "internal server error"

	var ae *apiError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ae):
		status, code, message = ae.Status, ae.Code, ae.Message
	case errors.As(err, &he):
		status = he.Code
		if he.Message != "" {
			message = he.Message
		} else {
			message = http.StatusText(status)
		}
		code = codeForStatus(status)
	default:
		slog.Error("Unhandled handler error", "error", err)
	}

	envelope := errorEnvelope{
		Error:      message,
		Code:       code,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if jsonErr := c.JSON(status, envelope); jsonErr != nil {
		slog.Error("Failed to write error response", "error", jsonErr)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_argument"
	case http.StatusUnauthorized:
		return "unauthenticated"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "already_exists"
	case http.StatusBadGateway:
		return "upstream_failure"
	case StatusClientClosedRequest:
		return "canceled"
	default:
		return "internal"
	}
}

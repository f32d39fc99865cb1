package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", services.NewValidationError("name", "required"), http.StatusBadRequest, "invalid_argument"},
		{"policy denied", &services.PolicyDeniedError{Reason: "rm is blocked"}, http.StatusForbidden, "policy_denied"},
		{"upstream", services.NewUpstreamError("llm", errors.New("timeout")), http.StatusBadGateway, "upstream_failure"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", services.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ae *apiError
			require.ErrorAs(t, mapServiceError(tc.err), &ae)
			assert.Equal(t, tc.wantStatus, ae.Status)
			assert.Equal(t, tc.wantCode, ae.Code)
		})
	}
}

func TestPolicyDeniedCarriesReason(t *testing.T) {
	err := mapServiceError(&services.PolicyDeniedError{Reason: "command matched deny pattern"})
	var ae *apiError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "command matched deny pattern", ae.Message)
}

func TestErrorEnvelopeShape(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	httpErrorHandler(c, newAPIError(http.StatusNotFound, "not_found", "resource not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "resource not found", envelope.Error)
	assert.Equal(t, "not_found", envelope.Code)
	assert.Equal(t, http.StatusNotFound, envelope.StatusCode)
	assert.NotEmpty(t, envelope.Timestamp)
}

func TestErrorEnvelopeFromEchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	httpErrorHandler(c, echo.NewHTTPError(http.StatusBadRequest, "malformed body"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "malformed body", envelope.Error)
	assert.Equal(t, "invalid_argument", envelope.Code)
}

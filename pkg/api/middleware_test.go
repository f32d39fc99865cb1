package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersPresent(t *testing.T) {
	env := newTestEnv(t)
	rec := env.request(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func runCORS(t *testing.T, allowedOrigins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	mw := corsMiddleware(allowedOrigins)
	handler := mw(func(c *echo.Context) error { return c.NoContent(http.StatusOK) })

	e := echo.New()
	req := httptest.NewRequest(method, "/api/hosts", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestCORSAllowlist(t *testing.T) {
	allowed := runCORS(t, []string{"https://app.example.com"}, http.MethodGet, "https://app.example.com")
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := runCORS(t, []string{"https://app.example.com"}, http.MethodGet, "https://evil.example.com")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	rec := runCORS(t, nil, http.MethodOptions, "http://localhost:3000")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	// Empty allowlist echoes any origin back, for development setups.
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

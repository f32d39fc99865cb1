package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/infrallm/infrallm/pkg/auth"
)

const claimsContextKey = "auth.claims"

// extractToken pulls the credential from the request. Browsers use the
// Authorization header; API clients may use X-API-Key; WebSocket clients,
// which cannot set headers, fall back to query parameters.
func extractToken(c *echo.Context) string {
	if h := c.Request().Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if key := c.Request().Header.Get("X-API-Key"); key != "" {
		return key
	}
	if token := c.QueryParam("access_token"); token != "" {
		return token
	}
	return c.QueryParam("api_key")
}

// requireAuth authenticates every request and stores the resolved claims on
// the context. Both JWTs and infra_ access tokens are accepted.
func requireAuth(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return newAPIError(http.StatusUnauthorized, "unauthenticated", "missing credentials")
			}
			claims, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return newAPIError(http.StatusUnauthorized, "unauthenticated", "invalid or expired credentials")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// claimsFrom returns the authenticated claims set by requireAuth.
func claimsFrom(c *echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

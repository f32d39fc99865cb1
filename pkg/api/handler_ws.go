package api

import (
	"log/slog"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades the request and hands the connection to the hub. Origin
// checking already happened in the CORS layer, hence InsecureSkipVerify.
func (s *Server) wsHandler(c *echo.Context) error {
	claims := claimsFrom(c)

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return nil
	}

	// Blocks until the client disconnects.
	s.deps.Hub.HandleConnection(c.Request().Context(), conn, claims)
	return nil
}

package mcp

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/ent/mcpserver"
)

// buildTransport creates an MCP SDK transport for a registered server.
// apiKey is the already-decrypted bearer token; empty means none.
func buildTransport(srv *ent.McpServer, apiKey string) (mcpsdk.Transport, error) {
	switch srv.TransportType {
	case mcpserver.TransportTypeStdio:
		return buildStdioTransport(srv)
	case mcpserver.TransportTypeHTTP:
		return buildHTTPTransport(srv, apiKey)
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", srv.TransportType)
	}
}

func buildStdioTransport(srv *ent.McpServer) (*mcpsdk.CommandTransport, error) {
	if srv.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	cmd := exec.Command(srv.Command, srv.Arguments...)
	if srv.WorkingDirectory != "" {
		cmd.Dir = srv.WorkingDirectory
	}

	// Inherit parent environment + per-server overrides.
	env := os.Environ()
	for k, v := range srv.EnvironmentVariables {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func buildHTTPTransport(srv *ent.McpServer, apiKey string) (*mcpsdk.StreamableClientTransport, error) {
	if srv.BaseURL == "" {
		return nil, fmt.Errorf("HTTP transport requires base_url")
	}
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: srv.BaseURL,
	}
	if apiKey != "" || !srv.VerifySsl {
		transport.HTTPClient = buildHTTPClient(srv, apiKey)
	}
	return transport, nil
}

// buildHTTPClient creates an http.Client with auth and TLS settings.
func buildHTTPClient(srv *ent.McpServer, apiKey string) *http.Client {
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()

	if !srv.VerifySsl {
		httpTransport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,             //nolint:gosec // user-configured
			MinVersion:         tls.VersionTLS12, // prevent protocol downgrade even in relaxed mode
		}
	}

	client := &http.Client{Transport: httpTransport}

	if apiKey != "" {
		client.Transport = &bearerTokenTransport{
			base:  client.Transport,
			token: apiKey,
		}
	}

	return client
}

// bearerTokenTransport wraps an http.RoundTripper to add Authorization headers.
type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/infrallm/infrallm/ent"
	"github.com/infrallm/infrallm/pkg/audit"
	"github.com/infrallm/infrallm/pkg/crypto"
	testdb "github.com/infrallm/infrallm/test/database"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t)
}

func newTestEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()
	enc, err := crypto.NewEncryptor("test-master-key")
	require.NoError(t, err)
	return enc
}

func newTestAuditor(client *ent.Client) *audit.Logger {
	return audit.NewLogger(client)
}

func seedHost(t *testing.T, client *ent.Client, id, orgID string) *ent.Host {
	t.Helper()
	h, err := client.Host.Create().
		SetID(id).
		SetOrganizationID(orgID).
		SetName("web-" + id).
		SetHostname(id + ".example.com").
		Save(context.Background())
	require.NoError(t, err)
	return h
}

// fakePool records invalidations and serves scripted probe outcomes.
type fakePool struct {
	mu          sync.Mutex
	invalidated []string
	probeErr    error
}

func (p *fakePool) Invalidate(hostID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidated = append(p.invalidated, hostID)
}

func (p *fakePool) TestConnection(context.Context, string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.probeErr
}

func (p *fakePool) invalidations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.invalidated...)
}

// fakeToolCache records registry evictions.
type fakeToolCache struct {
	mu      sync.Mutex
	evicted []string
}

func (c *fakeToolCache) Evict(serverID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evicted = append(c.evicted, serverID)
}

func (c *fakeToolCache) evictions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.evicted...)
}

// Package database provides shared database helpers for tests.
package database

import (
	"context"
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // in-memory database for tests

	"github.com/infrallm/infrallm/ent"
)

// NewTestClient returns an Ent client backed by an in-memory SQLite
// database with the full schema created. The single-connection pool keeps
// the memory database alive for the duration of the test; the client is
// closed automatically when the test ends.
func NewTestClient(t *testing.T) *ent.Client {
	t.Helper()

	db, err := stdsql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() { _ = client.Close() })
	return client
}

package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/bookie/internal/db"
)

// NewTestDB opens a private in-memory SQLite DB and creates the bookmark schema.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.NewMemory()
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3", nil); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}

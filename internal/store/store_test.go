// ABOUTME: Shared test setup for store tests
// ABOUTME: Creates a temporary SQLite database per test

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, s *SQLiteStore, username, email string) *User {
	t.Helper()
	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$unused-hash-for-store-tests",
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

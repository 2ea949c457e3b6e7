// ABOUTME: Tests for user store operations
// ABOUTME: Covers CRUD, lookups, and unique constraint handling

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_Create(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	u := &User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$somehash",
	}

	err := s.CreateUser(ctx, u)
	require.NoError(t, err)
	require.NotEmpty(t, u.ID, "CreateUser should assign an ID")
	require.False(t, u.CreatedAt.IsZero())

	retrieved, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, "alice@example.com", retrieved.Email)
	assert.Equal(t, "$2a$10$somehash", retrieved.PasswordHash)
}

func TestUserStore_Create_DuplicateUsername(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := &User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "$2a$10$somehash",
	}
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	dup := &User{
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$somehash",
	}
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserStore_GetByUsernameAndEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice", "alice@example.com")

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserStore_Get_NotFound(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetUser(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_Exists(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice", "alice@example.com")

	exists, err := s.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.EmailExists(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

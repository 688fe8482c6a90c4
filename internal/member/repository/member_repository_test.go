package repository

import (
	"testing"
	"time"

	"chat_room_service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestMemberRepository_Create(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMemberRepository(store, fixedNow)

	alice, err := repo.Create("alice", "hash-a")
	require.NoError(t, err)
	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, "2025-03-01 09:00:00", alice.CreatedAt)

	bob, err := repo.Create("bob", "hash-b")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.ID, "ids come from next_id in sequence")
}

func TestMemberRepository_DuplicateUsername(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMemberRepository(store, fixedNow)

	_, err = repo.Create("alice", "hash")
	require.NoError(t, err)

	// 大小寫不同也算重複
	_, err = repo.Create("ALICE", "hash2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestMemberRepository_FindByUsername(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMemberRepository(store, fixedNow)

	_, err = repo.Create("Alice", "hash")
	require.NoError(t, err)

	found, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Username)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

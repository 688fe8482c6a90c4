package repository

import (
	"testing"

	"chat_room_service/internal/gallery/domain"
	"chat_room_service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemeRepository_AddThenAll(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMemeRepository(store)

	first := domain.Meme{Filename: "a.png", UploadedBy: "alice", UploadedAt: "2025-03-01 10:00:00", Tags: []string{"cat"}, RoomID: "general"}
	second := domain.Meme{Filename: "b.png", UploadedBy: "bob", UploadedAt: "2025-03-01 10:00:05", Tags: []string{"dog"}, TargetUser: "alice", IsPrivate: true}

	require.NoError(t, repo.Add(first))
	require.NoError(t, repo.Add(second))

	all, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, []domain.Meme{first, second}, all, "catalogue keeps insertion order")
}

func TestMemeRepository_EmptyCatalogue(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewMemeRepository(store)

	all, err := repo.All()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemeRepository_PersistsAcrossRestart(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	repo := NewMemeRepository(store)
	m := domain.Meme{Filename: "a.png", UploadedBy: "alice", UploadedAt: "2025-03-01 10:00:00", RoomID: "general"}
	require.NoError(t, repo.Add(m))

	reopened := NewMemeRepository(store)
	all, err := reopened.All()
	require.NoError(t, err)
	assert.Equal(t, []domain.Meme{m}, all)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Items  []string `json:"items"`
	NextID int      `json:"next_id"`
}

func TestFileStore_LoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// 文件不存在時, out 保持呼叫端的空預設值且不回錯誤
	doc := testDoc{Items: []string{}, NextID: 1}
	err = store.Load("users", &doc)

	assert.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.Equal(t, 1, doc.NextID)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	in := testDoc{Items: []string{"a", "b"}, NextID: 3}
	require.NoError(t, store.Save("users", in))

	var out testDoc
	require.NoError(t, store.Load("users", &out))
	assert.Equal(t, in, out)

	// 落地的是縮排 JSON 文檔
	raw, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\"next_id\": 3")
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("doc", testDoc{Items: []string{"a", "b", "c"}, NextID: 4}))
	require.NoError(t, store.Save("doc", testDoc{Items: []string{"z"}, NextID: 5}))

	var out testDoc
	require.NoError(t, store.Load("doc", &out))
	assert.Equal(t, []string{"z"}, out.Items, "save should fully replace the prior document")
}

func TestFileStore_CorruptDocumentIsIOFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json"), []byte("{not json"), 0644))

	var out testDoc
	err = store.Load("doc", &out)
	assert.ErrorIs(t, err, ErrIO)
}

func TestFileStore_NameCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("../escape", testDoc{NextID: 1}))

	_, statErr := os.Stat(filepath.Join(dir, "..", "escape.json"))
	assert.True(t, os.IsNotExist(statErr), "document must stay inside the data dir")
}

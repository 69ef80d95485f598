package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaheen/xaheen/internal/errors"
)

func TestStoreSaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	saved := &Template{
		ID:      "greeting",
		Name:    "Greeting",
		Content: "Hello {{name}}",
		Variables: []string{"name"},
	}
	require.NoError(t, store.Save(saved))

	// A fresh store must read the files back from disk.
	fresh := NewStore(dir)
	loaded, err := fresh.Load("greeting")
	require.NoError(t, err)

	assert.Equal(t, "greeting", loaded.ID)
	assert.Equal(t, "Greeting", loaded.Name)
	assert.Equal(t, "Hello {{name}}", loaded.Content)
	assert.Equal(t, []string{"name"}, loaded.Variables)
	assert.False(t, loaded.ModTime.IsZero())
}

func TestStoreLoadNotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreLoadSidecarOnly(t *testing.T) {
	dir := t.TempDir()

	meta := `{
  "id": "child",
  "parent": "base",
  "blocks": [{"name": "x", "content": "2"}]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "child.json"), []byte(meta), 0644))

	store := NewStore(dir)
	loaded, err := store.Load("child")
	require.NoError(t, err)

	assert.Equal(t, "base", loaded.Parent)
	require.Len(t, loaded.Blocks, 1)
	assert.Equal(t, "x", loaded.Blocks[0].Name)
	assert.Equal(t, "2", loaded.Blocks[0].Content)
	assert.Empty(t, loaded.Content)
	assert.False(t, loaded.ModTime.IsZero())
}

func TestStoreLoadInvalidMetadata(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.hbs"), []byte("ok"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	store := NewStore(dir)
	loaded, err := store.Load("bad")

	// A broken sidecar does not hide the source file.
	require.NoError(t, err)
	assert.Equal(t, "ok", loaded.Content)
}

func TestStoreRegister(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Register(&Template{ID: "mem", Content: "in memory"})

	loaded, err := store.Load("mem")
	require.NoError(t, err)
	assert.Equal(t, "in memory", loaded.Content)
}

func TestStoreLoadCachesInMemory(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(&Template{ID: "once", Content: "first"}))

	_, err := store.Load("once")
	require.NoError(t, err)

	// Removing the files must not affect subsequent loads.
	require.NoError(t, os.Remove(store.SourcePath("once")))
	require.NoError(t, os.Remove(store.MetadataPath("once")))

	loaded, err := store.Load("once")
	require.NoError(t, err)
	assert.Equal(t, "first", loaded.Content)

	_, err = store.Reload("once")
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(&Template{ID: "a", Content: "A"}))
	require.NoError(t, store.Save(&Template{ID: "b", Content: "B"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	ids, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStoreListMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"))

	ids, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStoreModTime(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(&Template{ID: "tpl", Content: "x"}))

	_, ok := store.ModTime("tpl")
	assert.True(t, ok)

	_, ok = store.ModTime("missing")
	assert.False(t, ok)
}

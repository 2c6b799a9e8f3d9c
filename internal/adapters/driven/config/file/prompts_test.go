package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

func TestPromptStore_LoadDefaults(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	for name := range defaultPrompts {
		prompt, err := store.Load(name)
		require.NoError(t, err, "prompt %q", name)
		assert.NotEmpty(t, prompt)
	}
}

func TestPromptStore_CreatesFilesLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// No I/O until the first Load.
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))

	_, err = store.Load(driven.PromptToolSelection)
	require.NoError(t, err)

	_, statErr = os.Stat(filepath.Join(dir, driven.PromptToolSelection+".txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, statErr)
}

func TestPromptStore_UserFileWins(t *testing.T) {
	dir := t.TempDir()
	custom := "Question: %s Context: %s answer tersely"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, driven.PromptDocumentAnswer+".txt"), []byte(custom+"\n"), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptDocumentAnswer)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("nonexistent_prompt")
	assert.Error(t, err)
}

func TestPromptStore_Reload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)

	// Edit the file on disk; the cached value persists until Reload.
	path := filepath.Join(dir, driven.PromptAnswerSystem+".txt")
	require.NoError(t, os.WriteFile(path, []byte("edited"), 0600))

	cached, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()
	fresh, err := store.Load(driven.PromptAnswerSystem)
	require.NoError(t, err)
	assert.Equal(t, "edited", fresh)
}

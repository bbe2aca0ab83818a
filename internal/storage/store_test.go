package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileDefaultsToZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))

	_, err := store.GetInt(HighScoreKey)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, LoadHighScore(store))
}

func TestFileStoreRoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")

	require.NoError(t, SaveHighScore(NewFileStore(path), 420))

	reopened := NewFileStore(path)
	assert.Equal(t, 420, LoadHighScore(reopened))
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, store.SetInt("other", 7))
	require.NoError(t, store.SetInt(HighScoreKey, 99))

	v, err := store.GetInt("other")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := NewFileStore(path)

	assert.Equal(t, 0, LoadHighScore(store))

	require.NoError(t, store.SetInt(HighScoreKey, 12))
	assert.Equal(t, 12, LoadHighScore(store))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, 0, LoadHighScore(store))

	require.NoError(t, SaveHighScore(store, 5))
	assert.Equal(t, 5, LoadHighScore(store))
	assert.Equal(t, 1, store.Writes)
}

func TestNilStore(t *testing.T) {
	assert.Equal(t, 0, LoadHighScore(nil))
	assert.NoError(t, SaveHighScore(nil, 10))
}

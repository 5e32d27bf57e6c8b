package watchlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")

	m, err := NewManager(path, []string{"btcusdt", "ETHUSDT"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, m.Symbols())

	// Seeding persists the state file immediately.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestAddRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	m, err := NewManager(path, []string{"BTCUSDT"})
	require.NoError(t, err)

	added, err := m.Add("solusdt")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"BTCUSDT", "SOLUSDT"}, m.Symbols())

	added, err = m.Add("SOLUSDT")
	require.NoError(t, err)
	assert.False(t, added, "duplicate add is a no-op")

	removed, err := m.Remove("BTCUSDT")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"SOLUSDT"}, m.Symbols())

	removed, err = m.Remove("DOGEUSDT")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	m, err := NewManager(path, []string{"BTCUSDT"})
	require.NoError(t, err)
	_, err = m.Add("ETHUSDT")
	require.NoError(t, err)

	// A fresh manager on the same file ignores defaults and loads the
	// persisted state.
	m2, err := NewManager(path, []string{"XRPUSDT"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, m2.Symbols())
}

func TestNewManager_CorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewManager(path, nil)
	assert.Error(t, err)
}

func TestSymbolsReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	m, err := NewManager(path, []string{"BTCUSDT"})
	require.NoError(t, err)

	got := m.Symbols()
	got[0] = "MUTATED"
	assert.Equal(t, []string{"BTCUSDT"}, m.Symbols())
}

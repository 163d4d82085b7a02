package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenwood/vectorchess/internal/engine"
)

func TestSaveGamePathUnderConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := SaveGamePath()
	require.NoError(t, err)

	assert.Contains(t, path, ".vectorchess")
	assert.True(t, strings.HasSuffix(path, "savegame.fen"))
}

func TestSaveGameThenLoadGameRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	zobrist := engine.NewZobristTable()

	board := engine.NewBoard()
	require.NoError(t, SaveGame(&board))
	assert.True(t, SaveGameExists())

	loaded, err := LoadGame(zobrist)
	require.NoError(t, err)
	assert.Equal(t, board.FEN(), loaded.FEN())
}

func TestDeleteSaveGameIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, DeleteSaveGame())

	board := engine.NewBoard()
	require.NoError(t, SaveGame(&board))
	require.NoError(t, DeleteSaveGame())
	assert.False(t, SaveGameExists())

	require.NoError(t, DeleteSaveGame())
}

package config

import (
	"fmt"
	"os"

	"github.com/havenwood/vectorchess/internal/engine"
)

// SaveGame writes board's position to ~/.vectorchess/savegame.fen, creating
// the config directory if needed.
func SaveGame(board *engine.Board) error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("config: failed to get save game path: %w", err)
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("config: failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("config: failed to create config directory: %w", err)
	}

	if err := os.WriteFile(savePath, []byte(board.FEN()), 0644); err != nil {
		return fmt.Errorf("config: failed to write save game file: %w", err)
	}

	return nil
}

// LoadGame reads ~/.vectorchess/savegame.fen and parses it into a Board.
// zobrist is used to recompute the loaded position's Zobrist hash.
func LoadGame(zobrist *engine.ZobristTable) (engine.Board, error) {
	savePath, err := SaveGamePath()
	if err != nil {
		return engine.Board{}, fmt.Errorf("config: failed to get save game path: %w", err)
	}

	data, err := os.ReadFile(savePath)
	if err != nil {
		return engine.Board{}, fmt.Errorf("config: failed to read save game file: %w", err)
	}

	board, err := engine.ParseFEN(string(data), zobrist)
	if err != nil {
		return engine.Board{}, fmt.Errorf("config: failed to parse saved game: %w", err)
	}

	return board, nil
}

// DeleteSaveGame removes the saved game file. It is not an error for the
// file to already be absent.
func DeleteSaveGame() error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("config: failed to get save game path: %w", err)
	}

	if _, err := os.Stat(savePath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(savePath); err != nil {
		return fmt.Errorf("config: failed to delete save game file: %w", err)
	}

	return nil
}

// SaveGameExists reports whether a saved game file is present.
func SaveGameExists() bool {
	savePath, err := SaveGamePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(savePath)
	return err == nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirName is the name of vectorchess's configuration directory, relative to
// the user's home directory.
const dirName = ".vectorchess"

// GetConfigDir returns ~/.vectorchess, or an error if the home directory
// cannot be determined.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// getConfigFilePath returns the full path to the TOML configuration file.
func getConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// SaveGamePath returns the full path to the save game file. Exported for
// testing purposes.
func SaveGamePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "savegame.fen"), nil
}

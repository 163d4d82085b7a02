// Package config provides configuration and position persistence for
// vectorchess.
//
// Configuration lives at ~/.vectorchess/config.toml in TOML format; the
// current position (not search analysis - the core engine persists no
// analysis beyond a single search call) lives at ~/.vectorchess/savegame.fen
// as the reduced FEN-like string engine.Board.FEN produces.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds search-related defaults.
type EngineConfig struct {
	// SearchDepth is a negamax depth, 1-20. It is stored and loaded with
	// the rest of the file, but the presenter does not pass it to the bots:
	// Medium and Hard search at their own fixed depths.
	SearchDepth int `toml:"search_depth"`
	// Workers is the default root-parallel worker count; 0 means
	// runtime.NumCPU().
	Workers int `toml:"workers"`
	// Difficulty is the default bot difficulty: "easy", "medium", or "hard".
	Difficulty string `toml:"difficulty"`
}

// DisplayConfig holds presenter rendering options.
type DisplayConfig struct {
	// UseUnicode selects Unicode chess glyphs (♔♕) over ASCII letters.
	UseUnicode bool `toml:"use_unicode"`
	// ShowCoordinates shows file/rank labels (a-h, 1-8).
	ShowCoordinates bool `toml:"show_coordinates"`
	// UseColors colors piece glyphs by side.
	UseColors bool `toml:"use_colors"`
}

// Config is the full TOML configuration file structure.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Display DisplayConfig `toml:"display"`
}

// DefaultConfig returns the configuration used when no file exists or it
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			SearchDepth: 3,
			Workers:     0,
			Difficulty:  "medium",
		},
		Display: DisplayConfig{
			UseUnicode:      true,
			ShowCoordinates: true,
			UseColors:       true,
		},
	}
}

// LoadConfig reads ~/.vectorchess/config.toml. It never returns an error -
// any failure to locate, read, or parse the file falls back silently to
// DefaultConfig.
func LoadConfig() Config {
	path, err := getConfigFilePath()
	if err != nil {
		return DefaultConfig()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// SaveConfig writes cfg to ~/.vectorchess/config.toml, creating the
// directory if needed.
func SaveConfig(cfg Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("config: failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("config: failed to create config directory: %w", err)
	}

	path, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("config: failed to get config file path: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("config: failed to encode config to TOML: %w", err)
	}

	return nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsSane(t *testing.T) {
	cfg := DefaultConfig()

	assert.GreaterOrEqual(t, cfg.Engine.SearchDepth, 1)
	assert.LessOrEqual(t, cfg.Engine.SearchDepth, 20)
	assert.Equal(t, "medium", cfg.Engine.Difficulty)
}

func TestLoadConfigFallsBackWithoutError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadConfigRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := Config{
		Engine: EngineConfig{
			SearchDepth: 5,
			Workers:     2,
			Difficulty:  "hard",
		},
		Display: DisplayConfig{
			UseUnicode:      false,
			ShowCoordinates: false,
			UseColors:       true,
		},
	}

	require.NoError(t, SaveConfig(want))

	got := LoadConfig()
	assert.Equal(t, want, got)
}

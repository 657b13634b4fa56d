package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 3, cfg.BoardRows)
	require.Equal(t, 5, cfg.BoardCols)
	require.Equal(t, 5, cfg.HandSize)
	require.Empty(t, cfg.DeckFile)
	require.Equal(t, "augmented", cfg.DeckVariant)
	require.Zero(t, cfg.ShuffleSeed)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("BOARD_ROWS", "5")
	t.Setenv("BOARD_COLS", "7")
	t.Setenv("HAND_SIZE", "4")
	t.Setenv("DECK_FILE", "/tmp/custom.deck")
	t.Setenv("DECK_VARIANT", "base")
	t.Setenv("SHUFFLE_SEED", "42")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 5, cfg.BoardRows)
	require.Equal(t, 7, cfg.BoardCols)
	require.Equal(t, 4, cfg.HandSize)
	require.Equal(t, "/tmp/custom.deck", cfg.DeckFile)
	require.Equal(t, "base", cfg.DeckVariant)
	require.Equal(t, uint64(42), cfg.ShuffleSeed)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("BOARD_ROWS", "many")
	t.Setenv("SHUFFLE_SEED", "-1")

	cfg := Load()

	require.Equal(t, 3, cfg.BoardRows, "unparseable int falls back to the default")
	require.Zero(t, cfg.ShuffleSeed, "negative seed falls back to the default")
}

package config

import (
	"os"
	"strconv"
)

// Config carries every runtime knob. All fields come from the environment
// with workable defaults, so a bare `go run` starts a playable server.
type Config struct {
	// HTTPAddr is the listen address for the REST and websocket API.
	HTTPAddr string

	// BoardRows and BoardCols size every new game's board. Columns must be
	// odd and at least 3; rows at least 1.
	BoardRows int
	BoardCols int

	// HandSize is the number of cards dealt to each player at game start.
	HandSize int

	// DeckFile points at a deck list on disk. Empty means the embedded
	// starter deck for the configured variant.
	DeckFile string

	// DeckVariant selects the influence alphabet: "base" or "augmented".
	DeckVariant string

	// ShuffleSeed fixes every room's deck order when nonzero. Zero draws a
	// fresh seed per room.
	ShuffleSeed uint64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return def
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		BoardRows:   getenvInt("BOARD_ROWS", 3),
		BoardCols:   getenvInt("BOARD_COLS", 5),
		HandSize:    getenvInt("HAND_SIZE", 5),
		DeckFile:    getenv("DECK_FILE", ""),
		DeckVariant: getenv("DECK_VARIANT", "augmented"),
		ShuffleSeed: getenvUint64("SHUFFLE_SEED", 0),
	}
}

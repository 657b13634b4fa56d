package game

import "github.com/pkg/errors"

var (
	ErrNotStarted       = errors.New("game has not started")
	ErrGameOver         = errors.New("game is already over")
	ErrGameNotOver      = errors.New("game is not over yet")
	ErrOutOfBounds      = errors.New("coordinates are off the board")
	ErrInvalidCardIndex = errors.New("card index out of range")
	ErrInvalidAccess    = errors.New("target cell cannot pay the card cost")
	ErrInvalidOwner     = errors.New("target pawns belong to the opponent")
	ErrConfiguration    = errors.New("invalid game configuration")
)

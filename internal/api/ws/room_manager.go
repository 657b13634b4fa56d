package ws

import "pawns-board/internal/room"

// RoomManager is the slice of the room manager the hub drives: relaying
// subscriber actions into games and reading state back out.
type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	PlaceCard(roomCode, playerID string, cardIndex, row, col int) (room.Snapshot, error)
	Pass(roomCode, playerID string) (room.Snapshot, error)
}

package http

// CreateRoomRequest is the payload for POST /rooms.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomRequest is the payload for POST /rooms/join.
type JoinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// MoveRequest is the payload for POST /rooms/move. CardIndex points into the
// mover's current hand; row and col are zero-based board coordinates.
type MoveRequest struct {
	RoomCode  string `json:"room_code"`
	PlayerID  string `json:"player_id"`
	CardIndex int    `json:"card_index"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

// PassRequest is the payload for POST /rooms/pass.
type PassRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

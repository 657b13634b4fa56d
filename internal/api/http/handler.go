package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawns-board/internal/game"
	"pawns-board/internal/room"
)

// statusFor maps service and engine errors onto HTTP statuses. Unrecognized
// errors stay 500 so they surface rather than masquerade as client faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrUnknownPlayer):
		return http.StatusForbidden
	case errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrNotStarted),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrGameNotOver),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrInvalidCardIndex),
		errors.Is(err, game.ErrInvalidAccess),
		errors.Is(err, game.ErrInvalidOwner),
		errors.Is(err, game.ErrConfiguration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create a room
// @Description Open a new room with the caller seated as red. The returned playerId authenticates later moves.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Host info"
// @Success 201 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_name required"})
			return
		}
		rx, err := rm.CreateRoom(req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"roomCode": rx.Code,
			"playerId": rx.Red.ID,
			"room":     rx.Snapshot(),
		})
	}
}

// @Summary Join a room
// @Description Take the blue seat in a waiting room. Joining deals both hands and starts the game with red to move.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body JoinRoomRequest true "Guest info"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code and player_name required"})
			return
		}
		rx, guest, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"playerId": guest.ID,
			"room":     rx.Snapshot(),
		})
	}
}

// @Summary Get room state
// @Description Full room snapshot: seats, board, hands, scores and standings
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			fail(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx.Snapshot()})
	}
}

// @Summary Place a card
// @Description Play a hand card onto the board cell. The cell must hold the mover's own pawns, at least cost many.
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := rm.PlaceCard(req.RoomCode, req.PlayerID, req.CardIndex, req.Row, req.Col)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}

// @Summary Pass the turn
// @Description Skip the mover's turn. Two consecutive passes end the game.
// @Tags Game
// @Accept json
// @Produce json
// @Param request body PassRequest true "Pass data"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/pass [post]
func PassHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PassRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := rm.Pass(req.RoomCode, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}

// @Summary Row standings
// @Description Per-row scores for both players and the row leader
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/rank [get]
func RankHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := rm.Rank(c.Param("code"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rank": rows})
	}
}

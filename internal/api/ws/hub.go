package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub tracks live websocket subscribers per room and relays their actions
// into the room manager. It implements room.Broadcaster.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]map[*websocket.Conn]struct{}
	manager RoomManager
}

func NewHub(manager RoomManager) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*websocket.Conn]struct{}),
		manager: manager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// HandleWS upgrades the connection, subscribes it to the room named by the
// room_code query parameter and serves client actions until the peer drops.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rx, ok := h.manager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	log.Info().Str("room", roomCode).Msg("websocket subscribed")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
		log.Info().Str("room", roomCode).Msg("websocket closed")
	}()

	// New subscribers get the current state straight away.
	h.send(conn, "state", gin.H{"room": rx.Snapshot()})

	for {
		var msg struct {
			Action string      `json:"action"`
			Data   interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Warn().Err(err).Str("room", roomCode).Msg("websocket read failed")
			break
		}

		switch msg.Action {
		case "place":
			h.handlePlace(conn, roomCode, msg.Data)
		case "pass":
			h.handlePass(conn, roomCode, msg.Data)
		case "state":
			if rx, ok := h.manager.Get(roomCode); ok {
				h.send(conn, "state", gin.H{"room": rx.Snapshot()})
			}
		default:
			h.send(conn, "error", gin.H{"reason": "unknown action " + msg.Action})
		}
	}
}

// Broadcast implements room.Broadcaster: every subscriber of the room gets
// {action, data}. Connections that fail to take the write are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	message := gin.H{"action": action, "data": data}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Warn().Err(err).Str("room", roomCode).Msg("dropping dead websocket")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handlePlace(conn *websocket.Conn, roomCode string, data interface{}) {
	var move struct {
		PlayerID  string `json:"player_id"`
		CardIndex int    `json:"card_index"`
		Row       int    `json:"row"`
		Col       int    `json:"col"`
	}
	if !decodeInto(data, &move) {
		h.send(conn, "error", gin.H{"reason": "malformed place payload"})
		return
	}
	if _, err := h.manager.PlaceCard(roomCode, move.PlayerID, move.CardIndex, move.Row, move.Col); err != nil {
		h.send(conn, "error", gin.H{"reason": err.Error()})
	}
}

func (h *Hub) handlePass(conn *websocket.Conn, roomCode string, data interface{}) {
	var pass struct {
		PlayerID string `json:"player_id"`
	}
	if !decodeInto(data, &pass) {
		h.send(conn, "error", gin.H{"reason": "malformed pass payload"})
		return
	}
	if _, err := h.manager.Pass(roomCode, pass.PlayerID); err != nil {
		h.send(conn, "error", gin.H{"reason": err.Error()})
	}
}

// send writes one message to a single connection under the hub lock, so it
// never interleaves with a broadcast.
func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(gin.H{"action": action, "data": data}); err != nil {
		log.Warn().Err(err).Msg("websocket write failed")
	}
}

// decodeInto reshapes an already-decoded JSON value into a message struct.
func decodeInto(data interface{}, out interface{}) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

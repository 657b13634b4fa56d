package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pawns-board/internal/api/ws"
	"pawns-board/internal/config"
	"pawns-board/internal/room"
)

// SetupRouter wires every HTTP surface: room REST endpoints, the websocket
// upgrade and the swagger UI.
func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live room updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.POST("/rooms/join", JoinRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/move", MoveHandler(rm))
	r.POST("/rooms/pass", PassHandler(rm))
	r.GET("/rooms/:code/rank", RankHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", GetConfigHandler(cfg))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

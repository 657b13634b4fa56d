package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawns-board/internal/config"
)

// @Summary Get game configuration
// @Description Board dimensions, hand size and deck variant every new room uses
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"boardRows":   cfg.BoardRows,
			"boardCols":   cfg.BoardCols,
			"handSize":    cfg.HandSize,
			"deckVariant": cfg.DeckVariant,
		})
	}
}

package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "pawns-board/internal/api/http"
	"pawns-board/internal/api/ws"
	"pawns-board/internal/config"
	"pawns-board/internal/deck"
	"pawns-board/internal/game"
	"pawns-board/internal/room"
	"pawns-board/internal/store"

	// swagger packages
	_ "pawns-board/docs"
)

// @title Pawns Board API
// @version 1.0
// @description REST and websocket API for the Pawns Board two-player card game (Go + Gin)
// @BasePath /
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	cards, variant, err := loadCards(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading deck")
	}
	log.Info().Int("cards", len(cards)).Str("variant", string(variant)).Msg("deck loaded")

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, variant, cards)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	r := httpapi.SetupRouter(rm, hub, cfg)

	// Root redirect to swagger
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// loadCards resolves the card pool: an explicit deck file when configured,
// otherwise the embedded starter deck for the variant.
func loadCards(cfg config.Config) ([]game.Card, deck.Variant, error) {
	variant, err := deck.ParseVariant(cfg.DeckVariant)
	if err != nil {
		return nil, "", err
	}
	if cfg.DeckFile != "" {
		cards, err := deck.ReadFile(cfg.DeckFile, variant)
		return cards, variant, err
	}
	cards, err := deck.Starter(variant)
	return cards, variant, err
}

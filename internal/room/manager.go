package room

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pawns-board/internal/config"
	"pawns-board/internal/deck"
	"pawns-board/internal/game"
)

// Store persists rooms by join code.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

var (
	// ErrRoomNotFound means no room carries the given code.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomFull means both seats are already taken.
	ErrRoomFull = errors.New("room is full")
	// ErrUnknownPlayer means the player ID holds no seat in the room.
	ErrUnknownPlayer = errors.New("player is not seated in this room")
	// ErrNotYourTurn means the seated player moved out of turn.
	ErrNotYourTurn = errors.New("not your turn")
)

// Manager owns room lifecycle: creation, seating, and relaying moves into
// each room's engine. Every room draws its decks from one shared card pool,
// shuffled per room seed.
type Manager struct {
	store   Store
	cfg     config.Config
	variant deck.Variant
	cards   []game.Card
	hub     Broadcaster
}

// NewManager builds a manager over the given store and card pool. Events go
// nowhere until SetBroadcaster wires a hub in.
func NewManager(store Store, cfg config.Config, variant deck.Variant, cards []game.Card) *Manager {
	return &Manager{store: store, cfg: cfg, variant: variant, cards: cards, hub: NopBroadcaster{}}
}

// SetBroadcaster attaches the live update fan-out. Wire it before serving
// traffic; rooms capture the hub when their game starts.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	if b != nil {
		m.hub = b
	}
}

// CreateRoom opens a new room with the host in the red seat.
func (m *Manager) CreateRoom(hostName string) (*Room, error) {
	if hostName == "" {
		hostName = "Player"
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		Red:       &Player{ID: uuid.NewString(), Name: hostName},
		Status:    StatusWaiting,
		Variant:   m.variant,
		Seed:      m.roomSeed(),
		CreatedAt: time.Now(),
		engine:    game.NewEngine(),
	}
	m.store.SaveRoom(r)
	log.Info().Str("room", r.Code).Str("host", hostName).Msg("room created")
	return r, nil
}

// Join seats the second player in blue and starts the game: both decks are
// shuffled from the shared pool, hands dealt, red to move.
func (m *Manager) Join(code, name string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, errors.WithMessagef(ErrRoomNotFound, "code %s", code)
	}
	if name == "" {
		name = "Player"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Blue != nil {
		return nil, nil, ErrRoomFull
	}
	p := &Player{ID: uuid.NewString(), Name: name}
	r.Blue = p

	redDeck := deck.Shuffled(m.cards, r.Seed)
	blueDeck := deck.Shuffled(m.cards, r.Seed+1)
	if err := r.engine.StartGame(m.cfg.BoardRows, m.cfg.BoardCols, redDeck, blueDeck, m.cfg.HandSize); err != nil {
		r.Blue = nil
		return nil, nil, err
	}
	r.engine.AddListener(&broadcastListener{room: r, hub: m.hub})
	r.Status = StatusPlaying
	m.store.SaveRoom(r)

	m.hub.Broadcast(r.Code, "game_started", gin.H{"room": r.snapshotLocked()})
	log.Info().Str("room", r.Code).Str("guest", name).Msg("game started")
	return r, p, nil
}

// Get looks a room up by code.
func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// PlaceCard plays the given hand card onto (row, col) for the seated player
// and broadcasts the resulting state.
func (m *Manager) PlaceCard(code, playerID string, cardIndex, row, col int) (Snapshot, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return Snapshot{}, errors.WithMessagef(ErrRoomNotFound, "code %s", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seat, err := r.turnOf(playerID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := r.engine.PlaceCard(cardIndex, row, col); err != nil {
		return Snapshot{}, err
	}
	m.store.SaveRoom(r)

	snap := r.snapshotLocked()
	m.hub.Broadcast(r.Code, "state", gin.H{"room": snap})
	log.Info().
		Str("room", r.Code).
		Str("player", seat.String()).
		Int("card", cardIndex).
		Int("row", row).
		Int("col", col).
		Msg("card placed")
	return snap, nil
}

// Pass skips the seated player's turn and broadcasts the resulting state.
// Two passes in a row end the game.
func (m *Manager) Pass(code, playerID string) (Snapshot, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return Snapshot{}, errors.WithMessagef(ErrRoomNotFound, "code %s", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seat, err := r.turnOf(playerID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := r.engine.PassTurn(); err != nil {
		return Snapshot{}, err
	}
	m.store.SaveRoom(r)

	snap := r.snapshotLocked()
	m.hub.Broadcast(r.Code, "state", gin.H{"room": snap})
	log.Info().Str("room", r.Code).Str("player", seat.String()).Msg("turn passed")
	return snap, nil
}

// Rank reports the per-row standings for a started room.
func (m *Manager) Rank(code string) ([]RankRow, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, errors.WithMessagef(ErrRoomNotFound, "code %s", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows := rowStandings(r.engine)
	if rows == nil {
		return nil, game.ErrNotStarted
	}
	return rows, nil
}

// turnOf resolves the seat behind playerID and checks it holds the move.
// Callers must hold r.mu.
func (r *Room) turnOf(playerID string) (game.Player, error) {
	seat, ok := r.seat(playerID)
	if !ok {
		return game.NoPlayer, ErrUnknownPlayer
	}
	cur, err := r.engine.CurrentPlayer()
	if err != nil {
		return game.NoPlayer, err
	}
	if cur != seat {
		return game.NoPlayer, errors.WithMessagef(ErrNotYourTurn, "it is %s's move", cur)
	}
	return seat, nil
}

func (m *Manager) roomSeed() uint64 {
	if m.cfg.ShuffleSeed != 0 {
		return m.cfg.ShuffleSeed
	}
	return uint64(time.Now().UnixNano())
}

// broadcastListener forwards engine events to the hub and keeps the room
// status in step with the engine. It runs under the room mutex.
type broadcastListener struct {
	room *Room
	hub  Broadcaster
}

func (l *broadcastListener) TurnChanged(next game.Player) {
	l.hub.Broadcast(l.room.Code, "turn_changed", gin.H{"next": next.String()})
}

func (l *broadcastListener) GameEnded(winner game.Player, redScore, blueScore int) {
	l.room.Status = StatusOver
	l.hub.Broadcast(l.room.Code, "game_over", gin.H{
		"winner": winner.String(),
		"red":    redScore,
		"blue":   blueScore,
	})
	log.Info().
		Str("room", l.room.Code).
		Str("winner", winner.String()).
		Int("red", redScore).
		Int("blue", blueScore).
		Msg("game over")
}

func (l *broadcastListener) MoveRejected(reason string) {
	l.hub.Broadcast(l.room.Code, "invalid_move", gin.H{"reason": reason})
}

// Join codes skip easily-confused letters.
const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

package room

import (
	"sync"
	"time"

	"pawns-board/internal/deck"
	"pawns-board/internal/game"
)

// Status tracks a room through its life: waiting for the second seat,
// playing, or over.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusOver    Status = "over"
)

// Player is one seated participant.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room binds two seats to one engine. The red seat is the room creator and
// always moves first. The mutex serializes every mutation and snapshot; the
// engine itself is single-threaded by contract.
type Room struct {
	ID        string
	Code      string
	Red       *Player
	Blue      *Player
	Status    Status
	Variant   deck.Variant
	Seed      uint64
	CreatedAt time.Time

	engine *game.Engine

	mu sync.Mutex
}

// seat maps a player ID onto the side they hold.
func (r *Room) seat(playerID string) (game.Player, bool) {
	switch {
	case r.Red != nil && r.Red.ID == playerID:
		return game.Red, true
	case r.Blue != nil && r.Blue.ID == playerID:
		return game.Blue, true
	default:
		return game.NoPlayer, false
	}
}

// CardView is the wire form of a card; the pattern ships as five 5-letter
// rows in the deck-file alphabet.
type CardView struct {
	Name    string   `json:"name"`
	Cost    int      `json:"cost"`
	Value   int      `json:"value"`
	Pattern []string `json:"pattern"`
}

func newCardView(c game.Card) CardView {
	return CardView{Name: c.Name, Cost: c.Cost, Value: c.Value, Pattern: c.Pattern.Lines()}
}

// CellView is the wire form of one board cell.
type CellView struct {
	Content   string    `json:"content"`
	Owner     string    `json:"owner,omitempty"`
	Pawns     int       `json:"pawns,omitempty"`
	Card      *CardView `json:"card,omitempty"`
	Modifier  int       `json:"modifier,omitempty"`
	Effective int       `json:"effective,omitempty"`
}

// RankRow is one row's standing: both scores and who leads it.
type RankRow struct {
	Row    int    `json:"row"`
	Red    int    `json:"red"`
	Blue   int    `json:"blue"`
	Leader string `json:"leader"`
}

// Snapshot is the full wire state of a room. Board, hands and scores are
// omitted while the room is still waiting for its second player.
type Snapshot struct {
	ID        string                `json:"id"`
	Code      string                `json:"code"`
	Status    Status                `json:"status"`
	Variant   deck.Variant          `json:"variant"`
	Red       *Player               `json:"red,omitempty"`
	Blue      *Player               `json:"blue,omitempty"`
	Current   string                `json:"current,omitempty"`
	Rows      int                   `json:"rows,omitempty"`
	Cols      int                   `json:"cols,omitempty"`
	Board     [][]CellView          `json:"board,omitempty"`
	Hands     map[string][]CardView `json:"hands,omitempty"`
	DeckSizes map[string]int        `json:"deckSizes,omitempty"`
	RowScores []RankRow             `json:"rowScores,omitempty"`
	TotalRed  int                   `json:"totalRed"`
	TotalBlue int                   `json:"totalBlue"`
	Over      bool                  `json:"over"`
	Winner    string                `json:"winner,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
}

// Snapshot returns the room's current wire state.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:        r.ID,
		Code:      r.Code,
		Status:    r.Status,
		Variant:   r.Variant,
		Red:       r.Red,
		Blue:      r.Blue,
		CreatedAt: r.CreatedAt,
	}
	rows, cols, err := r.engine.Dimensions()
	if err != nil {
		return s
	}
	s.Rows, s.Cols = rows, cols

	s.Board = make([][]CellView, rows)
	for row := 0; row < rows; row++ {
		s.Board[row] = make([]CellView, cols)
		for col := 0; col < cols; col++ {
			cell, err := r.engine.CellAt(row, col)
			if err != nil {
				continue
			}
			cv := CellView{
				Content:   cell.Content.String(),
				Modifier:  cell.Modifier,
				Effective: cell.EffectiveValue(),
			}
			switch cell.Content {
			case game.CellPawns:
				cv.Owner = cell.Owner.String()
				cv.Pawns = cell.Pawns
			case game.CellCard:
				cv.Owner = cell.Owner.String()
				card := newCardView(cell.Card)
				cv.Card = &card
			}
			s.Board[row][col] = cv
		}
	}

	s.Hands = map[string][]CardView{}
	s.DeckSizes = map[string]int{}
	for _, p := range []game.Player{game.Red, game.Blue} {
		hand, err := r.engine.Hand(p)
		if err != nil {
			continue
		}
		views := make([]CardView, len(hand))
		for i, c := range hand {
			views[i] = newCardView(c)
		}
		s.Hands[p.String()] = views
		if n, err := r.engine.DeckSize(p); err == nil {
			s.DeckSizes[p.String()] = n
		}
	}

	s.RowScores = rowStandings(r.engine)
	if red, blue, err := r.engine.TotalScore(); err == nil {
		s.TotalRed, s.TotalBlue = red, blue
	}

	if over, err := r.engine.IsOver(); err == nil && over {
		s.Over = true
		if w, err := r.engine.Winner(); err == nil {
			s.Winner = w.String()
		}
		return s
	}
	if cur, err := r.engine.CurrentPlayer(); err == nil {
		s.Current = cur.String()
	}
	return s
}

// rowStandings computes per-row scores and leaders, nil before the game
// starts.
func rowStandings(e *game.Engine) []RankRow {
	rows, _, err := e.Dimensions()
	if err != nil {
		return nil
	}
	out := make([]RankRow, 0, rows)
	for row := 0; row < rows; row++ {
		red, blue, err := e.RowScore(row)
		if err != nil {
			continue
		}
		leader := game.NoPlayer
		switch {
		case red > blue:
			leader = game.Red
		case blue > red:
			leader = game.Blue
		}
		out = append(out, RankRow{Row: row, Red: red, Blue: blue, Leader: leader.String()})
	}
	return out
}

package game

import "github.com/pkg/errors"

// Engine drives a single match. It owns the board, both hands and both draw
// piles, and is their only writer; every exported query returns copies.
//
// The engine is deliberately single-threaded: operations run to completion
// and callers serialize access themselves. Copy is the one tool for
// exploring moves without touching the live game.
type Engine struct {
	board *Board

	redHand  []Card
	blueHand []Card
	redDeck  []Card
	blueDeck []Card

	current Player
	passes  int
	started bool
	over    bool
	winner  Player

	listeners []Listener
}

// NewEngine returns an engine awaiting StartGame.
func NewEngine() *Engine {
	return &Engine{}
}

// StartGame validates the setup, deals handSize cards to each player from
// the front of their deck, seeds one pawn per row in each home column and
// hands the first turn to Red. Each deck must hold at least three times the
// hand size so a game cannot start card-starved.
func (e *Engine) StartGame(rows, cols int, redDeck, blueDeck []Card, handSize int) error {
	if e.started {
		return errors.WithMessage(ErrConfiguration, "game already started")
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return err
	}
	if handSize < 1 {
		return errors.WithMessagef(ErrConfiguration, "hand size %d, want at least 1", handSize)
	}
	if len(redDeck) < 3*handSize || len(blueDeck) < 3*handSize {
		return errors.WithMessagef(ErrConfiguration,
			"deck sizes %d and %d too small for hand size %d, want at least %d",
			len(redDeck), len(blueDeck), handSize, 3*handSize)
	}
	for i, c := range redDeck {
		if err := c.validate(); err != nil {
			return errors.WithMessagef(err, "red deck card %d", i)
		}
	}
	for i, c := range blueDeck {
		if err := c.validate(); err != nil {
			return errors.WithMessagef(err, "blue deck card %d", i)
		}
	}

	e.board = board
	e.board.seedHomePawns()
	e.redDeck = append([]Card(nil), redDeck...)
	e.blueDeck = append([]Card(nil), blueDeck...)
	e.redHand = append([]Card(nil), e.redDeck[:handSize]...)
	e.blueHand = append([]Card(nil), e.blueDeck[:handSize]...)
	e.redDeck = e.redDeck[handSize:]
	e.blueDeck = e.blueDeck[handSize:]
	e.current = Red
	e.passes = 0
	e.started = true
	return nil
}

// PlaceCard plays the current player's hand card at cardIndex onto (row,col).
// The target must hold the current player's own pawns, at least cost many.
// Validation runs before any mutation, so a failed placement leaves the game
// untouched. On success the cell flips to the card, the card's influence is
// applied, the turn advances and the new current player draws one card if
// their deck is non-empty.
func (e *Engine) PlaceCard(cardIndex, row, col int) error {
	if err := e.inProgress(); err != nil {
		return err
	}
	hand := e.handOf(e.current)
	if cardIndex < 0 || cardIndex >= len(*hand) {
		return e.rejectMove(errors.WithMessagef(ErrInvalidCardIndex, "index %d with %d cards in hand", cardIndex, len(*hand)))
	}
	if !e.board.inBounds(row, col) {
		return e.rejectMove(errors.WithMessagef(ErrOutOfBounds, "cell (%d,%d) on %dx%d board", row, col, e.board.rows, e.board.cols))
	}
	card := (*hand)[cardIndex]
	cell := e.board.cellRef(row, col)
	if cell.Content != CellPawns || cell.Pawns < card.Cost {
		return e.rejectMove(errors.WithMessagef(ErrInvalidAccess, "cell (%d,%d) cannot pay cost %d", row, col, card.Cost))
	}
	if cell.Owner != e.current {
		return e.rejectMove(errors.WithMessagef(ErrInvalidOwner, "pawns at (%d,%d) belong to %s", row, col, cell.Owner))
	}

	*hand = append((*hand)[:cardIndex], (*hand)[cardIndex+1:]...)
	cell.Content = CellCard
	cell.Owner = e.current
	cell.Pawns = 0
	cell.Card = card
	applyInfluence(e.board, card, row, col, e.current)

	e.passes = 0
	e.current = e.current.Opponent()
	e.drawOne(e.current)
	e.notifyTurnChanged(e.current)
	return nil
}

// PassTurn skips the current player's move. The second consecutive pass ends
// the game.
func (e *Engine) PassTurn() error {
	if err := e.inProgress(); err != nil {
		return err
	}
	e.passes++
	if e.passes >= 2 {
		e.finish()
		return nil
	}
	e.current = e.current.Opponent()
	e.notifyTurnChanged(e.current)
	return nil
}

// AddListener registers l for engine events. Listeners are invoked
// synchronously and in registration order.
func (e *Engine) AddListener(l Listener) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// Copy returns a deep, independent snapshot for speculative simulation.
// Listeners are not carried over.
func (e *Engine) Copy() *Engine {
	cp := &Engine{
		current: e.current,
		passes:  e.passes,
		started: e.started,
		over:    e.over,
		winner:  e.winner,

		redHand:  append([]Card(nil), e.redHand...),
		blueHand: append([]Card(nil), e.blueHand...),
		redDeck:  append([]Card(nil), e.redDeck...),
		blueDeck: append([]Card(nil), e.blueDeck...),
	}
	if e.board != nil {
		cp.board = e.board.clone()
	}
	return cp
}

// CurrentPlayer returns whose turn it is.
func (e *Engine) CurrentPlayer() (Player, error) {
	if !e.started {
		return NoPlayer, ErrNotStarted
	}
	return e.current, nil
}

// Dimensions returns the board size.
func (e *Engine) Dimensions() (rows, cols int, err error) {
	if !e.started {
		return 0, 0, ErrNotStarted
	}
	return e.board.rows, e.board.cols, nil
}

// CellAt returns a copy of the cell at (row,col).
func (e *Engine) CellAt(row, col int) (Cell, error) {
	if !e.started {
		return Cell{}, ErrNotStarted
	}
	return e.board.CellAt(row, col)
}

// ContentAt returns what the cell at (row,col) holds.
func (e *Engine) ContentAt(row, col int) (CellContent, error) {
	cell, err := e.CellAt(row, col)
	return cell.Content, err
}

// OwnerAt returns who owns the cell at (row,col), NoPlayer for empty cells.
func (e *Engine) OwnerAt(row, col int) (Player, error) {
	cell, err := e.CellAt(row, col)
	return cell.Owner, err
}

// PawnCountAt returns the pawn count at (row,col), zero unless the cell
// holds pawns.
func (e *Engine) PawnCountAt(row, col int) (int, error) {
	cell, err := e.CellAt(row, col)
	return cell.Pawns, err
}

// CardAt returns the card at (row,col), the zero Card if none is placed
// there.
func (e *Engine) CardAt(row, col int) (Card, error) {
	cell, err := e.CellAt(row, col)
	return cell.Card, err
}

// ModifierAt returns the accumulated value modifier at (row,col).
func (e *Engine) ModifierAt(row, col int) (int, error) {
	cell, err := e.CellAt(row, col)
	return cell.Modifier, err
}

// Hand returns a copy of p's current hand, in selection order.
func (e *Engine) Hand(p Player) ([]Card, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	if !p.Valid() {
		return nil, errors.WithMessagef(ErrInvalidOwner, "player %s has no hand", p)
	}
	return append([]Card(nil), *e.handOf(p)...), nil
}

// DeckSize returns how many cards remain in p's draw pile.
func (e *Engine) DeckSize(p Player) (int, error) {
	if !e.started {
		return 0, ErrNotStarted
	}
	if !p.Valid() {
		return 0, errors.WithMessagef(ErrInvalidOwner, "player %s has no deck", p)
	}
	return len(*e.deckOf(p)), nil
}

// RowScore returns both players' scores for one row.
func (e *Engine) RowScore(row int) (red, blue int, err error) {
	if !e.started {
		return 0, 0, ErrNotStarted
	}
	return e.board.RowScore(row)
}

// TotalScore returns both players' scores summed over all rows.
func (e *Engine) TotalScore() (red, blue int, err error) {
	if !e.started {
		return 0, 0, ErrNotStarted
	}
	red, blue = e.board.TotalScore()
	return red, blue, nil
}

// IsOver reports whether the game has ended.
func (e *Engine) IsOver() (bool, error) {
	if !e.started {
		return false, ErrNotStarted
	}
	return e.over, nil
}

// Winner returns who won more rows, NoPlayer for a tie. It fails until the
// game is over.
func (e *Engine) Winner() (Player, error) {
	if !e.started {
		return NoPlayer, ErrNotStarted
	}
	if !e.over {
		return NoPlayer, ErrGameNotOver
	}
	return e.winner, nil
}

func (e *Engine) inProgress() error {
	if !e.started {
		return ErrNotStarted
	}
	if e.over {
		return ErrGameOver
	}
	return nil
}

// rejectMove reports a failed placement to listeners and hands the error
// back unchanged.
func (e *Engine) rejectMove(err error) error {
	e.notifyMoveRejected(err.Error())
	return err
}

func (e *Engine) handOf(p Player) *[]Card {
	if p == Red {
		return &e.redHand
	}
	return &e.blueHand
}

func (e *Engine) deckOf(p Player) *[]Card {
	if p == Red {
		return &e.redDeck
	}
	return &e.blueDeck
}

func (e *Engine) drawOne(p Player) {
	deck := e.deckOf(p)
	if len(*deck) == 0 {
		return
	}
	hand := e.handOf(p)
	*hand = append(*hand, (*deck)[0])
	*deck = (*deck)[1:]
}

func (e *Engine) finish() {
	e.over = true
	e.winner = e.decideWinner()
	red, blue := e.board.TotalScore()
	e.notifyGameEnded(e.winner, red, blue)
}

// decideWinner counts rows won outright by each player. Tied rows count for
// nobody; equal row-win counts make the game a tie.
func (e *Engine) decideWinner() Player {
	redRows, blueRows := 0, 0
	for r := 0; r < e.board.rows; r++ {
		red, blue, _ := e.board.RowScore(r)
		switch {
		case red > blue:
			redRows++
		case blue > red:
			blueRows++
		}
	}
	switch {
	case redRows > blueRows:
		return Red
	case blueRows > redRows:
		return Blue
	default:
		return NoPlayer
	}
}

package game

// CellContent tags what a cell currently holds.
type CellContent int

const (
	CellEmpty CellContent = iota
	CellPawns
	CellCard
)

func (c CellContent) String() string {
	switch c {
	case CellPawns:
		return "PAWNS"
	case CellCard:
		return "CARD"
	default:
		return "EMPTY"
	}
}

// MaxPawns is the pawn-count cap per cell.
const MaxPawns = 3

// Cell is one board location. Owner and Pawns are meaningful only under
// CellPawns, Owner and Card only under CellCard. Modifier is cell state and
// survives every content change, including a card being removed.
type Cell struct {
	Content  CellContent `json:"content"`
	Owner    Player      `json:"owner"`
	Pawns    int         `json:"pawns"`
	Card     Card        `json:"card"`
	Modifier int         `json:"modifier"`
}

// EffectiveValue is the cell's scoring contribution: the card's value plus
// the accumulated modifier, floored at zero. Zero for non-card cells.
func (c Cell) EffectiveValue() int {
	if c.Content != CellCard {
		return 0
	}
	v := c.Card.Value + c.Modifier
	if v < 0 {
		return 0
	}
	return v
}

package game

import "github.com/pkg/errors"

// Influence is the effect a single pattern cell applies to the board cell
// it covers.
type Influence int

const (
	InfluenceNone Influence = iota
	InfluenceRegular
	InfluenceUpgrading
	InfluenceDevaluing
	InfluenceCenter
)

// String returns the one-letter form used by deck files and the textual view.
func (i Influence) String() string {
	switch i {
	case InfluenceRegular:
		return "I"
	case InfluenceUpgrading:
		return "U"
	case InfluenceDevaluing:
		return "D"
	case InfluenceCenter:
		return "C"
	default:
		return "X"
	}
}

// PatternSize is the fixed width and height of a card's influence grid.
const PatternSize = 5

// patternReach is how far the grid extends from the card's own cell.
const patternReach = PatternSize / 2

// Pattern is a card's influence grid. Pattern[r][c] is the effect applied at
// offset (r-2, c-2) from the cell the card is placed on; the middle cell is
// always InfluenceCenter and carries no effect.
type Pattern [PatternSize][PatternSize]Influence

// Lines renders the pattern as five 5-letter rows.
func (p Pattern) Lines() []string {
	out := make([]string, PatternSize)
	for r := 0; r < PatternSize; r++ {
		var row [PatternSize]byte
		for c := 0; c < PatternSize; c++ {
			row[c] = p[r][c].String()[0]
		}
		out[r] = string(row[:])
	}
	return out
}

const (
	MinCost = 1
	MaxCost = 3
)

// Card is an immutable playing card. Placing it consumes Cost pawns; it then
// scores Value plus whatever modifier its cell has accumulated.
type Card struct {
	Name    string  `json:"name"`
	Cost    int     `json:"cost"`
	Value   int     `json:"value"`
	Pattern Pattern `json:"-"`
}

// NewCard validates and builds a card.
func NewCard(name string, cost, value int, pattern Pattern) (Card, error) {
	c := Card{Name: name, Cost: cost, Value: value, Pattern: pattern}
	if err := c.validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

func (c Card) validate() error {
	if c.Name == "" {
		return errors.WithMessage(ErrConfiguration, "card has no name")
	}
	if c.Cost < MinCost || c.Cost > MaxCost {
		return errors.WithMessagef(ErrConfiguration, "card %q: cost %d outside [%d,%d]", c.Name, c.Cost, MinCost, MaxCost)
	}
	if c.Value <= 0 {
		return errors.WithMessagef(ErrConfiguration, "card %q: value %d must be positive", c.Name, c.Value)
	}
	centers := 0
	for r := 0; r < PatternSize; r++ {
		for cc := 0; cc < PatternSize; cc++ {
			if c.Pattern[r][cc] == InfluenceCenter {
				centers++
				if r != patternReach || cc != patternReach {
					return errors.WithMessagef(ErrConfiguration, "card %q: center marker at (%d,%d), must be the middle cell", c.Name, r, cc)
				}
			}
		}
	}
	if centers != 1 {
		return errors.WithMessagef(ErrConfiguration, "card %q: %d center markers, want exactly 1", c.Name, centers)
	}
	return nil
}

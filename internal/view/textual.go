package view

import (
	"fmt"
	"strings"

	"pawns-board/internal/game"
)

// Render draws the running game as text, one line per board row with red's
// row score on the left edge and blue's on the right, then a totals line.
// Cells show as __ when empty, r2/b2 for pawns and R5/B5 for cards with
// their effective value.
func Render(e *game.Engine) (string, error) {
	rows, cols, err := e.Dimensions()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		red, blue, err := e.RowScore(r)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d", red)
		for c := 0; c < cols; c++ {
			cell, err := e.CellAt(r, c)
			if err != nil {
				return "", err
			}
			b.WriteByte(' ')
			b.WriteString(cellToken(cell))
		}
		fmt.Fprintf(&b, " %d\n", blue)
	}

	red, blue, err := e.TotalScore()
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "TOTAL RED %d BLUE %d\n", red, blue)
	return b.String(), nil
}

func cellToken(cell game.Cell) string {
	switch cell.Content {
	case game.CellPawns:
		if cell.Owner == game.Red {
			return fmt.Sprintf("r%d", cell.Pawns)
		}
		return fmt.Sprintf("b%d", cell.Pawns)
	case game.CellCard:
		if cell.Owner == game.Red {
			return fmt.Sprintf("R%d", cell.EffectiveValue())
		}
		return fmt.Sprintf("B%d", cell.EffectiveValue())
	default:
		return "__"
	}
}

// RenderHand lists a hand one card per line with cost, value and pattern
// rows, for the command-line client.
func RenderHand(cards []game.Card) string {
	if len(cards) == 0 {
		return "(no cards)\n"
	}
	var b strings.Builder
	for i, c := range cards {
		fmt.Fprintf(&b, "[%d] %s cost=%d value=%d %s\n", i, c.Name, c.Cost, c.Value, strings.Join(c.Pattern.Lines(), " "))
	}
	return b.String()
}

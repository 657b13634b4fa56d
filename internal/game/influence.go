package game

// applyInfluence walks card's pattern around (row,col) and mutates every
// in-bounds covered cell. Blue's pattern is mirrored left-right, so each
// player's influence points away from their own home column. Pattern cells
// falling off the board are skipped.
//
// Occupied cells whose modifier changed are re-checked at the end: a card
// whose effective value dropped to zero or below is removed and refunded as
// pawns equal to its cost, still owned by whoever placed it.
func applyInfluence(b *Board, card Card, row, col int, actor Player) {
	type coord struct{ r, c int }
	var modified []coord

	for dr := -patternReach; dr <= patternReach; dr++ {
		for dc := -patternReach; dc <= patternReach; dc++ {
			kind := card.Pattern[dr+patternReach][dc+patternReach]
			if kind == InfluenceNone || kind == InfluenceCenter {
				continue
			}
			offC := dc
			if actor == Blue {
				offC = -dc
			}
			r, c := row+dr, col+offC
			if !b.inBounds(r, c) {
				continue
			}
			cell := b.cellRef(r, c)
			switch kind {
			case InfluenceRegular:
				applyRegular(cell, actor)
			case InfluenceUpgrading:
				cell.Modifier++
				modified = append(modified, coord{r, c})
			case InfluenceDevaluing:
				cell.Modifier--
				modified = append(modified, coord{r, c})
			}
		}
	}

	for _, m := range modified {
		cell := b.cellRef(m.r, m.c)
		if cell.Content == CellCard && cell.Card.Value+cell.Modifier <= 0 {
			revertToPawns(cell)
		}
	}
}

// applyRegular creates, grows or flips pawns on one cell:
// empty cells gain one pawn for the actor, the actor's own pawns grow by one
// up to the cap, opposing pawns flip ownership with their count kept, and
// placed cards are immune.
func applyRegular(cell *Cell, actor Player) {
	switch cell.Content {
	case CellEmpty:
		cell.Content = CellPawns
		cell.Owner = actor
		cell.Pawns = 1
	case CellPawns:
		if cell.Owner == actor {
			if cell.Pawns < MaxPawns {
				cell.Pawns++
			}
		} else {
			cell.Owner = actor
		}
	}
}

// revertToPawns replaces a devalued card with the pawns that were spent on
// it. The owner and the accumulated modifier stay with the cell.
func revertToPawns(cell *Cell) {
	cell.Pawns = cell.Card.Cost
	cell.Content = CellPawns
	cell.Card = Card{}
}

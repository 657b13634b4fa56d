package game

import "github.com/pkg/errors"

// Board is the fixed-size grid of cells. It is owned and mutated only by an
// Engine; everything exported here is read-only.
type Board struct {
	rows, cols int
	grid       [][]Cell
}

// NewBoard allocates an empty rows x cols grid. cols must be odd and at
// least 3 so a unique center column exists between the two home columns.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 {
		return nil, errors.WithMessagef(ErrConfiguration, "rows %d, want at least 1", rows)
	}
	if cols < 3 || cols%2 == 0 {
		return nil, errors.WithMessagef(ErrConfiguration, "cols %d, want odd and at least 3", cols)
	}
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	return &Board{rows: rows, cols: cols, grid: grid}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// CellAt returns a copy of the cell at (r,c).
func (b *Board) CellAt(r, c int) (Cell, error) {
	if !b.inBounds(r, c) {
		return Cell{}, errors.WithMessagef(ErrOutOfBounds, "cell (%d,%d) on %dx%d board", r, c, b.rows, b.cols)
	}
	return b.grid[r][c], nil
}

// cellRef hands out a mutable cell. Bounds must have been checked.
func (b *Board) cellRef(r, c int) *Cell {
	return &b.grid[r][c]
}

// seedHomePawns puts one pawn per row in each player's home column: column 0
// for Red, the last column for Blue.
func (b *Board) seedHomePawns() {
	for r := 0; r < b.rows; r++ {
		b.grid[r][0] = Cell{Content: CellPawns, Owner: Red, Pawns: 1}
		b.grid[r][b.cols-1] = Cell{Content: CellPawns, Owner: Blue, Pawns: 1}
	}
}

// RowScore sums the effective values of each player's cards in row r.
func (b *Board) RowScore(r int) (red, blue int, err error) {
	if r < 0 || r >= b.rows {
		return 0, 0, errors.WithMessagef(ErrOutOfBounds, "row %d on %dx%d board", r, b.rows, b.cols)
	}
	for c := 0; c < b.cols; c++ {
		cell := b.grid[r][c]
		switch cell.Owner {
		case Red:
			red += cell.EffectiveValue()
		case Blue:
			blue += cell.EffectiveValue()
		}
	}
	return red, blue, nil
}

// TotalScore sums every row score.
func (b *Board) TotalScore() (red, blue int) {
	for r := 0; r < b.rows; r++ {
		rr, bb, _ := b.RowScore(r)
		red += rr
		blue += bb
	}
	return red, blue
}

// clone deep-copies the board. Cells are values, so copying rows is enough.
func (b *Board) clone() *Board {
	grid := make([][]Cell, b.rows)
	for r := range grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.grid[r])
	}
	return &Board{rows: b.rows, cols: b.cols, grid: grid}
}

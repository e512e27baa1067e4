// Package board implements the well: a fixed-size grid of consolidated
// tiles together with the row mutations applied after a legal move.
package board

import (
	"github.com/plus3/scaletris/block"
	"github.com/plus3/scaletris/grid"
)

// Board is the well. Its dimensions never change; every cell is empty or
// holds a tile handed over by a consolidated block.
type Board struct {
	cells *grid.Grid
}

// New creates an empty board of the given height and width. It panics if
// either dimension is less than one.
func New(height, width int) *Board {
	if height < 1 || width < 1 {
		panic("board: height and width must be at least 1")
	}
	return &Board{cells: grid.New(height, width)}
}

// FromGrid creates a board holding a copy of g.
func FromGrid(g *grid.Grid) *Board {
	if g.Rows() < 1 || g.Cols() < 1 {
		panic("board: height and width must be at least 1")
	}
	return &Board{cells: g.Clone()}
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.cells.Rows() }

// Width returns the number of columns.
func (b *Board) Width() int { return b.cells.Cols() }

// InBounds reports whether (row, col) lies inside the well.
func (b *Board) InBounds(row, col int) bool { return b.cells.InBounds(row, col) }

// At returns the cell at (row, col). It panics with
// *grid.IndexOutOfRangeError outside the well.
func (b *Board) At(row, col int) grid.Cell { return b.cells.At(row, col) }

// Set stores cell at (row, col). It panics with *grid.IndexOutOfRangeError
// outside the well.
func (b *Board) Set(row, col int, cell grid.Cell) { b.cells.Set(row, col, cell) }

// Occupied reports whether (row, col) is inside the well and holds a tile.
func (b *Board) Occupied(row, col int) bool { return b.cells.Occupied(row, col) }

// RowCount returns the number of occupied cells in row.
func (b *Board) RowCount(row int) int { return b.cells.RowCount(row) }

// RowCounts returns the number of occupied cells of every row, top first.
func (b *Board) RowCounts() []int {
	counts := make([]int, b.Height())
	for i := range counts {
		counts[i] = b.cells.RowCount(i)
	}
	return counts
}

// Cells returns a copy of the well's contents.
func (b *Board) Cells() *grid.Grid { return b.cells.Clone() }

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board { return &Board{cells: b.cells.Clone()} }

// String renders the well in the grid text form.
func (b *Board) String() string { return b.cells.String() }

// Consolidate copies every occupied cell of blk into the well at the
// block's position. Empty block cells leave the well untouched. The block
// must lie inside the well; an occupied cell outside it panics with
// *grid.IndexOutOfRangeError.
func (b *Board) Consolidate(blk *block.Block) {
	for pos, tile := range blk.Cells() {
		b.cells.Set(pos.Row+blk.Y(), pos.Col+blk.X(), grid.Filled(tile))
	}
}

// ClearRows removes every full row, shifting the rows above down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearRows() int {
	cleared := 0
	for i := b.Height() - 1; i >= 0; {
		if b.cells.RowFull(i) {
			b.cells.RemoveRow(i)
			cleared++
			// The row shifted into i has not been examined yet.
			continue
		}
		i--
	}
	return cleared
}

// Reward removes the row holding the most tiles, preferring the lowest
// row on ties, and shifts the rows above it down. It returns the removed
// row. An empty board is left unchanged and reported with ok false.
func (b *Board) Reward() (row int, ok bool) {
	best, bestCount := -1, 0
	for i := range b.Height() {
		if n := b.cells.RowCount(i); n > 0 && n >= bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return 0, false
	}
	b.cells.RemoveRow(best)
	return best, true
}

// Penalize duplicates the sparsest non-empty row, preferring the lowest
// row on ties, into the row just above the topmost occupied row. Nothing
// happens when the sparsest row is row 0 or when the topmost occupied row
// is already row 0. It returns the source and destination rows.
func (b *Board) Penalize() (from, to int, ok bool) {
	minRow, minCount := -1, 0
	top := -1
	for i := range b.Height() {
		n := b.cells.RowCount(i)
		if n == 0 {
			continue
		}
		if minRow < 0 || n <= minCount {
			minRow, minCount = i, n
		}
		if top < 0 {
			top = i
		}
	}
	if minRow <= 0 || top <= 0 {
		return 0, 0, false
	}
	b.cells.CopyRow(minRow, top-1)
	return minRow, top - 1, true
}

// Package rules decides whether a transform of the active block is legal
// against the current board.
//
// Every predicate is pure: it reads the board and the block, evaluates the
// transformed candidate in memory and reports the result as a bool. None of
// them mutates its arguments or panics, whatever the block position.
package rules

import (
	"github.com/plus3/scaletris/block"
	"github.com/plus3/scaletris/board"
	"github.com/plus3/scaletris/grid"
)

// fits reports whether every occupied cell of shape, placed with its
// top-left corner at (y, x), lands on an empty cell inside the board.
func fits(b *board.Board, shape *grid.Grid, y, x int) bool {
	for i := range shape.Rows() {
		for j := range shape.Cols() {
			if shape.At(i, j).IsEmpty() {
				continue
			}
			if !b.InBounds(y+i, x+j) || b.Occupied(y+i, x+j) {
				return false
			}
		}
	}
	return true
}

// fitsAt reports whether the block's current cells fit when shifted by
// (dy, dx).
func fitsAt(b *board.Board, blk *block.Block, dy, dx int) bool {
	for pos := range blk.Cells() {
		row, col := blk.Y()+pos.Row+dy, blk.X()+pos.Col+dx
		if !b.InBounds(row, col) || b.Occupied(row, col) {
			return false
		}
	}
	return true
}

// CanMoveLeft reports whether the block can shift one column left.
func CanMoveLeft(b *board.Board, blk *block.Block) bool {
	return fitsAt(b, blk, 0, -1)
}

// CanMoveRight reports whether the block can shift one column right.
func CanMoveRight(b *board.Board, blk *block.Block) bool {
	return fitsAt(b, blk, 0, 1)
}

// CanDrop reports whether the block can fall one row. It fails as soon as
// an occupied cell sits on the bottom row or above an occupied cell.
func CanDrop(b *board.Board, blk *block.Block) bool {
	return fitsAt(b, blk, 1, 0)
}

// CanFlipVertical reports whether the vertically flipped block fits.
func CanFlipVertical(b *board.Board, blk *block.Block) bool {
	return fits(b, blk.FlippedVertical(), blk.Y(), blk.X())
}

// CanFlipHorizontal reports whether the horizontally flipped block fits.
func CanFlipHorizontal(b *board.Board, blk *block.Block) bool {
	return fits(b, blk.FlippedHorizontal(), blk.Y(), blk.X())
}

// CanRotate reports whether the block rotated 90 degrees clockwise fits.
func CanRotate(b *board.Board, blk *block.Block) bool {
	return fits(b, blk.Rotated(), blk.Y(), blk.X())
}

// CanScaleDown reports whether the block may be halved. Blocks of side two
// or less and blocks with two tiles or fewer cannot shrink. Otherwise the
// halved footprint, clipped to the board, must be free of tiles.
func CanScaleDown(b *board.Board, blk *block.Block) bool {
	size := blk.Size()
	if size <= 2 {
		return false
	}
	if blk.Count() <= 2 {
		return false
	}

	half := size / 2
	minX := max(blk.X(), 0)
	minY := max(blk.Y(), 0)
	maxX := min(blk.X()+half-1, b.Width()-1)
	maxY := min(blk.Y()+half-1, b.Height()-1)
	for i := minY; i <= maxY; i++ {
		for j := minX; j <= maxX; j++ {
			if b.Occupied(i, j) {
				return false
			}
		}
	}
	return true
}

// CanScaleUp reports whether the block may double in size. The doubled
// footprint must lie inside the board. Within the original footprint only
// cells under the block's own tiles must be free; every other cell of the
// doubled footprint must be free as well.
func CanScaleUp(b *board.Board, blk *block.Block) bool {
	size := blk.Size()
	x, y := blk.X(), blk.Y()
	right := x + 2*size - 1
	bottom := y + 2*size - 1
	if right >= b.Width() || bottom >= b.Height() {
		return false
	}
	if x < 0 || y < 0 {
		return false
	}

	for i := y; i <= bottom; i++ {
		for j := x; j <= right; j++ {
			if i < y+size && j < x+size && blk.At(i-y, j-x).IsEmpty() {
				continue
			}
			if b.Occupied(i, j) {
				return false
			}
		}
	}
	return true
}

// IsGameOver reports whether any tile of the block lies outside the board
// or on an occupied cell. It is meant to be checked right after a new block
// spawns.
func IsGameOver(b *board.Board, blk *block.Block) bool {
	return !fitsAt(b, blk, 0, 0)
}

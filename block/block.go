// Package block implements the falling piece: a square, possibly perforated
// shape of tiles with an origin in board coordinates.
//
// Geometric transforms never look at a board and never fail. Whether a
// transform is legal is decided beforehand by the rules package.
package block

import (
	"iter"

	"github.com/plus3/scaletris/grid"
)

// Rand is the random source used to perforate new blocks. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Block is a square grid of optional tiles whose top-left cell sits at
// (X, Y) on the board.
type Block struct {
	shape *grid.Grid
	x     int
	y     int
	color grid.Color
}

// New creates a block of side size at (x, y) in which every cell is
// independently occupied by a tile of the given color with probability 1/2.
// It panics if size is less than one.
func New(y, x, size int, color grid.Color, rng Rand) *Block {
	b := newBlock(y, x, size, color)
	for i := range size {
		for j := range size {
			if rng.IntN(2) == 0 {
				b.shape.Set(i, j, grid.Filled(grid.NewTile(color)))
			}
		}
	}
	return b
}

// NewEmpty creates a block of side size at (x, y) with no tiles, to be
// filled with Set. It panics if size is less than one.
func NewEmpty(y, x, size int) *Block {
	return newBlock(y, x, size, 0)
}

func newBlock(y, x, size int, color grid.Color) *Block {
	if size < 1 {
		panic("block: size must be at least 1")
	}
	return &Block{
		shape: grid.New(size, size),
		x:     x,
		y:     y,
		color: color,
	}
}

// Size returns the side length of the block.
func (b *Block) Size() int { return b.shape.Rows() }

// X returns the board column of the block's left edge.
func (b *Block) X() int { return b.x }

// Y returns the board row of the block's top edge.
func (b *Block) Y() int { return b.y }

// Color returns the color new tiles of this block are spawned with.
func (b *Block) Color() grid.Color { return b.color }

// SetColor changes the spawn color. Existing tiles keep their color.
func (b *Block) SetColor(c grid.Color) { b.color = c }

// At returns the cell at (row, col) relative to the block origin.
func (b *Block) At(row, col int) grid.Cell {
	return b.shape.At(row, col)
}

// Set stores cell at (row, col) relative to the block origin.
func (b *Block) Set(row, col int, cell grid.Cell) {
	b.shape.Set(row, col, cell)
}

// Count returns the number of occupied cells.
func (b *Block) Count() int {
	return b.shape.Count()
}

// Shape returns a copy of the block's cells.
func (b *Block) Shape() *grid.Grid {
	return b.shape.Clone()
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	c := *b
	c.shape = b.shape.Clone()
	return &c
}

// Drop moves the block down one row.
func (b *Block) Drop() { b.y++ }

// MoveLeft moves the block one column to the left.
func (b *Block) MoveLeft() { b.x-- }

// MoveRight moves the block one column to the right.
func (b *Block) MoveRight() { b.x++ }

// Rotate turns the block 90 degrees clockwise.
func (b *Block) Rotate() { b.shape = b.Rotated() }

// FlipVertical reverses the order of the block's rows.
func (b *Block) FlipVertical() { b.shape = b.FlippedVertical() }

// FlipHorizontal reverses the order of the columns in every row.
func (b *Block) FlipHorizontal() { b.shape = b.FlippedHorizontal() }

// Rotated returns the shape the block would have after Rotate.
func (b *Block) Rotated() *grid.Grid {
	n := b.Size()
	out := grid.New(n, n)
	for i := range n {
		for j := range n {
			out.Set(i, j, b.shape.At(n-1-j, i))
		}
	}
	return out
}

// FlippedVertical returns the shape the block would have after FlipVertical.
func (b *Block) FlippedVertical() *grid.Grid {
	n := b.Size()
	out := grid.New(n, n)
	for i := range n {
		for j := range n {
			out.Set(i, j, b.shape.At(n-1-i, j))
		}
	}
	return out
}

// FlippedHorizontal returns the shape the block would have after
// FlipHorizontal.
func (b *Block) FlippedHorizontal() *grid.Grid {
	n := b.Size()
	out := grid.New(n, n)
	for i := range n {
		for j := range n {
			out.Set(i, j, b.shape.At(i, n-1-j))
		}
	}
	return out
}

// ScaleUp returns a new block of twice the side at the same origin. Every
// cell becomes a 2x2 square of cells in the same state, each occupied cell
// holding its own copy of the original tile.
func (b *Block) ScaleUp() *Block {
	n := b.Size()
	out := newBlock(b.y, b.x, 2*n, b.color)
	for i := range n {
		for j := range n {
			c := b.shape.At(i, j)
			out.shape.Set(2*i, 2*j, c)
			out.shape.Set(2*i, 2*j+1, c)
			out.shape.Set(2*i+1, 2*j, c)
			out.shape.Set(2*i+1, 2*j+1, c)
		}
	}
	return out
}

// ScaleDown returns a new block of side max(size/2, 2) at the same origin.
// Cell (i, j) of the result is sampled from cell (2i, 2j) of the original;
// the other three cells of each 2x2 group are discarded. Samples that fall
// outside a block of side two or less are left empty.
func (b *Block) ScaleDown() *Block {
	n := max(b.Size()/2, 2)
	out := newBlock(b.y, b.x, n, b.color)
	for i := range n {
		for j := range n {
			if b.shape.InBounds(2*i, 2*j) {
				out.shape.Set(i, j, b.shape.At(2*i, 2*j))
			}
		}
	}
	return out
}

// Cells iterates over the occupied cells with their positions relative to
// the block origin.
func (b *Block) Cells() iter.Seq2[grid.Pos, grid.Tile] {
	return func(yield func(grid.Pos, grid.Tile) bool) {
		n := b.Size()
		for i := range n {
			for j := range n {
				if t, ok := b.shape.At(i, j).Tile(); ok {
					if !yield(grid.Pos{Row: i, Col: j}, t) {
						return
					}
				}
			}
		}
	}
}

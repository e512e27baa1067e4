// Package grid provides the fixed-size matrix of optional tiles shared by
// blocks and boards. Rows are indexed top to bottom and columns left to right.
package grid

import (
	"strconv"
	"strings"
)

// Color is a small palette index. Zero is reserved for the background, so
// occupied cells normally carry a color of one or more.
type Color uint8

// Tile is an immutable colored unit occupying one cell.
type Tile struct {
	color Color
}

// NewTile creates a tile of the given color.
func NewTile(color Color) Tile {
	return Tile{color: color}
}

// Color returns the palette index of the tile.
func (t Tile) Color() Color {
	return t.color
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Cell is either empty or holds exactly one Tile. The zero value is empty.
type Cell struct {
	tile     Tile
	occupied bool
}

// Empty is the empty cell.
var Empty = Cell{}

// Filled returns a cell holding t.
func Filled(t Tile) Cell {
	return Cell{tile: t, occupied: true}
}

// Tile returns the tile held by the cell and whether there is one.
func (c Cell) Tile() (Tile, bool) {
	return c.tile, c.occupied
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Grid is a rows x cols matrix of cells stored row-major in a single
// buffer. Its dimensions never change after construction.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// New creates an empty grid. It panics if either dimension is negative.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic("grid: negative dimensions " + strconv.Itoa(rows) + "x" + strconv.Itoa(cols))
	}
	return &Grid{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.rows && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(&IndexOutOfRangeError{Row: row, Col: col, Rows: g.rows, Cols: g.cols})
	}
	return row*g.cols + col
}

// At returns the cell at (row, col). It panics with *IndexOutOfRangeError
// when the position is outside the grid.
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores cell at (row, col). It panics with *IndexOutOfRangeError
// when the position is outside the grid.
func (g *Grid) Set(row, col int, cell Cell) {
	g.cells[g.index(row, col)] = cell
}

// Occupied reports whether (row, col) is inside the grid and holds a tile.
func (g *Grid) Occupied(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row*g.cols+col].occupied
}

func (g *Grid) row(row int) []Cell {
	start := g.index(row, 0)
	return g.cells[start : start+g.cols]
}

// RowCount returns the number of occupied cells in row.
func (g *Grid) RowCount(row int) int {
	if g.cols == 0 {
		return 0
	}
	count := 0
	for _, c := range g.row(row) {
		if c.occupied {
			count++
		}
	}
	return count
}

// RowFull reports whether every cell of row is occupied.
func (g *Grid) RowFull(row int) bool {
	return g.RowCount(row) == g.cols
}

// Count returns the number of occupied cells in the grid.
func (g *Grid) Count() int {
	count := 0
	for _, c := range g.cells {
		if c.occupied {
			count++
		}
	}
	return count
}

// ClearRow empties every cell of row.
func (g *Grid) ClearRow(row int) {
	clear(g.row(row))
}

// CopyRow overwrites row dst with the contents of row src.
func (g *Grid) CopyRow(src, dst int) {
	copy(g.row(dst), g.row(src))
}

// RemoveRow deletes row, moves every row above it down by one and leaves
// an empty row at the top.
func (g *Grid) RemoveRow(row int) {
	end := g.index(row, 0)
	copy(g.cells[g.cols:end+g.cols], g.cells[:end])
	clear(g.cells[:g.cols])
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		cells: append([]Cell(nil), g.cells...),
		rows:  g.rows,
		cols:  g.cols,
	}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether both grids have the same dimensions and the
// same occupied positions, ignoring tile colors.
func (g *Grid) SameShape(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i].occupied != other.cells[i].occupied {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, '.' for empty cells and the
// color digit (or '#' above nine) for occupied ones.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			switch {
			case !c.occupied:
				sb.WriteByte('.')
			case c.tile.color <= 9:
				sb.WriteByte('0' + byte(c.tile.color))
			default:
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

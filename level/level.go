// Package level loads preset boards and blocks from YAML documents:
//
//	board:
//	  - "......"
//	  - "1..22."
//	block:
//	  x: 2
//	  y: 0
//	  color: 3
//	  rows: ["33", ".3"]
//
// In a row string '.' or ' ' is an empty cell, '1'..'9' a tile of that
// color and '#' a tile of color 1.
package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/plus3/scaletris/block"
	"github.com/plus3/scaletris/board"
	"github.com/plus3/scaletris/grid"
)

// Level is a board layout with an optional active block.
type Level struct {
	Board []string   `yaml:"board"`
	Block *BlockSpec `yaml:"block,omitempty"`
}

// BlockSpec places a block with the given rows at (X, Y).
type BlockSpec struct {
	X     int        `yaml:"x"`
	Y     int        `yaml:"y"`
	Color grid.Color `yaml:"color"`
	Rows  []string   `yaml:"rows"`
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses the level file at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	return Parse(data)
}

// Validate checks that the board is a non-empty rectangle of valid cells
// and that the block, if any, is a non-empty square.
func (l *Level) Validate() error {
	if len(l.Board) == 0 {
		return errors.New("level: board has no rows")
	}
	if _, err := ParseRows(l.Board...); err != nil {
		return fmt.Errorf("level: board: %w", err)
	}
	if len(l.Board[0]) == 0 {
		return errors.New("level: board has no columns")
	}
	if l.Block == nil {
		return nil
	}
	n := len(l.Block.Rows)
	if n == 0 {
		return errors.New("level: block has no rows")
	}
	for i, r := range l.Block.Rows {
		if len(r) != n {
			return fmt.Errorf("level: block row %d has %d cells, want %d", i, len(r), n)
		}
	}
	if _, err := ParseRows(l.Block.Rows...); err != nil {
		return fmt.Errorf("level: block: %w", err)
	}
	return nil
}

// NewBoard builds the board described by the level.
func (l *Level) NewBoard() (*board.Board, error) {
	g, err := ParseRows(l.Board...)
	if err != nil {
		return nil, fmt.Errorf("level: board: %w", err)
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, errors.New("level: board is empty")
	}
	return board.FromGrid(g), nil
}

// NewBlock builds the block described by the level. It returns nil when
// the level has no block.
func (l *Level) NewBlock() (*block.Block, error) {
	if l.Block == nil {
		return nil, nil
	}
	g, err := ParseRows(l.Block.Rows...)
	if err != nil {
		return nil, fmt.Errorf("level: block: %w", err)
	}
	if g.Rows() == 0 || g.Rows() != g.Cols() {
		return nil, fmt.Errorf("level: block must be square, got %dx%d", g.Rows(), g.Cols())
	}
	b := block.NewEmpty(l.Block.Y, l.Block.X, g.Rows())
	color := l.Block.Color
	for i := range g.Rows() {
		for j := range g.Cols() {
			c := g.At(i, j)
			b.Set(i, j, c)
			if t, ok := c.Tile(); ok && color == 0 {
				color = t.Color()
			}
		}
	}
	if color == 0 {
		color = 1
	}
	b.SetColor(color)
	return b, nil
}

// ParseRows converts row strings into a grid. All rows must have the same
// length.
func ParseRows(rows ...string) (*grid.Grid, error) {
	if len(rows) == 0 {
		return grid.New(0, 0), nil
	}
	g := grid.New(len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != g.Cols() {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(r), g.Cols())
		}
		for j := range len(r) {
			c, err := parseCell(r[j])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			g.Set(i, j, c)
		}
	}
	return g, nil
}

// MustRows is like ParseRows but panics on malformed input. It is meant
// for literals in tests and examples.
func MustRows(rows ...string) *grid.Grid {
	g, err := ParseRows(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// MustBoard builds a board from row strings, panicking on malformed input.
func MustBoard(rows ...string) *board.Board {
	return board.FromGrid(MustRows(rows...))
}

// MustBlock builds a block at (x, y) from square row strings, panicking on
// malformed input.
func MustBlock(y, x int, rows ...string) *block.Block {
	l := Level{Board: []string{"."}, Block: &BlockSpec{X: x, Y: y, Rows: rows}}
	if err := l.Validate(); err != nil {
		panic(err)
	}
	b, err := l.NewBlock()
	if err != nil {
		panic(err)
	}
	return b
}

func parseCell(ch byte) (grid.Cell, error) {
	switch {
	case ch == '.' || ch == ' ':
		return grid.Empty, nil
	case ch == '#':
		return grid.Filled(grid.NewTile(1)), nil
	case ch >= '1' && ch <= '9':
		return grid.Filled(grid.NewTile(grid.Color(ch - '0'))), nil
	default:
		return grid.Empty, fmt.Errorf("invalid cell %q", ch)
	}
}

package grid_test

import (
	"errors"
	"testing"

	"github.com/plus3/scaletris/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(g *grid.Grid, rows ...string) {
	for r, line := range rows {
		for c, ch := range line {
			if ch != '.' {
				g.Set(r, c, grid.Filled(grid.NewTile(grid.Color(ch-'0'))))
			}
		}
	}
}

func TestCell(t *testing.T) {
	assert.True(t, grid.Empty.IsEmpty())

	var zero grid.Cell
	assert.Equal(t, grid.Empty, zero)

	c := grid.Filled(grid.NewTile(4))
	assert.False(t, c.IsEmpty())
	tile, ok := c.Tile()
	assert.True(t, ok)
	assert.Equal(t, grid.Color(4), tile.Color())

	_, ok = grid.Empty.Tile()
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	g := grid.New(3, 5)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 0, g.Count())

	assert.Panics(t, func() { grid.New(-1, 2) })
}

func TestGetSet(t *testing.T) {
	g := grid.New(2, 3)
	g.Set(1, 2, grid.Filled(grid.NewTile(7)))

	assert.False(t, g.At(1, 2).IsEmpty())
	assert.True(t, g.At(0, 0).IsEmpty())
	assert.True(t, g.Occupied(1, 2))
	assert.False(t, g.Occupied(5, 5))

	g.Set(1, 2, grid.Empty)
	assert.True(t, g.At(1, 2).IsEmpty())
}

func TestIndexOutOfRange(t *testing.T) {
	g := grid.New(2, 3)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past end", 2, 0},
		{"col past end", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)

				var oob *grid.IndexOutOfRangeError
				require.True(t, errors.As(err, &oob))
				assert.Equal(t, tt.row, oob.Row)
				assert.Equal(t, tt.col, oob.Col)
				assert.Equal(t, 2, oob.Rows)
				assert.Equal(t, 3, oob.Cols)
			}()
			g.At(tt.row, tt.col)
		})
	}

	assert.PanicsWithError(t, "grid: index (0, 3) out of range for 2x3 grid", func() {
		g.Set(0, 3, grid.Empty)
	})
}

func TestRowOperations(t *testing.T) {
	g := grid.New(4, 3)
	fill(g,
		"1..",
		"22.",
		"333",
		"4.4",
	)

	assert.Equal(t, 1, g.RowCount(0))
	assert.Equal(t, 2, g.RowCount(1))
	assert.True(t, g.RowFull(2))
	assert.False(t, g.RowFull(3))
	assert.Equal(t, 8, g.Count())

	t.Run("copy row", func(t *testing.T) {
		c := g.Clone()
		c.CopyRow(3, 0)
		assert.Equal(t, "4.4\n22.\n333\n4.4", c.String())
	})

	t.Run("clear row", func(t *testing.T) {
		c := g.Clone()
		c.ClearRow(1)
		assert.Equal(t, "1..\n...\n333\n4.4", c.String())
	})

	t.Run("remove row", func(t *testing.T) {
		c := g.Clone()
		c.RemoveRow(2)
		assert.Equal(t, "...\n1..\n22.\n4.4", c.String())
	})

	t.Run("remove top row", func(t *testing.T) {
		c := g.Clone()
		c.RemoveRow(0)
		assert.Equal(t, "...\n22.\n333\n4.4", c.String())
	})

	assert.Equal(t, "1..\n22.\n333\n4.4", g.String(), "clones must not alias the original")
}

func TestEqualAndSameShape(t *testing.T) {
	a := grid.New(2, 2)
	fill(a, "1.", ".2")

	b := a.Clone()
	assert.True(t, a.Equal(b))
	assert.True(t, a.SameShape(b))

	b.Set(0, 0, grid.Filled(grid.NewTile(9)))
	assert.False(t, a.Equal(b))
	assert.True(t, a.SameShape(b))

	b.Set(0, 1, grid.Filled(grid.NewTile(9)))
	assert.False(t, a.SameShape(b))

	assert.False(t, a.Equal(grid.New(2, 3)))
	assert.False(t, a.Equal(nil))
}

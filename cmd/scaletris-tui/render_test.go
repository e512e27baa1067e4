package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/scaletris/level"
	"github.com/plus3/scaletris/rules"
	"github.com/plus3/scaletris/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func newSession(t *testing.T, doc string) *session.Session {
	t.Helper()
	l, err := level.Parse([]byte(doc))
	require.NoError(t, err)
	s, err := session.New(session.DefaultConfig(), session.WithLevel(l), session.WithSeed(1))
	require.NoError(t, err)
	return s
}

// cellAt returns the rune and foreground color drawn for well cell (row, col).
func cellAt(screen tcell.Screen, row, col int) (rune, tcell.Color) {
	r, _, style, _ := screen.GetContent(originX+1+col*cellWidth, originY+row)
	fg, _, _ := style.Decompose()
	return r, fg
}

func TestDraw(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, `
board:
  - "......"
  - "......"
  - "......"
  - "2....."
block:
  x: 4
  y: 0
  color: 3
  rows: ["3.", ".."]
`)
	draw(screen, s.Snapshot(), s.Stats())

	r, fg := cellAt(screen, 3, 0)
	assert.Equal(t, '█', r)
	assert.Equal(t, tcell.ColorGreen, fg)

	r, fg = cellAt(screen, 0, 4)
	assert.Equal(t, '█', r, "falling block")
	assert.Equal(t, tcell.ColorBlue, fg)

	r, _ = cellAt(screen, 0, 5)
	assert.Equal(t, '·', r)

	r, _, _, _ = screen.GetContent(originX, originY)
	assert.Equal(t, '│', r)
}

func TestDrawGameOver(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, `
board:
  - "......"
  - "....1."
  - "......"
block:
  x: 4
  y: 0
  rows: ["..", "1."]
`)
	require.True(t, s.GameOver())
	draw(screen, s.Snapshot(), s.Stats())
	screen.Show()

	cells, width, _ := screen.GetContents()
	var text []rune
	for _, c := range cells[(originY+1)*width : (originY+2)*width] {
		if len(c.Runes) > 0 {
			text = append(text, c.Runes[0])
		}
	}
	assert.Contains(t, string(text), "GAME OVER")
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want rules.Action
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), rules.MoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), rules.MoveRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), rules.FlipVertical},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), rules.FlipHorizontal},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), rules.Drop},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), rules.Rotate},
		{tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone), rules.ScaleDown},
		{tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), rules.ScaleUp},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			a, ok := keyAction(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, a)
		})
	}

	_, ok := keyAction(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

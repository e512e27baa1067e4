package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/scaletris/grid"
	"github.com/plus3/scaletris/rules"
	"github.com/plus3/scaletris/session"
)

const (
	originX   = 2
	originY   = 1
	cellWidth = 2
)

var palette = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorAqua,
	tcell.ColorFuchsia,
	tcell.ColorOrange,
	tcell.ColorYellow,
	tcell.ColorPink,
	tcell.ColorWhite,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func tileStyle(c grid.Color) tcell.Style {
	color := tcell.ColorWhite
	if int(c) < len(palette) {
		color = palette[c]
	}
	return tcell.StyleDefault.Foreground(color)
}

// keyAction maps a key press to a block action.
func keyAction(ev *tcell.EventKey) (rules.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return rules.MoveLeft, true
	case tcell.KeyRight:
		return rules.MoveRight, true
	case tcell.KeyUp:
		return rules.FlipVertical, true
	case tcell.KeyDown:
		return rules.FlipHorizontal, true
	case tcell.KeyPgDn:
		return rules.Drop, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return rules.Rotate, true
		case '[':
			return rules.ScaleDown, true
		case ']':
			return rules.ScaleUp, true
		case ' ':
			return rules.Drop, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCell(screen tcell.Screen, row, col int, ch rune, style tcell.Style) {
	x := originX + 1 + col*cellWidth
	y := originY + row
	for i := range cellWidth {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// draw renders the well, the falling block and a side panel of counters.
func draw(screen tcell.Screen, snap session.Snapshot, stats *session.Stats) {
	screen.Clear()

	b := snap.Board
	h, w := b.Height(), b.Width()
	right := originX + 1 + w*cellWidth
	for row := range h {
		screen.SetContent(originX, originY+row, '│', nil, borderStyle)
		screen.SetContent(right, originY+row, '│', nil, borderStyle)
		for col := range w {
			if t, ok := b.At(row, col).Tile(); ok {
				drawCell(screen, row, col, '█', tileStyle(t.Color()))
			} else {
				drawCell(screen, row, col, '·', emptyStyle)
			}
		}
	}
	for x := originX; x <= right; x++ {
		screen.SetContent(x, originY+h, '─', nil, borderStyle)
	}
	screen.SetContent(originX, originY+h, '└', nil, borderStyle)
	screen.SetContent(right, originY+h, '┘', nil, borderStyle)

	blk := snap.Block
	for pos, t := range blk.Cells() {
		row, col := blk.Y()+pos.Row, blk.X()+pos.Col
		if b.InBounds(row, col) {
			drawCell(screen, row, col, '█', tileStyle(t.Color()))
		}
	}

	panelX := right + 3
	lines := []string{
		"SCALETRIS",
		"",
		fmt.Sprintf("Landed:    %d", stats.Landed),
		fmt.Sprintf("Cleared:   %d", stats.RowsCleared),
		fmt.Sprintf("Rewards:   %d", stats.Rewards),
		fmt.Sprintf("Penalties: %d", stats.Penalties),
		"",
		"←/→ move   ↑/↓ flip",
		"r rotate   [/] scale",
		"PgDn drop  q quit",
	}
	for i, line := range lines {
		drawText(screen, panelX, originY+i, textStyle, line)
	}

	if snap.GameOver {
		msg := "GAME OVER"
		x := originX + 1 + (w*cellWidth-len(msg))/2
		drawText(screen, max(x, 0), originY+h/2, bannerStyle, msg)
	}
}

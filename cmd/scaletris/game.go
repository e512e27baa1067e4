package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/scaletris/debugui"
	debugui_ebiten "github.com/plus3/scaletris/debugui/ebiten"
	"github.com/plus3/scaletris/grid"
	"github.com/plus3/scaletris/session"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	margin     = 20
	panelGap   = 24
	panelWidth = 240
	lineHeight = 24
)

// Game implements ebiten.Game for one session.
type Game struct {
	session  *session.Session
	overlay  *debugui_ebiten.Overlay
	palette  *Palette
	face     font.Face
	cellSize int

	period   time.Duration
	lastTick time.Time
}

func NewGame(s *session.Session, cellSize int, overlay *debugui_ebiten.Overlay) (*Game, error) {
	fontData, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &Game{
		session:  s,
		overlay:  overlay,
		palette:  newPalette(),
		face:     face,
		cellSize: cellSize,
		period:   s.Config().TickPeriod(),
		lastTick: time.Now(),
	}, nil
}

// WindowSize returns the window size that fits the well and the side panel.
func (g *Game) WindowSize() (int, int) {
	b := g.session.Snapshot().Board
	w := 2*margin + b.Width()*g.cellSize + panelGap + panelWidth
	h := max(2*margin+b.Height()*g.cellSize, 2*margin+12*lineHeight)
	return w, h
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay == nil || !debugui.WantsKeyboard() {
		for _, b := range bindings {
			if inpututil.IsKeyJustPressed(b.key) {
				g.session.Apply(b.action)
			}
		}
	}

	if now := time.Now(); now.Sub(g.lastTick) >= g.period {
		g.lastTick = now
		g.session.Tick()
	}

	if g.overlay != nil {
		g.overlay.Update(g.session)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.session.Snapshot()
	b := snap.Board
	size := float32(g.cellSize)
	wellW, wellH := float32(b.Width())*size, float32(b.Height())*size
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, wellColor, false)

	for row := range b.Height() {
		for col := range b.Width() {
			if t, ok := b.At(row, col).Tile(); ok {
				g.drawCell(screen, row, col, t.Color())
			}
		}
	}

	blk := snap.Block
	for pos, t := range blk.Cells() {
		row, col := blk.Y()+pos.Row, blk.X()+pos.Col
		if b.InBounds(row, col) {
			g.drawCell(screen, row, col, t.Color())
		}
	}

	for col := 1; col < b.Width(); col++ {
		x := margin + float32(col)*size
		vector.StrokeLine(screen, x, margin, x, margin+wellH, 1, gridLineColor, false)
	}

	stats := g.session.Stats()
	panelX := margin + int(wellW) + panelGap
	lines := []string{
		"SCALETRIS",
		"",
		fmt.Sprintf("Landed     %d", stats.Landed),
		fmt.Sprintf("Cleared    %d", stats.RowsCleared),
		fmt.Sprintf("Rewards    %d", stats.Rewards),
		fmt.Sprintf("Penalties  %d", stats.Penalties),
		"",
		"Arrows  move / flip",
		"R  rotate",
		"[ ]  scale",
		"PgDn  drop",
	}
	for i, line := range lines {
		text.Draw(screen, line, g.face, panelX, margin+18+i*lineHeight, textColor)
	}

	if snap.GameOver {
		msg := "GAME OVER"
		bounds := text.BoundString(g.face, msg)
		x := margin + (int(wellW)-bounds.Dx())/2
		y := margin + int(wellH)/2 - bounds.Max.Y
		text.Draw(screen, msg, g.face, x, y, bannerColor)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, row, col int, c grid.Color) {
	size := float32(g.cellSize)
	x := margin + float32(col)*size
	y := margin + float32(row)*size
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, g.palette.Color(c), false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

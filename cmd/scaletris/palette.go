package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/scaletris/grid"
	"github.com/plus3/scaletris/rules"
)

var (
	backgroundColor = color.NRGBA{R: 24, G: 24, B: 28, A: 255}
	wellColor       = color.NRGBA{A: 255}
	gridLineColor   = color.NRGBA{R: 40, G: 40, B: 46, A: 255}
	textColor       = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	bannerColor     = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
)

// Palette maps tile colors to screen colors.
type Palette struct {
	colors   *intmap.Map[grid.Color, color.NRGBA]
	fallback color.NRGBA
}

// newPalette returns the classic palette: black for empty cells followed by
// red, green, blue, cyan, magenta, orange, yellow, pink and white.
func newPalette() *Palette {
	p := &Palette{
		colors:   intmap.New[grid.Color, color.NRGBA](10),
		fallback: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	for c, rgba := range []color.NRGBA{
		{A: 255},
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{G: 255, B: 255, A: 255},
		{R: 255, B: 255, A: 255},
		{R: 255, G: 200, A: 255},
		{R: 255, G: 255, A: 255},
		{R: 255, G: 175, B: 175, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	} {
		p.colors.Put(grid.Color(c), rgba)
	}
	return p
}

// Color returns the screen color of tile color c.
func (p *Palette) Color(c grid.Color) color.NRGBA {
	if rgba, ok := p.colors.Get(c); ok {
		return rgba
	}
	return p.fallback
}

// Len returns the number of known tile colors.
func (p *Palette) Len() int { return p.colors.Len() }

type binding struct {
	key    ebiten.Key
	action rules.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, rules.MoveLeft},
	{ebiten.KeyArrowRight, rules.MoveRight},
	{ebiten.KeyArrowUp, rules.FlipVertical},
	{ebiten.KeyArrowDown, rules.FlipHorizontal},
	{ebiten.KeyR, rules.Rotate},
	{ebiten.KeyBracketLeft, rules.ScaleDown},
	{ebiten.KeyBracketRight, rules.ScaleUp},
	{ebiten.KeyPageDown, rules.Drop},
	{ebiten.KeySpace, rules.Drop},
}

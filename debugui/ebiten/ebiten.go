// Package ebiten runs the debugui inspector on top of an Ebiten game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scaletris/debugui"
	"github.com/plus3/scaletris/session"
)

// Overlay wraps the Ebiten Dear ImGui backend together with an inspector
// for one session.
type Overlay struct {
	*ebitenbackend.EbitenBackend

	inspector *debugui.Inspector
	timer     *debugui.FrameTimer
}

// NewOverlay creates the ImGui backend and its window. The ebiten window
// must not be running yet.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		inspector:     debugui.NewInspector(120),
		timer:         debugui.NewFrameTimer(),
	}
}

// Update builds the inspector windows for this frame. Call it from the
// game's Update.
func (o *Overlay) Update(s *session.Session) {
	o.BeginFrame()
	o.inspector.Render(s.Snapshot(), s.Stats(), o.timer.DeltaTime())
	o.EndFrame()
}

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scaletris/board"
	"github.com/plus3/scaletris/session"
)

// Inspector shows the state of one session: the falling block, the row
// occupancy of the well, the per-action counters and the frame time.
type Inspector struct {
	frames *FrameHistory
	rows   []float32
}

// NewInspector keeps the frame times of the last historyFrames frames.
func NewInspector(historyFrames int) *Inspector {
	return &Inspector{frames: NewFrameHistory(historyFrames)}
}

// Occupancy returns the number of tiles in every row of b, top first, in
// the form ImGui plots expect.
func Occupancy(b *board.Board, dst []float32) []float32 {
	dst = dst[:0]
	for _, n := range b.RowCounts() {
		dst = append(dst, float32(n))
	}
	return dst
}

// Render builds the Session and Performance windows for one frame.
// deltaTime is the frame duration in seconds.
func (in *Inspector) Render(snap session.Snapshot, stats *session.Stats, deltaTime float32) {
	in.frames.Push(deltaTime * 1000.0)
	in.renderSession(snap, stats)
	in.renderPerformance()
}

func (in *Inspector) renderSession(snap session.Snapshot, stats *session.Stats) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("ID: %s", snap.ID))
	if snap.GameOver {
		imgui.Text("State: game over")
	} else {
		imgui.Text("State: running")
	}

	blk := snap.Block
	imgui.Text(fmt.Sprintf("Block: %dx%d at (%d, %d) color %d, %d tiles",
		blk.Size(), blk.Size(), blk.X(), blk.Y(), blk.Color(), blk.Count()))
	imgui.Text(fmt.Sprintf("Ticks: %d  Drops: %d  Landed: %d", stats.Ticks, stats.Drops, stats.Landed))
	imgui.Text(fmt.Sprintf("Rows cleared: %d  Rewards: %d  Penalties: %d", stats.RowsCleared, stats.Rewards, stats.Penalties))

	imgui.Separator()
	imgui.Text("Row occupancy (top to bottom)")
	in.rows = Occupancy(snap.Board, in.rows)
	if len(in.rows) > 0 {
		imgui.PlotLinesFloatPtr("##rows", &in.rows[0], int32(len(in.rows)))
	}

	if imgui.TreeNodeStr("Actions") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ActionTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Action")
			imgui.TableSetupColumn("Attempted")
			imgui.TableSetupColumn("Applied")
			imgui.TableSetupColumn("Rejected")
			imgui.TableHeadersRow()

			for _, a := range stats.Actions {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(a.Action.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", a.Attempted))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", a.Applied))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", a.Rejected()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Well") {
		for i, n := range in.rows {
			if n > 0 {
				imgui.BulletText(fmt.Sprintf("row %d: %.0f tiles", i, n))
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) renderPerformance() {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := in.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := in.frames.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	imgui.End()
}

// Package debugui draws Dear ImGui inspector windows for a running session.
// Call Render between the backend's BeginFrame and EndFrame.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// WantsKeyboard reports whether ImGui is consuming keyboard input, in which
// case game keys should be ignored for the frame.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	values []float32
	next   int
	filled bool
}

// NewFrameHistory creates a history holding the last n frames. It panics if
// n is less than one.
func NewFrameHistory(n int) *FrameHistory {
	if n < 1 {
		panic("debugui: frame history needs at least one frame")
	}
	return &FrameHistory{values: make([]float32, n)}
}

// Push records a frame time.
func (h *FrameHistory) Push(ms float32) {
	h.values[h.next] = ms
	h.next = (h.next + 1) % len(h.values)
	if h.next == 0 {
		h.filled = true
	}
}

// Average returns the mean of the recorded frames, or zero if none were
// recorded.
func (h *FrameHistory) Average() float32 {
	n := h.next
	if h.filled {
		n = len(h.values)
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values[:n] {
		sum += v
	}
	return sum / float32(n)
}

// Values returns the ring buffer backing the history.
func (h *FrameHistory) Values() []float32 { return h.values }

// FrameTimer measures the time between consecutive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer starts timing from now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// DeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

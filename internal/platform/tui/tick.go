// Package tui provides the Bubble Tea integration for tagstorm.
// It handles the terminal UI loop, input mapping, camera smoothing and
// scene orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of a single frame so a stalled
// terminal does not fling every tag across the field at once.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a simulation step. Loop identifies the model
// that scheduled it; a model drops ticks from loops it did not start.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopSeq atomic.Int64

// nextLoop returns a fresh tick loop id.
func nextLoop() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// (0, maxFrameDelta]. The first tick has no predecessor and uses fallback.
func frameDelta(prev, now time.Time, fallback float64) float64 {
	if prev.IsZero() {
		return fallback
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return fallback
	}
	return min(dt, maxFrameDelta)
}

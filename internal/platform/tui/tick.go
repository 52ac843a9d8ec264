// Package tui is the terminal frontend of the game: the Bubble Tea frame
// driver, the cell renderer, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// maxFrameTime is the largest dt in seconds handed to the game.
const maxFrameTime = 0.1

// TickMsg is sent to trigger a game simulation tick. Ticks are addressed
// to one model: after a model is replaced its last tick still arrives and
// must not restart the loop.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// frameTime converts the gap between two ticks into seconds. The first
// tick has no predecessor and uses the nominal frame length.
func frameTime(prev, now time.Time, fps int) float32 {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if prev.IsZero() || !now.After(prev) {
		return 1 / float32(fps)
	}
	dt := float32(now.Sub(prev).Seconds())
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	return dt
}

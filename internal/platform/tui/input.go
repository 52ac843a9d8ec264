package tui

import (
	"time"

	"github.com/vovakirdan/breakthrough/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last key event. Terminals report autorepeat presses but never releases,
// so the window has to cover the gap between repeats.
const DefaultHoldWindow = 180 * time.Millisecond

// HeldKeys turns terminal key events into per-frame input.
// Movement keys stay held for the hold window after each event; every
// other action is pressed for exactly one frame so the game sees a
// release before the next press.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
	pulse  core.InputFrame
}

// NewHeldKeys creates an empty key state. A non-positive window uses
// DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
		pulse:  core.NewInputFrame(),
	}
}

// held reports whether an action uses the hold window.
func held(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// Press records a key event at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !held(a) {
		h.pulse.Set(a)
		return
	}
	h.until[a] = now.Add(h.window)
	// Opposite directions cancel each other
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
}

// Frame returns the input for the frame at time now and consumes the
// one-frame presses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pulse.Clone()
	h.pulse.Clear()

	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets every key.
func (h *HeldKeys) Release() {
	h.pulse.Clear()
	for a := range h.until {
		delete(h.until, a)
	}
}

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakthrough/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"left arrow", typeKey(tea.KeyLeft), core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right arrow", typeKey(tea.KeyRight), core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"down arrow", typeKey(tea.KeyDown), core.ActionDown, false},
		{"space", typeKey(tea.KeySpace), core.ActionLaunch, false},
		{"enter", typeKey(tea.KeyEnter), core.ActionConfirm, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", typeKey(tea.KeyEscape), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", typeKey(tea.KeyCtrlC), core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{typeKey(tea.KeyUp), MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{typeKey(tea.KeyEnter), MenuActionSelect},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHeldKeysHoldWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	if !h.Frame(t0.Add(50 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should be held inside the window")
	}
	if !h.Frame(t0.Add(90 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should stay held on later frames inside the window")
	}
	if h.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("Left should be released after the window")
	}

	// An autorepeat event extends the window
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(80*time.Millisecond))
	if !h.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("repeat press should extend the hold")
	}
}

func TestHeldKeysOppositeDirections(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0)
	f := h.Frame(t0)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only Right", f.Actions)
	}
}

func TestHeldKeysPulse(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionConfirm, t0)
	h.Press(core.ActionNone, t0)
	if f := h.Frame(t0); !f.Has(core.ActionConfirm) || len(f.Actions) != 1 {
		t.Errorf("first frame = %v, expected only Confirm", f.Actions)
	}
	if h.Frame(t0).Has(core.ActionConfirm) {
		t.Error("one-shot actions must last exactly one frame")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionLaunch, t0)
	h.Release()
	if f := h.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("frame after Release = %v, expected empty", f.Actions)
	}
}

func TestFrameTime(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		fps  int
		want float32
	}{
		{"first tick", time.Time{}, t0, 50, 0.02},
		{"regular", t0, t0.Add(20 * time.Millisecond), 60, 0.02},
		{"clamped", t0, t0.Add(time.Second), 60, maxFrameTime},
		{"clock went back", t0, t0.Add(-time.Second), 100, 0.01},
		{"default fps", time.Time{}, t0, 0, 1.0 / DefaultFPS},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := frameTime(tc.prev, tc.now, tc.fps)
			if diff := got - tc.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("frameTime = %v, expected %v", got, tc.want)
			}
		})
	}
}

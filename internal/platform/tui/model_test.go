package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

type fakeMusic struct {
	started []resource.Handle
	stopped int
	muted   bool
}

func (f *fakeMusic) StartMusic(h resource.Handle) { f.started = append(f.started, h) }
func (f *fakeMusic) StopMusic()                   { f.stopped++ }
func (f *fakeMusic) SetMuted(m bool)              { f.muted = m }
func (f *fakeMusic) Muted() bool                  { return f.muted }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelTickStepsGame(t *testing.T) {
	g := newTestGame(t)
	m := NewModel(g, Options{FPS: 60})
	t0 := time.Unix(1000, 0)

	m, cmd := update(t, m, TickMsg{ID: m.id, Time: t0})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.Frame() != 1 {
		t.Errorf("Frame = %d after one tick, expected 1", g.Frame())
	}

	m, _ = update(t, m, TickMsg{ID: m.id, Time: t0.Add(time.Second)})
	if m.elapsed < 1.0/60+maxFrameTime-1e-6 || m.elapsed > 1.0/60+maxFrameTime+1e-6 {
		t.Errorf("elapsed = %v, expected first frame plus clamped dt", m.elapsed)
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := newTestGame(t)
	m := NewModel(g, Options{})

	m, cmd := update(t, m, TickMsg{ID: m.id + 100, Time: time.Now()})
	if cmd != nil {
		t.Error("a tick for another model must not restart the loop")
	}
	if g.Frame() != 0 {
		t.Errorf("Frame = %d, expected 0", g.Frame())
	}
}

func TestModelConfirmStartsLevel(t *testing.T) {
	g := newTestGame(t)
	m := NewModel(g, Options{})

	m, _ = update(t, m, typeKey(tea.KeyEnter))
	update(t, m, TickMsg{ID: m.id, Time: time.Now()})
	if g.Phase() != breakout.PhaseActive {
		t.Errorf("Phase = %v, expected active", g.Phase())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	music := &fakeMusic{}

	m := NewModel(newTestGame(t), Options{Music: music})
	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	m = NewModel(newTestGame(t), Options{Music: music})
	m, cmd = update(t, m, typeKey(tea.KeyEscape))
	if !m.BackToMenu() || cmd == nil {
		t.Fatal("esc should leave the game")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Error("esc should emit BackMsg")
	}
	if music.stopped != 2 {
		t.Errorf("StopMusic called %d times, expected 2", music.stopped)
	}
}

func TestModelMusic(t *testing.T) {
	music := &fakeMusic{}
	g := newTestGame(t)
	m := NewModel(g, Options{Music: music})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start ticking")
	}
	if len(music.started) != 1 || music.started[0] != g.Music() {
		t.Errorf("started = %v, expected the game track", music.started)
	}

	m, _ = update(t, m, runeKey("m"))
	if !music.muted {
		t.Error("m should mute")
	}
	update(t, m, runeKey("m"))
	if music.muted {
		t.Error("second m should unmute")
	}
}

func TestModelSaveRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(newTestGame(t), Options{Store: store, Player: "ann"})

	m.saveRun(core.StepResult{RunEnded: true, FinalScore: 0, State: core.GameState{Level: 1}})
	m.saveRun(core.StepResult{RunEnded: true, FinalScore: 40, State: core.GameState{Level: 1}})
	m.saveRun(core.StepResult{RunEnded: true, FinalScore: 0, Won: true, State: core.GameState{Level: 2}})

	scores, err := store.TopScores(1, 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "ann" || scores[0].Score != 40 || scores[0].Won {
		t.Errorf("level 1 scores = %+v, expected one lost run of 40", scores)
	}
	won, _ := store.TopScores(2, 10)
	if len(won) != 1 || !won[0].Won {
		t.Errorf("level 2 scores = %+v, expected the won run", won)
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := NewModel(newTestGame(t), Options{Width: 40, Height: 12})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View should render the game")
	}
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/resource"
	"github.com/vovakirdan/breakthrough/internal/storage"
)

// MusicPlayer controls the background track and the mute switch.
type MusicPlayer interface {
	StartMusic(h resource.Handle)
	StopMusic()
	SetMuted(muted bool)
	Muted() bool
}

// Logger is the logging subset the frontend uses.
type Logger interface {
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Info(any, ...any) {}
func (nopLogger) Warn(any, ...any) {}

// Options configure a game model.
type Options struct {
	Store  *storage.Store // Optional, runs are not saved without it
	Music  MusicPlayer    // Optional
	Logger Logger
	Glyphs *resource.Table[rune] // Nil uses DefaultGlyphs

	Player     string
	FPS        int
	Width      int
	Height     int
	HoldWindow time.Duration
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Width <= 0 || o.Height <= 0 {
		cfg := core.DefaultConfig()
		o.Width, o.Height = cfg.ScreenW, cfg.ScreenH
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	if o.Glyphs == nil {
		o.Glyphs = DefaultGlyphs()
	}
	return o
}

// BackMsg is emitted when the player leaves the game with Back.
type BackMsg struct{}

var modelIDs atomic.Uint64

// Model is the Bubble Tea model that drives one game.
type Model struct {
	id        uint64
	game      *breakout.Game
	renderer  *Renderer
	screen    *core.Screen
	keys      *HeldKeys
	keyMapper *KeyMapper
	opts      Options

	last       time.Time
	elapsed    float32
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for a ready game.
func NewModel(game *breakout.Game, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		id:        modelIDs.Add(1),
		game:      game,
		renderer:  NewRenderer(opts.Glyphs),
		screen:    core.NewScreen(opts.Width, opts.Height),
		keys:      NewHeldKeys(opts.HoldWindow),
		keyMapper: NewKeyMapper(),
		opts:      opts,
	}
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	if m.opts.Music != nil {
		m.opts.Music.StartMusic(m.game.Music())
	}
	return tickCmd(m.id, m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case BackMsg:
		// Nobody above took over, so leaving the game ends the program
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.IsMuteToggle(msg) && m.opts.Music != nil {
		m.opts.Music.SetMuted(!m.opts.Music.Muted())
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.stop()
		m.backToMenu = true
		return m, func() tea.Msg { return BackMsg{} }
	}

	m.keys.Press(action, time.Now())
	return m, nil
}

func (m Model) stop() {
	m.keys.Release()
	if m.opts.Music != nil {
		m.opts.Music.StopMusic()
	}
}

// handleTick steps the simulation with the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.last, now, m.opts.FPS)
	m.last = now
	m.elapsed += dt

	result := m.game.Step(dt, m.keys.Frame(now))
	if result.RunEnded {
		m.saveRun(result)
	}

	return m, tickCmd(m.id, m.opts.FPS)
}

// saveRun stores a finished run. Scoreless losses are not recorded.
func (m Model) saveRun(result core.StepResult) {
	if m.opts.Store == nil || (result.FinalScore == 0 && !result.Won) {
		return
	}
	run := storage.Run{
		Player: m.opts.Player,
		Level:  result.State.Level,
		Score:  result.FinalScore,
		Won:    result.Won,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "player", run.Player, "level", run.Level, "score", run.Score, "won", run.Won)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game, m.elapsed)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breakthrough", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.screen, m.game, m.elapsed)
	return RenderScreen(m.screen)
}

// Game returns the driven game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or backs out.
func Run(game *breakout.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/levels"
	"github.com/vovakirdan/breakthrough/internal/storage"
)

func newTestGame(t *testing.T) *breakout.Game {
	t.Helper()
	lv, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	g, err := breakout.New(breakout.Options{
		Config:   config.DefaultBreakoutConfig(),
		Levels:   lv,
		Textures: DefaultGlyphs(),
		Seed:     1,
	})
	if err != nil {
		t.Fatalf("breakout.New() error: %v", err)
	}
	return g
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKey(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

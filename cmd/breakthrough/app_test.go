package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/breakthrough/internal/platform/gui"
	"github.com/vovakirdan/breakthrough/internal/platform/tui"
)

func TestLevelIndex(t *testing.T) {
	tests := []struct {
		flag    int
		want    int
		wantErr bool
	}{
		{0, 0, false},
		{1, 0, false},
		{4, 3, false},
		{5, 0, true},
		{-1, 0, true},
	}
	for _, tc := range tests {
		got, err := levelIndex(tc.flag, 4)
		if (err != nil) != tc.wantErr {
			t.Errorf("levelIndex(%d) error = %v, wantErr %v", tc.flag, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("levelIndex(%d) = %d, expected %d", tc.flag, got, tc.want)
		}
	}
}

func TestCheckLevelFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"valid text", write("ok.lvl", "2 3\n1 4\n"), false},
		{"valid yaml", write("ok.yaml", "name: Y\ntiles:\n  - [2, 2]\n"), false},
		{"ragged", write("ragged.lvl", "2 2\n2\n"), true},
		{"solid only", write("solid.lvl", "1 1\n"), true},
		{"unsupported", write("notes.md", "2 2\n"), true},
		{"missing", filepath.Join(dir, "none.lvl"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkLevelFile(tc.file)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkLevelFile() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewAppBuildsGames(t *testing.T) {
	dir := t.TempDir()
	flagDBPath = filepath.Join(dir, "scores.db")
	flagConfig = ""
	flagSeed = 7
	t.Cleanup(func() { flagSeed = 0 })

	a, err := newApp("easy", false)
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}
	defer a.close()

	if a.store == nil {
		t.Error("store should open in a temp dir")
	}
	if a.cfg.Gameplay.Lives != 5 {
		t.Errorf("lives = %d, expected the easy preset", a.cfg.Gameplay.Lives)
	}
	if len(a.levelNames()) != len(a.levels) || len(a.levels) == 0 {
		t.Errorf("levelNames() = %v", a.levelNames())
	}
	if got := a.levelName(99); got != "Level 100" {
		t.Errorf("levelName(99) = %q", got)
	}

	game, err := a.newGame(tui.DefaultGlyphs())
	if err != nil {
		t.Fatalf("newGame() error: %v", err)
	}
	if game.Lives() != 5 || len(game.Levels()) != len(a.levels) {
		t.Errorf("game lives = %d, levels = %d", game.Lives(), len(game.Levels()))
	}
	if _, err := a.newGame(gui.DefaultSprites()); err != nil {
		t.Errorf("newGame() with sprites error: %v", err)
	}
}

func TestNewAppRejectsUnknownDifficulty(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	if _, err := newApp("impossible", false); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

package breakout

import (
	"testing"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/levels"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// constRNG always draws the same value, clamped to the requested range.
type constRNG int

func (c constRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return min(int(c), n-1)
}

// soundRecorder collects played sound handles.
type soundRecorder struct {
	played []resource.Handle
}

func (s *soundRecorder) Play(h resource.Handle) {
	s.played = append(s.played, h)
}

func testTextures() *resource.Table[string] {
	tbl := resource.NewTable[string]()
	for _, name := range resource.TextureNames {
		tbl.Register(name, name)
	}
	return tbl
}

func testSounds() *resource.Table[string] {
	tbl := resource.NewTable[string]()
	for _, name := range resource.SoundNames {
		tbl.Register(name, name)
	}
	return tbl
}

// newTestGame builds a game over the given layouts with power-up spawning
// disabled (the RNG never draws zero).
func newTestGame(t *testing.T, layouts ...[][]uint) *Game {
	t.Helper()
	return newTestGameWith(t, constRNG(1000), nil, layouts...)
}

func newTestGameWith(t *testing.T, rng RNG, audio SoundPlayer, layouts ...[][]uint) *Game {
	t.Helper()

	lv := make([]levels.Level, 0, len(layouts))
	for i, tiles := range layouts {
		lv = append(lv, levels.Level{ID: string(rune('a' + i)), Name: string(rune('A' + i)), Tiles: tiles})
	}

	g, err := New(Options{
		Config:   config.DefaultBreakoutConfig(),
		Levels:   lv,
		Textures: testTextures(),
		Sounds:   testSounds(),
		Audio:    audio,
		RNG:      rng,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

// twoBricks is one row of two destructible tier-2 bricks. With the default
// 800x600 window each brick is 400x300.
var twoBricks = [][]uint{{2, 2}}

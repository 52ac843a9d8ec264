package breakout

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testLevelSprites = LevelSprites{Block: 1, BlockSolid: 2}

func TestNewGameLevelGeometry(t *testing.T) {
	l := NewGameLevel("test", [][]uint{{1, 2}, {0, 5}}, 200, 100, testLevelSprites)

	if len(l.Bricks) != 3 {
		t.Fatalf("len(Bricks) = %d, expected 3", len(l.Bricks))
	}

	tests := []struct {
		pos    mgl32.Vec2
		tile   uint
		solid  bool
		sprite uint32
	}{
		{mgl32.Vec2{0, 0}, 1, true, 2},
		{mgl32.Vec2{100, 0}, 2, false, 1},
		{mgl32.Vec2{100, 50}, 5, false, 1},
	}

	for i, tc := range tests {
		b := l.Bricks[i]
		if b.Position != tc.pos {
			t.Errorf("brick %d Position = %v, expected %v", i, b.Position, tc.pos)
		}
		if b.Size != (mgl32.Vec2{100, 50}) {
			t.Errorf("brick %d Size = %v, expected (100, 50)", i, b.Size)
		}
		if b.Tile != tc.tile || b.Solid != tc.solid {
			t.Errorf("brick %d tile=%d solid=%v, expected %d %v", i, b.Tile, b.Solid, tc.tile, tc.solid)
		}
		if uint32(b.Sprite) != tc.sprite {
			t.Errorf("brick %d Sprite = %d, expected %d", i, b.Sprite, tc.sprite)
		}
		if b.Color != TileColor(tc.tile) {
			t.Errorf("brick %d Color = %v, expected %v", i, b.Color, TileColor(tc.tile))
		}
	}
}

func TestGameLevelSolidOnlyIsCompleted(t *testing.T) {
	l := NewGameLevel("walls", [][]uint{{1, 1}, {1, 0}}, 200, 100, testLevelSprites)
	if !l.IsCompleted() {
		t.Error("level with only solid bricks should be completed")
	}
	if l.Remaining() != 0 {
		t.Errorf("Remaining = %d, expected 0", l.Remaining())
	}
}

func TestGameLevelLastBrickCompletes(t *testing.T) {
	l := NewGameLevel("one", [][]uint{{1, 3, 1}}, 300, 100, testLevelSprites)
	if l.IsCompleted() {
		t.Fatal("level with a standing brick should not be completed")
	}

	l.Bricks[1].Destroyed = true
	if !l.IsCompleted() {
		t.Error("destroying the sole destructible brick should complete the level")
	}
}

func TestGameLevelReset(t *testing.T) {
	l := NewGameLevel("reset", [][]uint{{1, 2, 3}, {4, 0, 5}}, 300, 100, testLevelSprites)
	fresh := append([]Brick(nil), l.Bricks...)

	l.Bricks[1].Destroyed = true
	l.Bricks[3].Destroyed = true
	l.Reset()

	if !reflect.DeepEqual(l.Bricks, fresh) {
		t.Error("Reset should reproduce the freshly built bricks")
	}
}

func TestGameLevelTilesCopy(t *testing.T) {
	tiles := [][]uint{{2, 2}}
	l := NewGameLevel("copy", tiles, 100, 50, testLevelSprites)

	tiles[0][0] = 0
	if len(l.Bricks) != 2 {
		t.Error("level should not alias the caller's tile grid")
	}
	got := l.Tiles()
	got[0][1] = 0
	l.Reset()
	if len(l.Bricks) != 2 {
		t.Error("Tiles should return a copy")
	}
}

func TestNewGameLevelRaggedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ragged tile grid should panic")
		}
	}()
	NewGameLevel("bad", [][]uint{{1, 2}, {1}}, 100, 100, testLevelSprites)
}

func TestBrickPoints(t *testing.T) {
	tests := []struct {
		tile  uint
		solid bool
		want  int
	}{
		{1, true, 0},
		{2, false, 10},
		{3, false, 20},
		{5, false, 40},
	}

	for _, tc := range tests {
		b := Brick{Tile: tc.tile}
		b.Solid = tc.solid
		if got := b.Points(); got != tc.want {
			t.Errorf("Points(tile %d) = %d, expected %d", tc.tile, got, tc.want)
		}
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(9) != White {
		t.Error("unknown tile code should be white")
	}
	seen := make(map[mgl32.Vec3]uint)
	for code := uint(1); code <= 5; code++ {
		c := TileColor(code)
		if prev, ok := seen[c]; ok {
			t.Errorf("tile %d shares color with tile %d", code, prev)
		}
		seen[c] = code
	}
}

package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/levels"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// Brick is a level block together with the tile code it was built from.
type Brick struct {
	GameObject
	Tile uint
}

// Points returns the score for destroying the brick.
func (b *Brick) Points() int {
	if b.Solid || b.Tile < 2 {
		return 0
	}
	return 10 * int(b.Tile-1)
}

// TileColor maps a tile code to its brick color.
func TileColor(code uint) mgl32.Vec3 {
	switch code {
	case levels.TileSolid:
		return mgl32.Vec3{0.8, 0.8, 0.7}
	case 2:
		return mgl32.Vec3{0.2, 0.6, 1.0}
	case 3:
		return mgl32.Vec3{0.0, 0.7, 0.0}
	case 4:
		return mgl32.Vec3{0.8, 0.8, 0.4}
	case 5:
		return mgl32.Vec3{1.0, 0.5, 0.0}
	default:
		return White
	}
}

// LevelSprites are the texture handles used for bricks.
type LevelSprites struct {
	Block      resource.Handle
	BlockSolid resource.Handle
}

// GameLevel is a brick layout scaled to a pixel area.
type GameLevel struct {
	Name   string
	Bricks []Brick

	tiles   [][]uint
	width   float32
	height  float32
	sprites LevelSprites
}

// NewGameLevel builds the bricks of a tile grid stretched over
// width x height pixels. The grid must be non-empty and rectangular;
// levels.Level.Validate checks that for loaded data.
func NewGameLevel(name string, tiles [][]uint, width, height float32, sprites LevelSprites) *GameLevel {
	assert(len(tiles) > 0 && len(tiles[0]) > 0, "level %q has no tiles", name)
	for i, row := range tiles {
		assert(len(row) == len(tiles[0]), "level %q row %d is ragged", name, i)
	}

	l := &GameLevel{
		Name:    name,
		tiles:   cloneTiles(tiles),
		width:   width,
		height:  height,
		sprites: sprites,
	}
	l.Reset()
	return l
}

// Reset rebuilds every brick from the stored tile grid.
func (l *GameLevel) Reset() {
	rows := len(l.tiles)
	cols := len(l.tiles[0])
	unitWidth := l.width / float32(cols)
	unitHeight := l.height / float32(rows)
	size := mgl32.Vec2{unitWidth, unitHeight}

	l.Bricks = make([]Brick, 0, rows*cols)
	for y, row := range l.tiles {
		for x, code := range row {
			if code == levels.TileEmpty {
				continue
			}

			pos := mgl32.Vec2{unitWidth * float32(x), unitHeight * float32(y)}
			sprite := l.sprites.Block
			if code == levels.TileSolid {
				sprite = l.sprites.BlockSolid
			}

			b := Brick{GameObject: NewGameObject(pos, size, sprite), Tile: code}
			b.Color = TileColor(code)
			b.Solid = code == levels.TileSolid
			l.Bricks = append(l.Bricks, b)
		}
	}
}

// IsCompleted reports whether every destructible brick is destroyed.
// Solid bricks never count.
func (l *GameLevel) IsCompleted() bool {
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			return false
		}
	}
	return true
}

// Remaining returns the number of destructible bricks still standing.
func (l *GameLevel) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Tiles returns a copy of the tile grid.
func (l *GameLevel) Tiles() [][]uint {
	return cloneTiles(l.tiles)
}

func cloneTiles(tiles [][]uint) [][]uint {
	out := make([][]uint, len(tiles))
	for i, row := range tiles {
		out[i] = append([]uint(nil), row...)
	}
	return out
}

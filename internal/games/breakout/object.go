// Package breakout implements the Breakout simulation: ball and paddle
// physics, brick levels, power-ups, particles and the game state machine.
// It knows nothing about terminals, windows or speakers; frontends feed it
// input and delta time and read its state back for drawing.
package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// White is the default tint of every object.
var White = mgl32.Vec3{1, 1, 1}

// GameObject is an axis-aligned rectangle entity. Position is the top-left
// corner in pixels.
type GameObject struct {
	Position  mgl32.Vec2
	Size      mgl32.Vec2
	Velocity  mgl32.Vec2
	Color     mgl32.Vec3
	Rotation  float32
	Solid     bool
	Destroyed bool
	Sprite    resource.Handle
}

// NewGameObject creates a white, non-solid object.
func NewGameObject(pos, size mgl32.Vec2, sprite resource.Handle) GameObject {
	return GameObject{
		Position: pos,
		Size:     size,
		Color:    White,
		Sprite:   sprite,
	}
}

// Bounds returns the object rectangle.
func (o *GameObject) Bounds() core.Rect {
	return core.Rect{Pos: o.Position, Size: o.Size}
}

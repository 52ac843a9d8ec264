// Package gui is the windowed frontend of the game, built on Ebitengine.
// It draws the world with vector shapes into an offscreen image and
// composes that image onto the window with the active screen effects.
package gui

import (
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// Shape selects how a sprite is drawn.
type Shape int

const (
	ShapeNone   Shape = iota // Not drawn
	ShapeRect                // Filled rectangle
	ShapeBlock               // Filled rectangle with a darker border
	ShapeCircle              // Circle inscribed in the object box
	ShapeDot                 // Small square, for particles
)

// Sprite describes one texture. Label is printed on top of the shape.
type Sprite struct {
	Shape Shape
	Label string
}

// DefaultSprites returns the sprite of every texture the game requires.
func DefaultSprites() *resource.Table[Sprite] {
	t := resource.NewTable[Sprite]()
	t.Register(resource.TextureBackground, Sprite{Shape: ShapeNone})
	t.Register(resource.TextureFace, Sprite{Shape: ShapeCircle})
	t.Register(resource.TextureBlock, Sprite{Shape: ShapeBlock})
	t.Register(resource.TextureBlockSolid, Sprite{Shape: ShapeRect})
	t.Register(resource.TexturePaddle, Sprite{Shape: ShapeRect})
	t.Register(resource.TextureParticle, Sprite{Shape: ShapeDot})
	t.Register(resource.TexturePowerSpeed, Sprite{Shape: ShapeBlock, Label: "SPEED"})
	t.Register(resource.TexturePowerSticky, Sprite{Shape: ShapeBlock, Label: "STICKY"})
	t.Register(resource.TexturePowerPassThru, Sprite{Shape: ShapeBlock, Label: "PASS"})
	t.Register(resource.TexturePowerIncrease, Sprite{Shape: ShapeBlock, Label: "PAD+"})
	t.Register(resource.TexturePowerConfuse, Sprite{Shape: ShapeBlock, Label: "CONFUSE"})
	t.Register(resource.TexturePowerChaos, Sprite{Shape: ShapeBlock, Label: "CHAOS"})
	return t
}

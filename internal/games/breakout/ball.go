package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/resource"
)

// BallObject is the ball. Its box is 2*Radius on both axes and the circle
// center sits at Position + Radius.
type BallObject struct {
	GameObject
	Radius float32

	// Stuck balls follow the paddle and are not integrated.
	Stuck bool
	// Sticky balls become stuck again on paddle contact.
	Sticky bool
	// PassThrough balls destroy non-solid bricks without bouncing.
	PassThrough bool
}

// NewBall creates a ball that starts stuck to the paddle.
func NewBall(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2, sprite resource.Handle) *BallObject {
	b := &BallObject{
		GameObject: NewGameObject(pos, mgl32.Vec2{radius * 2, radius * 2}, sprite),
		Radius:     radius,
		Stuck:      true,
	}
	b.Velocity = velocity
	return b
}

// Center returns the circle center.
func (b *BallObject) Center() mgl32.Vec2 {
	return b.Position.Add(mgl32.Vec2{b.Radius, b.Radius})
}

// Move integrates the ball position and bounces it off the left, right and
// top edges of a playfield of the given width. There is no bottom edge: a
// ball that falls out is handled by the game as a lost life.
func (b *BallObject) Move(dt, width float32) mgl32.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Position.X() <= 0 {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = 0
	} else if b.Position.X()+b.Size.X() >= width {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = width - b.Size.X()
	}
	if b.Position.Y() <= 0 {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] = 0
	}

	return b.Position
}

// Reset places the ball and sticks it to the paddle.
func (b *BallObject) Reset(pos, velocity mgl32.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
}

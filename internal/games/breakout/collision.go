package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/core"
)

// Direction is the compass side a collision vector points to.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// compass is scanned in this order; on equal dot products the earlier
// entry wins.
var compass = [4]mgl32.Vec2{
	{0, 1},  // up
	{1, 0},  // right
	{0, -1}, // down
	{-1, 0}, // left
}

// Collision is the result of a circle-vs-box test.
type Collision struct {
	IsCollision bool
	Direction   Direction
	// Difference points from the circle center to the closest point on the box.
	Difference mgl32.Vec2
}

// noCollision is returned for every miss.
var noCollision = Collision{IsCollision: false, Direction: DirUp}

// CheckCollision is the AABB-vs-AABB test. Touching edges collide.
func CheckCollision(one, two *GameObject) bool {
	return one.Bounds().Intersects(two.Bounds())
}

// CheckBallCollision tests the ball circle against a box. The circle
// collides when the box point closest to its center is strictly closer
// than the radius.
func CheckBallCollision(ball *BallObject, box *GameObject) Collision {
	center := ball.Center()

	bounds := box.Bounds()
	half := bounds.HalfExtents()
	boxCenter := bounds.Center()

	offset := center.Sub(boxCenter)
	closest := boxCenter.Add(core.ClampVec2(offset, half))
	difference := closest.Sub(center)

	if difference.Len() >= ball.Radius {
		return noCollision
	}

	// With the center inside the box the closest point is the center itself
	// and the difference carries no direction. Classify from the offset
	// between the centers instead.
	probe := difference
	if probe.Len() == 0 {
		probe = offset.Mul(-1)
	}
	dir := DirUp
	if probe.Len() > 0 {
		dir = VectorDirection(probe)
	}

	return Collision{IsCollision: true, Direction: dir, Difference: difference}
}

// VectorDirection classifies a vector into one of the four compass
// directions by the largest dot product with the unit axes. Only the
// direction of target matters. A vector without any positive component
// (the zero vector) has no direction and panics.
func VectorDirection(target mgl32.Vec2) Direction {
	norm := target.Normalize()

	var max float32
	best := -1
	for i, axis := range compass {
		dot := norm.Dot(axis)
		if dot > max {
			max = dot
			best = i
		}
	}

	assert(best >= 0, "no direction for vector %v", target)
	return Direction(best)
}

// ResolveBallCollision reflects the ball off a box it collided with and
// pushes it out of the box along the collision axis.
func ResolveBallCollision(ball *BallObject, c Collision) {
	switch c.Direction {
	case DirLeft, DirRight:
		ball.Velocity[0] = -ball.Velocity[0]
		penetration := ball.Radius - core.Abs32(c.Difference.X())
		if c.Direction == DirLeft {
			ball.Position[0] += penetration
		} else {
			ball.Position[0] -= penetration
		}
	default:
		ball.Velocity[1] = -ball.Velocity[1]
		penetration := ball.Radius - core.Abs32(c.Difference.Y())
		if c.Direction == DirUp {
			ball.Position[1] -= penetration
		} else {
			ball.Position[1] += penetration
		}
	}
}

// BouncePaddle redirects the ball after it hit the paddle. The further from
// the paddle center the ball lands, the more horizontal speed it gets; the
// overall speed is preserved and the ball always leaves upward.
func BouncePaddle(ball *BallObject, paddle *GameObject, initialVelocityX, strength float32) {
	halfWidth := paddle.Size.X() / 2
	centerBoard := paddle.Position.X() + halfWidth
	distance := ball.Position.X() + ball.Radius - centerBoard
	percentage := distance / halfWidth

	oldVelocity := ball.Velocity
	speed := oldVelocity.Len()

	v := mgl32.Vec2{initialVelocityX * percentage * strength, oldVelocity.Y()}
	if v.Len() > 0 {
		v = v.Normalize().Mul(speed)
	}
	v[1] = -core.Abs32(v.Y())

	ball.Velocity = v
}

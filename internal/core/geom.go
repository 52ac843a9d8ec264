// Package core provides the small shared vocabulary of the game: world
// geometry, colors, semantic input actions and the character screen buffer
// used by the terminal frontend. It does not import any UI toolkit so the
// simulation stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned box in world units (pixels). Position is the
// top-left corner, Y grows downward.
type Rect struct {
	Pos  mgl32.Vec2
	Size mgl32.Vec2
}

// NewRect creates a rectangle from its corner and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.Pos.X() + r.Size.X()
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Pos.Y() + r.Size.Y()
}

// HalfExtents returns half of the rectangle size.
func (r Rect) HalfExtents() mgl32.Vec2 {
	return r.Size.Mul(0.5)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl32.Vec2 {
	return r.Pos.Add(r.HalfExtents())
}

// Intersects reports whether two rectangles overlap on both axes.
// Touching edges count as overlap.
func (r Rect) Intersects(other Rect) bool {
	overlapX := r.Right() >= other.Pos.X() && other.Right() >= r.Pos.X()
	overlapY := r.Bottom() >= other.Pos.Y() && other.Bottom() >= r.Pos.Y()
	return overlapX && overlapY
}

// Contains reports whether the point lies inside the rectangle
// (left/top edges inclusive, right/bottom exclusive).
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Pos.X() && p.X() < r.Right() && p.Y() >= r.Pos.Y() && p.Y() < r.Bottom()
}

// ClampVec2 clamps each component of v to [-limit, +limit] of the
// matching component of limit.
func ClampVec2(v, limit mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mgl32.Clamp(v.X(), -limit.X(), limit.X()),
		mgl32.Clamp(v.Y(), -limit.Y(), limit.Y()),
	}
}

// Abs32 returns the absolute value of a float32.
func Abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

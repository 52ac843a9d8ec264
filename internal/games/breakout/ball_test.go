package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBallStuckDoesNotMove(t *testing.T) {
	b := NewBall(mgl32.Vec2{100, 200}, 12.5, mgl32.Vec2{100, -350}, 0)

	for _, dt := range []float32{0, 0.016, 1, 100} {
		got := b.Move(dt, 800)
		if got != (mgl32.Vec2{100, 200}) || b.Position != (mgl32.Vec2{100, 200}) {
			t.Errorf("Move(%v) moved stuck ball to %v", dt, got)
		}
		if b.Velocity != (mgl32.Vec2{100, -350}) {
			t.Errorf("Move(%v) changed velocity to %v", dt, b.Velocity)
		}
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl32.Vec2
		vel     mgl32.Vec2
		wantPos mgl32.Vec2
		wantVel mgl32.Vec2
	}{
		{
			name:    "left wall",
			pos:     mgl32.Vec2{-5, 300},
			vel:     mgl32.Vec2{-100, 0},
			wantPos: mgl32.Vec2{0, 300},
			wantVel: mgl32.Vec2{100, 0},
		},
		{
			name:    "right wall",
			pos:     mgl32.Vec2{790, 300},
			vel:     mgl32.Vec2{100, 0},
			wantPos: mgl32.Vec2{775, 300},
			wantVel: mgl32.Vec2{-100, 0},
		},
		{
			name:    "top wall",
			pos:     mgl32.Vec2{400, 1},
			vel:     mgl32.Vec2{0, -100},
			wantPos: mgl32.Vec2{400, 0},
			wantVel: mgl32.Vec2{0, 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(tc.pos, 12.5, tc.vel, 0)
			b.Stuck = false

			b.Move(0.016, 800)

			if b.Position != tc.wantPos {
				t.Errorf("Position = %v, expected %v", b.Position, tc.wantPos)
			}
			if b.Velocity != tc.wantVel {
				t.Errorf("Velocity = %v, expected %v", b.Velocity, tc.wantVel)
			}
		})
	}
}

func TestBallNoBottomWall(t *testing.T) {
	b := NewBall(mgl32.Vec2{400, 700}, 12.5, mgl32.Vec2{0, 100}, 0)
	b.Stuck = false

	b.Move(0.5, 800)

	if b.Position.Y() != 750 || b.Velocity.Y() != 100 {
		t.Errorf("ball below the field should keep falling, got pos %v vel %v", b.Position, b.Velocity)
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(mgl32.Vec2{}, 10, mgl32.Vec2{}, 0)
	b.Stuck = false

	b.Reset(mgl32.Vec2{1, 2}, mgl32.Vec2{3, 4})

	if !b.Stuck {
		t.Error("Reset should stick the ball")
	}
	if b.Position != (mgl32.Vec2{1, 2}) || b.Velocity != (mgl32.Vec2{3, 4}) {
		t.Errorf("Reset placed ball at %v with %v", b.Position, b.Velocity)
	}
	if b.Center() != (mgl32.Vec2{11, 12}) {
		t.Errorf("Center = %v, expected (11, 12)", b.Center())
	}
}

package breakout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func box(x, y, w, h float32) *GameObject {
	o := NewGameObject(mgl32.Vec2{x, y}, mgl32.Vec2{w, h}, 0)
	return &o
}

func ballAt(cx, cy, r float32) *BallObject {
	return NewBall(mgl32.Vec2{cx - r, cy - r}, r, mgl32.Vec2{}, 0)
}

func TestCheckCollisionSeparated(t *testing.T) {
	a := box(0, 0, 10, 10)

	for _, gap := range []float32{0.001, 0.5, 1, 100} {
		right := box(10+gap, 0, 10, 10)
		below := box(0, 10+gap, 10, 10)
		diagonal := box(10+gap, 10+gap, 10, 10)

		for _, b := range []*GameObject{right, below, diagonal} {
			if CheckCollision(a, b) || CheckCollision(b, a) {
				t.Errorf("separated boxes collide: %v vs %v", a.Bounds(), b.Bounds())
			}
		}
	}
}

func TestCheckCollisionTouching(t *testing.T) {
	a := box(0, 0, 10, 10)

	if !CheckCollision(a, box(10, 0, 10, 10)) {
		t.Error("boxes sharing an edge should collide")
	}
	if !CheckCollision(a, box(10, 10, 5, 5)) {
		t.Error("boxes sharing a corner should collide")
	}
	if !CheckCollision(a, box(2, 2, 3, 3)) {
		t.Error("contained box should collide")
	}
}

func TestCheckBallCollisionCenterInside(t *testing.T) {
	b := box(100, 100, 50, 20)

	centers := []mgl32.Vec2{
		{125, 110}, // exact center
		{101, 101},
		{149, 119},
		{130, 105},
	}
	for _, c := range centers {
		for _, r := range []float32{0.5, 5, 12.5} {
			got := CheckBallCollision(ballAt(c.X(), c.Y(), r), b)
			if !got.IsCollision {
				t.Errorf("center %v inside box with radius %v should collide", c, r)
			}
		}
	}
}

func TestCheckBallCollisionMiss(t *testing.T) {
	b := box(100, 100, 50, 20)

	got := CheckBallCollision(ballAt(125, 80, 10), b)
	want := Collision{IsCollision: false, Direction: DirUp, Difference: mgl32.Vec2{}}
	if got != want {
		t.Errorf("miss = %+v, expected %+v", got, want)
	}

	// Distance exactly equal to the radius does not collide
	got = CheckBallCollision(ballAt(125, 90, 10), b)
	if got.IsCollision {
		t.Error("distance equal to radius should not collide")
	}
}

func TestCheckBallCollisionDirections(t *testing.T) {
	b := box(100, 100, 50, 20)

	tests := []struct {
		name   string
		cx, cy float32
		want   Direction
	}{
		{"ball above", 125, 92, DirUp},
		{"ball below", 125, 128, DirDown},
		{"ball left", 92, 110, DirRight},
		{"ball right", 158, 110, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := CheckBallCollision(ballAt(tc.cx, tc.cy, 10), b)
			if !c.IsCollision {
				t.Fatal("expected collision")
			}
			if c.Direction != tc.want {
				t.Errorf("Direction = %s, expected %s", c.Direction, tc.want)
			}
		})
	}
}

func TestVectorDirection(t *testing.T) {
	tests := []struct {
		v    mgl32.Vec2
		want Direction
	}{
		{mgl32.Vec2{0, 1}, DirUp},
		{mgl32.Vec2{1, 0}, DirRight},
		{mgl32.Vec2{0, -1}, DirDown},
		{mgl32.Vec2{-1, 0}, DirLeft},
		{mgl32.Vec2{0.2, 5}, DirUp},
		{mgl32.Vec2{-7, 0.5}, DirLeft},
		// Exact ties keep the first compass entry in scan order
		{mgl32.Vec2{1, 1}, DirUp},
		{mgl32.Vec2{1, -1}, DirRight},
		{mgl32.Vec2{-1, -1}, DirDown},
		{mgl32.Vec2{-1, 1}, DirUp},
	}

	for _, tc := range tests {
		if got := VectorDirection(tc.v); got != tc.want {
			t.Errorf("VectorDirection(%v) = %s, expected %s", tc.v, got, tc.want)
		}
	}
}

func TestVectorDirectionScaleInvariant(t *testing.T) {
	vectors := []mgl32.Vec2{{3, 1}, {-2, 5}, {0.1, -0.4}, {-9, -1}, {1, 1}}
	scales := []float32{0.001, 0.5, 2, 1000}

	for _, v := range vectors {
		base := VectorDirection(v)
		for _, k := range scales {
			if got := VectorDirection(v.Mul(k)); got != base {
				t.Errorf("VectorDirection(%v * %v) = %s, expected %s", v, k, got, base)
			}
		}
	}
}

func TestVectorDirectionZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("VectorDirection(0, 0) should panic")
		}
	}()
	VectorDirection(mgl32.Vec2{})
}

func TestResolveBallCollisionVertical(t *testing.T) {
	b := box(100, 100, 50, 20)
	ball := ballAt(125, 92, 10)
	ball.Velocity = mgl32.Vec2{30, 100}

	c := CheckBallCollision(ball, b)
	ResolveBallCollision(ball, c)

	if ball.Velocity != (mgl32.Vec2{30, -100}) {
		t.Errorf("Velocity = %v, expected (30, -100)", ball.Velocity)
	}
	// Penetration 10 - 8 = 2, pushed up
	if ball.Position.Y() != 80 {
		t.Errorf("Position.Y = %v, expected 80", ball.Position.Y())
	}
}

func TestResolveBallCollisionHorizontal(t *testing.T) {
	b := box(100, 100, 50, 20)

	// Ball on the left moving right: pushed back to the left
	left := ballAt(92, 110, 10)
	left.Velocity = mgl32.Vec2{100, 20}
	ResolveBallCollision(left, CheckBallCollision(left, b))
	if left.Velocity != (mgl32.Vec2{-100, 20}) {
		t.Errorf("Velocity = %v, expected (-100, 20)", left.Velocity)
	}
	if left.Position.X() != 80 {
		t.Errorf("Position.X = %v, expected 80", left.Position.X())
	}

	// Ball on the right moving left: pushed back to the right
	right := ballAt(158, 110, 10)
	right.Velocity = mgl32.Vec2{-100, 20}
	ResolveBallCollision(right, CheckBallCollision(right, b))
	if right.Velocity != (mgl32.Vec2{100, 20}) {
		t.Errorf("Velocity = %v, expected (100, 20)", right.Velocity)
	}
	if right.Position.X() != 150 {
		t.Errorf("Position.X = %v, expected 150", right.Position.X())
	}
}

func TestBouncePaddle(t *testing.T) {
	paddle := box(350, 580, 100, 20)

	tests := []struct {
		name     string
		ballX    float32 // circle center x
		velocity mgl32.Vec2
		wantSign float32 // sign of resulting vx, 0 for straight up
	}{
		{"center hit", 400, mgl32.Vec2{0, 350}, 0},
		{"right half", 425, mgl32.Vec2{-50, 350}, 1},
		{"left half", 370, mgl32.Vec2{80, 350}, -1},
		{"outside right edge", 460, mgl32.Vec2{0, 350}, 1},
		{"moving up already", 410, mgl32.Vec2{100, -200}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := ballAt(tc.ballX, 575, 12.5)
			ball.Velocity = tc.velocity
			speed := tc.velocity.Len()

			BouncePaddle(ball, paddle, 100, 2)

			if ball.Velocity.Y() > 0 {
				t.Errorf("Velocity.Y = %v, expected <= 0", ball.Velocity.Y())
			}
			if d := ball.Velocity.Len() - speed; d > 0.01 || d < -0.01 {
				t.Errorf("speed changed from %v to %v", speed, ball.Velocity.Len())
			}
			switch {
			case tc.wantSign == 0 && ball.Velocity.X() != 0:
				t.Errorf("Velocity.X = %v, expected 0", ball.Velocity.X())
			case tc.wantSign > 0 && ball.Velocity.X() <= 0:
				t.Errorf("Velocity.X = %v, expected > 0", ball.Velocity.X())
			case tc.wantSign < 0 && ball.Velocity.X() >= 0:
				t.Errorf("Velocity.X = %v, expected < 0", ball.Velocity.X())
			}
		})
	}
}

func TestBouncePaddleNeverDownward(t *testing.T) {
	paddle := box(350, 580, 100, 20)

	for x := float32(330); x <= 470; x += 7 {
		for _, v := range []mgl32.Vec2{{0, 350}, {200, 300}, {-300, 10}, {50, -350}} {
			ball := ballAt(x, 575, 12.5)
			ball.Velocity = v
			BouncePaddle(ball, paddle, 100, 2)
			if ball.Velocity.Y() > 0 {
				t.Fatalf("x=%v v=%v: bounced downward %v", x, v, ball.Velocity)
			}
		}
	}
}

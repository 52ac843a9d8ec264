package breakout

import "math"

// Snapshot flattens the game state into primitive values for determinism
// checks and debugging dumps.
type Snapshot struct {
	Frame  uint64
	Phase  int
	Level  int
	Lives  int
	Score  int
	Paused bool

	PaddleX, PaddleY, PaddleW float32

	BallX, BallY   float32
	BallVX, BallVY float32
	// BallFlags packs Stuck (1), Sticky (2) and PassThrough (4).
	BallFlags int

	// EffectFlags packs Shake (1), Confuse (2) and Chaos (4).
	EffectFlags int

	// Destroyed flag per brick of the current level, in brick order.
	BrickData []bool

	// Each power-up is 5 values: Type, X, Y, Duration, Flags
	// (Destroyed 1, Activated 2).
	PowerUpCount int
	PowerUpData  []float32

	LiveParticles int

	// RNG state, zero when the game uses a custom RNG.
	RNGState uint64
}

func flags(bits ...bool) int {
	v := 0
	for i, b := range bits {
		if b {
			v |= 1 << i
		}
	}
	return v
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	level := g.levels[g.level]
	brickData := make([]bool, len(level.Bricks))
	for i := range level.Bricks {
		brickData[i] = level.Bricks[i].Destroyed
	}

	powerUpData := make([]float32, 0, len(g.powerUps)*5)
	for _, p := range g.powerUps {
		powerUpData = append(powerUpData,
			float32(p.Type),
			p.Position.X(),
			p.Position.Y(),
			p.Duration,
			float32(flags(p.Destroyed, p.Activated)),
		)
	}

	snap := Snapshot{
		Frame:  g.frame,
		Phase:  int(g.phase),
		Level:  g.level,
		Lives:  g.lives,
		Score:  g.score,
		Paused: g.paused,

		PaddleX: g.player.Position.X(),
		PaddleY: g.player.Position.Y(),
		PaddleW: g.player.Size.X(),

		BallX:     g.ball.Position.X(),
		BallY:     g.ball.Position.Y(),
		BallVX:    g.ball.Velocity.X(),
		BallVY:    g.ball.Velocity.Y(),
		BallFlags: flags(g.ball.Stuck, g.ball.Sticky, g.ball.PassThrough),

		EffectFlags: flags(g.effects.Shake, g.effects.Confuse, g.effects.Chaos),

		BrickData:     brickData,
		PowerUpCount:  len(g.powerUps),
		PowerUpData:   powerUpData,
		LiveParticles: g.particles.Live(),
	}
	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float32) { mix(uint64(math.Float32bits(f))) }

	mix(uint64(snap.Phase))  //#nosec G115 -- hash computation
	mix(uint64(snap.Level))  //#nosec G115 -- hash computation
	mix(uint64(snap.Lives))  //#nosec G115 -- hash computation
	mix(uint64(snap.Score))  //#nosec G115 -- hash computation
	mix(uint64(flags(snap.Paused)))
	mixF(snap.PaddleX)
	mixF(snap.PaddleY)
	mixF(snap.PaddleW)
	mixF(snap.BallX)
	mixF(snap.BallY)
	mixF(snap.BallVX)
	mixF(snap.BallVY)
	mix(uint64(snap.BallFlags))   //#nosec G115 -- hash computation
	mix(uint64(snap.EffectFlags)) //#nosec G115 -- hash computation

	for _, d := range snap.BrickData {
		mix(uint64(flags(d)))
	}

	mix(uint64(snap.PowerUpCount)) //#nosec G115 -- hash computation
	for _, v := range snap.PowerUpData {
		mixF(v)
	}

	mix(uint64(snap.LiveParticles)) //#nosec G115 -- hash computation
	mix(snap.RNGState)

	return h
}

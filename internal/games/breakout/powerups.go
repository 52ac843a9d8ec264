package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// PowerUpType represents the kinds of power-ups.
type PowerUpType int

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpSticky
	PowerUpPassThrough
	PowerUpPadSizeIncrease
	PowerUpConfuse
	PowerUpChaos
	PowerUpCount // Sentinel for counting types
)

// String returns the config key of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return config.PowerUpSpeed
	case PowerUpSticky:
		return config.PowerUpSticky
	case PowerUpPassThrough:
		return config.PowerUpPassThrough
	case PowerUpPadSizeIncrease:
		return config.PowerUpPadIncrease
	case PowerUpConfuse:
		return config.PowerUpConfuse
	case PowerUpChaos:
		return config.PowerUpChaos
	default:
		return "unknown"
	}
}

// Color returns the tint of the falling power-up block.
func (t PowerUpType) Color() mgl32.Vec3 {
	switch t {
	case PowerUpSpeed:
		return mgl32.Vec3{0.5, 0.5, 1.0}
	case PowerUpSticky:
		return mgl32.Vec3{1.0, 0.5, 1.0}
	case PowerUpPassThrough:
		return mgl32.Vec3{0.5, 1.0, 0.5}
	case PowerUpPadSizeIncrease:
		return mgl32.Vec3{1.0, 0.6, 0.4}
	case PowerUpConfuse:
		return mgl32.Vec3{1.0, 0.3, 0.3}
	case PowerUpChaos:
		return mgl32.Vec3{0.9, 0.25, 0.25}
	default:
		return White
	}
}

// Texture returns the resource name of the power-up sprite.
func (t PowerUpType) Texture() string {
	switch t {
	case PowerUpSpeed:
		return resource.TexturePowerSpeed
	case PowerUpSticky:
		return resource.TexturePowerSticky
	case PowerUpPassThrough:
		return resource.TexturePowerPassThru
	case PowerUpPadSizeIncrease:
		return resource.TexturePowerIncrease
	case PowerUpConfuse:
		return resource.TexturePowerConfuse
	default:
		return resource.TexturePowerChaos
	}
}

// Ball tints while an effect is active.
var (
	StickyTint      = mgl32.Vec3{1.0, 0.5, 1.0}
	PassThroughTint = mgl32.Vec3{1.0, 0.5, 0.5}
)

// PowerUp is a falling block that applies an effect when the paddle
// catches it. Timed effects count Duration down while Activated.
type PowerUp struct {
	GameObject
	Type      PowerUpType
	Duration  float32
	Activated bool
}

// powerUpKind is one spawnable entry resolved from config.
type powerUpKind struct {
	typ      PowerUpType
	chance   int
	duration float32
	sprite   resource.Handle
}

// spawnPowerUps rolls every kind independently for a destroyed brick.
// A kind with chance N spawns when a draw from [0, N) is zero.
func (g *Game) spawnPowerUps(block *GameObject) {
	size := mgl32.Vec2{g.cfg.PowerUps.Width, g.cfg.PowerUps.Height}
	velocity := mgl32.Vec2{0, g.cfg.PowerUps.FallSpeed}

	for _, k := range g.kinds {
		if k.chance <= 0 || g.rng.Intn(k.chance) != 0 {
			continue
		}

		p := &PowerUp{
			GameObject: NewGameObject(block.Position, size, k.sprite),
			Type:       k.typ,
			Duration:   k.duration,
		}
		p.Color = k.typ.Color()
		p.Velocity = velocity
		g.powerUps = append(g.powerUps, p)

		g.log.Debug("power-up spawned", "type", k.typ, "x", block.Position.X(), "y", block.Position.Y())
	}
}

// collectPowerUps is the single per-frame pickup pass: power-ups below the
// playfield are dropped, those touching the paddle are activated.
func (g *Game) collectPowerUps() {
	for _, p := range g.powerUps {
		if p.Destroyed {
			continue
		}
		if p.Position.Y() >= g.height {
			p.Destroyed = true
		} else if CheckCollision(g.player, &p.GameObject) {
			g.activatePowerUp(p)
			p.Destroyed = true
			p.Activated = true
			g.playSound(g.sounds.powerUp)
		}
	}
}

// activatePowerUp applies the effect of a caught power-up.
func (g *Game) activatePowerUp(p *PowerUp) {
	switch p.Type {
	case PowerUpSpeed:
		g.ball.Velocity = g.ball.Velocity.Mul(g.cfg.PowerUps.SpeedMultiplier)
	case PowerUpSticky:
		g.ball.Sticky = true
	case PowerUpPassThrough:
		g.ball.PassThrough = true
	case PowerUpPadSizeIncrease:
		g.player.Size[0] += g.cfg.PowerUps.PadIncrease
	case PowerUpConfuse:
		if !g.effects.Chaos {
			g.effects.Confuse = true
		}
	case PowerUpChaos:
		if !g.effects.Confuse {
			g.effects.Chaos = true
		}
	}
	g.refreshBallTint()

	g.log.Info("power-up activated", "type", p.Type, "duration", p.Duration)
}

// updatePowerUps moves falling power-ups, counts active ones down and
// removes the ones that are both gone from the field and expired.
func (g *Game) updatePowerUps(dt float32) {
	for _, p := range g.powerUps {
		if !p.Destroyed {
			p.Position = p.Position.Add(p.Velocity.Mul(dt))
		}
		if !p.Activated {
			continue
		}

		p.Duration -= dt
		if p.Duration > 0 {
			continue
		}

		p.Activated = false
		// Another power-up of the same type keeps the effect alive.
		if g.isPowerUpActive(p.Type) {
			continue
		}
		switch p.Type {
		case PowerUpSticky:
			g.ball.Sticky = false
		case PowerUpPassThrough:
			g.ball.PassThrough = false
		case PowerUpConfuse:
			g.effects.Confuse = false
		case PowerUpChaos:
			g.effects.Chaos = false
		default:
			// One-shot effects stay applied
			continue
		}
		g.refreshBallTint()
		g.log.Info("power-up expired", "type", p.Type)
	}

	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if !(p.Destroyed && !p.Activated) {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(g.powerUps); i++ {
		g.powerUps[i] = nil
	}
	g.powerUps = kept
}

// isPowerUpActive reports whether any activated power-up has the type.
func (g *Game) isPowerUpActive(t PowerUpType) bool {
	for _, p := range g.powerUps {
		if p.Activated && p.Type == t {
			return true
		}
	}
	return false
}

// refreshBallTint colors the ball after its active effects, pass-through
// taking precedence over sticky.
func (g *Game) refreshBallTint() {
	switch {
	case g.ball.PassThrough:
		g.ball.Color = PassThroughTint
	case g.ball.Sticky:
		g.ball.Color = StickyTint
	default:
		g.ball.Color = White
	}
}

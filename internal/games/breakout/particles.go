package breakout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/resource"
)

// Particle is a single short-lived trail sprite.
type Particle struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Color    mgl32.Vec4
	Life     float32
}

// Alive reports whether the particle should still be drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// ParticleGenerator owns a fixed pool of particles that trail an object.
type ParticleGenerator struct {
	particles []Particle
	lastUsed  int
	rng       RNG
	Sprite    resource.Handle
}

// NewParticleGenerator allocates a pool of amount dead particles.
func NewParticleGenerator(amount int, rng RNG, sprite resource.Handle) *ParticleGenerator {
	return &ParticleGenerator{
		particles: make([]Particle, amount),
		rng:       rng,
		Sprite:    sprite,
	}
}

// Update respawns newParticles particles at obj and ages the whole pool.
func (g *ParticleGenerator) Update(dt float32, obj *GameObject, newParticles int, offset mgl32.Vec2) {
	if len(g.particles) == 0 {
		return
	}

	for i := 0; i < newParticles; i++ {
		g.respawn(&g.particles[g.firstUnused()], obj, offset)
	}

	for i := range g.particles {
		p := &g.particles[i]
		p.Life -= dt
		if p.Life > 0 {
			p.Position = p.Position.Sub(p.Velocity.Mul(dt))
			p.Color[3] -= dt * 2.5
		}
	}
}

// Particles returns the pool. Callers must skip dead particles.
func (g *ParticleGenerator) Particles() []Particle {
	return g.particles
}

// Live returns the number of particles still alive.
func (g *ParticleGenerator) Live() int {
	n := 0
	for i := range g.particles {
		if g.particles[i].Alive() {
			n++
		}
	}
	return n
}

// firstUnused searches from the last used slot first since dead particles
// tend to cluster right after it. When every particle is alive the first
// one gets overwritten.
func (g *ParticleGenerator) firstUnused() int {
	for i := g.lastUsed; i < len(g.particles); i++ {
		if g.particles[i].Life <= 0 {
			g.lastUsed = i
			return i
		}
	}
	for i := 0; i < g.lastUsed; i++ {
		if g.particles[i].Life <= 0 {
			g.lastUsed = i
			return i
		}
	}
	g.lastUsed = 0
	return 0
}

func (g *ParticleGenerator) respawn(p *Particle, obj *GameObject, offset mgl32.Vec2) {
	jitter := float32(g.rng.Intn(100)-50) / 10
	grey := 0.5 + float32(g.rng.Intn(100))/100

	p.Position = obj.Position.Add(mgl32.Vec2{jitter, jitter}).Add(offset)
	p.Color = mgl32.Vec4{grey, grey, grey, 1}
	p.Life = 1
	p.Velocity = obj.Velocity.Mul(0.1)
}

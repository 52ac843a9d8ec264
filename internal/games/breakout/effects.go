package breakout

// PostEffects holds the full-screen effect flags the renderer applies on
// top of the scene.
type PostEffects struct {
	Shake   bool
	Confuse bool
	Chaos   bool

	shakeTime float32
}

// TriggerShake starts (or restarts) a shake lasting d seconds.
func (p *PostEffects) TriggerShake(d float32) {
	p.shakeTime = d
	p.Shake = true
}

// Tick counts the shake timer down.
func (p *PostEffects) Tick(dt float32) {
	if p.shakeTime <= 0 {
		return
	}
	p.shakeTime -= dt
	if p.shakeTime <= 0 {
		p.Shake = false
	}
}

// ShakeTime returns the remaining shake time.
func (p *PostEffects) ShakeTime() float32 {
	return p.shakeTime
}

// Reset turns every effect off.
func (p *PostEffects) Reset() {
	*p = PostEffects{}
}

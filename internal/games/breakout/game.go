package breakout

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/levels"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu   Phase = iota // Level selection, ball on the paddle
	PhaseActive              // Playing
	PhaseWin                 // Level cleared, waiting for confirm
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseActive:
		return "active"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// SoundPlayer plays one-shot sound cues.
type SoundPlayer interface {
	Play(h resource.Handle)
}

// Logger is the subset of a structured logger the game uses.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}
func (nopLogger) Warn(any, ...any)  {}

// Options configure a new Game.
type Options struct {
	Config config.BreakoutConfig
	Levels []levels.Level

	// Textures must resolve every name in resource.TextureNames.
	Textures resource.Resolver
	// Sounds must resolve every name in resource.SoundNames. Nil disables
	// sound cues.
	Sounds resource.Resolver
	Audio  SoundPlayer

	Logger Logger
	// RNG overrides the default SimpleRNG seeded with Seed.
	RNG  RNG
	Seed int64
}

// Sprites are the texture handles of the non-brick objects.
type Sprites struct {
	Background resource.Handle
	Ball       resource.Handle
	Paddle     resource.Handle
	Particle   resource.Handle
}

type soundHandles struct {
	bleep, solid, powerUp, music resource.Handle
}

// Game is the whole simulation. It is not safe for concurrent use; one
// frame driver calls ProcessInput and Update (or Step) in turn.
type Game struct {
	cfg    config.BreakoutConfig
	width  float32
	height float32

	phase  Phase
	paused bool
	lives  int
	score  int
	level  int
	frame  uint64

	levels    []*GameLevel
	player    *GameObject
	ball      *BallObject
	powerUps  []*PowerUp
	particles *ParticleGenerator
	effects   PostEffects

	kinds   []powerUpKind
	sprites Sprites
	sounds  soundHandles
	audio   SoundPlayer
	rng     RNG
	log     Logger

	// processed marks one-shot keys already acted on until released.
	processed map[core.Action]bool
	result    core.StepResult
}

// New builds a game in the menu phase with the first level selected.
// A resource name that cannot be resolved is a configuration error.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: invalid config: %w", err)
	}
	if len(opts.Levels) == 0 {
		return nil, errors.New("breakout: no levels")
	}
	if opts.Textures == nil {
		return nil, errors.New("breakout: no texture resolver")
	}

	tex, err := resource.LookupAll(opts.Textures, resource.TextureNames...)
	if err != nil {
		return nil, fmt.Errorf("breakout: texture: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
		audio:     opts.Audio,
		rng:       opts.RNG,
		log:       opts.Logger,
		processed: make(map[core.Action]bool),
	}
	if g.rng == nil {
		g.rng = NewSimpleRNG(opts.Seed)
	}
	if g.log == nil {
		g.log = nopLogger{}
	}

	if opts.Sounds != nil {
		snd, err := resource.LookupAll(opts.Sounds, resource.SoundNames...)
		if err != nil {
			return nil, fmt.Errorf("breakout: sound: %w", err)
		}
		g.sounds = soundHandles{
			bleep:   snd[resource.SoundBleep],
			solid:   snd[resource.SoundSolid],
			powerUp: snd[resource.SoundPowerUp],
			music:   snd[resource.SoundMusic],
		}
	}

	g.sprites = Sprites{
		Background: tex[resource.TextureBackground],
		Ball:       tex[resource.TextureFace],
		Paddle:     tex[resource.TexturePaddle],
		Particle:   tex[resource.TextureParticle],
	}

	levelSprites := LevelSprites{
		Block:      tex[resource.TextureBlock],
		BlockSolid: tex[resource.TextureBlockSolid],
	}
	levelHeight := g.height * cfg.Gameplay.LevelHeightRatio
	for _, l := range opts.Levels {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("breakout: level %q: %w", l.Name, err)
		}
		g.levels = append(g.levels, NewGameLevel(l.Name, l.Tiles, g.width, levelHeight, levelSprites))
	}

	for t := PowerUpType(0); t < PowerUpCount; t++ {
		pc, ok := cfg.PowerUps.Types[t.String()]
		if !ok {
			continue
		}
		g.kinds = append(g.kinds, powerUpKind{
			typ:      t,
			chance:   pc.Chance,
			duration: pc.Duration,
			sprite:   tex[t.Texture()],
		})
	}

	playerSize := mgl32.Vec2{cfg.Player.Width, cfg.Player.Height}
	player := NewGameObject(mgl32.Vec2{}, playerSize, g.sprites.Paddle)
	g.player = &player
	g.ball = NewBall(mgl32.Vec2{}, cfg.Ball.Radius, g.initialBallVelocity(), g.sprites.Ball)
	g.particles = NewParticleGenerator(cfg.Gameplay.Particles, g.rng, g.sprites.Particle)

	g.lives = cfg.Gameplay.Lives
	g.phase = PhaseMenu
	g.ResetPlayer()

	g.log.Info("game ready", "levels", len(g.levels), "width", g.width, "height", g.height)
	return g, nil
}

func (g *Game) initialBallVelocity() mgl32.Vec2 {
	return mgl32.Vec2{g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY}
}

// Step runs one frame: input, then simulation.
func (g *Game) Step(dt float32, in core.Input) core.StepResult {
	g.result = core.StepResult{}
	g.ProcessInput(dt, in)
	g.Update(dt)

	res := g.result
	res.State = g.State()
	return res
}

// pressedOnce reports a key press only on the first frame it is held.
func (g *Game) pressedOnce(in core.Input, a core.Action) bool {
	if in.Pressed(a) && !g.processed[a] {
		g.processed[a] = true
		return true
	}
	return false
}

// ProcessInput applies the held keys for the current phase.
func (g *Game) ProcessInput(dt float32, in core.Input) {
	switch g.phase {
	case PhaseMenu:
		if g.pressedOnce(in, core.ActionConfirm) {
			g.phase = PhaseActive
			g.log.Info("level started", "level", g.level, "name", g.levels[g.level].Name)
		}
		if g.pressedOnce(in, core.ActionUp) {
			g.level = (g.level + 1) % len(g.levels)
		}
		if g.pressedOnce(in, core.ActionDown) {
			g.level = (g.level - 1 + len(g.levels)) % len(g.levels)
		}

	case PhaseWin:
		if g.pressedOnce(in, core.ActionConfirm) {
			g.effects.Chaos = false
			g.phase = PhaseMenu
		}

	case PhaseActive:
		if g.pressedOnce(in, core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}

		velocity := g.cfg.Player.Velocity * dt
		if in.Pressed(core.ActionLeft) && g.player.Position.X() >= 0 {
			g.player.Position[0] -= velocity
			if g.ball.Stuck {
				g.ball.Position[0] -= velocity
			}
		}
		if in.Pressed(core.ActionRight) && g.player.Position.X() <= g.width-g.player.Size.X() {
			g.player.Position[0] += velocity
			if g.ball.Stuck {
				g.ball.Position[0] += velocity
			}
		}
		if in.Pressed(core.ActionLaunch) {
			g.ball.Stuck = false
		}
	}

	for a, done := range g.processed {
		if done && !in.Pressed(a) {
			g.processed[a] = false
		}
	}
}

// Update advances the simulation by dt seconds. The order is fixed: ball
// motion, brick collisions, power-up pickup and update, paddle collision,
// particles and shake, then the life and level checks.
func (g *Game) Update(dt float32) {
	if g.paused {
		return
	}
	g.frame++

	g.ball.Move(dt, g.width)
	g.collideBricks()
	g.collectPowerUps()
	g.updatePowerUps(dt)
	g.collidePaddle()

	radius := g.ball.Radius
	g.particles.Update(dt, &g.ball.GameObject, g.cfg.Gameplay.ParticlesPerTick, mgl32.Vec2{radius / 2, radius / 2})
	g.effects.Tick(dt)

	g.checkBallLost()
	g.checkLevelCompleted()
}

func (g *Game) collideBricks() {
	level := g.levels[g.level]
	for i := range level.Bricks {
		box := &level.Bricks[i]
		if box.Destroyed {
			continue
		}

		c := CheckBallCollision(g.ball, &box.GameObject)
		if !c.IsCollision {
			continue
		}

		if box.Solid {
			g.effects.TriggerShake(g.cfg.Gameplay.ShakeDuration)
			g.playSound(g.sounds.solid)
		} else {
			box.Destroyed = true
			g.score += box.Points()
			g.spawnPowerUps(&box.GameObject)
			g.playSound(g.sounds.bleep)
		}

		if g.ball.PassThrough && !box.Solid {
			continue
		}
		ResolveBallCollision(g.ball, c)
	}
}

func (g *Game) collidePaddle() {
	if g.ball.Stuck {
		return
	}
	if c := CheckBallCollision(g.ball, g.player); !c.IsCollision {
		return
	}

	BouncePaddle(g.ball, g.player, g.cfg.Ball.VelocityX, g.cfg.Gameplay.PaddleStrength)
	g.ball.Stuck = g.ball.Sticky
	g.playSound(g.sounds.bleep)
}

func (g *Game) checkBallLost() {
	if g.ball.Position.Y() < g.height {
		return
	}

	g.lives--
	g.log.Info("ball lost", "lives", g.lives)
	if g.lives <= 0 {
		g.endRun(false)
		g.ResetLevel()
		g.phase = PhaseMenu
	}
	g.ResetPlayer()
}

func (g *Game) checkLevelCompleted() {
	if g.phase != PhaseActive || !g.LevelCompleted() {
		return
	}

	g.endRun(true)
	g.ResetLevel()
	g.ResetPlayer()
	g.effects.Chaos = true
	g.phase = PhaseWin
}

func (g *Game) endRun(won bool) {
	g.result.RunEnded = true
	g.result.FinalScore = g.score
	g.result.Won = won
	g.log.Info("run ended", "won", won, "score", g.score, "level", g.level)
}

// ResetLevel rebuilds the current level and restores lives and score.
func (g *Game) ResetLevel() {
	assert(g.level >= 0 && g.level < len(g.levels), "level index %d out of range", g.level)
	g.levels[g.level].Reset()
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
}

// ResetPlayer puts the paddle back in the middle with the ball stuck on
// it and clears every power-up and screen effect.
func (g *Game) ResetPlayer() {
	g.player.Size = mgl32.Vec2{g.cfg.Player.Width, g.cfg.Player.Height}
	g.player.Position = mgl32.Vec2{g.width/2 - g.player.Size.X()/2, g.height - g.player.Size.Y()}
	g.player.Color = White

	r := g.ball.Radius
	offset := mgl32.Vec2{g.player.Size.X()/2 - r, -2 * r}
	g.ball.Reset(g.player.Position.Add(offset), g.initialBallVelocity())
	g.ball.Sticky = false
	g.ball.PassThrough = false
	g.ball.Color = White

	g.powerUps = nil
	g.effects.Reset()
}

// SelectLevel picks the level played next. Only allowed in the menu.
func (g *Game) SelectLevel(i int) error {
	if i < 0 || i >= len(g.levels) {
		return fmt.Errorf("breakout: level %d out of range [0, %d)", i, len(g.levels))
	}
	if g.phase != PhaseMenu {
		return fmt.Errorf("breakout: cannot change level in phase %s", g.phase)
	}
	g.level = i
	return nil
}

// LevelCompleted reports whether the current level has no destructible
// bricks left.
func (g *Game) LevelCompleted() bool {
	return g.levels[g.level].IsCompleted()
}

func (g *Game) playSound(h resource.Handle) {
	if g.audio != nil && h.Valid() {
		g.audio.Play(h)
	}
}

// State returns the summary the platform needs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.level,
		Phase:  g.phase.String(),
		Paused: g.paused,
	}
}

// Phase returns the current game phase.
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// LevelIndex returns the selected level.
func (g *Game) LevelIndex() int { return g.level }

// Levels returns all loaded levels.
func (g *Game) Levels() []*GameLevel { return g.levels }

// CurrentLevel returns the selected level.
func (g *Game) CurrentLevel() *GameLevel { return g.levels[g.level] }

// Player returns the paddle.
func (g *Game) Player() *GameObject { return g.player }

// Ball returns the ball.
func (g *Game) Ball() *BallObject { return g.ball }

// PowerUps returns the power-ups still tracked, falling or active.
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Particles returns the ball trail.
func (g *Game) Particles() *ParticleGenerator { return g.particles }

// Effects returns the post-processing flags.
func (g *Game) Effects() PostEffects { return g.effects }

// Sprites returns the texture handles of ball, paddle and friends.
func (g *Game) Sprites() Sprites { return g.sprites }

// Music returns the background music handle, invalid without sounds.
func (g *Game) Music() resource.Handle { return g.sounds.music }

// Size returns the playfield size in pixels.
func (g *Game) Size() (width, height float32) { return g.width, g.height }

// Frame returns the number of simulated frames.
func (g *Game) Frame() uint64 { return g.frame }

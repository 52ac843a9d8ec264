package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/resource"
	"github.com/vovakirdan/breakthrough/internal/storage"
)

// MusicPlayer controls the background track and the mute switch.
type MusicPlayer interface {
	StartMusic(h resource.Handle)
	StopMusic()
	SetMuted(muted bool)
	Muted() bool
}

// Logger is the logging subset the frontend uses.
type Logger interface {
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Info(any, ...any) {}
func (nopLogger) Warn(any, ...any) {}

// Options configure the window frontend.
type Options struct {
	Store   *storage.Store
	Music   MusicPlayer
	Logger  Logger
	Sprites *resource.Table[Sprite] // Nil uses DefaultSprites

	Player string
	FPS    int
	Scale  float64 // Window size relative to the playfield
	Title  string
}

// debugGlyphWidth is the advance of the ebitenutil debug font.
const debugGlyphWidth = 6

var background = color.RGBA{R: 12, G: 12, B: 24, A: 255}

// Frontend implements ebiten.Game for one game.
type Frontend struct {
	game    *breakout.Game
	opts    Options
	input   core.Input
	scene   *ebiten.Image
	width   int
	height  int
	elapsed float32
}

// New creates a frontend for a ready game.
func New(game *breakout.Game, opts Options) *Frontend {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "Breakthrough"
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Sprites == nil {
		opts.Sprites = DefaultSprites()
	}
	w, h := game.Size()
	return &Frontend{
		game:   game,
		opts:   opts,
		input:  NewKeyInput(nil),
		width:  int(w),
		height: int(h),
	}
}

// Update steps the game by one fixed tick.
func (f *Frontend) Update() error {
	if f.opts.Music != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		f.opts.Music.SetMuted(!f.opts.Music.Muted())
	}
	if f.input.Pressed(core.ActionQuit) || f.input.Pressed(core.ActionBack) {
		if f.opts.Music != nil {
			f.opts.Music.StopMusic()
		}
		return ebiten.Termination
	}

	dt := 1 / float32(ebiten.TPS())
	f.elapsed += dt
	result := f.game.Step(dt, f.input)
	if result.RunEnded {
		f.saveRun(result)
	}
	return nil
}

// saveRun stores a finished run. Scoreless losses are not recorded.
func (f *Frontend) saveRun(result core.StepResult) {
	if f.opts.Store == nil || (result.FinalScore == 0 && !result.Won) {
		return
	}
	run := storage.Run{
		Player: f.opts.Player,
		Level:  result.State.Level,
		Score:  result.FinalScore,
		Won:    result.Won,
	}
	if _, err := f.opts.Store.SaveRun(run); err != nil {
		f.opts.Logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the scene offscreen and composes it onto the window.
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.scene == nil {
		f.scene = ebiten.NewImage(f.width, f.height)
	}
	f.scene.Fill(background)

	level := f.game.CurrentLevel()
	for i := range level.Bricks {
		if b := &level.Bricks[i]; !b.Destroyed {
			f.drawObject(f.scene, &b.GameObject)
		}
	}
	f.drawObject(f.scene, f.game.Player())
	f.drawParticles(f.scene)
	f.drawObject(f.scene, &f.game.Ball().GameObject)
	for _, p := range f.game.PowerUps() {
		if !p.Destroyed {
			f.drawObject(f.scene, &p.GameObject)
		}
	}

	geo, cm := effectTransform(f.game.Effects(), f.elapsed, float64(f.width), float64(f.height))
	op := &colorm.DrawImageOptions{}
	op.GeoM = geo
	colorm.DrawImage(screen, f.scene, cm, op)

	f.drawText(screen)
}

func (f *Frontend) drawObject(dst *ebiten.Image, o *breakout.GameObject) {
	sprite, ok := f.opts.Sprites.Get(o.Sprite)
	if !ok {
		sprite = Sprite{Shape: ShapeRect}
	}
	clr := toColor(o.Color, 1)
	x, y := o.Position.X(), o.Position.Y()
	w, h := o.Size.X(), o.Size.Y()

	switch sprite.Shape {
	case ShapeRect:
		vector.FillRect(dst, x, y, w, h, clr, false)
	case ShapeBlock:
		vector.FillRect(dst, x, y, w, h, toColor(o.Color.Mul(0.6), 1), false)
		vector.FillRect(dst, x+2, y+2, w-4, h-4, clr, false)
	case ShapeCircle:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, min(w, h)/2, clr, true)
	case ShapeDot:
		vector.FillRect(dst, x, y, 10, 10, clr, false)
	}
	if sprite.Label != "" {
		ebitenutil.DebugPrintAt(dst, sprite.Label, int(x)+4, int(y)+int(h)/2-7)
	}
}

func (f *Frontend) drawParticles(dst *ebiten.Image) {
	for _, p := range f.game.Particles().Particles() {
		if !p.Alive() {
			continue
		}
		clr := toColor(p.Color.Vec3(), p.Color.W())
		vector.FillRect(dst, p.Position.X(), p.Position.Y(), 10, 10, clr, false)
	}
}

func (f *Frontend) drawText(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", f.game.Lives()), 5, 5)
	score := fmt.Sprintf("Score: %d", f.game.Score())
	ebitenutil.DebugPrintAt(screen, score, f.width-len(score)*debugGlyphWidth-5, 5)

	mid := f.height / 2
	switch f.game.Phase() {
	case breakout.PhaseMenu:
		f.printCentered(screen, "Press ENTER to start", mid)
		f.printCentered(screen, "Press W or S to select level", mid+20)
		name := fmt.Sprintf("< %d/%d %s >", f.game.LevelIndex()+1, len(f.game.Levels()), f.game.CurrentLevel().Name)
		f.printCentered(screen, name, mid+50)
	case breakout.PhaseWin:
		f.printCentered(screen, "You WON!!!", mid-20)
		f.printCentered(screen, "Press ENTER to retry or ESC to quit", mid)
	case breakout.PhaseActive:
		if f.game.Paused() {
			f.printCentered(screen, "PAUSED", mid)
		}
	}
}

func (f *Frontend) printCentered(screen *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(screen, text, f.width/2-len(text)*debugGlyphWidth/2, y)
}

// Layout keeps the logical screen at playfield size; Ebitengine scales it
// to the window.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.width, f.height
}

// effectTransform builds the composition of the scene for the active
// effects. Confuse flips both axes and inverts colors, chaos rotates the
// hue over time, shake jitters the image by one percent of its width.
func effectTransform(fx breakout.PostEffects, elapsed float32, w, h float64) (ebiten.GeoM, colorm.ColorM) {
	var geo ebiten.GeoM
	var cm colorm.ColorM
	t := float64(elapsed)

	if fx.Confuse {
		geo.Scale(-1, -1)
		geo.Translate(w, h)
		cm.Scale(-1, -1, -1, 1)
		cm.Translate(1, 1, 1, 0)
	}
	if fx.Chaos {
		cm.RotateHue(t * 2)
	}
	if fx.Shake {
		strength := w * 0.01
		geo.Translate(math.Cos(t*10)*strength, math.Sin(t*15)*strength)
	}
	return geo, cm
}

func toColor(c mgl32.Vec3, alpha float32) color.RGBA {
	rgb := core.RGBFromVec3(c)
	a := mgl32.Clamp(alpha, 0, 1)
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float32(rgb.R) * a),
		G: uint8(float32(rgb.G) * a),
		B: uint8(float32(rgb.B) * a),
		A: uint8(a*255 + 0.5),
	}
}

// Run opens a window and plays until the player quits.
func Run(game *breakout.Game, opts Options) error {
	f := New(game, opts)

	ebiten.SetWindowSize(int(float64(f.width)*f.opts.Scale), int(float64(f.height)*f.opts.Scale))
	ebiten.SetWindowTitle(f.opts.Title)
	ebiten.SetTPS(f.opts.FPS)

	if f.opts.Music != nil {
		f.opts.Music.StartMusic(game.Music())
		defer f.opts.Music.StopMusic()
	}

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

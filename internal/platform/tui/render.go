package tui

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// DefaultGlyphs returns the character used for every texture the game
// requires.
func DefaultGlyphs() *resource.Table[rune] {
	t := resource.NewTable[rune]()
	t.Register(resource.TextureBackground, ' ')
	t.Register(resource.TextureFace, '●')
	t.Register(resource.TextureBlock, '▓')
	t.Register(resource.TextureBlockSolid, '█')
	t.Register(resource.TexturePaddle, '▀')
	t.Register(resource.TextureParticle, '·')
	t.Register(resource.TexturePowerSpeed, 'S')
	t.Register(resource.TexturePowerSticky, 'G')
	t.Register(resource.TexturePowerPassThru, 'P')
	t.Register(resource.TexturePowerIncrease, 'I')
	t.Register(resource.TexturePowerConfuse, 'C')
	t.Register(resource.TexturePowerChaos, 'X')
	return t
}

// Renderer draws the game world into a character screen. World pixels
// are scaled to the screen so the whole playfield is always visible.
type Renderer struct {
	glyphs *resource.Table[rune]
}

// NewRenderer creates a renderer over a glyph table.
func NewRenderer(glyphs *resource.Table[rune]) *Renderer {
	return &Renderer{glyphs: glyphs}
}

// viewport maps world coordinates to cells.
type viewport struct {
	sx, sy float32
}

func newViewport(s *core.Screen, g *breakout.Game) viewport {
	w, h := g.Size()
	return viewport{sx: float32(s.Width()) / w, sy: float32(s.Height()) / h}
}

// cell converts a world point to the cell containing it.
func (v viewport) cell(p mgl32.Vec2) (int, int) {
	return int(math.Floor(float64(p.X() * v.sx))), int(math.Floor(float64(p.Y() * v.sy)))
}

// rect converts a world box to a cell rectangle at least one cell in size.
// Adjacent boxes map to adjacent cells without overlap.
func (v viewport) rect(pos, size mgl32.Vec2) (x, y, w, h int) {
	x, y = v.cell(pos)
	x1, y1 := v.cell(pos.Add(size))
	return x, y, max(1, x1-x), max(1, y1-y)
}

// Draw renders the scene, applies the active screen effects and overlays
// the text for the current phase. elapsed is the running time in seconds
// and drives the animated effects.
func (r *Renderer) Draw(s *core.Screen, g *breakout.Game, elapsed float32) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	v := newViewport(s, g)

	level := g.CurrentLevel()
	for i := range level.Bricks {
		b := &level.Bricks[i]
		if !b.Destroyed {
			r.drawObject(s, v, &b.GameObject)
		}
	}

	r.drawObject(s, v, g.Player())

	particle := r.glyph(g.Particles().Sprite, '.')
	for _, p := range g.Particles().Particles() {
		if !p.Alive() {
			continue
		}
		x, y := v.cell(p.Position)
		color := core.RGBFromVec3(p.Color.Vec3()).Scale(p.Color.W())
		s.SetColored(x, y, particle, color)
	}

	r.drawObject(s, v, &g.Ball().GameObject)

	for _, p := range g.PowerUps() {
		if !p.Destroyed {
			r.drawObject(s, v, &p.GameObject)
		}
	}

	applyEffects(s, g.Effects(), elapsed)
	r.drawText(s, g)
}

func (r *Renderer) drawObject(s *core.Screen, v viewport, o *breakout.GameObject) {
	x, y, w, h := v.rect(o.Position, o.Size)
	s.FillRect(x, y, w, h, r.glyph(o.Sprite, '#'), core.RGBFromVec3(o.Color))
}

func (r *Renderer) glyph(h resource.Handle, fallback rune) rune {
	if r.glyphs == nil {
		return fallback
	}
	if g, ok := r.glyphs.Get(h); ok {
		return g
	}
	return fallback
}

// applyEffects post-processes the finished scene. Shake offsets the image
// by a cell, confuse flips both axes and inverts colors, chaos cycles the
// hue of every colored cell.
func applyEffects(s *core.Screen, fx breakout.PostEffects, elapsed float32) {
	if !fx.Shake && !fx.Confuse && !fx.Chaos {
		return
	}

	w, h := s.Width(), s.Height()
	var dx, dy int
	if fx.Shake {
		dx = int(math.Round(math.Cos(float64(elapsed) * 10)))
		dy = int(math.Round(math.Sin(float64(elapsed) * 15)))
	}
	hue := int(elapsed * 6)

	s.Transform(func(x, y int, src *core.Screen) core.Cell {
		sx, sy := x-dx, y-dy
		if fx.Confuse {
			sx, sy = w-1-sx, h-1-sy
		}
		c := src.GetCell(sx, sy)
		if !c.Colored {
			return c
		}
		if fx.Confuse {
			c.Color = c.Color.Invert()
		}
		if fx.Chaos {
			c.Color = c.Color.Rotate(hue)
		}
		return c
	})
}

func (r *Renderer) drawText(s *core.Screen, g *breakout.Game) {
	s.DrawTextColored(1, 0, fmt.Sprintf("Lives: %d", g.Lives()), core.White)
	score := fmt.Sprintf("Score: %d", g.Score())
	s.DrawTextColored(s.Width()-len(score)-1, 0, score, core.White)

	mid := s.Height() / 2
	switch g.Phase() {
	case breakout.PhaseMenu:
		s.DrawTextCentered(mid, "Press ENTER to start", core.White)
		s.DrawTextCentered(mid+1, "Press W or S to select level", core.White)
		s.DrawTextCentered(mid+3, fmt.Sprintf("< %d/%d %s >", g.LevelIndex()+1, len(g.Levels()), g.CurrentLevel().Name), core.White)
	case breakout.PhaseWin:
		s.DrawTextCentered(mid, "You WON!!!", core.White)
		s.DrawTextCentered(mid+1, "Press ENTER to retry or ESC to quit", core.White)
	case breakout.PhaseActive:
		if g.Paused() {
			s.DrawTextCentered(mid, "PAUSED", core.White)
		}
	}
}

// styles caches one lipgloss style per foreground color, shared by every
// session.
var styles sync.Map

func styleFor(c core.Cell) lipgloss.Style {
	if !c.Colored {
		return lipgloss.NewStyle()
	}
	if s, ok := styles.Load(c.Color); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
	styles.Store(c.Color, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

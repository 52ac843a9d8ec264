package gui

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

func TestDefaultSpritesCoverTextures(t *testing.T) {
	sprites := DefaultSprites()
	handles, err := resource.LookupAll(sprites, resource.TextureNames...)
	if err != nil {
		t.Fatalf("LookupAll() error: %v", err)
	}
	for name, h := range handles {
		s, _ := sprites.Get(h)
		if (s.Shape == ShapeNone) != (name == resource.TextureBackground) {
			t.Errorf("texture %q has shape %v", name, s.Shape)
		}
	}
}

func TestKeyInput(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeySpace: true}
	in := NewKeyInput(nil)
	in.pressed = func(k ebiten.Key) bool { return held[k] }

	tests := []struct {
		action core.Action
		want   bool
	}{
		{core.ActionLeft, true},
		{core.ActionLaunch, true},
		{core.ActionRight, false},
		{core.ActionConfirm, false},
		{core.ActionNone, false},
	}
	for _, tc := range tests {
		if got := in.Pressed(tc.action); got != tc.want {
			t.Errorf("Pressed(%v) = %v, expected %v", tc.action, got, tc.want)
		}
	}
}

func TestDefaultBindingsCoverActions(t *testing.T) {
	b := DefaultBindings()
	for a := core.ActionLeft; a <= core.ActionQuit; a++ {
		if len(b[a]) == 0 {
			t.Errorf("action %v has no key", a)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEffectTransform(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}

	t.Run("identity", func(t *testing.T) {
		geo, cm := effectTransform(breakout.PostEffects{}, 3, 800, 600)
		if x, y := geo.Apply(10, 20); !near(x, 10) || !near(y, 20) {
			t.Errorf("Apply(10, 20) = (%v, %v), expected unchanged", x, y)
		}
		if r, _, _, _ := cm.Apply(white).RGBA(); r != 0xffff {
			t.Errorf("red channel = %#x, expected unchanged white", r)
		}
	})

	t.Run("confuse", func(t *testing.T) {
		geo, cm := effectTransform(breakout.PostEffects{Confuse: true}, 0, 800, 600)
		if x, y := geo.Apply(0, 0); !near(x, 800) || !near(y, 600) {
			t.Errorf("Apply(0, 0) = (%v, %v), expected (800, 600)", x, y)
		}
		r, g, b, a := cm.Apply(white).RGBA()
		if r > 0x100 || g > 0x100 || b > 0x100 || a != 0xffff {
			t.Errorf("inverted white = (%#x, %#x, %#x, %#x), expected opaque black", r, g, b, a)
		}
	})

	t.Run("shake", func(t *testing.T) {
		geo, _ := effectTransform(breakout.PostEffects{Shake: true}, 0, 800, 600)
		// cos(0) = 1, sin(0) = 0, strength 8
		if x, y := geo.Apply(0, 0); !near(x, 8) || !near(y, 0) {
			t.Errorf("Apply(0, 0) = (%v, %v), expected (8, 0)", x, y)
		}
	})
}

func TestToColor(t *testing.T) {
	c := toColor(mgl32.Vec3{1, 0.5, 0}, 1)
	if c != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("opaque color = %v", c)
	}

	half := toColor(mgl32.Vec3{1, 1, 1}, 0.5)
	if half.A != 128 || half.R != 127 {
		t.Errorf("half alpha = %v, expected premultiplied", half)
	}

	if gone := toColor(mgl32.Vec3{1, 1, 1}, -1); gone.A != 0 || gone.R != 0 {
		t.Errorf("negative alpha = %v, expected transparent", gone)
	}
}

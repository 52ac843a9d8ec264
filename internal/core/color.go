package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RGB is an 8-bit per channel color used by character cells.
type RGB struct {
	R, G, B uint8
}

// Common cell colors.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	Gray  = RGB{128, 128, 128}
)

// RGBFromVec3 converts a normalized [0,1] color into 8-bit channels.
// Components outside the range are clamped.
func RGBFromVec3(c mgl32.Vec3) RGB {
	return RGB{
		R: channel(c.X()),
		G: channel(c.Y()),
		B: channel(c.Z()),
	}
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Invert returns the complementary color.
func (c RGB) Invert() RGB {
	return RGB{255 - c.R, 255 - c.G, 255 - c.B}
}

// Scale multiplies every channel by f (clamped to [0,1]).
func (c RGB) Scale(f float32) RGB {
	f = mgl32.Clamp(f, 0, 1)
	return RGB{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
	}
}

// Rotate cycles the channels, a cheap hue shift for terminal output.
// Steps are taken modulo 3.
func (c RGB) Rotate(steps int) RGB {
	switch ((steps % 3) + 3) % 3 {
	case 1:
		return RGB{c.B, c.R, c.G}
	case 2:
		return RGB{c.G, c.B, c.R}
	default:
		return c
	}
}

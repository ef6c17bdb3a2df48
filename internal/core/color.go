// Package core provides fundamental types shared by the sampler, the
// drawing surfaces and the terminal viewer. It has no dependency on any
// drawing backend or on Bubble Tea.
package core

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGB color with an alpha channel.
// A is in [0, 1]; 0 is fully transparent.
type Color struct {
	RGB colorful.Color
	A   float64
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// ParseColor parses "transparent" or a hex color in one of the forms
// rgb, rrggbb or rrggbbaa, with or without a leading '#'.
func ParseColor(s string) (Color, error) {
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 6:
		rgb, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return Color{RGB: rgb, A: 1}, nil
	case 8:
		rgb, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid alpha in %q: %w", s, err)
		}
		return Color{RGB: rgb, A: float64(a) / 255}, nil
	default:
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}
}

// FromNRGBA converts a standard library color to a Color.
func FromNRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		RGB: colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255},
		A:   float64(n.A) / 255,
	}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	rgb := c.RGB.Clamped().Hex()
	if c.A >= 1 {
		return rgb
	}
	return fmt.Sprintf("%s%02x", rgb, alphaByte(c.A))
}

// RGBHex formats only the color channels as #rrggbb.
func (c Color) RGBHex() string {
	return c.RGB.Clamped().Hex()
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Over composites c on top of dst using source-over blending.
func (c Color) Over(dst Color) Color {
	outA := c.A + dst.A*(1-c.A)
	if outA <= 0 {
		return Transparent
	}
	mix := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / outA
	}
	return Color{
		RGB: colorful.Color{
			R: mix(c.RGB.R, dst.RGB.R),
			G: mix(c.RGB.G, dst.RGB.G),
			B: mix(c.RGB.B, dst.RGB.B),
		},
		A: outA,
	}
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

// Package config provides YAML-based render configuration loading and
// preset handling for polyscatter.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/polyscatter/internal/core"
)

// RenderConfig contains every knob of a generated scene.
// It is read once at startup and passed by value afterwards.
type RenderConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Style  StyleConfig  `yaml:"style"`
	Shapes ShapesConfig `yaml:"shapes"`
}

// CanvasConfig defines the drawing area.
type CanvasConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	TrackViewport bool   `yaml:"track_viewport"` // Follow the host viewport instead of Width x Height
	Background    string `yaml:"background"`     // Hex color or "transparent"
}

// StyleConfig defines how shapes are colored and outlined.
type StyleConfig struct {
	StrokeWidth float64     `yaml:"stroke_width"`
	Palette     []string    `yaml:"palette"` // Empty palette means fully random colors
	Alpha       AlphaConfig `yaml:"alpha"`
}

// AlphaConfig controls the optional alpha byte appended to every color.
type AlphaConfig struct {
	Enabled bool `yaml:"enabled"`
	Min     int  `yaml:"min"` // 0-255
	Max     int  `yaml:"max"` // 0-255
}

// ShapesConfig defines the two shape collections and their size range.
type ShapesConfig struct {
	Stroked CollectionConfig `yaml:"stroked"`
	Filled  CollectionConfig `yaml:"filled"`
	Size    SizeRange        `yaml:"size"`
}

// CollectionConfig defines one collection of shapes sharing a paint mode.
type CollectionConfig struct {
	Count   int  `yaml:"count"`
	Circles bool `yaml:"circles"` // Whether circles may be sampled
}

// SizeRange is the inclusive range [Min, Min+Span] shape sizes are drawn from.
type SizeRange struct {
	Min  int `yaml:"min"`
	Span int `yaml:"span"`
}

// Max returns the largest size the range can produce.
func (s SizeRange) Max() int {
	return s.Min + s.Span
}

// Validate reports the first problem found in the configuration.
// Degenerate but drawable values (zero-sized canvas, zero span, zero counts)
// are accepted.
func (c RenderConfig) Validate() error {
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("config: canvas size %dx%d must not be negative", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := core.ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("config: invalid background: %w", err)
	}
	if c.Style.StrokeWidth < 0 {
		return fmt.Errorf("config: stroke_width %g must not be negative", c.Style.StrokeWidth)
	}
	for i, entry := range c.Style.Palette {
		if err := validatePaletteEntry(entry); err != nil {
			return fmt.Errorf("config: palette[%d]: %w", i, err)
		}
	}
	a := c.Style.Alpha
	if a.Min < 0 || a.Max > 255 || a.Min > a.Max {
		return fmt.Errorf("config: alpha range [%d, %d] must satisfy 0 <= min <= max <= 255", a.Min, a.Max)
	}
	if c.Shapes.Stroked.Count < 0 {
		return fmt.Errorf("config: stroked count %d must not be negative", c.Shapes.Stroked.Count)
	}
	if c.Shapes.Filled.Count < 0 {
		return fmt.Errorf("config: filled count %d must not be negative", c.Shapes.Filled.Count)
	}
	if c.Shapes.Size.Min < 1 {
		return fmt.Errorf("config: size.min %d must be positive", c.Shapes.Size.Min)
	}
	return nil
}

// NormalizedPalette returns palette entries as lowercase six-digit hex
// without the leading '#', which is the form the sampler concatenates.
func (c RenderConfig) NormalizedPalette() []string {
	out := make([]string, 0, len(c.Style.Palette))
	for _, entry := range c.Style.Palette {
		out = append(out, strings.ToLower(strings.TrimPrefix(entry, "#")))
	}
	return out
}

// validatePaletteEntry accepts "rrggbb" with or without a leading '#'.
// Palette entries carry no alpha; alpha is appended by the sampler.
func validatePaletteEntry(entry string) error {
	hex := strings.TrimPrefix(entry, "#")
	if len(hex) != 6 {
		return fmt.Errorf("%q is not a six-digit hex color", entry)
	}
	if _, err := core.ParseColor(hex); err != nil {
		return err
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/render.yaml
var defaultRenderYAML []byte

// DefaultRenderConfig returns the built-in render configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Canvas: CanvasConfig{
			Width:         1920,
			Height:        1080,
			TrackViewport: false,
			Background:    "transparent",
		},
		Style: StyleConfig{
			StrokeWidth: 3,
			Palette:     []string{"000000"},
			Alpha: AlphaConfig{
				Enabled: true,
				Min:     0,
				Max:     255,
			},
		},
		Shapes: ShapesConfig{
			Stroked: CollectionConfig{
				Count:   30,
				Circles: false,
			},
			Filled: CollectionConfig{
				Count:   30,
				Circles: true,
			},
			Size: SizeRange{
				Min:  15,
				Span: 75,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRenderYAML
}

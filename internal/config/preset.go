package config

import "fmt"

// Preset represents a named look applied on top of a loaded config.
type Preset string

const (
	PresetNone    Preset = ""
	PresetClassic Preset = "classic" // Fully random opaque colors
	PresetMono    Preset = "mono"    // Black shapes with random alpha
)

// Presets returns the named presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetMono}
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetClassic:
		return "random RGB colors, no alpha"
	case PresetMono:
		return "black palette with random alpha"
	default:
		return "config as loaded"
	}
}

// ParsePreset converts a flag value to a Preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetNone, PresetClassic, PresetMono:
		return p, nil
	default:
		return PresetNone, fmt.Errorf("config: unknown preset %q", s)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *RenderConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Style.Palette = nil
		cfg.Style.Alpha.Enabled = false
	case PresetMono:
		cfg.Style.Palette = []string{"000000"}
		cfg.Style.Alpha = AlphaConfig{Enabled: true, Min: 0, Max: 255}
	}
}

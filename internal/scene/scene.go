// Package scene ties sampling and rendering to the host's load and resize
// events. A Scene belongs to a single event loop and is not safe for
// concurrent use.
package scene

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/render"
	"github.com/vovakirdan/polyscatter/internal/sampler"
)

// Scene holds the two shape collections of the current generation.
type Scene struct {
	cfg      config.RenderConfig
	sampler  *sampler.Sampler
	renderer *render.Renderer

	width  int
	height int

	stroked []sampler.Shape
	filled  []sampler.Shape
}

// New creates a scene with the configured canvas size and no shapes.
func New(cfg config.RenderConfig, catalogue geometry.Catalogue, rng *rand.Rand) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	r, err := render.New(cfg, catalogue)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &Scene{
		cfg:      cfg,
		sampler:  sampler.New(cfg, catalogue, rng),
		renderer: r,
		width:    cfg.Canvas.Width,
		height:   cfg.Canvas.Height,
	}, nil
}

// Size returns the canvas size the current collections were sampled for.
func (sc *Scene) Size() (int, int) {
	return sc.width, sc.height
}

// Config returns the scene configuration.
func (sc *Scene) Config() config.RenderConfig {
	return sc.cfg
}

// Renderer returns the renderer painting this scene.
func (sc *Scene) Renderer() *render.Renderer {
	return sc.renderer
}

// Load samples the first generation and paints it onto s.
func (sc *Scene) Load(s render.Surface) error {
	if err := sc.Regenerate(); err != nil {
		return err
	}
	return sc.Paint(s)
}

// Resize handles a viewport change. When the canvas tracks the viewport it
// adopts the new size; otherwise the configured size is kept. Both
// collections are resampled either way, even if nothing changed.
func (sc *Scene) Resize(width, height int) error {
	if sc.cfg.Canvas.TrackViewport {
		sc.width = max(width, 0)
		sc.height = max(height, 0)
	}
	return sc.Regenerate()
}

// Regenerate replaces both collections with freshly sampled ones.
// On error the previous collections are kept.
func (sc *Scene) Regenerate() error {
	sc.sampler.SetCanvas(sc.width, sc.height)

	shapes := sc.cfg.Shapes
	stroked, err := sc.sampler.Generate(shapes.Stroked.Count, shapes.Stroked.Circles)
	if err != nil {
		return fmt.Errorf("scene: stroked: %w", err)
	}
	filled, err := sc.sampler.Generate(shapes.Filled.Count, shapes.Filled.Circles)
	if err != nil {
		return fmt.Errorf("scene: filled: %w", err)
	}

	sc.stroked, sc.filled = stroked, filled
	return nil
}

// Paint redraws the full scene onto s.
func (sc *Scene) Paint(s render.Surface) error {
	return sc.renderer.Paint(s, sc.stroked, sc.filled)
}

// Stroked returns a copy of the outlined collection.
func (sc *Scene) Stroked() []sampler.Shape {
	return slices.Clone(sc.stroked)
}

// Filled returns a copy of the filled collection.
func (sc *Scene) Filled() []sampler.Shape {
	return slices.Clone(sc.filled)
}

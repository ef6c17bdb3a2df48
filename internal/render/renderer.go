package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/core"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/sampler"
)

// ErrUnknownTemplate is returned when a shape refers to a template the
// renderer's catalogue does not have.
var ErrUnknownTemplate = errors.New("render: unknown template")

// Mode selects how a shape is painted.
type Mode int

const (
	ModeStroke Mode = iota // Outline with the stroke width
	ModeFill               // Fill the interior
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStroke:
		return "stroke"
	case ModeFill:
		return "fill"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Renderer paints a scene: background, then outlined shapes, then filled shapes.
type Renderer struct {
	strokeWidth float64
	background  core.Color
	catalogue   geometry.Catalogue
}

// New creates a renderer for the given config and template catalogue.
func New(cfg config.RenderConfig, catalogue geometry.Catalogue) (*Renderer, error) {
	bg, err := core.ParseColor(cfg.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("render: background: %w", err)
	}
	return &Renderer{
		strokeWidth: cfg.Style.StrokeWidth,
		background:  bg,
		catalogue:   catalogue,
	}, nil
}

// Background returns the color the canvas is filled with.
func (r *Renderer) Background() core.Color {
	return r.background
}

// Paint clears the surface and draws the whole scene. The origin is
// moved to the surface centre first. Every stroked shape is drawn before
// any filled shape, so fills always end up on top.
func (r *Renderer) Paint(s Surface, stroked, filled []sampler.Shape) error {
	s.Clear()

	w, h := s.Size()
	fw, fh := float64(w), float64(h)

	return withFrame(s, func() error {
		s.Translate(fw/2, fh/2)

		s.SetFillStyle(r.background)
		if err := s.FillRect(-fw/2, -fh/2, fw, fh); err != nil {
			return fmt.Errorf("render: background: %w", err)
		}

		for i, shape := range stroked {
			if err := r.PaintShape(s, shape, ModeStroke); err != nil {
				return fmt.Errorf("render: stroked shape %d: %w", i, err)
			}
		}
		for i, shape := range filled {
			if err := r.PaintShape(s, shape, ModeFill); err != nil {
				return fmt.Errorf("render: filled shape %d: %w", i, err)
			}
		}
		return nil
	})
}

// PaintShape outlines or fills one shape in the current frame.
func (r *Renderer) PaintShape(s Surface, shape sampler.Shape, mode Mode) error {
	c, err := core.ParseColor(shape.Color)
	if err != nil {
		return err
	}

	switch mode {
	case ModeStroke:
		s.SetLineWidth(r.strokeWidth)
		s.SetStrokeStyle(c)
	case ModeFill:
		s.SetFillStyle(c)
	default:
		return fmt.Errorf("render: unknown mode %d", int(mode))
	}

	if shape.Kind.IsCircle() {
		size := float64(shape.Size)
		s.BeginPath()
		s.Ellipse(float64(shape.X), float64(shape.Y), size, size, shape.Rotation, 0, 2*math.Pi)
		return paint(s, mode)
	}

	idx, _ := shape.Kind.Template()
	tpl, ok := r.catalogue.At(idx)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, shape.Kind)
	}

	return withFrame(s, func() error {
		center := shape.Center()
		s.Translate(center.X, center.Y)
		s.Rotate(shape.Rotation)

		s.BeginPath()
		for i, p := range LocalPath(tpl, shape.Size) {
			if i == 0 {
				s.MoveTo(p.X, p.Y)
				continue
			}
			s.LineTo(p.X, p.Y)
		}
		s.ClosePath()
		return paint(s, mode)
	})
}

// LocalPath maps a template onto a size x size square centred on the
// origin of the shape's local frame.
func LocalPath(tpl geometry.Template, size int) []geom.Coord {
	sz := float64(size)
	offset := geom.Coord{X: sz / 2, Y: sz / 2}

	points := tpl.Points()
	for i, p := range points {
		points[i] = p.Times(sz).Minus(offset)
	}
	return points
}

func paint(s Surface, mode Mode) error {
	if mode == ModeStroke {
		return s.Stroke()
	}
	return s.Fill()
}

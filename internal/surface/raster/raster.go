// Package raster implements the drawing surface on top of the gg 2D
// rasterizer and encodes finished scenes as PNG.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/polyscatter/internal/core"
)

// Surface is a pixel surface. It is not safe for concurrent use.
type Surface struct {
	ctx    *gg.Context
	width  int
	height int
	fill   core.Color
	stroke core.Color
}

// New creates a transparent surface. gg cannot allocate an empty
// pixmap, so degenerate sizes get a single pixel.
func New(width, height int) *Surface {
	width = max(width, 1)
	height = max(height, 1)
	return &Surface{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	s.ctx.ClearPath()
	s.ctx.Clear()
}

func (s *Surface) Save()    { s.ctx.Push() }
func (s *Surface) Restore() { s.ctx.Pop() }

func (s *Surface) Translate(x, y float64) { s.ctx.Translate(x, y) }
func (s *Surface) Rotate(radians float64) { s.ctx.Rotate(radians) }

// BeginPath discards the pending path.
func (s *Surface) BeginPath() { s.ctx.ClearPath() }

func (s *Surface) MoveTo(x, y float64) { s.ctx.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.ctx.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.ctx.ClosePath() }

// Ellipse adds an ellipse or elliptical arc. The rotation is applied as
// a frame around the centre so the axes turn with it.
func (s *Surface) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	s.ctx.Push()
	defer s.ctx.Pop()

	s.ctx.Translate(cx, cy)
	s.ctx.Rotate(rotation)
	if end-start >= 2*math.Pi {
		s.ctx.DrawEllipse(0, 0, rx, ry)
		return
	}
	s.ctx.DrawEllipticalArc(0, 0, rx, ry, start, end)
}

// FillRect fills a rectangle in the current frame. Any pending path is
// discarded.
func (s *Surface) FillRect(x, y, w, h float64) error {
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(x, y, w, h)
	return s.Fill()
}

func (s *Surface) SetFillStyle(c core.Color)   { s.fill = c }
func (s *Surface) SetStrokeStyle(c core.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)      { s.ctx.SetLineWidth(w) }

// Fill fills the current path with the fill style and clears it.
func (s *Surface) Fill() error {
	s.use(s.fill)
	if err := s.ctx.Fill(); err != nil {
		return fmt.Errorf("raster: fill: %w", err)
	}
	return nil
}

// Stroke outlines the current path with the stroke style and clears it.
func (s *Surface) Stroke() error {
	s.use(s.stroke)
	if err := s.ctx.Stroke(); err != nil {
		return fmt.Errorf("raster: stroke: %w", err)
	}
	return nil
}

// gg shares one brush between fill and stroke, so the matching style is
// loaded right before painting.
func (s *Surface) use(c core.Color) {
	s.ctx.SetRGBA(c.RGB.R, c.RGB.G, c.RGB.B, c.A)
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Close releases the rasterizer's resources.
func (s *Surface) Close() error {
	return s.ctx.Close()
}

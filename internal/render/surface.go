// Package render paints shape collections onto a drawing surface.
//
// The renderer never draws incrementally: every Paint clears the surface
// and redraws the full scene from the collections it is given.
package render

import "github.com/vovakirdan/polyscatter/internal/core"

// Surface is a 2D drawing context with a transform stack.
// Path construction follows the usual canvas model: points are
// transformed by the current frame when they are added to the path.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear resets every pixel to transparent and drops any pending path.
	Clear()

	// Save pushes the current transform; Restore pops it.
	Save()
	Restore()

	Translate(x, y float64)
	Rotate(radians float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Ellipse adds a full or partial ellipse centred at (cx, cy) with
	// its x axis rotated by rotation radians.
	Ellipse(cx, cy, rx, ry, rotation, start, end float64)

	// FillRect fills a rectangle with the fill style. The current path
	// may be discarded.
	FillRect(x, y, w, h float64) error

	SetFillStyle(c core.Color)
	SetStrokeStyle(c core.Color)
	SetLineWidth(w float64)

	// Fill and Stroke paint the current path.
	Fill() error
	Stroke() error
}

// withFrame runs fn inside a saved transform frame. The frame is
// restored even if fn fails.
func withFrame(s Surface, fn func() error) error {
	s.Save()
	defer s.Restore()
	return fn()
}

// Package geometry holds the catalogue of normalized polygon templates that
// shapes are built from. Templates are pure data: a template only describes
// a polygon inside the unit square, never its position, size or rotation.
package geometry

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// ErrInvalidTemplate is returned when a vertex list cannot form a polygon.
var ErrInvalidTemplate = errors.New("geometry: invalid template")

// Template is an ordered list of vertices in the unit square.
// Connecting the points in order and closing back to the first one traces
// the polygon boundary.
type Template struct {
	name   string
	points []geom.Coord
}

// NewTemplate builds a template from a flat list of x, y pairs.
// The list must be even and contain at least three vertices, and every
// coordinate must lie in [0, 1].
func NewTemplate(name string, flat []float64) (Template, error) {
	if len(flat)%2 != 0 {
		return Template{}, fmt.Errorf("%w: %q has an odd number of coordinates (%d)", ErrInvalidTemplate, name, len(flat))
	}
	if len(flat) < 6 {
		return Template{}, fmt.Errorf("%w: %q needs at least 3 vertices, got %d", ErrInvalidTemplate, name, len(flat)/2)
	}

	points := make([]geom.Coord, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		x, y := flat[i], flat[i+1]
		if x < 0 || x > 1 || y < 0 || y > 1 {
			return Template{}, fmt.Errorf("%w: %q vertex %d (%g, %g) is outside the unit square", ErrInvalidTemplate, name, i/2, x, y)
		}
		points = append(points, geom.Coord{X: x, Y: y})
	}

	return Template{name: name, points: points}, nil
}

// MustTemplate is like NewTemplate but panics on invalid input.
// Intended for package-level catalogue literals.
func MustTemplate(name string, flat ...float64) Template {
	t, err := NewTemplate(name, flat)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template's display name.
func (t Template) Name() string {
	return t.name
}

// Len returns the number of vertices.
func (t Template) Len() int {
	return len(t.points)
}

// Points returns a copy of the vertex list.
func (t Template) Points() []geom.Coord {
	out := make([]geom.Coord, len(t.points))
	copy(out, t.points)
	return out
}

// Bounds returns the smallest rectangle containing every vertex.
func (t Template) Bounds() geom.Rect {
	if len(t.points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: t.points[0], Max: t.points[0]}
	for _, p := range t.points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// Square is the unit square template.
var Square = MustTemplate("square", 0, 0, 1, 0, 1, 1, 0, 1)

// Triangle is an isosceles triangle with its apex at the bottom centre.
var Triangle = MustTemplate("triangle", 0, 0, 1, 0, 0.5, 1)

// Catalogue is an ordered, read-only collection of templates.
type Catalogue struct {
	templates []Template
}

// NewCatalogue creates a catalogue from the given templates, in order.
func NewCatalogue(templates ...Template) Catalogue {
	ts := make([]Template, len(templates))
	copy(ts, templates)
	return Catalogue{templates: ts}
}

// DefaultCatalogue returns the built-in catalogue: square, then triangle.
func DefaultCatalogue() Catalogue {
	return NewCatalogue(Square, Triangle)
}

// With returns a new catalogue with t appended. The receiver is unchanged.
func (c Catalogue) With(t Template) Catalogue {
	ts := make([]Template, 0, len(c.templates)+1)
	ts = append(ts, c.templates...)
	ts = append(ts, t)
	return Catalogue{templates: ts}
}

// Len returns the number of templates.
func (c Catalogue) Len() int {
	return len(c.templates)
}

// At returns the template at index i.
func (c Catalogue) At(i int) (Template, bool) {
	if i < 0 || i >= len(c.templates) {
		return Template{}, false
	}
	return c.templates[i], true
}

// Templates returns a copy of all templates in catalogue order.
func (c Catalogue) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

package geometry

import "fmt"

// ShapeKind says how a shape is traced: through a catalogue template or as
// a parametric circle. The zero value is Polygon(0).
type ShapeKind struct {
	circle   bool
	template int
}

// Polygon returns the kind for the catalogue template at index i.
func Polygon(i int) ShapeKind {
	return ShapeKind{template: i}
}

// Circle returns the circle kind.
func Circle() ShapeKind {
	return ShapeKind{circle: true}
}

// IsCircle reports whether the kind is a circle.
func (k ShapeKind) IsCircle() bool {
	return k.circle
}

// Template returns the catalogue index of a polygon kind.
// The second result is false for circles.
func (k ShapeKind) Template() (int, bool) {
	if k.circle {
		return 0, false
	}
	return k.template, true
}

// String returns "circle" or "polygon(i)".
func (k ShapeKind) String() string {
	if k.circle {
		return "circle"
	}
	return fmt.Sprintf("polygon(%d)", k.template)
}

// KindFromIndex maps a sampled bucket onto a kind. Buckets [0, n) select
// templates and bucket n selects the circle.
func KindFromIndex(i, n int) (ShapeKind, error) {
	switch {
	case i >= 0 && i < n:
		return Polygon(i), nil
	case i == n:
		return Circle(), nil
	default:
		return ShapeKind{}, fmt.Errorf("geometry: kind index %d out of range [0, %d]", i, n)
	}
}

// Buckets returns how many equally likely kinds a collection draws from.
// With circles allowed the circle gets one extra bucket.
func Buckets(c Catalogue, allowCircles bool) int {
	n := c.Len()
	if allowCircles {
		n++
	}
	return n
}

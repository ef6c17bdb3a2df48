// Package sampler produces randomly parameterized shapes for a scene.
// Every Generate call returns a fresh collection; shapes are never
// mutated after they are sampled.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/jbeda/geom"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/geometry"
)

// ErrNegativeCount is returned when a collection of negative length is requested.
var ErrNegativeCount = errors.New("sampler: count must not be negative")

// Shape is one concrete, sampled shape ready to paint.
type Shape struct {
	X        int // Bounding box corner; the canvas origin is its centre
	Y        int
	Rotation float64 // Radians, about the bounding box centre
	Color    string  // #rrggbb or #rrggbbaa
	Size     int     // Width and height of the bounding box
	Kind     geometry.ShapeKind
}

// Anchor returns the bounding box corner as a coordinate.
func (s Shape) Anchor() geom.Coord {
	return geom.Coord{X: float64(s.X), Y: float64(s.Y)}
}

// Center returns the bounding box centre, the pivot of the rotation.
func (s Shape) Center() geom.Coord {
	half := float64(s.Size) / 2
	return s.Anchor().Plus(geom.Coord{X: half, Y: half})
}

// Sampler draws shapes from a catalogue using the configured distribution.
type Sampler struct {
	style     config.StyleConfig
	size      config.SizeRange
	palette   []string
	catalogue geometry.Catalogue
	rng       *rand.Rand
	width     int
	height    int
}

// New creates a sampler for the configured canvas size.
func New(cfg config.RenderConfig, catalogue geometry.Catalogue, rng *rand.Rand) *Sampler {
	return &Sampler{
		style:     cfg.Style,
		size:      cfg.Shapes.Size,
		palette:   cfg.NormalizedPalette(),
		catalogue: catalogue,
		rng:       rng,
		width:     cfg.Canvas.Width,
		height:    cfg.Canvas.Height,
	}
}

// SetCanvas changes the area subsequent shapes are scattered over.
func (s *Sampler) SetCanvas(width, height int) {
	s.width = width
	s.height = height
}

// Canvas returns the current canvas size.
func (s *Sampler) Canvas() (int, int) {
	return s.width, s.height
}

// Generate returns exactly count shapes in generation order.
func (s *Sampler) Generate(count int, allowCircles bool) ([]Shape, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, count)
	}

	shapes := make([]Shape, 0, count)
	for i := 0; i < count; i++ {
		shape, err := s.sample(allowCircles)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// sample draws a single shape.
func (s *Sampler) sample(allowCircles bool) (Shape, error) {
	size := s.sampleSize()

	halfW := float64(s.width) / 2
	halfH := float64(s.height) / 2
	half := float64(size) / 2
	x := int(math.Floor(s.random(halfW, -halfW) - half))
	y := int(math.Floor(s.random(halfH, -halfH) - half))

	degrees := s.floorDraw(360, 0)
	rotation := float64(degrees) * math.Pi / 180

	color := s.sampleColor()

	n := geometry.Buckets(s.catalogue, allowCircles)
	bucket := clamp(s.floorDraw(n-1, 0), 0, n-1)
	kind, err := geometry.KindFromIndex(bucket, s.catalogue.Len())
	if err != nil {
		return Shape{}, fmt.Errorf("sampler: %w", err)
	}

	return Shape{
		X:        x,
		Y:        y,
		Rotation: rotation,
		Color:    color,
		Size:     size,
		Kind:     kind,
	}, nil
}

// sampleSize draws from [min, min+span]. A non-positive span yields min.
func (s *Sampler) sampleSize() int {
	if s.size.Span <= 0 {
		return s.size.Min
	}
	return clamp(s.floorDraw(s.size.Max(), s.size.Min), s.size.Min, s.size.Max())
}

// sampleColor picks a palette entry, or three random bytes when the
// palette is empty, then appends an alpha byte if enabled.
func (s *Sampler) sampleColor() string {
	var b strings.Builder
	b.WriteByte('#')

	if len(s.palette) > 0 {
		i := clamp(s.floorDraw(len(s.palette)-1, 0), 0, len(s.palette)-1)
		b.WriteString(s.palette[i])
	} else {
		for range 3 {
			fmt.Fprintf(&b, "%02x", s.randomByte(255, 0))
		}
	}

	if a := s.style.Alpha; a.Enabled {
		fmt.Fprintf(&b, "%02x", s.randomByte(a.Max, a.Min))
	}
	return b.String()
}

// randomByte is an integer draw over [lo, hi]. The product in random can
// round up to hi+1 for draws just below 1, so the result is clamped.
func (s *Sampler) randomByte(hi, lo int) int {
	return clamp(s.floorDraw(hi, lo), lo, hi)
}

// random is a continuous draw over [lo, hi+1). The +1 makes a later
// floor inclusive of hi.
func (s *Sampler) random(hi, lo float64) float64 {
	return s.rng.Float64()*(hi-lo+1) + lo
}

// floorDraw is an integer draw over [lo, hi].
func (s *Sampler) floorDraw(hi, lo int) int {
	return int(math.Floor(s.random(float64(hi), float64(lo))))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

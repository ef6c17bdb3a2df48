// Package vector implements the drawing surface as an SVG document.
//
// Points are transformed into document space as they are added, the same
// way a canvas context does, so the emitted paths carry no transform
// attributes. Painted elements are buffered until the document is encoded
// so that Clear can drop them.
package vector

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/vovakirdan/polyscatter/internal/core"
)

// Surface is an SVG drawing surface. It is not safe for concurrent use.
type Surface struct {
	width  int
	height int

	body   bytes.Buffer
	canvas *svg.SVG

	matrix gg.Matrix
	stack  []gg.Matrix

	path    strings.Builder
	started bool // A subpath has a current point

	fill      core.Color
	stroke    core.Color
	lineWidth float64
}

// New creates an empty surface of the given size.
func New(width, height int) *Surface {
	s := &Surface{
		width:     max(width, 0),
		height:    max(height, 0),
		matrix:    gg.Identity(),
		lineWidth: 1,
	}
	s.canvas = svg.New(&s.body)
	return s
}

// Size returns the document dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear drops every painted element, the pending path and the transform stack.
func (s *Surface) Clear() {
	s.body.Reset()
	s.BeginPath()
	s.matrix = gg.Identity()
	s.stack = s.stack[:0]
}

// Save pushes the current transform.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.matrix)
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.matrix = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Translate(x, y float64) {
	s.matrix = s.matrix.Multiply(gg.Translate(x, y))
}

func (s *Surface) Rotate(radians float64) {
	s.matrix = s.matrix.Multiply(gg.Rotate(radians))
}

func (s *Surface) BeginPath() {
	s.path.Reset()
	s.started = false
}

func (s *Surface) MoveTo(x, y float64) {
	p := s.matrix.TransformPoint(gg.Pt(x, y))
	fmt.Fprintf(&s.path, "M%s ", coord(p))
	s.started = true
}

// LineTo starts a subpath when there is no current point.
func (s *Surface) LineTo(x, y float64) {
	if !s.started {
		s.MoveTo(x, y)
		return
	}
	p := s.matrix.TransformPoint(gg.Pt(x, y))
	fmt.Fprintf(&s.path, "L%s ", coord(p))
}

func (s *Surface) ClosePath() {
	if s.started {
		s.path.WriteString("Z ")
	}
}

// Ellipse adds an elliptical arc from start to end, split into cubic
// segments of at most a quarter turn.
func (s *Surface) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	for end < start {
		end += 2 * math.Pi
	}
	sweep := math.Min(end-start, 2*math.Pi)
	if sweep == 0 {
		return
	}

	local := s.matrix.Multiply(gg.Translate(cx, cy)).Multiply(gg.Rotate(rotation))
	at := func(x, y float64) gg.Point {
		return local.TransformPoint(gg.Pt(x*rx, y*ry))
	}

	segments := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4) // Control point distance on the unit circle

	a := start
	first := at(math.Cos(a), math.Sin(a))
	if s.started {
		fmt.Fprintf(&s.path, "L%s ", coord(first))
	} else {
		fmt.Fprintf(&s.path, "M%s ", coord(first))
		s.started = true
	}
	for i := 0; i < segments; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		c1 := at(cosA-k*sinA, sinA+k*cosA)
		c2 := at(cosB+k*sinB, sinB-k*cosB)
		p := at(cosB, sinB)
		fmt.Fprintf(&s.path, "C%s %s %s ", coord(c1), coord(c2), coord(p))
		a = b
	}
}

// FillRect emits a filled rectangle in the current frame without
// touching the pending path.
func (s *Surface) FillRect(x, y, w, h float64) error {
	if s.fill.IsTransparent() {
		return nil
	}
	corners := []gg.Point{
		s.matrix.TransformPoint(gg.Pt(x, y)),
		s.matrix.TransformPoint(gg.Pt(x+w, y)),
		s.matrix.TransformPoint(gg.Pt(x+w, y+h)),
		s.matrix.TransformPoint(gg.Pt(x, y+h)),
	}
	var d strings.Builder
	for i, p := range corners {
		op := "L"
		if i == 0 {
			op = "M"
		}
		fmt.Fprintf(&d, "%s%s ", op, coord(p))
	}
	d.WriteString("Z")
	s.canvas.Path(d.String(), fillStyle(s.fill))
	return nil
}

func (s *Surface) SetFillStyle(c core.Color)   { s.fill = c }
func (s *Surface) SetStrokeStyle(c core.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)      { s.lineWidth = w }

// Fill emits the current path as a filled element and clears it.
func (s *Surface) Fill() error {
	defer s.BeginPath()
	if s.path.Len() == 0 || s.fill.IsTransparent() {
		return nil
	}
	s.canvas.Path(strings.TrimSpace(s.path.String()), fillStyle(s.fill))
	return nil
}

// Stroke emits the current path as an outlined element and clears it.
func (s *Surface) Stroke() error {
	defer s.BeginPath()
	if s.path.Len() == 0 || s.stroke.IsTransparent() || s.lineWidth <= 0 {
		return nil
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s",
		s.stroke.RGBHex(), num(s.stroke.A), num(s.lineWidth))
	s.canvas.Path(strings.TrimSpace(s.path.String()), style)
	return nil
}

// EncodeSVG writes a complete SVG document with everything painted so far.
func (s *Surface) EncodeSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(s.width, s.height)
	doc.Title("polyscatter")
	_, _ = ew.Write(s.body.Bytes())
	doc.End()
	if ew.err != nil {
		return fmt.Errorf("vector: encode svg: %w", ew.err)
	}
	return nil
}

func fillStyle(c core.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none", c.RGBHex(), num(c.A))
}

func coord(p gg.Point) string {
	return num(p.X) + " " + num(p.Y)
}

// num formats with two decimals and no trailing zeros.
func num(v float64) string {
	out := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	out = strings.TrimSuffix(out, ".")
	if out == "-0" {
		return "0"
	}
	return out
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/core"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/render"
	"github.com/vovakirdan/polyscatter/internal/sampler"
)

var _ render.Surface = (*Surface)(nil)

func newRenderer(t *testing.T, background string) *render.Renderer {
	t.Helper()
	cfg := config.DefaultRenderConfig()
	cfg.Canvas.Background = background
	r, err := render.New(cfg, geometry.DefaultCatalogue())
	if err != nil {
		t.Fatalf("render.New() failed: %v", err)
	}
	return r
}

// opaqueRed reports whether a pixel is (nearly) solid red.
func opaqueRed(s *Surface, x, y int) bool {
	r, g, b, a := s.Image().At(x, y).RGBA()
	return a > 0xf000 && r > 0xf000 && g < 0x1000 && b < 0x1000
}

func TestFullCoverSquare(t *testing.T) {
	s := New(100, 100)
	defer s.Close()

	square := sampler.Shape{X: -50, Y: -50, Size: 100, Color: "#ff0000", Kind: geometry.Polygon(0)}
	if err := newRenderer(t, "transparent").Paint(s, nil, []sampler.Shape{square}); err != nil {
		t.Fatalf("Paint() failed: %v", err)
	}

	points := [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}, {50, 50}, {1, 98}}
	for _, p := range points {
		if !opaqueRed(s, p[0], p[1]) {
			t.Errorf("pixel (%d, %d) = %v, expected opaque red", p[0], p[1], s.Image().At(p[0], p[1]))
		}
	}
}

func TestBackgroundFill(t *testing.T) {
	s := New(20, 10)
	defer s.Close()

	if err := newRenderer(t, "#ff0000").Paint(s, nil, nil); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 0}, {19, 9}, {10, 5}} {
		if !opaqueRed(s, p[0], p[1]) {
			t.Errorf("pixel (%d, %d) = %v, expected background red", p[0], p[1], s.Image().At(p[0], p[1]))
		}
	}
}

func TestFillRect(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	s.SetFillStyle(core.Color{RGB: colorful.Color{R: 1}, A: 1})
	if err := s.FillRect(0, 0, 5, 10); err != nil {
		t.Fatalf("FillRect() failed: %v", err)
	}
	if !opaqueRed(s, 2, 5) {
		t.Errorf("pixel (2, 5) = %v, expected red", s.Image().At(2, 5))
	}
	if _, _, _, a := s.Image().At(8, 5).RGBA(); a != 0 {
		t.Errorf("pixel (8, 5) alpha = %d, expected transparent", a)
	}
}

func TestTransparentBackground(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	if err := newRenderer(t, "transparent").Paint(s, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := s.Image().At(5, 5).RGBA(); a != 0 {
		t.Errorf("alpha = %d, expected 0 for a transparent background", a)
	}
}

func TestRepaintClears(t *testing.T) {
	s := New(40, 40)
	defer s.Close()
	r := newRenderer(t, "transparent")

	square := sampler.Shape{X: -20, Y: -20, Size: 40, Color: "#ff0000", Kind: geometry.Polygon(0)}
	if err := r.Paint(s, nil, []sampler.Shape{square}); err != nil {
		t.Fatal(err)
	}
	if err := r.Paint(s, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := s.Image().At(20, 20).RGBA(); a != 0 {
		t.Errorf("alpha after repaint = %d, expected 0", a)
	}
}

func TestCircleCentre(t *testing.T) {
	s := New(60, 60)
	defer s.Close()

	circle := sampler.Shape{X: 0, Y: 0, Size: 10, Color: "#ff0000", Kind: geometry.Circle()}
	if err := newRenderer(t, "transparent").Paint(s, nil, []sampler.Shape{circle}); err != nil {
		t.Fatal(err)
	}
	// Centred on the canvas origin with radius 10
	if !opaqueRed(s, 30, 30) {
		t.Errorf("circle centre = %v, expected red", s.Image().At(30, 30))
	}
	if _, _, _, a := s.Image().At(2, 2).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, expected 0 outside the circle", a)
	}
}

func TestEncodePNG(t *testing.T) {
	s := New(8, 4)
	defer s.Close()

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("decoded size = %dx%d, expected 8x4", b.Dx(), b.Dy())
	}
}

func TestDegenerateSize(t *testing.T) {
	s := New(0, -3)
	defer s.Close()
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, expected 1x1", w, h)
	}
}

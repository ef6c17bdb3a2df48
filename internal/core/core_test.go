package core

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
		wantA   float64
		wantErr bool
	}{
		{"six digit", "ff0000", "#ff0000", 1, false},
		{"six digit with hash", "#00ff00", "#00ff00", 1, false},
		{"three digit", "#fff", "#ffffff", 1, false},
		{"eight digit", "#0000ff80", "#0000ff", 128.0 / 255, false},
		{"transparent", "transparent", "#000000", 0, false},
		{"transparent mixed case", "Transparent", "#000000", 0, false},
		{"garbage", "nope", "", 0, true},
		{"bad digits", "#gg0000", "", 0, true},
		{"bad alpha", "#000000zz", "", 0, true},
		{"empty", "", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if c.RGBHex() != tc.wantHex {
				t.Errorf("RGBHex() = %q, expected %q", c.RGBHex(), tc.wantHex)
			}
			if math.Abs(c.A-tc.wantA) > 1e-9 {
				t.Errorf("A = %v, expected %v", c.A, tc.wantA)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#123456", "#12345678", "#000000ff"} {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", s, err)
		}
		want := s
		if s == "#000000ff" {
			want = "#000000" // Opaque colors format without alpha
		}
		if c.Hex() != want {
			t.Errorf("Hex() = %q, expected %q", c.Hex(), want)
		}
	}
}

func TestColorOver(t *testing.T) {
	white, _ := ParseColor("#ffffff")
	black, _ := ParseColor("#000000")

	// Opaque source replaces destination
	if got := black.Over(white); got.RGBHex() != "#000000" || got.A != 1 {
		t.Errorf("opaque over = %s (a=%v), expected #000000", got.RGBHex(), got.A)
	}

	// Transparent source leaves destination
	if got := Transparent.Over(white); got.RGBHex() != "#ffffff" {
		t.Errorf("transparent over = %s, expected #ffffff", got.RGBHex())
	}

	// Half black over white is mid grey
	half := Color{RGB: black.RGB, A: 0.5}
	got := half.Over(white)
	if math.Abs(got.RGB.R-0.5) > 1e-9 || got.A != 1 {
		t.Errorf("half over = %+v, expected grey 0.5 opaque", got)
	}

	// Nothing over nothing stays transparent
	if got := Transparent.Over(Transparent); !got.IsTransparent() {
		t.Errorf("transparent over transparent = %+v", got)
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	w, h := s.PixelSize()
	if w != 80 || h != 48 {
		t.Errorf("PixelSize() = %dx%d, expected 80x48", w, h)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	red, _ := ParseColor("#ff0000")

	s.Set(5, 5, Cell{Top: red})
	if s.GetCell(5, 5).Top != red {
		t.Errorf("GetCell(5, 5).Top = %+v, expected red", s.GetCell(5, 5).Top)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, Cell{Top: red})
	s.Set(100, 0, Cell{Top: red})
	s.Set(0, -1, Cell{Top: red})
	s.Set(0, 100, Cell{Top: red})

	if s.GetCell(-1, 0) != (Cell{}) {
		t.Error("Out of bounds GetCell should return an empty cell")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("after Resize: %dx%d, expected 20x8", s.Width(), s.Height())
	}
	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative Resize should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenBlit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255}) // red, top of cell (0,0)
	img.Set(0, 1, color.NRGBA{B: 255, A: 255}) // blue, bottom of cell (0,0)
	// (1,0) and (1,1) stay transparent

	backdrop, _ := ParseColor("#ffffff")
	s := NewScreen(2, 2)
	s.Blit(img, backdrop)

	c := s.GetCell(0, 0)
	if c.Top.RGBHex() != "#ff0000" {
		t.Errorf("cell(0,0).Top = %s, expected #ff0000", c.Top.RGBHex())
	}
	if c.Bottom.RGBHex() != "#0000ff" {
		t.Errorf("cell(0,0).Bottom = %s, expected #0000ff", c.Bottom.RGBHex())
	}

	// Transparent pixels show the backdrop
	if got := s.GetCell(1, 0).Top.RGBHex(); got != "#ffffff" {
		t.Errorf("cell(1,0).Top = %s, expected backdrop #ffffff", got)
	}

	// Row 3 is past the image height, so the bottom of cell (0,1) is backdrop
	if got := s.GetCell(0, 1).Bottom.RGBHex(); got != "#ffffff" {
		t.Errorf("cell(0,1).Bottom = %s, expected backdrop #ffffff", got)
	}
}

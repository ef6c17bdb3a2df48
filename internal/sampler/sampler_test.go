package sampler

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/geometry"
)

// fixedSource always yields the same value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (s fixedSource) Seed(int64)   {}

const (
	lowest  = fixedSource(0)
	middle  = fixedSource(1 << 62)       // Float64() == 0.5
	highest = fixedSource(1<<63 - 1<<11) // Float64() just below 1
)

func newTestSampler(cfg config.RenderConfig, src rand.Source) *Sampler {
	return New(cfg, geometry.DefaultCatalogue(), rand.New(src))
}

func TestGenerateCount(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		allowCircles bool
	}{
		{"empty", 0, false},
		{"empty with circles", 0, true},
		{"single", 1, false},
		{"default collection", 30, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSampler(config.DefaultRenderConfig(), rand.NewSource(1))
			shapes, err := s.Generate(tc.count, tc.allowCircles)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}
			if len(shapes) != tc.count {
				t.Errorf("len(Generate(%d)) = %d, expected %d", tc.count, len(shapes), tc.count)
			}
		})
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	s := newTestSampler(config.DefaultRenderConfig(), rand.NewSource(1))
	_, err := s.Generate(-1, false)
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Generate(-1) error = %v, expected ErrNegativeCount", err)
	}
}

func TestSizeWithinRange(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	s := newTestSampler(cfg, rand.NewSource(7))

	shapes, err := s.Generate(2000, true)
	if err != nil {
		t.Fatal(err)
	}

	lo, hi := cfg.Shapes.Size.Min, cfg.Shapes.Size.Max()
	sawLo, sawHi := false, false
	for i, sh := range shapes {
		if sh.Size < lo || sh.Size > hi {
			t.Fatalf("shape %d: Size = %d, expected within [%d, %d]", i, sh.Size, lo, hi)
		}
		sawLo = sawLo || sh.Size == lo
		sawHi = sawHi || sh.Size == hi
	}
	if !sawLo || !sawHi {
		t.Errorf("2000 draws should reach both ends of [%d, %d] (lo=%v hi=%v)", lo, hi, sawLo, sawHi)
	}
}

func TestKindWithinRange(t *testing.T) {
	cat := geometry.DefaultCatalogue()

	t.Run("circles allowed", func(t *testing.T) {
		s := newTestSampler(config.DefaultRenderConfig(), rand.NewSource(3))
		shapes, err := s.Generate(600, true)
		if err != nil {
			t.Fatal(err)
		}
		counts := make(map[string]int)
		for _, sh := range shapes {
			if i, ok := sh.Kind.Template(); ok && (i < 0 || i >= cat.Len()) {
				t.Fatalf("template index %d out of range [0, %d)", i, cat.Len())
			}
			counts[sh.Kind.String()]++
		}
		for _, kind := range []string{"polygon(0)", "polygon(1)", "circle"} {
			if counts[kind] == 0 {
				t.Errorf("kind %s never sampled in 600 draws: %v", kind, counts)
			}
		}
	})

	t.Run("circles disallowed", func(t *testing.T) {
		s := newTestSampler(config.DefaultRenderConfig(), rand.NewSource(3))
		shapes, err := s.Generate(600, false)
		if err != nil {
			t.Fatal(err)
		}
		for i, sh := range shapes {
			if sh.Kind.IsCircle() {
				t.Fatalf("shape %d is a circle although circles are disallowed", i)
			}
		}
	})
}

func TestColorFormat(t *testing.T) {
	hex7 := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	hex9 := regexp.MustCompile(`^#[0-9a-f]{8}$`)

	tests := []struct {
		name    string
		palette []string
		alpha   bool
		want    *regexp.Regexp
	}{
		{"random rgb", nil, false, hex7},
		{"random rgba", nil, true, hex9},
		{"palette rgb", []string{"#FF8800", "00aa11"}, false, hex7},
		{"palette rgba", []string{"ff8800"}, true, hex9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultRenderConfig()
			cfg.Style.Palette = tc.palette
			cfg.Style.Alpha.Enabled = tc.alpha

			for _, src := range []rand.Source{lowest, highest, rand.NewSource(11)} {
				s := newTestSampler(cfg, src)
				shapes, err := s.Generate(50, true)
				if err != nil {
					t.Fatal(err)
				}
				for _, sh := range shapes {
					if !tc.want.MatchString(sh.Color) {
						t.Fatalf("Color = %q, expected to match %s", sh.Color, tc.want)
					}
				}
			}
		})
	}
}

func TestSinglePaletteColor(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	cfg.Style.Palette = []string{"000000"}
	cfg.Style.Alpha.Enabled = false

	s := newTestSampler(cfg, rand.NewSource(99))
	shapes, err := s.Generate(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 1 || shapes[0].Color != "#000000" {
		t.Errorf("Generate(1) = %+v, expected one shape colored #000000", shapes)
	}
}

func TestExtremeDraws(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	cfg.Canvas.Width, cfg.Canvas.Height = 100, 60
	cfg.Style.Palette = nil
	cfg.Style.Alpha = config.AlphaConfig{Enabled: true, Min: 10, Max: 20}

	t.Run("lowest", func(t *testing.T) {
		s := newTestSampler(cfg, lowest)
		shapes, _ := s.Generate(1, true)
		sh := shapes[0]

		if sh.Size != 15 {
			t.Errorf("Size = %d, expected 15", sh.Size)
		}
		// floor(-50 - 7.5), floor(-30 - 7.5)
		if sh.X != -58 || sh.Y != -38 {
			t.Errorf("anchor = (%d, %d), expected (-58, -38)", sh.X, sh.Y)
		}
		if sh.Rotation != 0 {
			t.Errorf("Rotation = %v, expected 0", sh.Rotation)
		}
		if sh.Color != "#0000000a" {
			t.Errorf("Color = %q, expected #0000000a", sh.Color)
		}
		if sh.Kind != geometry.Polygon(0) {
			t.Errorf("Kind = %s, expected polygon(0)", sh.Kind)
		}
	})

	t.Run("highest", func(t *testing.T) {
		s := newTestSampler(cfg, highest)
		shapes, _ := s.Generate(1, true)
		sh := shapes[0]

		if sh.Size != 90 {
			t.Errorf("Size = %d, expected 90", sh.Size)
		}
		// floor(50.99.. - 45), floor(30.99.. - 45)
		if sh.X != 5 || sh.Y != -15 {
			t.Errorf("anchor = (%d, %d), expected (5, -15)", sh.X, sh.Y)
		}
		if math.Abs(sh.Rotation-2*math.Pi) > 1e-9 {
			t.Errorf("Rotation = %v, expected 2π (360 degrees)", sh.Rotation)
		}
		if sh.Color != "#ffffff14" {
			t.Errorf("Color = %q, expected #ffffff14", sh.Color)
		}
		if !sh.Kind.IsCircle() {
			t.Errorf("Kind = %s, expected circle", sh.Kind)
		}

		shapes, _ = s.Generate(1, false)
		if shapes[0].Kind != geometry.Polygon(1) {
			t.Errorf("Kind without circles = %s, expected polygon(1)", shapes[0].Kind)
		}
	})
}

func TestDegenerateConfig(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	cfg.Canvas.Width, cfg.Canvas.Height = 0, 0
	cfg.Shapes.Size.Span = 0

	s := newTestSampler(cfg, rand.NewSource(5))
	shapes, err := s.Generate(100, true)
	if err != nil {
		t.Fatalf("degenerate config should not fail: %v", err)
	}
	for _, sh := range shapes {
		if sh.Size != cfg.Shapes.Size.Min {
			t.Fatalf("Size = %d, expected %d with zero span", sh.Size, cfg.Shapes.Size.Min)
		}
		c := sh.Center()
		if math.Abs(c.X) > 1 || math.Abs(c.Y) > 1 {
			t.Fatalf("Center() = %+v, expected the origin on a zero canvas", c)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	s1 := newTestSampler(cfg, rand.NewSource(12345))
	s2 := newTestSampler(cfg, rand.NewSource(12345))

	a, _ := s1.Generate(30, true)
	b, _ := s2.Generate(30, true)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shape %d mismatch: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSetCanvas(t *testing.T) {
	s := newTestSampler(config.DefaultRenderConfig(), middle)
	s.SetCanvas(10, 10)
	if w, h := s.Canvas(); w != 10 || h != 10 {
		t.Errorf("Canvas() = %dx%d, expected 10x10", w, h)
	}
	shapes, _ := s.Generate(1, false)
	// size floor(0.5*76 + 15) = 53, x = floor(0.5*11 - 5 - 26.5)
	if shapes[0].Size != 53 {
		t.Fatalf("Size = %d, expected 53", shapes[0].Size)
	}
	if shapes[0].X != -26 {
		t.Errorf("X = %d, expected -26", shapes[0].X)
	}
}

func TestAlphaWithinConfiguredRange(t *testing.T) {
	tests := []struct {
		name     string
		src      rand.Source
		min, max int
	}{
		{"lowest draw", lowest, 10, 20},
		{"highest draw", highest, 10, 20},
		{"highest draw single value", highest, 128, 128},
		{"highest draw full range", highest, 0, 255},
		{"seeded draws", rand.NewSource(99), 10, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultRenderConfig()
			cfg.Style.Palette = []string{"000000"}
			cfg.Style.Alpha = config.AlphaConfig{Enabled: true, Min: tc.min, Max: tc.max}

			shapes, err := newTestSampler(cfg, tc.src).Generate(50, true)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}
			for i, sh := range shapes {
				a, err := strconv.ParseUint(sh.Color[7:], 16, 8)
				if err != nil {
					t.Fatalf("shape %d color %q has no alpha byte", i, sh.Color)
				}
				if int(a) < tc.min || int(a) > tc.max {
					t.Fatalf("shape %d alpha = %d, expected within [%d, %d]", i, a, tc.min, tc.max)
				}
			}
		})
	}
}

func TestShapeCenter(t *testing.T) {
	sh := Shape{X: -50, Y: -50, Size: 100}
	c := sh.Center()
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Center() = %+v, expected (0, 0)", c)
	}
}

package core

import (
	"image"
)

// Cell is one terminal character cell. It shows two vertically stacked
// pixels: Top is drawn as the foreground of an upper half block and
// Bottom as its background.
type Cell struct {
	Top    Color
	Bottom Color
}

// Screen is a 2D buffer of half-block cells.
// It decouples rasterized scenes from the terminal, so the platform only
// has to turn cells into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// PixelSize returns the pixel resolution the screen can display.
// Every cell holds one pixel column and two pixel rows.
func (s *Screen) PixelSize() (int, int) {
	return s.width, s.height * 2
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
}

// Clear fills every pixel with c.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Top: c, Bottom: c}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a transparent cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// Blit copies img into the screen, two pixel rows per cell, compositing
// every pixel over backdrop. Pixels outside img show the backdrop.
func (s *Screen) Blit(img image.Image, backdrop Color) {
	b := img.Bounds()
	pixel := func(x, y int) Color {
		px, py := b.Min.X+x, b.Min.Y+y
		if px >= b.Max.X || py >= b.Max.Y {
			return backdrop
		}
		return FromNRGBA(img.At(px, py)).Over(backdrop)
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.cells[y][x] = Cell{
				Top:    pixel(x, 2*y),
				Bottom: pixel(x, 2*y+1),
			}
		}
	}
}

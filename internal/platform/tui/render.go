package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/polyscatter/internal/core"
)

// upperHalf shows the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

// cellStyle returns the style drawing a cell as an upper half block.
func cellStyle(c core.Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Top.RGBHex())).
		Background(lipgloss.Color(c.Bottom.RGBHex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent identical cells to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			n := 0
			for x < s.Width() && s.GetCell(x, y) == start {
				n++
				x++
			}

			sb.WriteString(cellStyle(start).Render(strings.Repeat(string(upperHalf), n)))
		}
	}
	return sb.String()
}

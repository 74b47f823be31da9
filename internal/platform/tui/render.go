package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubesnake/internal/core"
)

// palette maps core colors to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, tc := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(tc)
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Runs of same-colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hotcold/internal/core"
)

// Backgrounds for level cells. Open space gets a dim backdrop so the level
// stands out from the rest of the terminal.
const (
	backdrop   = lipgloss.Color("234")
	wallShadow = lipgloss.Color("238")
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorMagenta:      fg("5"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightGreen:  fg("10"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightBlue:   fg("12"),
	core.ColorBrightCyan:   fg("14"),
	core.ColorBrightWhite:  fg("15"),
	core.ColorOrange:       fg("208"),
	core.ColorGray:         fg("245"),

	// Actors and pools sit on the backdrop; half-block pool glyphs leave
	// the backdrop showing above the liquid.
	core.ColorHot:   fg("9").Bold(true).Background(backdrop),
	core.ColorCold:  fg("14").Bold(true).Background(backdrop),
	core.ColorLava:  fg("208").Background(backdrop),
	core.ColorWater: fg("27").Background(backdrop),
	core.ColorGoo:   fg("118").Background(backdrop),
	core.ColorWall:  fg("245").Background(wallShadow),
	core.ColorAir:   lipgloss.NewStyle().Background(backdrop),
}

// styleFor returns the style of c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is cut into runs of one color so a run costs a single escape
// sequence; on a level row most cells are backdrop or wall.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		run.Reset()
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}

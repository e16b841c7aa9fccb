package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// colorStyles maps screen roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBorder:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorObstacle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayerTrail: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorPlayerHead:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorCPUTrail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorCPUHead:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorWin:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorLoss:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// cellColors is one foreground/background pairing.
type cellColors struct {
	fg, bg core.Color
}

// colorStyles caches a lipgloss style per colour pairing.
var colorStyles = struct {
	sync.Mutex
	m map[cellColors]lipgloss.Style
}{m: make(map[cellColors]lipgloss.Style)}

// styleFor returns the style painting fg on bg. ColorDefault leaves the
// terminal's own colour in place.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := cellColors{fg, bg}

	colorStyles.Lock()
	defer colorStyles.Unlock()
	if s, ok := colorStyles.m[key]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	colorStyles.m[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// overlay centres a bordered box over the frame area.
func overlay(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

package render

import "github.com/charmbracelet/lipgloss"

// Color names one slot in the browser palette. The palette follows the
// terminal's sixteen-color scheme so it respects the user's colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan          // authors, focused borders
	ColorGreen         // commit hashes, diff additions
	ColorYellow        // dates
	ColorMagenta       // refs
	ColorRed           // diff deletions
	ColorBlue          // file paths, metadata
)

var ansiColors = map[Color]lipgloss.Color{
	ColorCyan:    lipgloss.Color("6"),
	ColorGreen:   lipgloss.Color("2"),
	ColorYellow:  lipgloss.Color("3"),
	ColorMagenta: lipgloss.Color("5"),
	ColorRed:     lipgloss.Color("1"),
	ColorBlue:    lipgloss.Color("4"),
}

// styleFor returns the lipgloss style for one attribute combination.
// Styles are memoized; rendering touches this for every run.
func styleFor(c Color, bold, reverse bool) lipgloss.Style {
	key := styleKey{c, bold, reverse}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if ac, ok := ansiColors[c]; ok {
		s = s.Foreground(ac)
	}
	if bold {
		s = s.Bold(true)
	}
	if reverse {
		s = s.Reverse(true)
	}
	styleCache[key] = s
	return s
}

type styleKey struct {
	color   Color
	bold    bool
	reverse bool
}

var styleCache = map[styleKey]lipgloss.Style{}

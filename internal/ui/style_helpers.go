package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text on a fixed background color. Lipgloss emits a reset
// after every styled segment, which leaves holes in the background between
// segments; BgStyle paints every segment, spaces included.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	fill := lipgloss.NewStyle().Background(bg)
	return BgStyle{
		bg:    bg,
		fill:  fill,
		space: fill.Render(" "),
	}
}

// Render renders text with style on the background. Runs of spaces are
// painted separately so they keep the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)

	var out strings.Builder
	for text != "" {
		i := strings.IndexByte(text, ' ')
		switch {
		case i < 0:
			out.WriteString(style.Render(text))
			text = ""
		case i == 0:
			n := len(text) - len(strings.TrimLeft(text, " "))
			out.WriteString(b.Spaces(n))
			text = text[n:]
		default:
			out.WriteString(style.Render(text[:i]))
			text = text[i:]
		}
	}
	return out.String()
}

// Space returns a single painted space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Join joins parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.fill.Render(sep))
}

// Color returns the background color.
func (b BgStyle) Color() lipgloss.Color {
	return b.bg
}

// FillLine pads rendered content with background out to width.
func (b BgStyle) FillLine(content string, width int) string {
	return b.fill.Width(width).Render(content)
}

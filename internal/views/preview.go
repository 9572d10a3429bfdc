package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/yeardots/internal/grid"
	"github.com/sandeepkv93/yeardots/internal/model"
)

const (
	glyphDot    = "●"
	glyphSquare = "■"
	glyphRound  = "▪"
	glyphToday  = "◉"
)

// Glyph picks the cell character for a dot shape.
func Glyph(shape model.ShapeToken) string {
	switch shape {
	case model.ShapeCircle:
		return glyphDot
	case model.ShapeSquare:
		return glyphSquare
	default:
		return glyphRound
	}
}

// DotSpacing is the number of blank cells between dots for a pixel size.
func DotSpacing(sizePx int) int {
	switch {
	case sizePx <= 5:
		return 0
	case sizePx >= 9:
		return 2
	default:
		return 1
	}
}

// RenderPreview draws a frame as the phone wallpaper: clock and date, the
// dot grid, then the stats line and custom text.
func RenderPreview(f grid.Frame, shape model.ShapeToken) string {
	text := typeStyle(f.Type)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Accent))

	var lines []string
	if f.Clock != "" {
		lines = append(lines, text.Bold(true).Render(f.Clock))
	}
	lines = append(lines, text.Render(f.Date), "")

	glyph := Glyph(shape)
	for _, row := range f.Rows {
		var b strings.Builder
		for i, c := range row {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", DotSpacing(c.Style.SizePx)))
			}
			b.WriteString(renderDot(c, glyph))
		}
		lines = append(lines, b.String())
	}

	if f.Stats != "" || f.CustomText != "" {
		lines = append(lines, "")
	}
	if f.Stats != "" {
		lines = append(lines, accent.Inherit(text).Render(f.Stats))
	}
	if f.CustomText != "" {
		lines = append(lines, text.Render(f.CustomText))
	}
	return strings.Join(lines, "\n")
}

func renderDot(c grid.StyledCell, glyph string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Style.Color))
	if c.Highlighted {
		return style.Bold(true).Render(glyphToday)
	}
	return style.Render(glyph)
}

func typeStyle(t grid.Type) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch {
	case t.Weight >= 600:
		s = s.Bold(true)
	case t.Weight <= 300:
		s = s.Faint(true)
	}
	if t.Family == grid.SerifFamily {
		s = s.Italic(true)
	}
	return s
}

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Cell runes
const (
	PaddleChar  = '█'
	BallChar    = '●'
	MidlineChar = '┊'
)

// colorStyles maps core.Color to true-color lipgloss styles. lipgloss
// degrades them to the terminal's profile.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.RGB().Hex()))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
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

// Rasterize draws a pong draw list onto a character screen, scaling the
// logical field to the screen size.
func Rasterize(dl pong.DrawList, s *core.Screen) {
	s.Clear()
	if dl.Width <= 0 || dl.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	sx := float64(s.Width()) / dl.Width
	sy := float64(s.Height()) / dl.Height

	for _, r := range dl.Rects {
		x, w := span(r.Rect.Left(), r.Rect.Right(), sx)
		y, h := span(r.Rect.Top(), r.Rect.Bottom(), sy)

		switch r.Kind {
		case pong.RectMidline:
			s.DrawVLine(int(r.Rect.CenterX()*sx), y, h, MidlineChar, r.Color)
		case pong.RectBorder:
			s.DrawBox(x, y, w, h, r.Color)
		case pong.RectPaddle:
			s.FillRect(x, y, w, h, PaddleChar, r.Color)
		case pong.RectBall:
			cx, cy := r.Rect.Center()
			s.SetColored(int(cx*sx), int(cy*sy), BallChar, r.Color)
		}
	}

	for _, t := range dl.Texts {
		x := int(t.X * sx)
		switch t.Align {
		case pong.AlignRight:
			x -= len([]rune(t.Text))
		case pong.AlignCenter:
			x -= len([]rune(t.Text)) / 2
		}
		s.DrawTextColored(max(0, x), int(t.Y*sy), t.Text, t.Color)
	}
}

// span converts [a, b) in field units to a start cell and a length of at
// least one cell.
func span(a, b, scale float64) (int, int) {
	start := int(math.Floor(a * scale))
	end := int(math.Ceil(b * scale))
	return start, max(1, end-start)
}

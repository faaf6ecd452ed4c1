package pong

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Field colors
const (
	ColorForeground = core.ColorBrightWhite // Paddles, scores
	ColorMidline    = core.ColorGray        // Center line, border
	ColorAccent     = core.ColorBrightBlue  // Ball, win banner
	ColorHelp       = core.ColorWhite       // Help lines, pause text
)

// Center line and layout metrics, in field units.
const (
	dashHeight   = 14
	dashGap      = 10
	dashWidth    = 4
	scoreOffsetX = 60
	scoreTop     = 20
	helpLeftPad  = 8
	helpBottom   = 20
	helpLineStep = 22
	bannerRaise  = 40
)

// RectKind tells adapters what a rectangle represents, for those that
// cannot draw it literally (a terminal draws the border with box runes).
type RectKind int

const (
	RectMidline RectKind = iota
	RectBorder
	RectPaddle
	RectBall
)

// TextKind classifies a text request by role and size.
type TextKind int

const (
	TextScore  TextKind = iota // Large
	TextHelp                   // Small
	TextStatus                 // Small, centered
	TextBanner                 // Large, centered
)

// Align says which point of the text X refers to.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawRect is an axis-aligned rectangle to draw.
type DrawRect struct {
	Kind   RectKind
	Rect   core.Rect
	Color  core.Color
	Filled bool // Outline only when false
}

// DrawText is a text request anchored at (X, Y), the top of the text.
type DrawText struct {
	Kind  TextKind
	Text  string
	X, Y  float64
	Align Align
	Color core.Color
}

// DrawList is everything to draw for one frame, back to front.
type DrawList struct {
	Width, Height float64
	Background    core.RGB
	Rects         []DrawRect
	Texts         []DrawText
}

// DefaultHints returns the help lines for the standard key layout.
func DefaultHints(winScore int) []string {
	return []string{
		"Controls: W/S (Left), Up/Down (Right) | Space: Pause | R: Reset | H: Hide help | Esc: Quit",
		WinHint(winScore),
	}
}

// WinHint returns the "first to N" help line.
func WinHint(winScore int) string {
	return fmt.Sprintf("First to %d wins.", winScore)
}

// Render builds the draw list for the current state.
func (g *Game) Render() DrawList {
	w, h := g.field.W, g.field.H
	dl := DrawList{
		Width:      w,
		Height:     h,
		Background: core.Background,
	}

	for y := 0.0; y < h; y += dashHeight + dashGap {
		dl.Rects = append(dl.Rects, DrawRect{
			Kind:   RectMidline,
			Rect:   core.NewRect(w/2-dashWidth/2, y, dashWidth, dashHeight),
			Color:  ColorMidline,
			Filled: true,
		})
	}

	dl.Rects = append(dl.Rects,
		DrawRect{Kind: RectPaddle, Rect: g.left.Bounds(), Color: ColorForeground, Filled: true},
		DrawRect{Kind: RectPaddle, Rect: g.right.Bounds(), Color: ColorForeground, Filled: true},
		DrawRect{Kind: RectBall, Rect: g.ball.Bounds(), Color: ColorAccent, Filled: true},
		DrawRect{Kind: RectBorder, Rect: g.area, Color: ColorMidline},
	)

	dl.Texts = append(dl.Texts,
		DrawText{Kind: TextScore, Text: strconv.Itoa(g.scoreLeft), X: w/2 - scoreOffsetX, Y: scoreTop, Align: AlignRight, Color: ColorForeground},
		DrawText{Kind: TextScore, Text: strconv.Itoa(g.scoreRight), X: w/2 + scoreOffsetX, Y: scoreTop, Align: AlignLeft, Color: ColorForeground},
	)

	if g.showHelp {
		y := h - helpBottom - float64(len(g.hints)*helpLineStep)
		for _, line := range g.hints {
			dl.Texts = append(dl.Texts, DrawText{
				Kind:  TextHelp,
				Text:  line,
				X:     g.cfg.Field.Margin + helpLeftPad,
				Y:     y,
				Color: ColorHelp,
			})
			y += helpLineStep
		}
	}

	switch g.state {
	case StatePaused:
		dl.Texts = append(dl.Texts, DrawText{
			Kind:  TextStatus,
			Text:  "Paused",
			X:     w / 2,
			Y:     h/2 - bannerRaise,
			Align: AlignCenter,
			Color: ColorHelp,
		})
	case StateWon:
		dl.Texts = append(dl.Texts, DrawText{
			Kind:  TextBanner,
			Text:  g.winner.String() + " Wins! Press R to restart",
			X:     w / 2,
			Y:     h/2 - bannerRaise,
			Align: AlignCenter,
			Color: ColorAccent,
		})
	}

	return dl
}

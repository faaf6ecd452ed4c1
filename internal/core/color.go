package core

import "fmt"

// Color represents a foreground color for a draw primitive or screen cell.
// Uses ANSI 256-color codes for terminal compatibility; pixel adapters map
// these to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB is a 24-bit color used by pixel and true-color adapters.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Background is the field background shared by all adapters.
var Background = RGB{R: 16, G: 18, B: 23}

var palette = [...]RGB{
	ColorDefault:       {R: 235, G: 235, B: 235},
	ColorRed:           {R: 205, G: 49, B: 49},
	ColorGreen:         {R: 13, G: 188, B: 121},
	ColorYellow:        {R: 229, G: 229, B: 16},
	ColorBlue:          {R: 36, G: 114, B: 200},
	ColorMagenta:       {R: 188, G: 63, B: 188},
	ColorCyan:          {R: 17, G: 168, B: 205},
	ColorWhite:         {R: 190, G: 195, B: 205},
	ColorBrightRed:     {R: 241, G: 76, B: 76},
	ColorBrightGreen:   {R: 35, G: 209, B: 139},
	ColorBrightYellow:  {R: 245, G: 245, B: 67},
	ColorBrightBlue:    {R: 120, G: 190, B: 255},
	ColorBrightMagenta: {R: 214, G: 112, B: 214},
	ColorBrightCyan:    {R: 41, G: 184, B: 219},
	ColorBrightWhite:   {R: 235, G: 235, B: 235},
	ColorOrange:        {R: 255, G: 165, B: 0},
	ColorGray:          {R: 80, G: 84, B: 94},
}

// RGB returns the true-color value for c. Unknown colors map to the default.
func (c Color) RGB() RGB {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

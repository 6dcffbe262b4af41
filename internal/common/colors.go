package common

import (
	"image/color"
)

// NumberColors is the classic palette for neighbor counts, indexed by count.
// Index 0 is unused because empty cells draw no digit.
var NumberColors = [9]color.RGBA{
	{0, 0, 0, 0},
	{25, 60, 210, 255},   // 1 blue
	{30, 130, 30, 255},   // 2 green
	{210, 30, 30, 255},   // 3 red
	{20, 20, 120, 255},   // 4 navy
	{130, 20, 20, 255},   // 5 maroon
	{20, 130, 130, 255},  // 6 teal
	{0, 0, 0, 255},       // 7 black
	{110, 110, 110, 255}, // 8 gray
}

// NumberColor returns the digit color for a neighbor count
func NumberColor(count int) color.RGBA {
	if count < 1 || count >= len(NumberColors) {
		return color.RGBA{0, 0, 0, 255}
	}
	return NumberColors[count]
}

// RGB converts a configured [r,g,b] triple into an opaque color.
// Components are clamped to 0..255.
func RGB(rgb [3]int) color.RGBA {
	return color.RGBA{clamp8(rgb[0]), clamp8(rgb[1]), clamp8(rgb[2]), 255}
}

// ShiftColor returns c lightened by amount, or darkened for a negative amount
func ShiftColor(c color.Color, amount int) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		clamp8(int(r>>8) + amount),
		clamp8(int(g>>8) + amount),
		clamp8(int(b>>8) + amount),
		uint8(a >> 8),
	}
}

// WithAlpha returns c with its alpha replaced
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

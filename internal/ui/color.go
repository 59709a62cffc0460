package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	white    = colorful.Color{R: 1, G: 1, B: 1}
	darkGray = colorful.Color{R: 0.12, G: 0.12, B: 0.14}
)

// parseColor returns the body color, or light gray when hex is unusable.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 0.8, G: 0.8, B: 0.8}
	}
	return c
}

// bodyColor is the glyph color of a body. Focused bodies are lifted
// toward white.
func bodyColor(hex string, focused bool) lipgloss.Color {
	c := parseColor(hex)
	if focused {
		c = c.BlendLuv(white, 0.35)
	}
	return lipgloss.Color(c.Clamped().Hex())
}

// orbitColor tints an orbit track with its body's color.
func orbitColor(hex string) lipgloss.Color {
	return lipgloss.Color(parseColor(hex).BlendLab(darkGray, 0.7).Clamped().Hex())
}

var logoStops = []colorful.Color{
	{R: 59.0 / 255, G: 130.0 / 255, B: 246.0 / 255},
	{R: 139.0 / 255, G: 92.0 / 255, B: 246.0 / 255},
	{R: 217.0 / 255, G: 70.0 / 255, B: 239.0 / 255},
	{R: 236.0 / 255, G: 72.0 / 255, B: 153.0 / 255},
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue, purple, magenta, pink from left to right, darker toward the bottom.
func gradientColor(col, row, width, height int) string {
	if width <= 0 || height <= 0 {
		return logoStops[0].Hex()
	}
	x := float64(col) / float64(width)
	seg := x * float64(len(logoStops)-1)
	i := int(seg)
	if i >= len(logoStops)-1 {
		i = len(logoStops) - 2
	}
	c := logoStops[i].BlendLuv(logoStops[i+1], seg-float64(i))

	fade := float64(row) / float64(height) * 0.5
	c = c.BlendRgb(colorful.Color{}, fade)
	return c.Clamped().Hex()
}

package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// rivalPalette lists trail colors handed out to CPU cycles in spawn order.
var rivalPalette = []Color{ColorOrange, ColorMagenta, ColorGreen, ColorYellow, ColorBlue}

// RivalColor returns the trail color for the n-th CPU cycle (0-indexed).
func RivalColor(n int) Color {
	if n < 0 {
		n = -n
	}
	return rivalPalette[n%len(rivalPalette)]
}

package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Base terminal colors.
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
	ColorDarkGray
	ColorSand
	ColorRust
)

// Wasteland palette used by the arena renderer.
const (
	ColorTerritory = ColorSand
	ColorBorder    = ColorRust
	ColorTrail     = ColorBrightCyan
	ColorPlayer    = ColorBrightWhite
	ColorHazard    = ColorBrightRed
	ColorSpark     = ColorBrightYellow
	ColorEmber     = ColorOrange
	ColorSmoke     = ColorDarkGray
	ColorHUD       = ColorGray
)

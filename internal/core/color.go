package core

// Color identifies how a screen cell is drawn.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Level colors. The terminal renderer draws these with a background tint
// so pools and walls read as areas rather than glyphs.
const (
	ColorHot Color = iota + 32
	ColorCold
	ColorLava
	ColorWater
	ColorGoo
	ColorWall
	ColorAir // open space inside the level
)

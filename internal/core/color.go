package core

// Color represents a foreground color for a screen cell. The platform layer
// maps these to terminal styles; game drawing code never sees ANSI codes.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

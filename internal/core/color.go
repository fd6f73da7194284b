package core

// Color is a foreground color for a screen cell.
// Values map to ANSI codes in the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorRed
	ColorWhite
	ColorGray
)

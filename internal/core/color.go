package core

// Color is a foreground colour for a screen cell, as "#rrggbb".
// The empty string means the terminal's default colour.
type Color string

// Interface colours, cyan accents around the rain.
const (
	ColorDefault    Color = ""
	ColorAccent     Color = "#22d3ee" // titles
	ColorAccentSoft Color = "#67e8f9" // labels
	ColorFrame      Color = "#0e7490" // grid border
	ColorFaint      Color = "#164e63" // unlit cells
)

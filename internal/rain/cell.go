// Package rain implements the falling-rain grid simulation.
// It has no terminal or UI dependencies: randomness and scheduling are
// supplied by the host so the transition logic can be tested synchronously.
package rain

import "fmt"

// HSL is a colour in hue/saturation/lightness form.
// Hue is in degrees, saturation and lightness are fractions in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// String formats the colour the way CSS does, e.g. "hsl(201.3, 84.0%, 62.5%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.L*100)
}

// Cell is the visual state of one grid position.
type Cell struct {
	Active  bool    // Whether the cell currently emits light
	Color   HSL     // Colour shown while active
	Opacity float64 // Opacity shown while active
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// at maps a uniform sample u in [0, 1) onto the range.
func (r Range) at(u float64) float64 {
	return r.Min + u*(r.Max-r.Min)
}

// Palette bounds the colours given to freshly generated cells.
type Palette struct {
	Hue        Range // Degrees
	Saturation Range // Fraction
	Lightness  Range // Fraction
}

// NeonPalette is the default cyan-to-blue palette.
func NeonPalette() Palette {
	return Palette{
		Hue:        Range{Min: 190, Max: 230},
		Saturation: Range{Min: 0.70, Max: 1.00},
		Lightness:  Range{Min: 0.50, Max: 0.80},
	}
}

// Contains reports whether every component of c lies inside the palette.
func (p Palette) Contains(c HSL) bool {
	return p.Hue.Contains(c.H) && p.Saturation.Contains(c.S) && p.Lightness.Contains(c.L)
}

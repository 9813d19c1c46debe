package rain

import (
	"math/rand"
)

// Source supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Params controls how fresh cells are generated.
type Params struct {
	SpawnChance float64 // Probability that a fresh cell is active
	Opacity     Range   // Opacity of fresh cells
	Palette     Palette // Colour bounds of fresh cells
}

// DefaultParams returns the classic neon rain parameters.
func DefaultParams() Params {
	return Params{
		SpawnChance: 0.3,
		Opacity:     Range{Min: 0.5, Max: 1.0},
		Palette:     NeonPalette(),
	}
}

// Simulator generates and advances rain grids.
// It is not safe for concurrent use; Session adds locking on top.
type Simulator struct {
	src    Source
	params Params
}

// NewSimulator creates a simulator drawing randomness from src.
func NewSimulator(src Source, params Params) *Simulator {
	return &Simulator{src: src, params: params}
}

// NewSeeded creates a simulator with a math/rand source seeded with seed.
func NewSeeded(seed int64, params Params) *Simulator {
	return NewSimulator(rand.New(rand.NewSource(seed)), params)
}

// Params returns the generation parameters.
func (s *Simulator) Params() Params {
	return s.params
}

// color draws a fresh colour: hue, then saturation, then lightness.
func (s *Simulator) color() HSL {
	p := s.params.Palette
	h := p.Hue.at(s.src.Float64())
	sat := p.Saturation.at(s.src.Float64())
	l := p.Lightness.at(s.src.Float64())
	return HSL{H: h, S: sat, L: l}
}

// spawn draws a fresh cell that is active with probability SpawnChance.
func (s *Simulator) spawn() Cell {
	active := s.src.Float64() < s.params.SpawnChance
	return s.fresh(active)
}

// fresh draws a new colour and opacity for a cell with the given flag.
func (s *Simulator) fresh(active bool) Cell {
	c := s.color()
	return Cell{
		Active:  active,
		Color:   c,
		Opacity: s.params.Opacity.at(s.src.Float64()),
	}
}

// Initialize builds a fresh rows x cols grid. Every cell is independently
// active with probability SpawnChance and gets a fresh colour and opacity.
func (s *Simulator) Initialize(rows, cols int) (Grid, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}

	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]Cell, cols)
		for j := range g[i] {
			g[i][j] = s.spawn()
		}
	}
	return g, nil
}

// Tick advances the rain by one step and returns a new grid; prev is not modified.
//
// Rows are visited bottom to top. For each column:
//   - the top row is always regenerated;
//   - if the cell above was active, it falls into this row keeping its colour
//     and opacity, and the cell it left goes dark with a fresh colour;
//   - otherwise the cell keeps whatever it currently holds.
//
// All reads come from prev, all writes go to the copy.
func (s *Simulator) Tick(prev Grid, rows, cols int) (Grid, error) {
	if err := checkShape(prev, rows, cols); err != nil {
		return nil, err
	}

	next := prev.Clone()
	for i := rows - 1; i >= 0; i-- {
		for j := 0; j < cols; j++ {
			if i == 0 {
				next[i][j] = s.spawn()
				continue
			}
			if above := prev[i-1][j]; above.Active {
				next[i][j] = Cell{Active: true, Color: above.Color, Opacity: above.Opacity}
				next[i-1][j] = s.fresh(false)
			}
		}
	}
	return next, nil
}

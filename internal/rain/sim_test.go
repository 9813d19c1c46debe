package rain

import (
	"errors"
	"math"
	"testing"
)

// seqSource replays a fixed cycle of samples.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func constSource(v float64) *seqSource {
	return &seqSource{vals: []float64{v}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkFresh(t *testing.T, p Params, c Cell, where string) {
	t.Helper()
	if !p.Palette.Contains(c.Color) {
		t.Errorf("%s: color %s outside palette", where, c.Color)
	}
	if !p.Opacity.Contains(c.Opacity) {
		t.Errorf("%s: opacity %f outside [%f, %f)", where, c.Opacity, p.Opacity.Min, p.Opacity.Max)
	}
}

func TestInitializeDimensions(t *testing.T) {
	sim := NewSeeded(1, DefaultParams())

	tests := []struct {
		rows, cols int
	}{
		{1, 1},
		{15, 20},
		{40, 40},
		{1, 40},
		{40, 1},
	}

	for _, tc := range tests {
		g, err := sim.Initialize(tc.rows, tc.cols)
		if err != nil {
			t.Fatalf("Initialize(%d, %d) failed: %v", tc.rows, tc.cols, err)
		}
		if g.Rows() != tc.rows || g.Cols() != tc.cols {
			t.Errorf("Initialize(%d, %d) = %dx%d grid", tc.rows, tc.cols, g.Rows(), g.Cols())
		}
		for i, row := range g {
			if len(row) != tc.cols {
				t.Errorf("row %d has %d cells, expected %d", i, len(row), tc.cols)
			}
		}
	}
}

func TestInitializeRejectsOutOfBounds(t *testing.T) {
	sim := NewSeeded(1, DefaultParams())

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 5},
		{"too many rows", 41, 5},
		{"too many cols", 5, 41},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := sim.Initialize(tc.rows, tc.cols)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Initialize(%d, %d) error = %v, expected ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestInitializeCellRanges(t *testing.T) {
	p := DefaultParams()
	sim := NewSeeded(7, p)

	g, err := sim.Initialize(40, 40)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	for i := range g {
		for j := range g[i] {
			checkFresh(t, p, g[i][j], "initialize")
		}
	}

	// 1600 cells at p=0.3: expect roughly 480 active.
	active := g.ActiveCount()
	if active < 350 || active > 610 {
		t.Errorf("ActiveCount() = %d, expected about 480", active)
	}
}

func TestInitializeDrawOrder(t *testing.T) {
	// active, hue, saturation, lightness, opacity
	src := &seqSource{vals: []float64{0.1, 0.0, 0.5, 0.5, 0.0}}
	sim := NewSimulator(src, DefaultParams())

	g, err := sim.Initialize(1, 1)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	c := g[0][0]
	if !c.Active {
		t.Error("sample 0.1 < 0.3 should produce an active cell")
	}
	if c.Color.H != 190 {
		t.Errorf("hue = %f, expected 190", c.Color.H)
	}
	if !approx(c.Color.S, 0.85) || !approx(c.Color.L, 0.65) {
		t.Errorf("color = %+v, expected S=0.85 L=0.65", c.Color)
	}
	if c.Opacity != 0.5 {
		t.Errorf("opacity = %f, expected 0.5", c.Opacity)
	}
}

func TestTickFallsOneRow(t *testing.T) {
	p := DefaultParams()
	sim := NewSimulator(constSource(0.5), p)

	drop := Cell{Active: true, Color: HSL{H: 200, S: 0.9, L: 0.6}, Opacity: 0.8}
	below := Cell{Active: false, Color: HSL{H: 220, S: 0.8, L: 0.7}, Opacity: 0.6}
	prev := Grid{{drop}, {below}}

	next, err := sim.Tick(prev, 2, 1)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	if next[1][0] != drop {
		t.Errorf("row 1 = %+v, expected the droplet %+v", next[1][0], drop)
	}

	// Row 0 is regenerated from the source: 0.5 >= 0.3 means inactive.
	top := next[0][0]
	if top.Active {
		t.Error("regenerated top cell should be inactive for sample 0.5")
	}
	if top.Color == drop.Color {
		t.Error("top cell should have a fresh color")
	}
	checkFresh(t, p, top, "top row")
}

func TestTickDoesNotMutateInput(t *testing.T) {
	sim := NewSeeded(3, DefaultParams())

	prev, err := sim.Initialize(12, 9)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	saved := prev.Clone()

	if _, err := sim.Tick(prev, 12, 9); err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	if !prev.Equal(saved) {
		t.Error("Tick() modified its input grid")
	}
}

func TestTickConservation(t *testing.T) {
	for _, rows := range []int{2, 3, 15, 40} {
		sim := NewSeeded(int64(rows), DefaultParams())
		g, err := sim.Initialize(rows, 20)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}

		for step := 0; step < 50; step++ {
			next, err := sim.Tick(g, rows, 20)
			if err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}

			for j := 0; j < 20; j++ {
				falling := g.ActiveInColumn(j, 0, rows-2)
				// A bottom droplet with nothing above it is never vacated.
				lingering := 0
				if g[rows-1][j].Active && !g[rows-2][j].Active {
					lingering = 1
				}
				got := next.ActiveInColumn(j, 1, rows-1)
				if got != falling+lingering {
					t.Fatalf("rows=%d step=%d col=%d: %d active below top, expected %d+%d",
						rows, step, j, got, falling, lingering)
				}
			}
			g = next
		}
	}
}

func TestTickMovedCellsKeepAppearance(t *testing.T) {
	sim := NewSeeded(11, DefaultParams())
	g, err := sim.Initialize(10, 10)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	next, err := sim.Tick(g, 10, 10)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	for i := 1; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if g[i-1][j].Active && next[i][j] != g[i-1][j] {
				t.Errorf("(%d,%d) = %+v, expected droplet %+v from above", i, j, next[i][j], g[i-1][j])
			}
			// Untouched cells keep their exact value.
			vacated := i < 9 && g[i][j].Active
			if !g[i-1][j].Active && !vacated && next[i][j] != g[i][j] {
				t.Errorf("(%d,%d) changed without a droplet: %+v -> %+v", i, j, g[i][j], next[i][j])
			}
		}
	}
}

func TestTickVacatedCellsGoDark(t *testing.T) {
	p := DefaultParams()
	sim := NewSeeded(5, p)
	g, err := sim.Initialize(8, 8)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	next, err := sim.Tick(g, 8, 8)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	for i := 1; i < 7; i++ {
		for j := 0; j < 8; j++ {
			// Active before, nothing falling in: vacated.
			if g[i][j].Active && !g[i-1][j].Active {
				if next[i][j].Active {
					t.Errorf("(%d,%d) should have been vacated", i, j)
				}
				checkFresh(t, p, next[i][j], "vacated")
			}
		}
	}
}

func TestTickTopRowRegenerated(t *testing.T) {
	p := DefaultParams()
	sim := NewSeeded(9, p)
	g, err := sim.Initialize(5, 30)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	for step := 0; step < 20; step++ {
		g, err = sim.Tick(g, 5, 30)
		if err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
		for j := range g[0] {
			checkFresh(t, p, g[0][j], "top row")
		}
	}
}

func TestTickSingleRow(t *testing.T) {
	p := DefaultParams()

	// Alternate active and inactive top cells: nothing carries over.
	src := &seqSource{vals: []float64{0.1, 0.2, 0.2, 0.2, 0.2, 0.9, 0.7, 0.7, 0.7, 0.7}}
	sim := NewSimulator(src, p)

	g, err := sim.Initialize(1, 1)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if !g[0][0].Active {
		t.Fatal("first cell should be active")
	}

	for step := 0; step < 6; step++ {
		prev := g[0][0]
		g, err = sim.Tick(g, 1, 1)
		if err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
		if g.Rows() != 1 || g.Cols() != 1 {
			t.Fatalf("grid shape changed to %dx%d", g.Rows(), g.Cols())
		}
		if g[0][0].Active == prev.Active {
			t.Errorf("step %d: active flag %v carried over", step, prev.Active)
		}
		if g[0][0].Color == prev.Color {
			t.Errorf("step %d: color carried over", step)
		}
		checkFresh(t, p, g[0][0], "single row")
	}
}

func TestTickRejectsMismatchedShape(t *testing.T) {
	sim := NewSeeded(1, DefaultParams())
	g, err := sim.Initialize(4, 4)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"rows differ", 5, 4},
		{"cols differ", 4, 3},
		{"zero", 0, 0},
		{"over max", 41, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sim.Tick(g, tc.rows, tc.cols); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Tick(%d, %d) error = %v, expected ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestSeededDeterminism(t *testing.T) {
	run := func() Grid {
		sim := NewSeeded(12345, DefaultParams())
		g, err := sim.Initialize(15, 20)
		if err != nil {
			t.Fatalf("Initialize() failed: %v", err)
		}
		for i := 0; i < 25; i++ {
			g, err = sim.Tick(g, 15, 20)
			if err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}
		}
		return g
	}

	if !run().Equal(run()) {
		t.Error("same seed produced different grids")
	}
}

func TestHSLString(t *testing.T) {
	c := HSL{H: 201.25, S: 0.84, L: 0.625}
	expected := "hsl(201.2, 84.0%, 62.5%)"
	if c.String() != expected {
		t.Errorf("String() = %q, expected %q", c.String(), expected)
	}
}

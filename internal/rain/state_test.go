package rain

import (
	"errors"
	"testing"
)

func TestNewStateRunning(t *testing.T) {
	sim := NewSeeded(1, DefaultParams())

	st, err := sim.NewState(15, 20)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	if !st.Running {
		t.Error("new state should be running")
	}
	if st.Rows != 15 || st.Cols != 20 {
		t.Errorf("dimensions = %dx%d, expected 15x20", st.Rows, st.Cols)
	}
	if st.Grid.Rows() != 15 || st.Grid.Cols() != 20 {
		t.Errorf("grid = %dx%d, expected 15x20", st.Grid.Rows(), st.Grid.Cols())
	}
}

func TestResizeReplacesGrid(t *testing.T) {
	sim := NewSeeded(2, DefaultParams())
	st, err := sim.NewState(15, 20)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	old := st.Grid

	st, err = sim.Resize(st, 15, 10)
	if err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if st.Cols != 10 || st.Grid.Cols() != 10 {
		t.Errorf("cols = %d (grid %d), expected 10", st.Cols, st.Grid.Cols())
	}
	if st.Grid.Rows() != 15 {
		t.Errorf("rows = %d, expected 15", st.Grid.Rows())
	}

	// No carry-over: the first ten columns are not the old ones.
	same := 0
	for i := range st.Grid {
		for j := range st.Grid[i] {
			if st.Grid[i][j] == old[i][j] {
				same++
			}
		}
	}
	if same != 0 {
		t.Errorf("%d cells carried over from the old grid", same)
	}
}

func TestResizeSameSizeKeepsGrid(t *testing.T) {
	sim := NewSeeded(3, DefaultParams())
	st, err := sim.NewState(5, 5)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	before := st.Grid.Clone()

	st, err = sim.Resize(st, 5, 5)
	if err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if !st.Grid.Equal(before) {
		t.Error("same-size Resize() should keep the grid")
	}
}

func TestResizeRejectsOutOfBounds(t *testing.T) {
	sim := NewSeeded(4, DefaultParams())
	st, err := sim.NewState(5, 5)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	got, err := sim.Resize(st, 5, 41)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize() error = %v, expected ErrInvalidDimensions", err)
	}
	if got.Cols != 5 || !got.Grid.Equal(st.Grid) {
		t.Error("failed Resize() should return the state unchanged")
	}
}

func TestAdvancePausedIsIdentity(t *testing.T) {
	sim := NewSeeded(5, DefaultParams())
	st, err := sim.NewState(10, 10)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	st = SetRunning(st, false)
	before := st.Grid.Clone()

	for i := 0; i < 5; i++ {
		st, err = sim.Advance(st)
		if err != nil {
			t.Fatalf("Advance() failed: %v", err)
		}
	}

	if !st.Grid.Equal(before) {
		t.Error("paused Advance() changed the grid")
	}
}

func TestAdvanceRunningTicks(t *testing.T) {
	a := NewSeeded(6, DefaultParams())
	b := NewSeeded(6, DefaultParams())

	st, err := a.NewState(10, 10)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	g, err := b.Initialize(10, 10)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	st, err = a.Advance(st)
	if err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	g, err = b.Tick(g, 10, 10)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}

	if !st.Grid.Equal(g) {
		t.Error("Advance() should match one Tick()")
	}
}

func TestToggle(t *testing.T) {
	st := State{Running: true}
	st = Toggle(st)
	if st.Running {
		t.Error("Toggle() should pause a running state")
	}
	st = Toggle(st)
	if !st.Running {
		t.Error("Toggle() should resume a paused state")
	}
}

func TestReseedKeepsSize(t *testing.T) {
	sim := NewSeeded(8, DefaultParams())
	st, err := sim.NewState(7, 9)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	before := st.Grid.Clone()

	st, err = sim.Reseed(st)
	if err != nil {
		t.Fatalf("Reseed() failed: %v", err)
	}
	if st.Grid.Rows() != 7 || st.Grid.Cols() != 9 {
		t.Errorf("grid = %dx%d, expected 7x9", st.Grid.Rows(), st.Grid.Cols())
	}
	if st.Grid.Equal(before) {
		t.Error("Reseed() should produce a new grid")
	}
}

package rain

// State is everything a host needs to keep between ticks.
type State struct {
	Grid    Grid
	Rows    int
	Cols    int
	Running bool
}

// NewState initializes a running state of the given size.
func (s *Simulator) NewState(rows, cols int) (State, error) {
	g, err := s.Initialize(rows, cols)
	if err != nil {
		return State{}, err
	}
	return State{Grid: g, Rows: rows, Cols: cols, Running: true}, nil
}

// Resize returns st with a freshly initialized grid of the new size.
// Nothing from the old grid is carried over. Same-size requests are a no-op.
func (s *Simulator) Resize(st State, rows, cols int) (State, error) {
	if rows == st.Rows && cols == st.Cols && st.Grid.Rows() == rows && st.Grid.Cols() == cols {
		return st, nil
	}
	g, err := s.Initialize(rows, cols)
	if err != nil {
		return st, err
	}
	st.Grid = g
	st.Rows = rows
	st.Cols = cols
	return st, nil
}

// Reseed returns st with a freshly initialized grid of the same size.
func (s *Simulator) Reseed(st State) (State, error) {
	g, err := s.Initialize(st.Rows, st.Cols)
	if err != nil {
		return st, err
	}
	st.Grid = g
	return st, nil
}

// Advance ticks st once if it is running. A paused state is returned as is.
func (s *Simulator) Advance(st State) (State, error) {
	if !st.Running {
		return st, nil
	}
	g, err := s.Tick(st.Grid, st.Rows, st.Cols)
	if err != nil {
		return st, err
	}
	st.Grid = g
	return st, nil
}

// SetRunning returns st with the run flag set.
func SetRunning(st State, running bool) State {
	st.Running = running
	return st
}

// Toggle flips between running and paused.
func Toggle(st State) State {
	st.Running = !st.Running
	return st
}

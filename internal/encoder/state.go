package encoder

// LineState records the last observed level of each encoder line. The set is
// always fully populated; use NewLineState rather than the zero value.
type LineState struct {
	clk Level
	dt  Level
	sw  Level
}

// NewLineState returns a state with every line at its idle level, matching a
// pull-up wired encoder at rest.
func NewLineState() LineState {
	return LineState{clk: High, dt: High, sw: High}
}

// Update records a freshly sampled triple. The sampled values are
// authoritative and replace whatever was recorded before.
func (s *LineState) Update(clk, dt, sw Level) {
	s.clk = clk
	s.dt = dt
	s.sw = sw
}

// Get returns the recorded level of a single line.
func (s LineState) Get(l Line) Level {
	switch l {
	case Clock:
		return s.clk
	case Data:
		return s.dt
	case Switch:
		return s.sw
	}
	return High
}

// Quiescent reports whether all three lines are back at their idle level.
func (s LineState) Quiescent() bool {
	return s.clk == High && s.dt == High && s.sw == High
}

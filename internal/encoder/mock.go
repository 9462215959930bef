package encoder

import "errors"

// ScriptedSampler is a test double that replays a fixed list of line samples
// in (clk, dt, sw) order. When the script is used up it keeps returning the
// final sample, like a real encoder resting at its last position.
type ScriptedSampler struct {
	Samples [][3]Level
	// Err, when set, is returned from every Sample call.
	Err error
	// Exhausted, when set, is called once when the final scripted sample is
	// served. Handy for cancelling the decoder context at a known point.
	Exhausted func()
	// CloseCalls counts Close invocations.
	CloseCalls int

	index    int
	notified bool
}

func (s *ScriptedSampler) Sample() (Level, Level, Level, error) {
	if s.Err != nil {
		return Low, Low, Low, s.Err
	}
	if len(s.Samples) == 0 {
		return Low, Low, Low, errors.New("no samples scripted")
	}

	cur := s.Samples[s.index]
	if s.index < len(s.Samples)-1 {
		s.index++
	} else if !s.notified {
		s.notified = true
		if s.Exhausted != nil {
			s.Exhausted()
		}
	}
	return cur[0], cur[1], cur[2], nil
}

func (s *ScriptedSampler) Close() error {
	s.CloseCalls++
	return nil
}

// RecordingHandler appends every dispatched gesture, for assertions.
type RecordingHandler struct {
	Gestures []Gesture
}

func (h *RecordingHandler) RotateLeft()  { h.Gestures = append(h.Gestures, RotateLeft) }
func (h *RecordingHandler) RotateRight() { h.Gestures = append(h.Gestures, RotateRight) }
func (h *RecordingHandler) Press()       { h.Gestures = append(h.Gestures, Press) }
func (h *RecordingHandler) Release()     { h.Gestures = append(h.Gestures, Release) }

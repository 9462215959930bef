// Package encoder decodes user gestures from a three-line rotary encoder
// with an integrated push-button (KY-040 style), sampled by polling.
package encoder

// Level is the logical value read from an encoder line. The lines are wired
// active-low with pull-ups, so High means idle and Low means actuated.
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Line identifies one of the three encoder lines.
type Line int

const (
	Clock Line = iota
	Data
	Switch
)

func (l Line) String() string {
	switch l {
	case Clock:
		return "clk"
	case Data:
		return "dt"
	case Switch:
		return "sw"
	}
	return "N/A"
}

// Gesture is a single decoded knob action.
type Gesture int

const (
	RotateLeft Gesture = iota
	RotateRight
	Press
	Release
)

func (g Gesture) String() string {
	switch g {
	case RotateLeft:
		return "rotate left"
	case RotateRight:
		return "rotate right"
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return "unknown"
}

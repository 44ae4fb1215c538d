package pictograph

import "fmt"

// Orientation describes how a prop faces relative to the grid center.
// IN and OUT are radial orientations (layer 1); CLOCK and COUNTER are
// nonradial (layer 2).
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// ParseOrientation converts a config/API string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case In, Out, Clock, Counter:
		return Orientation(s), nil
	}
	return "", fmt.Errorf("invalid orientation %q", s)
}

// IsRadial reports whether the orientation is IN or OUT.
func (o Orientation) IsRadial() bool { return o == In || o == Out }

// Valid reports whether the orientation is one of the four known values.
func (o Orientation) Valid() bool {
	switch o {
	case In, Out, Clock, Counter:
		return true
	}
	return false
}

// Flipped returns the orientation rotated a half turn: IN↔OUT, CLOCK↔COUNTER.
func (o Orientation) Flipped() Orientation {
	switch o {
	case In:
		return Out
	case Out:
		return In
	case Clock:
		return Counter
	case Counter:
		return Clock
	}
	return o
}

// RotationDirection is the prop rotation behavior of a motion.
type RotationDirection string

const (
	Clockwise        RotationDirection = "cw"
	CounterClockwise RotationDirection = "ccw"
	NoRotation       RotationDirection = "no_rot"
)

// ParseRotationDirection converts a config/API string to a RotationDirection.
func ParseRotationDirection(s string) (RotationDirection, error) {
	switch RotationDirection(s) {
	case Clockwise, CounterClockwise, NoRotation:
		return RotationDirection(s), nil
	}
	return "", fmt.Errorf("invalid rotation direction %q", s)
}

// Valid reports whether the direction is one of the three known values.
func (r RotationDirection) Valid() bool {
	switch r {
	case Clockwise, CounterClockwise, NoRotation:
		return true
	}
	return false
}

// Reversed returns the opposite rotation direction. NoRotation is its own
// reverse.
func (r RotationDirection) Reversed() RotationDirection {
	switch r {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return r
}

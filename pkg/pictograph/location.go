package pictograph

import "fmt"

// Location is one of the eight compass points of the pictograph grid.
type Location string

// The eight compass locations. The string values match the external
// placement config files and must not change.
const (
	North     Location = "n"
	East      Location = "e"
	South     Location = "s"
	West      Location = "w"
	Northeast Location = "ne"
	Southeast Location = "se"
	Southwest Location = "sw"
	Northwest Location = "nw"
)

// Locations lists all eight compass points in clockwise order starting
// at North. The order is load-bearing: rotation-direction tables step
// through it.
var Locations = []Location{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// ParseLocation converts a config/API string to a Location.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case North, East, South, West, Northeast, Southeast, Southwest, Northwest:
		return Location(s), nil
	}
	return "", fmt.Errorf("invalid location %q", s)
}

// IsCardinal reports whether the location is one of n/e/s/w.
func (l Location) IsCardinal() bool {
	switch l {
	case North, East, South, West:
		return true
	}
	return false
}

// IsDiagonal reports whether the location is one of ne/se/sw/nw.
func (l Location) IsDiagonal() bool {
	switch l {
	case Northeast, Southeast, Southwest, Northwest:
		return true
	}
	return false
}

// Valid reports whether the location is one of the eight compass points.
func (l Location) Valid() bool { return l.IsCardinal() || l.IsDiagonal() }

// Opposite returns the location mirrored through the grid center.
func (l Location) Opposite() Location {
	switch l {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Southeast:
		return Northwest
	case Northwest:
		return Southeast
	}
	return l
}

// LocationPair is an ordered (start, end) pair of compass points.
// Used as a table key for dash location and rotation lookups.
type LocationPair struct {
	Start Location
	End   Location
}

package geometry

import "github.com/pictolab/glyphgrid/pkg/pictograph"

// Quadrant index maps. Directional tuples carry exactly four candidates;
// the arrow's calculated location selects one. Shift arrows live on the
// diagonal ring in diamond mode and the cardinal ring in box mode;
// static/dash arrows are the other way around.

var diagonalQuadrants = map[pictograph.Location]int{
	pictograph.Northeast: 0,
	pictograph.Southeast: 1,
	pictograph.Southwest: 2,
	pictograph.Northwest: 3,
}

var cardinalQuadrants = map[pictograph.Location]int{
	pictograph.North: 0,
	pictograph.East:  1,
	pictograph.South: 2,
	pictograph.West:  3,
}

// QuadrantIndex returns the 0–3 ordinal selecting which of the four
// rotation-symmetric adjustment candidates applies to an arrow at loc.
// The boolean is false when the location is off the expected ring for the
// motion family, which cannot happen for locations produced by the location
// calculator.
func QuadrantIndex(mt pictograph.MotionType, loc pictograph.Location) (int, bool) {
	if mt.IsShift() {
		if i, ok := diagonalQuadrants[loc]; ok {
			return i, true
		}
		i, ok := cardinalQuadrants[loc]
		return i, ok
	}
	if i, ok := cardinalQuadrants[loc]; ok {
		return i, true
	}
	i, ok := diagonalQuadrants[loc]
	return i, ok
}

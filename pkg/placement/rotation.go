package placement

import "github.com/pictolab/glyphgrid/pkg/pictograph"

// Rotation angle tables, in degrees. Pure data, no external state. Any
// location absent from the relevant table resolves to 0 as a conservative
// fallback.

// staticRotations is the fixed hand rotation per location.
var staticRotations = map[pictograph.Location]float64{
	pictograph.North:     180,
	pictograph.Northeast: 225,
	pictograph.East:      270,
	pictograph.Southeast: 315,
	pictograph.South:     0,
	pictograph.Southwest: 45,
	pictograph.West:      90,
	pictograph.Northwest: 135,
}

// proRotations keys the shift angle by prop rotation direction.
var proRotations = map[pictograph.RotationDirection]map[pictograph.Location]float64{
	pictograph.Clockwise: {
		pictograph.North:     315,
		pictograph.Northeast: 0,
		pictograph.East:      45,
		pictograph.Southeast: 90,
		pictograph.South:     135,
		pictograph.Southwest: 180,
		pictograph.West:      225,
		pictograph.Northwest: 270,
	},
	pictograph.CounterClockwise: {
		pictograph.North:     315,
		pictograph.Northeast: 270,
		pictograph.East:      225,
		pictograph.Southeast: 180,
		pictograph.South:     135,
		pictograph.Southwest: 90,
		pictograph.West:      45,
		pictograph.Northwest: 0,
	},
}

// antiRotations mirrors proRotations: ANTI turns against its travel.
var antiRotations = map[pictograph.RotationDirection]map[pictograph.Location]float64{
	pictograph.Clockwise:        proRotations[pictograph.CounterClockwise],
	pictograph.CounterClockwise: proRotations[pictograph.Clockwise],
}

// dashNoRotationAngles keys the angle of a non-turning dash by its ordered
// (start, end) pair.
var dashNoRotationAngles = map[pair]float64{
	{Start: pictograph.North, End: pictograph.South}:         90,
	{Start: pictograph.East, End: pictograph.West}:           180,
	{Start: pictograph.South, End: pictograph.North}:         270,
	{Start: pictograph.West, End: pictograph.East}:           0,
	{Start: pictograph.Northeast, End: pictograph.Southwest}: 225,
	{Start: pictograph.Southeast, End: pictograph.Northwest}: 315,
	{Start: pictograph.Southwest, End: pictograph.Northeast}: 45,
	{Start: pictograph.Northwest, End: pictograph.Southeast}: 135,
}

// dashRotations keys the turning-dash angle by rotation direction.
var dashRotations = map[pictograph.RotationDirection]map[pictograph.Location]float64{
	pictograph.Clockwise: {
		pictograph.North:     270,
		pictograph.East:      0,
		pictograph.South:     90,
		pictograph.West:      180,
		pictograph.Northeast: 315,
		pictograph.Southeast: 45,
		pictograph.Southwest: 135,
		pictograph.Northwest: 225,
	},
	pictograph.CounterClockwise: {
		pictograph.North:     270,
		pictograph.East:      180,
		pictograph.South:     90,
		pictograph.West:      0,
		pictograph.Northeast: 225,
		pictograph.Southeast: 135,
		pictograph.Southwest: 45,
		pictograph.Northwest: 315,
	},
}

// Rotation computes the rotation angle in degrees for a motion at its
// calculated location.
func Rotation(m pictograph.Motion, loc pictograph.Location) float64 {
	switch m.Type {
	case pictograph.Static:
		return staticRotations[loc]
	case pictograph.Pro:
		return proRotations[m.RotDir][loc]
	case pictograph.Anti:
		return antiRotations[m.RotDir][loc]
	case pictograph.Float:
		return floatRotation(m, loc)
	case pictograph.Dash:
		if m.RotDir == pictograph.NoRotation {
			return dashNoRotationAngles[pair{Start: m.StartLoc, End: m.EndLoc}]
		}
		return dashRotations[m.RotDir][loc]
	}
	return 0
}

// floatRotation reads the PRO tables with the rotation direction implied by
// the float's handpath.
func floatRotation(m pictograph.Motion, loc pictograph.Location) float64 {
	path, ok := Handpath(m.StartLoc, m.EndLoc)
	if !ok {
		return 0
	}
	switch path {
	case HandpathCW:
		return proRotations[pictograph.Clockwise][loc]
	case HandpathCCW:
		return proRotations[pictograph.CounterClockwise][loc]
	}
	return 0
}

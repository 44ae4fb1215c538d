package placement

import (
	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// DirectionalTuple holds the four quadrant-mirrored adjustment candidates
// generated from one base adjustment.
type DirectionalTuple [4]geometry.Point

// tupleFn expands a base (x, y) into its four candidates.
type tupleFn func(x, y float64) DirectionalTuple

// Tuple formulas. Every motion type × rotation direction × grid mode
// combination has its own literal formula; the literals are shared with
// existing asset packs and must be preserved exactly. Box formulas are the
// diamond ones with the two components exchanged in every candidate.
var tupleFormulas = map[pictograph.GridMode]map[pictograph.MotionType]map[pictograph.RotationDirection]tupleFn{
	pictograph.Diamond: {
		pictograph.Pro: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: -x}, {X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
		},
		pictograph.Anti: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: -x}, {X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
		},
		pictograph.Static: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -x, Y: -y}, {X: y, Y: -x}, {X: x, Y: y}, {X: -y, Y: x}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
		},
		pictograph.Dash: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -x, Y: -y}, {X: y, Y: -x}, {X: x, Y: y}, {X: -y, Y: x}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
			},
		},
	},
	pictograph.Box: {
		pictograph.Pro: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -x, Y: -y}, {X: -y, Y: x}, {X: x, Y: y}, {X: y, Y: -x}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
		},
		pictograph.Anti: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -x, Y: -y}, {X: -y, Y: x}, {X: x, Y: y}, {X: y, Y: -x}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
		},
		pictograph.Static: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: x}, {X: x, Y: y}, {X: y, Y: -x}, {X: -x, Y: -y}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: -x}, {X: -x, Y: y}, {X: y, Y: x}, {X: x, Y: -y}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
		},
		pictograph.Dash: {
			pictograph.Clockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: x}, {X: x, Y: y}, {X: y, Y: -x}, {X: -x, Y: -y}}
			},
			pictograph.CounterClockwise: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: -y, Y: -x}, {X: -x, Y: y}, {X: y, Y: x}, {X: x, Y: -y}}
			},
			pictograph.NoRotation: func(x, y float64) DirectionalTuple {
				return DirectionalTuple{{X: y, Y: x}, {X: x, Y: -y}, {X: -y, Y: -x}, {X: -x, Y: y}}
			},
		},
	},
}

// DirectionalTuples expands a base adjustment into its four candidates for
// a motion. Floats read the PRO formulas with the rotation direction
// implied by their handpath.
func DirectionalTuples(base geometry.Point, m pictograph.Motion, grid pictograph.GridMode) DirectionalTuple {
	mt := m.Type
	dir := m.RotDir
	if mt == pictograph.Float {
		mt = pictograph.Pro
		dir = floatRotDir(m)
	}
	fn := tupleFormulas[grid][mt][dir]
	if fn == nil {
		// Unknown grid mode. Cannot happen for validated pictographs.
		return DirectionalTuple{base, base, base, base}
	}
	return fn(base.X, base.Y)
}

// floatRotDir derives the tuple rotation direction of a float from its
// handpath.
func floatRotDir(m pictograph.Motion) pictograph.RotationDirection {
	path, ok := Handpath(m.StartLoc, m.EndLoc)
	if !ok {
		return pictograph.NoRotation
	}
	switch path {
	case HandpathCW:
		return pictograph.Clockwise
	case HandpathCCW:
		return pictograph.CounterClockwise
	}
	return pictograph.NoRotation
}

// SelectCandidate picks the quadrant candidate for an arrow at loc. The
// index is always in range for locations produced by the location
// calculator; the boolean covers the impossible off-ring case.
func SelectCandidate(t DirectionalTuple, m pictograph.Motion, loc pictograph.Location) (geometry.Point, bool) {
	i, ok := geometry.QuadrantIndex(m.Type, loc)
	if !ok {
		return geometry.Point{}, false
	}
	return t[i], true
}

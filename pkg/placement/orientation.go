package placement

import (
	"math"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// HandpathClass classifies the travel of a (start, end) location pair.
type HandpathClass string

const (
	HandpathCW     HandpathClass = "cw_handpath"
	HandpathCCW    HandpathClass = "ccw_handpath"
	HandpathDash   HandpathClass = "dash"
	HandpathStatic HandpathClass = "static"
)

// handpaths maps every meaningful (start, end) pair to its class:
// one ring step clockwise or counter-clockwise, a jump to the opposite
// point, or no travel at all.
var handpaths = map[pair]HandpathClass{
	{Start: pictograph.North, End: pictograph.East}:          HandpathCW,
	{Start: pictograph.East, End: pictograph.South}:          HandpathCW,
	{Start: pictograph.South, End: pictograph.West}:          HandpathCW,
	{Start: pictograph.West, End: pictograph.North}:          HandpathCW,
	{Start: pictograph.Northeast, End: pictograph.Southeast}: HandpathCW,
	{Start: pictograph.Southeast, End: pictograph.Southwest}: HandpathCW,
	{Start: pictograph.Southwest, End: pictograph.Northwest}: HandpathCW,
	{Start: pictograph.Northwest, End: pictograph.Northeast}: HandpathCW,

	{Start: pictograph.East, End: pictograph.North}:          HandpathCCW,
	{Start: pictograph.South, End: pictograph.East}:          HandpathCCW,
	{Start: pictograph.West, End: pictograph.South}:          HandpathCCW,
	{Start: pictograph.North, End: pictograph.West}:          HandpathCCW,
	{Start: pictograph.Southeast, End: pictograph.Northeast}: HandpathCCW,
	{Start: pictograph.Southwest, End: pictograph.Southeast}: HandpathCCW,
	{Start: pictograph.Northwest, End: pictograph.Southwest}: HandpathCCW,
	{Start: pictograph.Northeast, End: pictograph.Northwest}: HandpathCCW,

	{Start: pictograph.North, End: pictograph.South}:         HandpathDash,
	{Start: pictograph.South, End: pictograph.North}:         HandpathDash,
	{Start: pictograph.East, End: pictograph.West}:           HandpathDash,
	{Start: pictograph.West, End: pictograph.East}:           HandpathDash,
	{Start: pictograph.Northeast, End: pictograph.Southwest}: HandpathDash,
	{Start: pictograph.Southwest, End: pictograph.Northeast}: HandpathDash,
	{Start: pictograph.Southeast, End: pictograph.Northwest}: HandpathDash,
	{Start: pictograph.Northwest, End: pictograph.Southeast}: HandpathDash,

	{Start: pictograph.North, End: pictograph.North}:         HandpathStatic,
	{Start: pictograph.East, End: pictograph.East}:           HandpathStatic,
	{Start: pictograph.South, End: pictograph.South}:         HandpathStatic,
	{Start: pictograph.West, End: pictograph.West}:           HandpathStatic,
	{Start: pictograph.Northeast, End: pictograph.Northeast}: HandpathStatic,
	{Start: pictograph.Southeast, End: pictograph.Southeast}: HandpathStatic,
	{Start: pictograph.Southwest, End: pictograph.Southwest}: HandpathStatic,
	{Start: pictograph.Northwest, End: pictograph.Northwest}: HandpathStatic,
}

// Handpath classifies a (start, end) pair. The boolean is false for pairs
// that are neither a ring step, an opposite jump, nor static (e.g. a
// cardinal to an adjacent diagonal).
func Handpath(start, end pictograph.Location) (HandpathClass, bool) {
	c, ok := handpaths[pair{Start: start, End: end}]
	return c, ok
}

type oriAndHandpath struct {
	ori  pictograph.Orientation
	path HandpathClass
}

// floatOrientations maps (start orientation, rotational handpath) to the
// end orientation of a float.
var floatOrientations = map[oriAndHandpath]pictograph.Orientation{
	{pictograph.In, HandpathCW}:       pictograph.Clock,
	{pictograph.Out, HandpathCW}:      pictograph.Counter,
	{pictograph.Clock, HandpathCW}:    pictograph.Out,
	{pictograph.Counter, HandpathCW}:  pictograph.In,
	{pictograph.In, HandpathCCW}:      pictograph.Counter,
	{pictograph.Out, HandpathCCW}:     pictograph.Clock,
	{pictograph.Clock, HandpathCCW}:   pictograph.In,
	{pictograph.Counter, HandpathCCW}: pictograph.Out,
}

type oriAndRotDir struct {
	ori pictograph.Orientation
	dir pictograph.RotationDirection
}

// Half-turn orientation tables. {ANTI, DASH} and {PRO, STATIC} each carry
// one 8-entry table; the fractional remainder of the turn count (mod 2)
// selects between the table and its flipped counterpart.
var antiDashHalfTurn = map[oriAndRotDir]pictograph.Orientation{
	{pictograph.In, pictograph.Clockwise}:             pictograph.Clock,
	{pictograph.In, pictograph.CounterClockwise}:      pictograph.Counter,
	{pictograph.Out, pictograph.Clockwise}:            pictograph.Counter,
	{pictograph.Out, pictograph.CounterClockwise}:     pictograph.Clock,
	{pictograph.Clock, pictograph.Clockwise}:          pictograph.Out,
	{pictograph.Clock, pictograph.CounterClockwise}:   pictograph.In,
	{pictograph.Counter, pictograph.Clockwise}:        pictograph.In,
	{pictograph.Counter, pictograph.CounterClockwise}: pictograph.Out,
}

var proStaticHalfTurn = map[oriAndRotDir]pictograph.Orientation{
	{pictograph.In, pictograph.Clockwise}:             pictograph.Counter,
	{pictograph.In, pictograph.CounterClockwise}:      pictograph.Clock,
	{pictograph.Out, pictograph.Clockwise}:            pictograph.Clock,
	{pictograph.Out, pictograph.CounterClockwise}:     pictograph.Counter,
	{pictograph.Clock, pictograph.Clockwise}:          pictograph.In,
	{pictograph.Clock, pictograph.CounterClockwise}:   pictograph.Out,
	{pictograph.Counter, pictograph.Clockwise}:        pictograph.Out,
	{pictograph.Counter, pictograph.CounterClockwise}: pictograph.In,
}

// EndOrientation computes the orientation a motion leaves its prop in.
//
// Floats classify their handpath and read a fixed table. Whole turns apply
// a parity rule per motion-type family, half turns an (orientation,
// rotation direction) table with the fractional remainder selecting the
// symmetric sub-case. Any other turns value is a validation error.
func EndOrientation(m pictograph.Motion) (pictograph.Orientation, error) {
	if m.Type == pictograph.Float {
		return floatEndOrientation(m)
	}
	if m.Turns.IsFloat() {
		return "", gerr.New(gerr.ErrCodeInvalidTurns,
			"float turns invalid for motion type %q", m.Type)
	}

	switch {
	case m.Turns.IsWhole():
		return wholeTurnOrientation(m), nil
	case m.Turns.IsHalf():
		return halfTurnOrientation(m)
	}
	return "", gerr.New(gerr.ErrCodeInvalidTurns,
		"invalid turns %s for motion type %q", m.Turns, m.Type)
}

func floatEndOrientation(m pictograph.Motion) (pictograph.Orientation, error) {
	path, ok := Handpath(m.StartLoc, m.EndLoc)
	if !ok {
		return "", gerr.New(gerr.ErrCodeInvalidHandpath,
			"no handpath for %s → %s", m.StartLoc, m.EndLoc)
	}
	ori, ok := floatOrientations[oriAndHandpath{m.StartOri, path}]
	if !ok {
		return "", gerr.New(gerr.ErrCodeInvalidHandpath,
			"float requires a rotational handpath, got %s for %s → %s", path, m.StartLoc, m.EndLoc)
	}
	return ori, nil
}

// wholeTurnOrientation applies the parity rule: PRO and STATIC preserve
// orientation on even turns and flip on odd; ANTI and DASH are reversed.
func wholeTurnOrientation(m pictograph.Motion) pictograph.Orientation {
	even := int(m.Turns.Value())%2 == 0
	switch m.Type {
	case pictograph.Pro, pictograph.Static:
		if even {
			return m.StartOri
		}
		return m.StartOri.Flipped()
	default: // Anti, Dash
		if even {
			return m.StartOri.Flipped()
		}
		return m.StartOri
	}
}

func halfTurnOrientation(m pictograph.Motion) (pictograph.Orientation, error) {
	if m.RotDir == pictograph.NoRotation {
		return "", gerr.New(gerr.ErrCodeInvalidTurns,
			"half turns require a rotation direction for motion type %q", m.Type)
	}

	var table map[oriAndRotDir]pictograph.Orientation
	switch m.Type {
	case pictograph.Anti, pictograph.Dash:
		table = antiDashHalfTurn
	default: // Pro, Static
		table = proStaticHalfTurn
	}

	ori := table[oriAndRotDir{m.StartOri, m.RotDir}]
	// 1.5 is the symmetric sub-case of 0.5 and 2.5.
	if math.Mod(m.Turns.Value(), 2) != 0.5 {
		ori = ori.Flipped()
	}
	return ori, nil
}

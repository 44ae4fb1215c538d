package placement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
)

func motion(mt pictograph.MotionType, start, end pictograph.Location, ori pictograph.Orientation, turns pictograph.Turns, dir pictograph.RotationDirection) pictograph.Motion {
	return pictograph.Motion{
		Type:     mt,
		StartLoc: start,
		EndLoc:   end,
		StartOri: ori,
		Turns:    turns,
		RotDir:   dir,
	}
}

func TestHandpath(t *testing.T) {
	class, ok := placement.Handpath(pictograph.North, pictograph.East)
	require.True(t, ok)
	require.Equal(t, placement.HandpathCW, class)

	class, ok = placement.Handpath(pictograph.East, pictograph.North)
	require.True(t, ok)
	require.Equal(t, placement.HandpathCCW, class)

	class, ok = placement.Handpath(pictograph.North, pictograph.South)
	require.True(t, ok)
	require.Equal(t, placement.HandpathDash, class)

	class, ok = placement.Handpath(pictograph.West, pictograph.West)
	require.True(t, ok)
	require.Equal(t, placement.HandpathStatic, class)

	// Cardinal to adjacent diagonal is not a handpath.
	_, ok = placement.Handpath(pictograph.North, pictograph.Northeast)
	require.False(t, ok)
}

func TestEndOrientation_WholeTurnParity(t *testing.T) {
	cases := []struct {
		mt    pictograph.MotionType
		turns float64
		start pictograph.Orientation
		want  pictograph.Orientation
	}{
		{pictograph.Pro, 0, pictograph.In, pictograph.In},
		{pictograph.Pro, 1, pictograph.In, pictograph.Out},
		{pictograph.Pro, 2, pictograph.Clock, pictograph.Clock},
		{pictograph.Static, 3, pictograph.Out, pictograph.In},
		{pictograph.Anti, 0, pictograph.In, pictograph.Out},
		{pictograph.Anti, 1, pictograph.In, pictograph.In},
		{pictograph.Dash, 0, pictograph.Clock, pictograph.Counter},
		{pictograph.Dash, 2, pictograph.Counter, pictograph.Clock},
	}
	for _, tc := range cases {
		m := motion(tc.mt, pictograph.North, pictograph.East, tc.start, pictograph.MustTurns(tc.turns), pictograph.Clockwise)
		got, err := placement.EndOrientation(m)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s %v turns from %s", tc.mt, tc.turns, tc.start)
	}
}

func TestEndOrientation_HalfTurns(t *testing.T) {
	cases := []struct {
		mt    pictograph.MotionType
		turns float64
		start pictograph.Orientation
		dir   pictograph.RotationDirection
		want  pictograph.Orientation
	}{
		// 0.5 and 2.5 read the table directly; 1.5 flips it.
		{pictograph.Pro, 0.5, pictograph.In, pictograph.Clockwise, pictograph.Counter},
		{pictograph.Pro, 1.5, pictograph.In, pictograph.Clockwise, pictograph.Clock},
		{pictograph.Pro, 2.5, pictograph.In, pictograph.Clockwise, pictograph.Counter},
		{pictograph.Static, 1.5, pictograph.Out, pictograph.CounterClockwise, pictograph.Clock},
		{pictograph.Anti, 0.5, pictograph.In, pictograph.Clockwise, pictograph.Clock},
		{pictograph.Anti, 1.5, pictograph.In, pictograph.Clockwise, pictograph.Counter},
		{pictograph.Dash, 1.5, pictograph.Counter, pictograph.CounterClockwise, pictograph.In},
	}
	for _, tc := range cases {
		m := motion(tc.mt, pictograph.North, pictograph.East, tc.start, pictograph.MustTurns(tc.turns), tc.dir)
		got, err := placement.EndOrientation(m)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s %v turns from %s %s", tc.mt, tc.turns, tc.start, tc.dir)
	}
}

func TestEndOrientation_HalfTurnNeedsRotation(t *testing.T) {
	m := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(0.5), pictograph.NoRotation)
	_, err := placement.EndOrientation(m)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeInvalidTurns, gerr.GetCode(err))
}

func TestEndOrientation_Float(t *testing.T) {
	m := motion(pictograph.Float, pictograph.North, pictograph.East, pictograph.In, pictograph.FloatTurns(), pictograph.NoRotation)
	got, err := placement.EndOrientation(m)
	require.NoError(t, err)
	require.Equal(t, pictograph.Clock, got)

	m.StartLoc, m.EndLoc = pictograph.East, pictograph.North
	got, err = placement.EndOrientation(m)
	require.NoError(t, err)
	require.Equal(t, pictograph.Counter, got)

	// A dash handpath has no float orientation.
	m.StartLoc, m.EndLoc = pictograph.North, pictograph.South
	_, err = placement.EndOrientation(m)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeInvalidHandpath, gerr.GetCode(err))
}

func TestEndOrientation_FloatTurnsOnNonFloat(t *testing.T) {
	m := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.FloatTurns(), pictograph.Clockwise)
	_, err := placement.EndOrientation(m)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeInvalidTurns, gerr.GetCode(err))
}

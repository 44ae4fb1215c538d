package placement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
)

func TestDirectionalTuples_DiamondProClockwise(t *testing.T) {
	m := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)
	got := placement.DirectionalTuples(geometry.Point{X: 10, Y: 5}, m, pictograph.Diamond)
	want := placement.DirectionalTuple{
		{X: 10, Y: 5}, {X: -5, Y: 10}, {X: -10, Y: -5}, {X: 5, Y: -10},
	}
	require.Equal(t, want, got)
}

func TestDirectionalTuples_AntiSwapsProDirections(t *testing.T) {
	base := geometry.Point{X: 3, Y: 7}
	proCW := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)
	antiCCW := proCW
	antiCCW.Type = pictograph.Anti
	antiCCW.RotDir = pictograph.CounterClockwise

	require.Equal(t,
		placement.DirectionalTuples(base, proCW, pictograph.Diamond),
		placement.DirectionalTuples(base, antiCCW, pictograph.Diamond))
}

func TestDirectionalTuples_BoxSwapsComponents(t *testing.T) {
	m := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)
	diamond := placement.DirectionalTuples(geometry.Point{X: 10, Y: 5}, m, pictograph.Diamond)
	box := placement.DirectionalTuples(geometry.Point{X: 10, Y: 5}, m, pictograph.Box)

	for i := range diamond {
		require.Equal(t, diamond[i].X, box[i].Y, "candidate %d", i)
		require.Equal(t, diamond[i].Y, box[i].X, "candidate %d", i)
	}
}

func TestDirectionalTuples_StaticAndDashShareFormulas(t *testing.T) {
	base := geometry.Point{X: 4, Y: 9}
	static := motion(pictograph.Static, pictograph.North, pictograph.North, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)
	dash := motion(pictograph.Dash, pictograph.North, pictograph.South, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)

	for _, grid := range pictograph.GridModes {
		require.Equal(t,
			placement.DirectionalTuples(base, static, grid),
			placement.DirectionalTuples(base, dash, grid), "grid %s", grid)
	}
}

func TestDirectionalTuples_FloatUsesHandpathDirection(t *testing.T) {
	base := geometry.Point{X: 2, Y: 6}
	f := motion(pictograph.Float, pictograph.North, pictograph.East, pictograph.In, pictograph.FloatTurns(), pictograph.NoRotation)
	proCW := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)

	require.Equal(t,
		placement.DirectionalTuples(base, proCW, pictograph.Diamond),
		placement.DirectionalTuples(base, f, pictograph.Diamond))

	// Reversed travel implies the ccw formula.
	fBack := f
	fBack.StartLoc, fBack.EndLoc = pictograph.East, pictograph.North
	proCCW := proCW
	proCCW.RotDir = pictograph.CounterClockwise
	require.Equal(t,
		placement.DirectionalTuples(base, proCCW, pictograph.Diamond),
		placement.DirectionalTuples(base, fBack, pictograph.Diamond))
}

func TestSelectCandidate(t *testing.T) {
	tuple := placement.DirectionalTuple{
		{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4},
	}

	m := motion(pictograph.Pro, pictograph.North, pictograph.East, pictograph.In, pictograph.MustTurns(1), pictograph.Clockwise)
	got, ok := placement.SelectCandidate(tuple, m, pictograph.Northeast)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 1, Y: 1}, got)

	got, ok = placement.SelectCandidate(tuple, m, pictograph.Southwest)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 3, Y: 3}, got)

	s := motion(pictograph.Static, pictograph.East, pictograph.East, pictograph.In, pictograph.MustTurns(0), pictograph.NoRotation)
	got, ok = placement.SelectCandidate(tuple, s, pictograph.East)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 2, Y: 2}, got)
}

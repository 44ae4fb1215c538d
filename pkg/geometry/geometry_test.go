package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

func TestHandPoint_PinnedValues(t *testing.T) {
	p, ok := geometry.HandPoint(pictograph.North)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 475.0, Y: 331.9}, p)

	p, ok = geometry.HandPoint(pictograph.Southeast)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 576.2, Y: 576.2}, p)
}

func TestLayer2Point_PinnedValues(t *testing.T) {
	p, ok := geometry.Layer2Point(pictograph.Northeast)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 618.1, Y: 331.9}, p)
}

func TestLayer2Point_CardinalSnap(t *testing.T) {
	snap := map[pictograph.Location]pictograph.Location{
		pictograph.North: pictograph.Northeast,
		pictograph.East:  pictograph.Southeast,
		pictograph.South: pictograph.Southwest,
		pictograph.West:  pictograph.Northwest,
	}
	for cardinal, diagonal := range snap {
		got, ok := geometry.Layer2Point(cardinal)
		require.True(t, ok)
		want, _ := geometry.Layer2PointExact(diagonal)
		require.Equal(t, want, got, "%s should snap to %s", cardinal, diagonal)
	}
}

func TestLayer2PointExact_NoSnap(t *testing.T) {
	p, ok := geometry.Layer2PointExact(pictograph.North)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 475.0, Y: 272.6}, p)
}

func TestInitialPosition(t *testing.T) {
	// Shifts read the layer2 ring.
	p, ok := geometry.InitialPosition(pictograph.Pro, pictograph.Northeast)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 618.1, Y: 331.9}, p)

	// Static and dash read the hand ring.
	p, ok = geometry.InitialPosition(pictograph.Static, pictograph.North)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 475.0, Y: 331.9}, p)

	p, ok = geometry.InitialPosition(pictograph.Dash, pictograph.East)
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 618.1, Y: 475.0}, p)
}

func TestValidateTables(t *testing.T) {
	require.NoError(t, geometry.ValidateTables())
}

func TestPoint_Add(t *testing.T) {
	p := geometry.Point{X: 1, Y: 2}.Add(10, -5)
	require.Equal(t, geometry.Point{X: 11, Y: -3}, p)
}

func TestQuadrantIndex(t *testing.T) {
	// Shifts index off the diagonal ring.
	for i, loc := range []pictograph.Location{pictograph.Northeast, pictograph.Southeast, pictograph.Southwest, pictograph.Northwest} {
		got, ok := geometry.QuadrantIndex(pictograph.Pro, loc)
		require.True(t, ok)
		require.Equal(t, i, got)
	}

	// Static and dash index off the cardinal ring.
	for i, loc := range []pictograph.Location{pictograph.North, pictograph.East, pictograph.South, pictograph.West} {
		got, ok := geometry.QuadrantIndex(pictograph.Static, loc)
		require.True(t, ok)
		require.Equal(t, i, got)
	}

	// Off-ring locations fall back to the other ring.
	got, ok := geometry.QuadrantIndex(pictograph.Pro, pictograph.East)
	require.True(t, ok)
	require.Equal(t, 1, got)

	got, ok = geometry.QuadrantIndex(pictograph.Dash, pictograph.Southwest)
	require.True(t, ok)
	require.Equal(t, 2, got)
}

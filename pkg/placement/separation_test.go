package placement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// betaPicture builds a G pictograph with both arrows ending at loc and both
// end orientations radial.
func betaPicture(loc pictograph.Location) (*pictograph.Pictograph, map[pictograph.Color]pictograph.Orientation) {
	blue := arrow(pictograph.Blue, pictograph.Pro, loc, loc, 0, pictograph.Clockwise)
	red := arrow(pictograph.Red, pictograph.Anti, loc, loc, 1, pictograph.Clockwise)
	return pic("G", blue, red), orientations(pictograph.In, pictograph.In)
}

func TestSeparationOffsets_NonBetaLetter(t *testing.T) {
	p, endOris := betaPicture(pictograph.North)
	p.Letter = "A"
	got := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropMedium)
	require.Equal(t, placement.Offsets{}, got)
}

func TestSeparationOffsets_RadialNorth(t *testing.T) {
	p, endOris := betaPicture(pictograph.North)
	got := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropMedium)

	mag := geometry.GridSize / 45.0
	require.True(t, got.Overlap)
	require.False(t, got.Override, "algorithmic separation is not an override")
	require.Equal(t, geometry.Point{X: -mag, Y: 0}, got.Blue, "blue moves left at N")
	require.Equal(t, geometry.Point{X: mag, Y: 0}, got.Red, "red moves right at N")
}

func TestSeparationOffsets_OppositeDirections(t *testing.T) {
	for _, loc := range pictograph.Locations {
		p, endOris := betaPicture(loc)
		got := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropMedium)
		require.True(t, got.Overlap, "location %s", loc)
		require.Equal(t, -got.Red.X, got.Blue.X, "location %s", loc)
		require.Equal(t, -got.Red.Y, got.Blue.Y, "location %s", loc)
	}
}

func TestSeparationOffsets_DiagonalMagnitude(t *testing.T) {
	p, endOris := betaPicture(pictograph.Northeast)
	got := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropMedium)

	mag := geometry.GridSize / 45.0 / math.Sqrt2
	require.True(t, got.Overlap)
	require.InDelta(t, mag, got.Red.X, 1e-9)
	require.InDelta(t, mag, got.Red.Y, 1e-9, "radial red at NE nudges down-right")
}

func TestSeparationOffsets_PropSizes(t *testing.T) {
	p, endOris := betaPicture(pictograph.North)

	small := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropSmall)
	large := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropLarge)
	require.InDelta(t, geometry.GridSize/60.0, small.Red.X, 1e-9)
	require.InDelta(t, geometry.GridSize/38.0, large.Red.X, 1e-9)

	// Unknown sizes use the default divisor.
	odd := placement.SeparationOffsets(p, endOris, assets.Empty(), placement.PropSize("huge"))
	require.InDelta(t, geometry.GridSize/45.0, odd.Red.X, 1e-9)
}

func TestSeparationOffsets_NonradialAlongRadius(t *testing.T) {
	p, _ := betaPicture(pictograph.North)
	nonradial := orientations(pictograph.Clock, pictograph.Clock)

	got := placement.SeparationOffsets(p, nonradial, assets.Empty(), placement.PropMedium)
	mag := geometry.GridSize / 45.0
	require.True(t, got.Overlap)
	require.Equal(t, geometry.Point{X: 0, Y: -mag}, got.Red, "nonradial red moves up at N")
	require.Equal(t, geometry.Point{X: 0, Y: mag}, got.Blue)
}

func TestSeparationOffsets_DifferentEndOrientations(t *testing.T) {
	p, _ := betaPicture(pictograph.North)
	mixed := orientations(pictograph.In, pictograph.Clock)
	got := placement.SeparationOffsets(p, mixed, assets.Empty(), placement.PropMedium)
	require.Equal(t, placement.Offsets{}, got, "props at different layers do not collide")
}

func TestSeparationOffsets_ManualOverride(t *testing.T) {
	p, endOris := betaPicture(pictograph.North)

	override := assets.SeparationOverrideKey("G", pictograph.Pro, pictograph.Anti)
	require.Equal(t, "G_pro_anti", override)

	store := assets.New(nil, map[pictograph.GridMode]assets.SpecialStore{
		pictograph.Diamond: {
			assets.FromLayer1: {
				"G": assets.LetterPlacements{override: assets.Entry{}},
			},
		},
	})

	got := placement.SeparationOffsets(p, endOris, store, placement.PropMedium)
	require.True(t, got.Overlap, "override still reports the overlap")
	require.True(t, got.Override)
	require.Equal(t, geometry.Point{}, got.Blue, "curated special placements take over")
	require.Equal(t, geometry.Point{}, got.Red)
}

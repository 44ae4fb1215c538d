package placement

import (
	"math"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// SeparationDirection is one of the eight directions a prop can be nudged
// in to resolve a beta-ending overlap.
type SeparationDirection string

const (
	SepUp        SeparationDirection = "up"
	SepDown      SeparationDirection = "down"
	SepLeft      SeparationDirection = "left"
	SepRight     SeparationDirection = "right"
	SepUpLeft    SeparationDirection = "upleft"
	SepUpRight   SeparationDirection = "upright"
	SepDownLeft  SeparationDirection = "downleft"
	SepDownRight SeparationDirection = "downright"
)

// IsDiagonal reports whether the direction moves on both axes. Diagonal
// separations divide their magnitude by √2 to keep the visual distance
// uniform.
func (d SeparationDirection) IsDiagonal() bool {
	switch d {
	case SepUpLeft, SepUpRight, SepDownLeft, SepDownRight:
		return true
	}
	return false
}

// unit returns the direction's axis multipliers.
func (d SeparationDirection) unit() (x, y float64) {
	switch d {
	case SepUp:
		return 0, -1
	case SepDown:
		return 0, 1
	case SepLeft:
		return -1, 0
	case SepRight:
		return 1, 0
	case SepUpLeft:
		return -1, -1
	case SepUpRight:
		return 1, -1
	case SepDownLeft:
		return -1, 1
	case SepDownRight:
		return 1, 1
	}
	return 0, 0
}

// PropSize categorizes the rendered prop's footprint; it selects the
// separation magnitude divisor.
type PropSize string

const (
	PropSmall  PropSize = "small"
	PropMedium PropSize = "medium"
	PropLarge  PropSize = "large"
)

// sepDivisors maps a prop size to the divisor of the grid size that yields
// the separation magnitude.
var sepDivisors = map[PropSize]float64{
	PropSmall:  60,
	PropMedium: 45,
	PropLarge:  38,
}

// DefaultPropSize is used when the caller does not configure one.
const DefaultPropSize = PropMedium

type sepKey struct {
	grid   pictograph.GridMode
	radial bool
	color  pictograph.Color
}

// separationDirections picks the nudge direction per end location. Radial
// props separate perpendicular to the center radius, nonradial props along
// it; red and blue always move opposite ways.
var separationDirections = map[sepKey]map[pictograph.Location]SeparationDirection{
	{pictograph.Diamond, true, pictograph.Red}: {
		pictograph.North:     SepRight,
		pictograph.South:     SepRight,
		pictograph.East:      SepDown,
		pictograph.West:      SepDown,
		pictograph.Northeast: SepDownRight,
		pictograph.Southwest: SepUpLeft,
		pictograph.Southeast: SepDownLeft,
		pictograph.Northwest: SepUpRight,
	},
	{pictograph.Diamond, true, pictograph.Blue}: {
		pictograph.North:     SepLeft,
		pictograph.South:     SepLeft,
		pictograph.East:      SepUp,
		pictograph.West:      SepUp,
		pictograph.Northeast: SepUpLeft,
		pictograph.Southwest: SepDownRight,
		pictograph.Southeast: SepUpRight,
		pictograph.Northwest: SepDownLeft,
	},
	{pictograph.Diamond, false, pictograph.Red}: {
		pictograph.North:     SepUp,
		pictograph.South:     SepDown,
		pictograph.East:      SepRight,
		pictograph.West:      SepLeft,
		pictograph.Northeast: SepUpRight,
		pictograph.Southeast: SepDownRight,
		pictograph.Southwest: SepDownLeft,
		pictograph.Northwest: SepUpLeft,
	},
	{pictograph.Diamond, false, pictograph.Blue}: {
		pictograph.North:     SepDown,
		pictograph.South:     SepUp,
		pictograph.East:      SepLeft,
		pictograph.West:      SepRight,
		pictograph.Northeast: SepDownLeft,
		pictograph.Southeast: SepUpLeft,
		pictograph.Southwest: SepUpRight,
		pictograph.Northwest: SepDownRight,
	},
	{pictograph.Box, true, pictograph.Red}: {
		pictograph.North:     SepRight,
		pictograph.South:     SepRight,
		pictograph.East:      SepDown,
		pictograph.West:      SepDown,
		pictograph.Northeast: SepDownRight,
		pictograph.Southwest: SepUpLeft,
		pictograph.Southeast: SepDownLeft,
		pictograph.Northwest: SepUpRight,
	},
	{pictograph.Box, true, pictograph.Blue}: {
		pictograph.North:     SepLeft,
		pictograph.South:     SepLeft,
		pictograph.East:      SepUp,
		pictograph.West:      SepUp,
		pictograph.Northeast: SepUpLeft,
		pictograph.Southwest: SepDownRight,
		pictograph.Southeast: SepUpRight,
		pictograph.Northwest: SepDownLeft,
	},
	{pictograph.Box, false, pictograph.Red}: {
		pictograph.North:     SepUp,
		pictograph.South:     SepDown,
		pictograph.East:      SepRight,
		pictograph.West:      SepLeft,
		pictograph.Northeast: SepUpRight,
		pictograph.Southeast: SepDownRight,
		pictograph.Southwest: SepDownLeft,
		pictograph.Northwest: SepUpLeft,
	},
	{pictograph.Box, false, pictograph.Blue}: {
		pictograph.North:     SepDown,
		pictograph.South:     SepUp,
		pictograph.East:      SepLeft,
		pictograph.West:      SepRight,
		pictograph.Northeast: SepDownLeft,
		pictograph.Southeast: SepUpLeft,
		pictograph.Southwest: SepUpRight,
		pictograph.Northwest: SepDownRight,
	},
}

// Offsets is the symmetric separation offset pair for one pictograph.
type Offsets struct {
	// Overlap reports whether the two props actually collide; the offsets
	// are zero when they do not.
	Overlap bool `json:"overlap"`

	// Override is set when a manual separation override suppressed the
	// algorithmic offsets for an overlapping pair.
	Override bool `json:"override,omitempty"`

	Blue geometry.Point `json:"blue"`
	Red  geometry.Point `json:"red"`
}

// SeparationOffsets computes the beta-ending offset pair for a pictograph.
//
// Only beta-ending letters are eligible. The props overlap when both
// motions end at the same location with the same computed end orientation.
// A manual "<letter>_<blue type>_<red type>" key in the special config
// suppresses the algorithmic path: the curated special adjustments already
// encode the desired placement, so the offsets stay zero.
func SeparationOffsets(pic *pictograph.Pictograph, endOris map[pictograph.Color]pictograph.Orientation, store *assets.Assets, size PropSize) Offsets {
	if !pic.Letter.IsBetaEnding() {
		return Offsets{}
	}
	blue, okB := pic.Arrow(pictograph.Blue)
	red, okR := pic.Arrow(pictograph.Red)
	if !okB || !okR {
		return Offsets{}
	}
	if blue.Motion.EndLoc != red.Motion.EndLoc {
		return Offsets{}
	}
	oriBlue, okOB := endOris[pictograph.Blue]
	oriRed, okOR := endOris[pictograph.Red]
	if !okOB || !okOR || oriBlue != oriRed {
		return Offsets{}
	}

	override := assets.SeparationOverrideKey(pic.Letter, blue.Motion.Type, red.Motion.Type)
	if store.HasSeparationOverride(pic.GridMode, pic.Letter, override) {
		return Offsets{Overlap: true, Override: true}
	}

	loc := blue.Motion.EndLoc
	radial := oriBlue.IsRadial()
	return Offsets{
		Overlap: true,
		Blue:    separationOffset(pic.GridMode, radial, pictograph.Blue, loc, size),
		Red:     separationOffset(pic.GridMode, radial, pictograph.Red, loc, size),
	}
}

func separationOffset(grid pictograph.GridMode, radial bool, color pictograph.Color, loc pictograph.Location, size PropSize) geometry.Point {
	dir, ok := separationDirections[sepKey{grid, radial, color}][loc]
	if !ok {
		return geometry.Point{}
	}

	divisor, ok := sepDivisors[size]
	if !ok {
		divisor = sepDivisors[DefaultPropSize]
	}
	magnitude := geometry.GridSize / divisor
	if dir.IsDiagonal() {
		magnitude /= math.Sqrt2
	}

	ux, uy := dir.unit()
	return geometry.Point{X: ux * magnitude, Y: uy * magnitude}
}

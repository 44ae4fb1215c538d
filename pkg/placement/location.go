package placement

import (
	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// =============================================================================
// Shift location table
// =============================================================================

// unorderedPair canonicalizes an unordered location pair for table lookup;
// shift location does not care which endpoint is the start.
type unorderedPair struct{ a, b pictograph.Location }

func pairOf(x, y pictograph.Location) unorderedPair {
	if y < x {
		x, y = y, x
	}
	return unorderedPair{a: x, b: y}
}

// shiftLocations maps the unordered {start, end} pair of a shift motion to
// the point between them: adjacent cardinals to the diagonal between them,
// adjacent diagonals to the cardinal between them. Exactly 8 entries.
var shiftLocations = map[unorderedPair]pictograph.Location{
	pairOf(pictograph.North, pictograph.East):          pictograph.Northeast,
	pairOf(pictograph.East, pictograph.South):          pictograph.Southeast,
	pairOf(pictograph.South, pictograph.West):          pictograph.Southwest,
	pairOf(pictograph.West, pictograph.North):          pictograph.Northwest,
	pairOf(pictograph.Northeast, pictograph.Southeast): pictograph.East,
	pairOf(pictograph.Southeast, pictograph.Southwest): pictograph.South,
	pairOf(pictograph.Southwest, pictograph.Northwest): pictograph.West,
	pairOf(pictograph.Northwest, pictograph.Northeast): pictograph.North,
}

// =============================================================================
// Dash location tables
// =============================================================================

type pair = pictograph.LocationPair

// defaultDashLocations resolves a zero-turn dash by its ordered
// (start, end) pair.
var defaultDashLocations = map[pair]pictograph.Location{
	{Start: pictograph.North, End: pictograph.South}:         pictograph.East,
	{Start: pictograph.East, End: pictograph.West}:           pictograph.South,
	{Start: pictograph.South, End: pictograph.North}:         pictograph.West,
	{Start: pictograph.West, End: pictograph.East}:           pictograph.North,
	{Start: pictograph.Northeast, End: pictograph.Southwest}: pictograph.Southeast,
	{Start: pictograph.Southeast, End: pictograph.Northwest}: pictograph.Southwest,
	{Start: pictograph.Southwest, End: pictograph.Northeast}: pictograph.Northwest,
	{Start: pictograph.Northwest, End: pictograph.Southeast}: pictograph.Northeast,
}

type colorPair struct {
	color pictograph.Color
	locs  pair
}

// phiPsiDashLocations places the dashes of the Φ-/Ψ- letters. The two
// colors split to opposite sides of the dash axis.
var phiPsiDashLocations = map[colorPair]pictograph.Location{
	{pictograph.Red, pair{Start: pictograph.North, End: pictograph.South}}:          pictograph.East,
	{pictograph.Blue, pair{Start: pictograph.North, End: pictograph.South}}:         pictograph.West,
	{pictograph.Red, pair{Start: pictograph.East, End: pictograph.West}}:            pictograph.North,
	{pictograph.Blue, pair{Start: pictograph.East, End: pictograph.West}}:           pictograph.South,
	{pictograph.Red, pair{Start: pictograph.South, End: pictograph.North}}:          pictograph.East,
	{pictograph.Blue, pair{Start: pictograph.South, End: pictograph.North}}:         pictograph.West,
	{pictograph.Red, pair{Start: pictograph.West, End: pictograph.East}}:            pictograph.North,
	{pictograph.Blue, pair{Start: pictograph.West, End: pictograph.East}}:           pictograph.South,

	{pictograph.Red, pair{Start: pictograph.Northeast, End: pictograph.Southwest}}:  pictograph.Southeast,
	{pictograph.Blue, pair{Start: pictograph.Northeast, End: pictograph.Southwest}}: pictograph.Northwest,
	{pictograph.Red, pair{Start: pictograph.Southeast, End: pictograph.Northwest}}:  pictograph.Northeast,
	{pictograph.Blue, pair{Start: pictograph.Southeast, End: pictograph.Northwest}}: pictograph.Southwest,
	{pictograph.Red, pair{Start: pictograph.Southwest, End: pictograph.Northeast}}:  pictograph.Southeast,
	{pictograph.Blue, pair{Start: pictograph.Southwest, End: pictograph.Northeast}}: pictograph.Northwest,
	{pictograph.Red, pair{Start: pictograph.Northwest, End: pictograph.Southeast}}:  pictograph.Northeast,
	{pictograph.Blue, pair{Start: pictograph.Northwest, End: pictograph.Southeast}}: pictograph.Southwest,
}

type pairAndSibling struct {
	locs       pair
	siblingEnd pictograph.Location
}

// lambdaDashLocations places a zero-turn Λ/Λ- dash on the side away from
// the sibling motion's end location.
var lambdaDashLocations = map[pairAndSibling]pictograph.Location{
	{pair{Start: pictograph.North, End: pictograph.South}, pictograph.West}:          pictograph.East,
	{pair{Start: pictograph.North, End: pictograph.South}, pictograph.East}:          pictograph.West,
	{pair{Start: pictograph.South, End: pictograph.North}, pictograph.West}:          pictograph.East,
	{pair{Start: pictograph.South, End: pictograph.North}, pictograph.East}:          pictograph.West,
	{pair{Start: pictograph.East, End: pictograph.West}, pictograph.North}:           pictograph.South,
	{pair{Start: pictograph.East, End: pictograph.West}, pictograph.South}:           pictograph.North,
	{pair{Start: pictograph.West, End: pictograph.East}, pictograph.North}:           pictograph.South,
	{pair{Start: pictograph.West, End: pictograph.East}, pictograph.South}:           pictograph.North,

	{pair{Start: pictograph.Northeast, End: pictograph.Southwest}, pictograph.Northwest}: pictograph.Southeast,
	{pair{Start: pictograph.Northeast, End: pictograph.Southwest}, pictograph.Southeast}: pictograph.Northwest,
	{pair{Start: pictograph.Southwest, End: pictograph.Northeast}, pictograph.Northwest}: pictograph.Southeast,
	{pair{Start: pictograph.Southwest, End: pictograph.Northeast}, pictograph.Southeast}: pictograph.Northwest,
	{pair{Start: pictograph.Southeast, End: pictograph.Northwest}, pictograph.Northeast}: pictograph.Southwest,
	{pair{Start: pictograph.Southeast, End: pictograph.Northwest}, pictograph.Southwest}: pictograph.Northeast,
	{pair{Start: pictograph.Northwest, End: pictograph.Southeast}, pictograph.Northeast}: pictograph.Southwest,
	{pair{Start: pictograph.Northwest, End: pictograph.Southeast}, pictograph.Southwest}: pictograph.Northeast,
}

type dashAndShift struct {
	dashStart pictograph.Location
	shiftLoc  pictograph.Location
}

// type3DashLocations refines the zero-turn dash of a Type-3 letter away
// from the sibling shift arrow, per grid mode.
var type3DashLocations = map[pictograph.GridMode]map[dashAndShift]pictograph.Location{
	pictograph.Diamond: {
		{pictograph.North, pictograph.Northeast}: pictograph.West,
		{pictograph.North, pictograph.Southeast}: pictograph.West,
		{pictograph.North, pictograph.Southwest}: pictograph.East,
		{pictograph.North, pictograph.Northwest}: pictograph.East,
		{pictograph.East, pictograph.Northeast}:  pictograph.South,
		{pictograph.East, pictograph.Northwest}:  pictograph.South,
		{pictograph.East, pictograph.Southeast}:  pictograph.North,
		{pictograph.East, pictograph.Southwest}:  pictograph.North,
		{pictograph.South, pictograph.Northeast}: pictograph.West,
		{pictograph.South, pictograph.Southeast}: pictograph.West,
		{pictograph.South, pictograph.Southwest}: pictograph.East,
		{pictograph.South, pictograph.Northwest}: pictograph.East,
		{pictograph.West, pictograph.Northeast}:  pictograph.South,
		{pictograph.West, pictograph.Northwest}:  pictograph.South,
		{pictograph.West, pictograph.Southeast}:  pictograph.North,
		{pictograph.West, pictograph.Southwest}:  pictograph.North,
	},
	pictograph.Box: {
		{pictograph.Northeast, pictograph.North}: pictograph.Southeast,
		{pictograph.Northeast, pictograph.East}:  pictograph.Northwest,
		{pictograph.Northeast, pictograph.South}: pictograph.Northwest,
		{pictograph.Northeast, pictograph.West}:  pictograph.Southeast,
		{pictograph.Southwest, pictograph.North}: pictograph.Southeast,
		{pictograph.Southwest, pictograph.East}:  pictograph.Northwest,
		{pictograph.Southwest, pictograph.South}: pictograph.Northwest,
		{pictograph.Southwest, pictograph.West}:  pictograph.Southeast,
		{pictograph.Southeast, pictograph.North}: pictograph.Southwest,
		{pictograph.Southeast, pictograph.East}:  pictograph.Southwest,
		{pictograph.Southeast, pictograph.South}: pictograph.Northeast,
		{pictograph.Southeast, pictograph.West}:  pictograph.Northeast,
		{pictograph.Northwest, pictograph.North}: pictograph.Southwest,
		{pictograph.Northwest, pictograph.East}:  pictograph.Southwest,
		{pictograph.Northwest, pictograph.South}: pictograph.Northeast,
		{pictograph.Northwest, pictograph.West}:  pictograph.Northeast,
	},
}

// dashRotationLocations places a turning dash one step around the ring in
// the direction of its prop rotation.
var dashRotationLocations = map[pictograph.RotationDirection]map[pictograph.Location]pictograph.Location{
	pictograph.Clockwise: {
		pictograph.North:     pictograph.East,
		pictograph.East:      pictograph.South,
		pictograph.South:     pictograph.West,
		pictograph.West:      pictograph.North,
		pictograph.Northeast: pictograph.Southeast,
		pictograph.Southeast: pictograph.Southwest,
		pictograph.Southwest: pictograph.Northwest,
		pictograph.Northwest: pictograph.Northeast,
	},
	pictograph.CounterClockwise: {
		pictograph.North:     pictograph.West,
		pictograph.West:      pictograph.South,
		pictograph.South:     pictograph.East,
		pictograph.East:      pictograph.North,
		pictograph.Northeast: pictograph.Northwest,
		pictograph.Northwest: pictograph.Southwest,
		pictograph.Southwest: pictograph.Southeast,
		pictograph.Southeast: pictograph.Northeast,
	},
}

// =============================================================================
// Location calculation
// =============================================================================

// CalcLocation computes the qualitative arrow location for a motion.
//
// STATIC keeps its start location; shifts resolve through the unordered pair
// table; DASH needs the full pictograph context and fails without it. The
// returned location is always one of the eight canonical compass points.
func CalcLocation(a pictograph.Arrow, pic *pictograph.Pictograph) (pictograph.Location, error) {
	m := a.Motion
	switch m.Type {
	case pictograph.Static:
		return m.StartLoc, nil
	case pictograph.Pro, pictograph.Anti, pictograph.Float:
		return shiftLocation(m), nil
	case pictograph.Dash:
		if pic == nil {
			return "", gerr.New(gerr.ErrCodeContextRequired,
				"dash location for %s arrow requires pictograph context", a.Color)
		}
		return dashLocation(a, pic), nil
	}
	return "", gerr.New(gerr.ErrCodeInvalidMotion, "invalid motion type %q", m.Type)
}

// shiftLocation resolves a shift's location; unmatched pairs fall back to
// the start location.
func shiftLocation(m pictograph.Motion) pictograph.Location {
	if loc, ok := shiftLocations[pairOf(m.StartLoc, m.EndLoc)]; ok {
		return loc
	}
	return m.StartLoc
}

// dashLocation applies the dash rules in priority order: Φ-/Ψ- letters
// first, then zero-turn Λ/Λ-, then the zero-turn default with its Type-3
// refinement, then the rotation-direction step for turning dashes.
func dashLocation(a pictograph.Arrow, pic *pictograph.Pictograph) pictograph.Location {
	m := a.Motion
	locs := pair{Start: m.StartLoc, End: m.EndLoc}

	if pic.Letter.IsPhiDashOrPsiDash() {
		if loc, ok := phiPsiDashLocation(a, pic); ok {
			return loc
		}
	}

	if pic.Letter.IsLambdaFamily() && m.Turns.IsZero() {
		if sibling, ok := pic.Sibling(a.Color); ok {
			if loc, ok := lambdaDashLocations[pairAndSibling{locs, sibling.Motion.EndLoc}]; ok {
				return loc
			}
		}
	}

	if m.Turns.IsZero() {
		loc, ok := defaultDashLocations[locs]
		if !ok {
			loc = m.StartLoc
		}
		if pic.Letter.Type() == pictograph.Type3 {
			if refined, ok := type3Refinement(m, pic); ok {
				loc = refined
			}
		}
		return loc
	}

	if m.RotDir == pictograph.NoRotation {
		// A turning dash without a rotation direction gets no
		// direction-based adjustment.
		return m.StartLoc
	}
	if loc, ok := dashRotationLocations[m.RotDir][m.StartLoc]; ok {
		return loc
	}
	return m.StartLoc
}

// phiPsiDashLocation handles the Φ-/Ψ- families. Both siblings at zero
// turns read the table directly; a zero-turn dash opposite a turning
// sibling lands opposite the sibling's own result.
func phiPsiDashLocation(a pictograph.Arrow, pic *pictograph.Pictograph) (pictograph.Location, bool) {
	m := a.Motion
	sibling, hasSibling := pic.Sibling(a.Color)

	if m.Turns.IsZero() {
		if hasSibling && !sibling.Motion.Turns.IsZero() {
			// Sibling turns: mirror its non-zero-turn dash placement.
			return dashLocation(sibling, pic).Opposite(), true
		}
		loc, ok := phiPsiDashLocations[colorPair{a.Color, pair{Start: m.StartLoc, End: m.EndLoc}}]
		return loc, ok
	}
	return "", false
}

// type3Refinement moves a Type-3 dash away from its sibling shift arrow.
func type3Refinement(m pictograph.Motion, pic *pictograph.Pictograph) (pictograph.Location, bool) {
	for _, c := range pictograph.Colors {
		arrow, ok := pic.Arrow(c)
		if !ok || !arrow.Motion.Type.IsShift() {
			continue
		}
		shiftLoc := shiftLocation(arrow.Motion)
		loc, ok := type3DashLocations[pic.GridMode][dashAndShift{m.StartLoc, shiftLoc}]
		return loc, ok
	}
	return "", false
}

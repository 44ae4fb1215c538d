// Package geometry holds the fixed coordinate tables of the pictograph grid.
//
// The grid is a 950×950 space centered at (475, 475). Two rings of eight
// compass points each are defined as literal coordinates:
//
//   - hand points: the inner ring, used by STATIC and DASH motions
//   - layer2 points: the outer ring, used by PRO, ANTI and FLOAT motions
//
// The literal values are shared with existing asset packs and must be
// preserved bit-for-bit; do not derive them at runtime.
package geometry

import "github.com/pictolab/glyphgrid/pkg/pictograph"

// Grid dimensions. CenterX/CenterY are the midpoint of the space.
const (
	GridSize = 950.0
	CenterX  = 475.0
	CenterY  = 475.0
)

// Point is an absolute coordinate in the 950×950 grid space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// handPoints is the inner ring. Cardinals sit 143.1 units from center,
// diagonals 101.2 units along each axis.
var handPoints = map[pictograph.Location]Point{
	pictograph.North:     {X: 475.0, Y: 331.9},
	pictograph.Northeast: {X: 576.2, Y: 373.8},
	pictograph.East:      {X: 618.1, Y: 475.0},
	pictograph.Southeast: {X: 576.2, Y: 576.2},
	pictograph.South:     {X: 475.0, Y: 618.1},
	pictograph.Southwest: {X: 373.8, Y: 576.2},
	pictograph.West:      {X: 331.9, Y: 475.0},
	pictograph.Northwest: {X: 373.8, Y: 373.8},
}

// layer2Points is the outer ring. Diagonals sit 143.1 units from center on
// both axes, cardinals 202.4 units along their axis.
var layer2Points = map[pictograph.Location]Point{
	pictograph.North:     {X: 475.0, Y: 272.6},
	pictograph.Northeast: {X: 618.1, Y: 331.9},
	pictograph.East:      {X: 677.4, Y: 475.0},
	pictograph.Southeast: {X: 618.1, Y: 618.1},
	pictograph.South:     {X: 475.0, Y: 677.4},
	pictograph.Southwest: {X: 331.9, Y: 618.1},
	pictograph.West:      {X: 272.6, Y: 475.0},
	pictograph.Northwest: {X: 331.9, Y: 331.9},
}

// HandPoint returns the inner-ring coordinate for a location.
func HandPoint(loc pictograph.Location) (Point, bool) {
	p, ok := handPoints[loc]
	return p, ok
}

// Layer2Point returns the outer-ring coordinate for a location. Cardinal
// locations resolve to their nearest diagonal entry, clockwise: N→NE, E→SE,
// S→SW, W→NW.
func Layer2Point(loc pictograph.Location) (Point, bool) {
	if loc.IsCardinal() {
		loc = nearestDiagonal[loc]
	}
	p, ok := layer2Points[loc]
	return p, ok
}

// Layer2PointExact returns the outer-ring coordinate without cardinal
// snapping. Used by table validation, which needs all eight raw entries.
func Layer2PointExact(loc pictograph.Location) (Point, bool) {
	p, ok := layer2Points[loc]
	return p, ok
}

var nearestDiagonal = map[pictograph.Location]pictograph.Location{
	pictograph.North: pictograph.Northeast,
	pictograph.East:  pictograph.Southeast,
	pictograph.South: pictograph.Southwest,
	pictograph.West:  pictograph.Northwest,
}

// InitialPosition resolves the starting coordinate of an arrow from its
// motion type and calculated location: shifts read the layer2 ring,
// static/dash the hand ring.
func InitialPosition(mt pictograph.MotionType, loc pictograph.Location) (Point, bool) {
	if mt.IsShift() {
		return Layer2Point(loc)
	}
	return HandPoint(loc)
}

// ValidateTables confirms the two point tables carry exactly one entry per
// compass point inside the grid bounds. Called once at engine start-up;
// a failure there is fatal.
func ValidateTables() error {
	if err := validateRing("hand", handPoints); err != nil {
		return err
	}
	return validateRing("layer2", layer2Points)
}

func validateRing(name string, ring map[pictograph.Location]Point) error {
	if len(ring) != len(pictograph.Locations) {
		return &TableError{Table: name, Reason: "wrong cardinality"}
	}
	for _, loc := range pictograph.Locations {
		p, ok := ring[loc]
		if !ok {
			return &TableError{Table: name, Location: loc, Reason: "missing entry"}
		}
		if p.X < 0 || p.X > GridSize || p.Y < 0 || p.Y > GridSize {
			return &TableError{Table: name, Location: loc, Reason: "out of bounds"}
		}
	}
	return nil
}

// TableError reports a malformed coordinate table.
type TableError struct {
	Table    string
	Location pictograph.Location
	Reason   string
}

func (e *TableError) Error() string {
	if e.Location != "" {
		return "geometry table " + e.Table + ": " + e.Reason + " for " + string(e.Location)
	}
	return "geometry table " + e.Table + ": " + e.Reason
}

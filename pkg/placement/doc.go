// Package placement implements the arrow/prop positioning engine.
//
// Given a motion descriptor and its surrounding pictograph context, the
// engine deterministically computes an absolute 2D position, a rotation
// angle, a mirror flag, and — for beta-ending letters — a pair of
// separation offsets preventing two glyphs from visually overlapping.
//
// # Pipeline
//
// Each stage is implemented exactly once and composes in a fixed order:
//
//	Location → Coordinate lookup → Rotation
//	Orientation → PlacementKey → AdjustmentLookup → DirectionalTuple → final adjustment
//	final position = initial coordinate + final adjustment
//
// Prop separation and the mirror decision run independently per pictograph.
//
// # Construction
//
// Build an [Engine] once with an immutable [assets.Assets] snapshot:
//
//	store, err := assets.Load("assets")
//	if err != nil {
//	    log.Fatal(err) // configuration-load errors are fatal at start-up
//	}
//	eng, err := placement.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := eng.PositionAndRotation(arrow, pictograph)
//
// The engine holds no mutable state; concurrent calls are safe without
// locking. Validation and context errors surface at the engine boundary;
// lookup misses resolve through the special → default → zero fallback chain
// and never propagate as errors.
package placement

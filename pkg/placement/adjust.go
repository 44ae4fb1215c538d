package placement

import (
	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// AdjustmentSource records which phase of the fallback chain produced an
// adjustment.
type AdjustmentSource string

const (
	SourceSpecial AdjustmentSource = "special"
	SourceDefault AdjustmentSource = "default"
	SourceZero    AdjustmentSource = "zero"
)

// Adjustment is the resolved base adjustment for one arrow, before
// directional tuple processing.
type Adjustment struct {
	// Point is the (dx, dy) base adjustment. Zero when both phases missed.
	Point geometry.Point

	// Source is the phase that produced Point.
	Source AdjustmentSource

	// Swap is set when the special entry carried a boolean swap flag set to
	// true for this arrow. A swap flag is a prop-swap instruction, not a
	// position adjustment; Point is unaffected by it.
	Swap bool
}

// LookupAdjustment resolves the base adjustment for an arrow through the
// two-phase chain: special config first, default config second, zero as the
// genuine terminal fallback. Misses are ordinary control flow.
func LookupAdjustment(a pictograph.Arrow, pic *pictograph.Pictograph, endOris map[pictograph.Color]pictograph.Orientation, store *assets.Assets) Adjustment {
	key := GenerateKey(a, pic, endOris)

	if adj, swap, ok := specialAdjustment(a, pic, endOris, key, store); ok || swap {
		if ok {
			return Adjustment{Point: adj, Source: SourceSpecial, Swap: swap}
		}
		// Swap flag without a numeric value: fall through to default,
		// carrying the flag.
		d := defaultAdjustment(a, pic, key, store)
		d.Swap = true
		return d
	}

	return defaultAdjustment(a, pic, key, store)
}

// specialAdjustment runs phase one. The boolean results are (numeric hit,
// swap flag seen). A boolean true value found under any probed sub-key is a
// swap instruction and never interpreted numerically.
func specialAdjustment(a pictograph.Arrow, pic *pictograph.Pictograph, endOris map[pictograph.Color]pictograph.Orientation, key Key, store *assets.Assets) (geometry.Point, bool, bool) {
	blue, okB := pic.Arrow(pictograph.Blue)
	red, okR := pic.Arrow(pictograph.Red)
	if !okB || !okR {
		// The special store is keyed by the turns of both arrows;
		// single-arrow pictographs cannot address it.
		return geometry.Point{}, false, false
	}

	sub := assets.SubfolderFor(endOris[pictograph.Blue], endOris[pictograph.Red])
	turnsKey := assets.TurnsTupleKey(blue.Motion.Turns, red.Motion.Turns)

	entry, ok := store.SpecialEntry(pic.GridMode, sub, pic.Letter, turnsKey)
	if !ok {
		return geometry.Point{}, false, false
	}

	// Sub-key probes share the key generator's selection order, then the
	// exact motion type, then the color.
	probes := append(key.Candidates(), string(a.Color))
	swap := false
	for _, probe := range probes {
		v, ok := entry[probe]
		if !ok {
			continue
		}
		if v.IsSwapFlag() {
			if v.SwapSet() {
				swap = true
			}
			continue
		}
		adj, _ := v.Adjustment()
		return adj, swap, true
	}
	return geometry.Point{}, swap, false
}

// defaultAdjustment runs phase two against the default store.
func defaultAdjustment(a pictograph.Arrow, pic *pictograph.Pictograph, key Key, store *assets.Assets) Adjustment {
	selected := key.Select(func(k string) bool {
		return store.HasDefaultKey(pic.GridMode, a.Motion.Type, k)
	})
	if adj, ok := store.DefaultAdjustment(pic.GridMode, a.Motion.Type, selected); ok {
		return Adjustment{Point: adj, Source: SourceDefault}
	}
	return Adjustment{Source: SourceZero}
}

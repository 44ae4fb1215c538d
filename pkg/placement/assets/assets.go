// Package assets loads and serves the two external placement config stores:
//
//   - default placements: per grid mode and motion type, a flat mapping of
//     placement key → [dx, dy]
//   - special placements: per grid mode and orientation subfolder, per-letter
//     files mapping turns-tuple strings to per-color or per-motion-type
//     [dx, dy] pairs, or boolean swap flags
//
// The on-disk layout mirrors the asset packs the engine does not own:
//
//	<dir>/default/<grid_mode>/<motion_type>_placements.json
//	<dir>/special/<grid_mode>/<subfolder>/<letter>_placements.json
//
// Both stores are loaded eagerly at engine construction and are immutable
// afterwards; every accessor is safe for concurrent use. Load failures are
// fatal at start-up, lookup misses at runtime are ordinary control flow
// reported through ok-booleans.
package assets

import (
	"encoding/json"
	"fmt"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// Subfolder is one of the four orientation subdirectories of the special
// placement store. The subfolder encodes the layer classification of the
// blue and red motions' end orientations.
type Subfolder string

const (
	FromLayer1          Subfolder = "from_layer1"            // both radial
	FromLayer2          Subfolder = "from_layer2"            // both nonradial
	FromLayer3Blue1Red2 Subfolder = "from_layer3_blue1_red2" // blue radial, red nonradial
	FromLayer3Blue2Red1 Subfolder = "from_layer3_blue2_red1" // blue nonradial, red radial
)

// Subfolders lists the four orientation subdirectories.
var Subfolders = []Subfolder{FromLayer1, FromLayer2, FromLayer3Blue1Red2, FromLayer3Blue2Red1}

// SubfolderFor maps the two end orientations to their subfolder.
func SubfolderFor(blueEnd, redEnd pictograph.Orientation) Subfolder {
	switch {
	case blueEnd.IsRadial() && redEnd.IsRadial():
		return FromLayer1
	case !blueEnd.IsRadial() && !redEnd.IsRadial():
		return FromLayer2
	case blueEnd.IsRadial():
		return FromLayer3Blue1Red2
	default:
		return FromLayer3Blue2Red1
	}
}

// =============================================================================
// Special placement values
// =============================================================================

// Value is one value of a special placement entry: either a numeric
// [dx, dy] adjustment or a boolean swap flag. A swap flag is never a
// position adjustment; adjustment lookups treat it as a miss.
type Value struct {
	adj    geometry.Point
	hasAdj bool
	swap   bool
}

// AdjustmentValue builds a numeric value. For tests and fabricated configs.
func AdjustmentValue(x, y float64) Value {
	return Value{adj: geometry.Point{X: x, Y: y}, hasAdj: true}
}

// SwapValue builds a boolean swap-flag value.
func SwapValue(v bool) Value { return Value{swap: v} }

// Adjustment returns the numeric adjustment, if this value carries one.
func (v Value) Adjustment() (geometry.Point, bool) { return v.adj, v.hasAdj }

// IsSwapFlag reports whether this value is a boolean swap instruction.
func (v Value) IsSwapFlag() bool { return !v.hasAdj }

// SwapSet reports whether this value is a swap flag set to true.
func (v Value) SwapSet() bool { return !v.hasAdj && v.swap }

// UnmarshalJSON accepts a two-element [dx, dy] array or a JSON boolean.
func (v *Value) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("adjustment needs 2 elements, got %d", len(pair))
		}
		*v = AdjustmentValue(pair[0], pair[1])
		return nil
	}
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*v = SwapValue(flag)
		return nil
	}
	return fmt.Errorf("special placement value must be [dx, dy] or a boolean: %s", data)
}

// Entry is one turns-tuple's worth of special placement data: sub-keys
// (a color, a motion type, or a more specific attribute key) to values.
type Entry map[string]Value

// LetterPlacements maps turns-tuple strings — and, for beta letters,
// separation-override keys of the form "<letter>_<blue type>_<red type>" —
// to entries.
type LetterPlacements map[string]Entry

// =============================================================================
// Store
// =============================================================================

// DefaultStore is the default placement data for one grid mode:
// motion type → placement key → adjustment.
type DefaultStore map[pictograph.MotionType]map[string]geometry.Point

// SpecialStore is the special placement data for one grid mode:
// subfolder → letter → turns tuple → entry.
type SpecialStore map[Subfolder]map[pictograph.Letter]LetterPlacements

// Assets is the immutable placement config snapshot the engine is
// constructed with. Build one with Load or, for tests, with New.
type Assets struct {
	defaults map[pictograph.GridMode]DefaultStore
	special  map[pictograph.GridMode]SpecialStore
}

// New assembles an Assets snapshot from already-built stores. Missing grid
// modes behave as empty stores.
func New(defaults map[pictograph.GridMode]DefaultStore, special map[pictograph.GridMode]SpecialStore) *Assets {
	if defaults == nil {
		defaults = map[pictograph.GridMode]DefaultStore{}
	}
	if special == nil {
		special = map[pictograph.GridMode]SpecialStore{}
	}
	return &Assets{defaults: defaults, special: special}
}

// Empty returns an Assets snapshot with no data. Every lookup misses, so
// the engine falls back to zero adjustments everywhere.
func Empty() *Assets { return New(nil, nil) }

// DefaultAdjustment looks up a default placement adjustment.
func (a *Assets) DefaultAdjustment(grid pictograph.GridMode, mt pictograph.MotionType, key string) (geometry.Point, bool) {
	adj, ok := a.defaults[grid][mt][key]
	return adj, ok
}

// HasDefaultKey reports whether a placement key exists in the default store
// for the given grid mode and motion type. The key generator's selection
// policy probes candidates with this.
func (a *Assets) HasDefaultKey(grid pictograph.GridMode, mt pictograph.MotionType, key string) bool {
	_, ok := a.defaults[grid][mt][key]
	return ok
}

// SpecialEntry looks up one turns-tuple entry in the special store.
func (a *Assets) SpecialEntry(grid pictograph.GridMode, sub Subfolder, letter pictograph.Letter, turnsKey string) (Entry, bool) {
	e, ok := a.special[grid][sub][letter][turnsKey]
	return e, ok
}

// HasSeparationOverride reports whether a manual separation override key
// ("<letter>_<blue type>_<red type>") is present for the letter in any
// orientation subfolder of the grid mode.
func (a *Assets) HasSeparationOverride(grid pictograph.GridMode, letter pictograph.Letter, key string) bool {
	for _, sub := range Subfolders {
		if _, ok := a.special[grid][sub][letter][key]; ok {
			return true
		}
	}
	return false
}

// Letters returns the letters with special placement data for a grid mode,
// deduplicated across subfolders. Used by the letters browser.
func (a *Assets) Letters(grid pictograph.GridMode) []pictograph.Letter {
	seen := map[pictograph.Letter]struct{}{}
	var out []pictograph.Letter
	for _, sub := range Subfolders {
		for l := range a.special[grid][sub] {
			if _, dup := seen[l]; !dup {
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}
	}
	return out
}

// DefaultKeyCount returns the number of default placement keys loaded for a
// grid mode, summed over motion types. Used by assets validation output.
func (a *Assets) DefaultKeyCount(grid pictograph.GridMode) int {
	n := 0
	for _, keys := range a.defaults[grid] {
		n += len(keys)
	}
	return n
}

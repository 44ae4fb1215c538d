// Package pictograph defines the data model for pictograph placement:
// compass locations, orientations, rotation directions, motion descriptors,
// letters, and the pictograph container itself.
//
// A pictograph is a static snapshot of prop/arrow placement representing one
// beat of a sequence. Each beat carries up to two simultaneous motions, by
// convention "blue" and "red". A motion describes how one prop moves between
// two compass locations with a given rotation behavior and turn count.
//
// All types in this package are immutable value types. Validation is explicit:
// construct a [Motion] and call [Motion.Validate] before handing it to the
// placement engine.
//
// # Letters
//
// Letters classify pictographs into six structural families (Type1–Type6).
// The classification drives several placement rules:
//
//   - Type3 and Type5 letters are "dash family": their trailing dash is
//     stripped and replaced with "_dash" in placement keys.
//   - Φ-/Ψ- and Λ/Λ- letters have dedicated dash location tables.
//   - Beta-ending letters place both arrows at the same end location and
//     therefore require prop separation offsets.
package pictograph

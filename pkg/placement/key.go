package placement

import (
	"strings"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// Key is the structured form of a default-placement lookup key. The string
// form ("pro_to_layer1_alpha_A", "nonradial_anti_to_layer3_beta_G") exists
// only at the config-store boundary; the engine passes the structured key
// around and renders it on demand.
type Key struct {
	// Prefix is "radial_" or "nonradial_" on hybrid pictographs, keyed by
	// this arrow's end orientation; empty otherwise.
	Prefix string

	// MotionType is the bare motion-type component, always present.
	MotionType pictograph.MotionType

	// Middle is the "to_layer<N>_<ending>" component; empty when the
	// pictograph does not carry two arrows.
	Middle string

	// LetterSuffix is "_<letter>" with dash-family letters rendered as
	// "_<base>_dash"; empty for unclassified letters.
	LetterSuffix string
}

// String renders the full key the way the config files spell it.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Prefix)
	b.WriteString(string(k.MotionType))
	if k.Middle != "" {
		b.WriteString("_")
		b.WriteString(k.Middle)
	}
	b.WriteString(k.LetterSuffix)
	return b.String()
}

// Candidates returns the lookup candidates in selection order: the full key
// with letter suffix, the bare motion type with letter suffix, and finally
// the bare motion type.
func (k Key) Candidates() []string {
	full := k.String()
	bareLetter := string(k.MotionType) + k.LetterSuffix
	bare := string(k.MotionType)

	out := make([]string, 0, 3)
	out = append(out, full)
	if bareLetter != full {
		out = append(out, bareLetter)
	}
	if bare != full && bare != bareLetter {
		out = append(out, bare)
	}
	return out
}

// Select probes the candidates in order and returns the first one present.
// When nothing matches, the bare motion type comes back as the terminal
// fallback (its lookup will then miss and resolve to zero). Both adjustment
// phases share this selection policy.
func (k Key) Select(has func(string) bool) string {
	candidates := k.Candidates()
	for _, c := range candidates {
		if has(c) {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// GenerateKey builds the placement key for an arrow. endOris carries the
// computed end orientation of every arrow in the pictograph; the middle and
// prefix components need both.
func GenerateKey(a pictograph.Arrow, pic *pictograph.Pictograph, endOris map[pictograph.Color]pictograph.Orientation) Key {
	k := Key{
		MotionType:   a.Motion.Type,
		LetterSuffix: letterSuffix(pic.Letter),
	}

	blue, hasBlue := endOris[pictograph.Blue]
	red, hasRed := endOris[pictograph.Red]
	if !hasBlue || !hasRed {
		return k
	}

	if hybrid(blue, red) {
		if endOris[a.Color].IsRadial() {
			k.Prefix = "radial_"
		} else {
			k.Prefix = "nonradial_"
		}
	}
	k.Middle = "to_" + layerMiddle(blue, red) + "_" + endingClass(pic)
	return k
}

// letterSuffix renders the letter component, or nothing for letters outside
// the classification tables.
func letterSuffix(l pictograph.Letter) string {
	if l == "" || l.Type() == pictograph.TypeUnknown {
		return ""
	}
	return l.KeySuffix()
}

// hybrid reports a mixed-layer pictograph: one radial and one nonradial end
// orientation.
func hybrid(blue, red pictograph.Orientation) bool {
	return blue.IsRadial() != red.IsRadial()
}

// layerMiddle picks the single true layer predicate: layer1 both radial,
// layer2 both nonradial, layer3 hybrid.
func layerMiddle(blue, red pictograph.Orientation) string {
	switch {
	case blue.IsRadial() && red.IsRadial():
		return "layer1"
	case !blue.IsRadial() && !red.IsRadial():
		return "layer2"
	default:
		return "layer3"
	}
}

// endingClass classifies how the pictograph ends: alpha for opposite end
// locations, beta for equal, gamma for everything else.
func endingClass(pic *pictograph.Pictograph) string {
	blue, okB := pic.Arrow(pictograph.Blue)
	red, okR := pic.Arrow(pictograph.Red)
	if !okB || !okR {
		return "gamma"
	}
	switch {
	case blue.Motion.EndLoc == red.Motion.EndLoc:
		return "beta"
	case blue.Motion.EndLoc.Opposite() == red.Motion.EndLoc:
		return "alpha"
	default:
		return "gamma"
	}
}

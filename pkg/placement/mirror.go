package placement

import "github.com/pictolab/glyphgrid/pkg/pictograph"

// ShouldMirror decides whether an arrow's glyph is drawn mirrored. ANTI
// mirrors on clockwise rotation, every other motion type on
// counter-clockwise; NO_ROTATION never mirrors.
func ShouldMirror(a pictograph.Arrow) bool {
	if a.Motion.Type == pictograph.Anti {
		return a.Motion.RotDir == pictograph.Clockwise
	}
	return a.Motion.RotDir == pictograph.CounterClockwise
}

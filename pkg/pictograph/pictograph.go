package pictograph

import "fmt"

// Color identifies one of the two arrows of a beat.
type Color string

const (
	Blue Color = "blue"
	Red  Color = "red"
)

// Colors lists both arrow colors in the canonical (blue, red) order used by
// turns-tuple keys.
var Colors = []Color{Blue, Red}

// ParseColor converts a config/API string to a Color.
func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case Blue, Red:
		return Color(s), nil
	}
	return "", fmt.Errorf("invalid color %q", s)
}

// Other returns the sibling color.
func (c Color) Other() Color {
	if c == Blue {
		return Red
	}
	return Blue
}

// Valid reports whether the color is blue or red.
func (c Color) Valid() bool { return c == Blue || c == Red }

// GridMode selects the coordinate layout variant: DIAMOND is
// cardinal-aligned, BOX is diagonal-aligned.
type GridMode string

const (
	Diamond GridMode = "diamond"
	Box     GridMode = "box"
)

// GridModes lists both layout variants.
var GridModes = []GridMode{Diamond, Box}

// ParseGridMode converts a config/API string to a GridMode.
func ParseGridMode(s string) (GridMode, error) {
	switch GridMode(s) {
	case Diamond, Box:
		return GridMode(s), nil
	}
	return "", fmt.Errorf("invalid grid mode %q", s)
}

// Valid reports whether the grid mode is diamond or box.
func (g GridMode) Valid() bool { return g == Diamond || g == Box }

// Arrow pairs a color with its motion descriptor.
type Arrow struct {
	Color  Color  `json:"color"`
	Motion Motion `json:"motion"`
}

// Validate checks the arrow's color and motion.
func (a Arrow) Validate() error {
	if !a.Color.Valid() {
		return fmt.Errorf("invalid color %q", a.Color)
	}
	return a.Motion.Validate()
}

// Pictograph is the context a single beat's placement is computed in:
// the letter code, the grid mode, and up to two arrows keyed by color.
type Pictograph struct {
	Letter   Letter          `json:"letter"`
	GridMode GridMode        `json:"grid_mode"`
	Arrows   map[Color]Arrow `json:"arrows"`
}

// Arrow returns the arrow of the given color, if present.
func (p *Pictograph) Arrow(c Color) (Arrow, bool) {
	a, ok := p.Arrows[c]
	return a, ok
}

// Sibling returns the other arrow of the beat, if present.
func (p *Pictograph) Sibling(c Color) (Arrow, bool) {
	return p.Arrow(c.Other())
}

// Validate checks the pictograph's structure: a known grid mode, at most two
// arrows, and each arrow stored under its own color.
func (p *Pictograph) Validate() error {
	if !p.GridMode.Valid() {
		return fmt.Errorf("invalid grid mode %q", p.GridMode)
	}
	if len(p.Arrows) > 2 {
		return fmt.Errorf("pictograph carries %d arrows, at most 2 allowed", len(p.Arrows))
	}
	for c, a := range p.Arrows {
		if c != a.Color {
			return fmt.Errorf("arrow stored under %q has color %q", c, a.Color)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%s arrow: %w", c, err)
		}
	}
	return nil
}

package pictograph

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MotionType classifies how a prop travels between its start and end
// locations.
type MotionType string

const (
	Static MotionType = "static"
	Pro    MotionType = "pro"
	Anti   MotionType = "anti"
	Dash   MotionType = "dash"
	Float  MotionType = "float"
)

// MotionTypes lists every motion type. Used by config loading to know which
// default-placement files to expect.
var MotionTypes = []MotionType{Static, Pro, Anti, Dash, Float}

// ParseMotionType converts a config/API string to a MotionType.
func ParseMotionType(s string) (MotionType, error) {
	switch MotionType(s) {
	case Static, Pro, Anti, Dash, Float:
		return MotionType(s), nil
	}
	return "", fmt.Errorf("invalid motion type %q", s)
}

// IsShift reports whether the motion travels between adjacent grid points.
// PRO, ANTI and FLOAT are shifts; STATIC and DASH are not.
func (m MotionType) IsShift() bool { return m == Pro || m == Anti || m == Float }

// Valid reports whether the motion type is one of the five known values.
func (m MotionType) Valid() bool {
	switch m {
	case Static, Pro, Anti, Dash, Float:
		return true
	}
	return false
}

// =============================================================================
// Turns
// =============================================================================

// floatTurnsMarker is the string form of float turns in turns-tuple keys and
// JSON payloads. The value is fixed by the external special-placement files.
const floatTurnsMarker = "fl"

// Turns is a discrete turn count: one of 0, 0.5, 1, 1.5, 2, 2.5, 3, or the
// distinct float marker. The zero value is zero turns.
type Turns struct {
	value   float64
	isFloat bool
}

// NewTurns builds a Turns value, rejecting anything outside the seven
// allowed discrete values.
func NewTurns(v float64) (Turns, error) {
	if v != v || v < 0 || v > 3 || v*2 != float64(int(v*2)) {
		return Turns{}, fmt.Errorf("invalid turns value %v", v)
	}
	return Turns{value: v}, nil
}

// MustTurns is NewTurns that panics on invalid input. For tests and tables.
func MustTurns(v float64) Turns {
	t, err := NewTurns(v)
	if err != nil {
		panic(err)
	}
	return t
}

// FloatTurns returns the distinct float marker value.
func FloatTurns() Turns { return Turns{isFloat: true} }

// IsFloat reports whether this is the float marker rather than a number.
func (t Turns) IsFloat() bool { return t.isFloat }

// Value returns the numeric turn count. Only meaningful when IsFloat is
// false.
func (t Turns) Value() float64 { return t.value }

// IsZero reports whether this is exactly zero turns (the float marker is not
// zero).
func (t Turns) IsZero() bool { return !t.isFloat && t.value == 0 }

// IsWhole reports whether the turn count is an integer (0, 1, 2, 3).
func (t Turns) IsWhole() bool { return !t.isFloat && t.value == float64(int(t.value)) }

// IsHalf reports whether the turn count has a half fraction (0.5, 1.5, 2.5).
func (t Turns) IsHalf() bool { return !t.isFloat && !t.IsWhole() }

// String renders the turn count the way the external config files key it:
// integers without a trailing ".0" ("0", "1"), halves with one decimal
// ("1.5"), and the float marker as "fl".
func (t Turns) String() string {
	if t.isFloat {
		return floatTurnsMarker
	}
	if t.IsWhole() {
		return strconv.Itoa(int(t.value))
	}
	return strconv.FormatFloat(t.value, 'f', 1, 64)
}

// MarshalJSON renders numeric turns as a JSON number and the float marker as
// the string "fl".
func (t Turns) MarshalJSON() ([]byte, error) {
	if t.isFloat {
		return json.Marshal(floatTurnsMarker)
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON accepts a JSON number or the string "fl".
func (t *Turns) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != floatTurnsMarker {
			return fmt.Errorf("invalid turns string %q", s)
		}
		*t = FloatTurns()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid turns value: %s", data)
	}
	parsed, err := NewTurns(v)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// =============================================================================
// Motion
// =============================================================================

// Motion is the kinematic descriptor of one prop's movement during a beat.
type Motion struct {
	Type     MotionType        `json:"motion_type"`
	StartLoc Location          `json:"start_loc"`
	EndLoc   Location          `json:"end_loc"`
	StartOri Orientation       `json:"start_ori"`
	Turns    Turns             `json:"turns"`
	RotDir   RotationDirection `json:"prop_rot_dir"`
}

// Validate checks the motion for structural errors: unknown enum values or
// missing locations. It does not check motion-type specific turn rules;
// those surface from the orientation calculator.
func (m Motion) Validate() error {
	if !m.Type.Valid() {
		return fmt.Errorf("invalid motion type %q", m.Type)
	}
	if !m.StartLoc.Valid() {
		return fmt.Errorf("invalid start location %q", m.StartLoc)
	}
	if !m.EndLoc.Valid() {
		return fmt.Errorf("invalid end location %q", m.EndLoc)
	}
	if !m.StartOri.Valid() {
		return fmt.Errorf("invalid start orientation %q", m.StartOri)
	}
	if !m.RotDir.Valid() {
		return fmt.Errorf("invalid rotation direction %q", m.RotDir)
	}
	if m.Type == Float && !m.Turns.IsFloat() {
		return fmt.Errorf("float motion requires float turns, got %s", m.Turns)
	}
	return nil
}

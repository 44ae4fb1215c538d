package pictograph_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

func TestNewTurns_Valid(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1, 1.5, 2, 2.5, 3} {
		turns, err := pictograph.NewTurns(v)
		require.NoError(t, err)
		require.Equal(t, v, turns.Value())
		require.False(t, turns.IsFloat())
	}
}

func TestNewTurns_Invalid(t *testing.T) {
	for _, v := range []float64{-0.5, 0.25, 3.5, 100} {
		_, err := pictograph.NewTurns(v)
		require.Error(t, err, "turns %v should be rejected", v)
	}
}

func TestTurns_String(t *testing.T) {
	require.Equal(t, "0", pictograph.MustTurns(0).String())
	require.Equal(t, "2", pictograph.MustTurns(2).String())
	require.Equal(t, "1.5", pictograph.MustTurns(1.5).String())
	require.Equal(t, "fl", pictograph.FloatTurns().String())
}

func TestTurns_Predicates(t *testing.T) {
	require.True(t, pictograph.MustTurns(0).IsZero())
	require.False(t, pictograph.FloatTurns().IsZero())
	require.True(t, pictograph.MustTurns(3).IsWhole())
	require.True(t, pictograph.MustTurns(2.5).IsHalf())
	require.False(t, pictograph.FloatTurns().IsWhole())
	require.False(t, pictograph.FloatTurns().IsHalf())
}

func TestTurns_JSON(t *testing.T) {
	var turns pictograph.Turns
	require.NoError(t, json.Unmarshal([]byte(`1.5`), &turns))
	require.Equal(t, 1.5, turns.Value())

	require.NoError(t, json.Unmarshal([]byte(`"fl"`), &turns))
	require.True(t, turns.IsFloat())

	data, err := json.Marshal(pictograph.FloatTurns())
	require.NoError(t, err)
	require.Equal(t, `"fl"`, string(data))

	data, err = json.Marshal(pictograph.MustTurns(2))
	require.NoError(t, err)
	require.Equal(t, `2`, string(data))

	require.Error(t, json.Unmarshal([]byte(`"half"`), &turns))
	require.Error(t, json.Unmarshal([]byte(`0.25`), &turns))
}

func TestMotion_Validate(t *testing.T) {
	valid := pictograph.Motion{
		Type:     pictograph.Pro,
		StartLoc: pictograph.North,
		EndLoc:   pictograph.East,
		StartOri: pictograph.In,
		Turns:    pictograph.MustTurns(1),
		RotDir:   pictograph.Clockwise,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Type = "spin"
	require.Error(t, bad.Validate())

	bad = valid
	bad.StartLoc = "nne"
	require.Error(t, bad.Validate())

	bad = valid
	bad.StartOri = "sideways"
	require.Error(t, bad.Validate())

	bad = valid
	bad.Type = pictograph.Float
	require.Error(t, bad.Validate(), "float motion needs float turns")
	bad.Turns = pictograph.FloatTurns()
	require.NoError(t, bad.Validate())
}

func TestMotionType_IsShift(t *testing.T) {
	require.True(t, pictograph.Pro.IsShift())
	require.True(t, pictograph.Anti.IsShift())
	require.True(t, pictograph.Float.IsShift())
	require.False(t, pictograph.Static.IsShift())
	require.False(t, pictograph.Dash.IsShift())
}

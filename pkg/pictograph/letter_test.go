package pictograph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

func TestLetter_Type(t *testing.T) {
	cases := map[pictograph.Letter]pictograph.LetterType{
		"A":  pictograph.Type1,
		"V":  pictograph.Type1,
		"W":  pictograph.Type2,
		"Ω":  pictograph.Type2,
		"W-": pictograph.Type3,
		"θ-": pictograph.Type3,
		"Φ":  pictograph.Type4,
		"Λ":  pictograph.Type4,
		"Φ-": pictograph.Type5,
		"Λ-": pictograph.Type5,
		"α":  pictograph.Type6,
		"Γ":  pictograph.Type6,
		"?":  pictograph.TypeUnknown,
		"":   pictograph.TypeUnknown,
		"a":  pictograph.TypeUnknown,
	}
	for letter, want := range cases {
		require.Equal(t, want, letter.Type(), "letter %q", letter)
	}
}

func TestLetter_KeySuffix(t *testing.T) {
	require.Equal(t, "_A", pictograph.Letter("A").KeySuffix())
	require.Equal(t, "_W_dash", pictograph.Letter("W-").KeySuffix())
	require.Equal(t, "_Φ_dash", pictograph.Letter("Φ-").KeySuffix())
	require.Equal(t, "_Φ", pictograph.Letter("Φ").KeySuffix())
}

func TestLetter_Families(t *testing.T) {
	require.True(t, pictograph.Letter("W-").IsDashFamily())
	require.True(t, pictograph.Letter("Ψ-").IsDashFamily())
	require.False(t, pictograph.Letter("W").IsDashFamily())
	require.False(t, pictograph.Letter("Φ").IsDashFamily())

	require.True(t, pictograph.Letter("Φ-").IsPhiDashOrPsiDash())
	require.False(t, pictograph.Letter("Λ-").IsPhiDashOrPsiDash())

	require.True(t, pictograph.Letter("Λ").IsLambdaFamily())
	require.True(t, pictograph.Letter("Λ-").IsLambdaFamily())
	require.False(t, pictograph.Letter("Ψ").IsLambdaFamily())
}

func TestLetter_IsBetaEnding(t *testing.T) {
	for _, l := range []pictograph.Letter{"G", "H", "I", "J", "K", "L", "Y", "Z", "Y-", "Z-", "Ψ", "Ψ-", "β"} {
		require.True(t, l.IsBetaEnding(), "letter %q", l)
	}
	for _, l := range []pictograph.Letter{"A", "W", "W-", "Φ", "α", "Γ"} {
		require.False(t, l.IsBetaEnding(), "letter %q", l)
	}
}

func TestAllLetters(t *testing.T) {
	letters := pictograph.AllLetters()
	require.Len(t, letters, 47)
	for _, l := range letters {
		require.NotEqual(t, pictograph.TypeUnknown, l.Type(), "letter %q", l)
	}
}

package pictograph

import "strings"

// Letter is the code identifying a pictograph's structural configuration.
// Codes are single glyphs, optionally followed by a dash for the dash
// variants (e.g. "W-", "Φ-").
type Letter string

// LetterType is the structural family of a letter.
type LetterType int

const (
	TypeUnknown LetterType = iota
	Type1                  // dual shift: A–V
	Type2                  // shift + static: W, X, Y, Z, Σ, Δ, θ, Ω
	Type3                  // shift + dash: W-, X-, Y-, Z-, Σ-, Δ-, θ-, Ω-
	Type4                  // dash + static: Φ, Ψ, Λ
	Type5                  // dual dash: Φ-, Ψ-, Λ-
	Type6                  // dual static: α, β, Γ
)

// String returns the conventional family name.
func (t LetterType) String() string {
	switch t {
	case Type1:
		return "Type1"
	case Type2:
		return "Type2"
	case Type3:
		return "Type3"
	case Type4:
		return "Type4"
	case Type5:
		return "Type5"
	case Type6:
		return "Type6"
	}
	return "Unknown"
}

var (
	type2Letters = letterSet("W", "X", "Y", "Z", "Σ", "Δ", "θ", "Ω")
	type3Letters = letterSet("W-", "X-", "Y-", "Z-", "Σ-", "Δ-", "θ-", "Ω-")
	type4Letters = letterSet("Φ", "Ψ", "Λ")
	type5Letters = letterSet("Φ-", "Ψ-", "Λ-")
	type6Letters = letterSet("α", "β", "Γ")

	// betaEndingLetters is the closed set of letters whose canonical
	// configuration places both arrows at the same end location. Only these
	// letters are subject to prop separation.
	betaEndingLetters = letterSet("G", "H", "I", "J", "K", "L", "Y", "Z", "Y-", "Z-", "Ψ", "Ψ-", "β")

	// phiDashPsiDashLetters have a dedicated per-color dash location table.
	phiDashPsiDashLetters = letterSet("Φ-", "Ψ-")

	// lambdaLetters use the sibling-end keyed dash location table at zero
	// turns.
	lambdaLetters = letterSet("Λ", "Λ-")
)

func letterSet(letters ...Letter) map[Letter]struct{} {
	s := make(map[Letter]struct{}, len(letters))
	for _, l := range letters {
		s[l] = struct{}{}
	}
	return s
}

// Type returns the structural family of the letter.
func (l Letter) Type() LetterType {
	if _, ok := type2Letters[l]; ok {
		return Type2
	}
	if _, ok := type3Letters[l]; ok {
		return Type3
	}
	if _, ok := type4Letters[l]; ok {
		return Type4
	}
	if _, ok := type5Letters[l]; ok {
		return Type5
	}
	if _, ok := type6Letters[l]; ok {
		return Type6
	}
	if len(l) == 1 && l[0] >= 'A' && l[0] <= 'V' {
		return Type1
	}
	return TypeUnknown
}

// IsDashFamily reports whether the letter belongs to one of the two
// dash-family groups (Type3 or Type5). Dash-family letters have their
// trailing dash stripped and replaced with "_dash" in placement keys.
func (l Letter) IsDashFamily() bool {
	t := l.Type()
	return t == Type3 || t == Type5
}

// IsPhiDashOrPsiDash reports whether the letter is Φ- or Ψ-.
func (l Letter) IsPhiDashOrPsiDash() bool {
	_, ok := phiDashPsiDashLetters[l]
	return ok
}

// IsLambdaFamily reports whether the letter is Λ or Λ-.
func (l Letter) IsLambdaFamily() bool {
	_, ok := lambdaLetters[l]
	return ok
}

// IsBetaEnding reports whether both arrows of the letter's canonical form
// end at the same location, requiring a separation offset.
func (l Letter) IsBetaEnding() bool {
	_, ok := betaEndingLetters[l]
	return ok
}

// KeySuffix returns the letter's suffix inside placement keys: dash-family
// letters contribute "_<base>_dash", everything else "_<letter>" verbatim.
func (l Letter) KeySuffix() string {
	if l.IsDashFamily() {
		return "_" + strings.TrimSuffix(string(l), "-") + "_dash"
	}
	return "_" + string(l)
}

// All returns every letter known to the classification tables, in a stable
// display order. Used by the letters browser and assets validation.
func AllLetters() []Letter {
	out := make([]Letter, 0, 48)
	for c := byte('A'); c <= 'V'; c++ {
		out = append(out, Letter(rune(c)))
	}
	out = append(out, "W", "X", "Y", "Z", "Σ", "Δ", "θ", "Ω")
	out = append(out, "W-", "X-", "Y-", "Z-", "Σ-", "Δ-", "θ-", "Ω-")
	out = append(out, "Φ", "Ψ", "Λ")
	out = append(out, "Φ-", "Ψ-", "Λ-")
	out = append(out, "α", "β", "Γ")
	return out
}

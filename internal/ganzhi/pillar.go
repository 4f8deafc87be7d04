package ganzhi

// CycleLen is the length of the sexagenary cycle: lcm(10, 12).
const CycleLen = 60

// Pillar is an ordered (stem, branch) pair. Of the 120 possible pairs only
// the 60 with matching index parity are valid; those form the sexagenary
// cycle.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// PillarFromIndex returns the pillar at cycle index i, total over all
// integers: negative indices wrap (-1 → 59), indices ≥ 60 wrap down.
func PillarFromIndex(i int) Pillar {
	n := Mod(i, CycleLen)
	return Pillar{
		Stem:   Stem(n % NumStems),
		Branch: Branch(n % NumBranches),
	}
}

// Index returns the canonical cycle index in [0, 60), the exact inverse of
// PillarFromIndex over valid pillars. Returns -1 for invalid pairs (stem and
// branch index parity must match; 10 and 12 share a factor of 2).
//
// The closed form 6s − 5b solves the pair of congruences i ≡ s (mod 10),
// i ≡ b (mod 12) whenever s and b have equal parity.
func (p Pillar) Index() int {
	if !p.Valid() {
		return -1
	}
	return Mod(6*int(p.Stem)-5*int(p.Branch), CycleLen)
}

// Valid reports whether the pair is one of the 60 sexagenary pillars.
func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && int(p.Stem)%2 == int(p.Branch)%2
}

// String returns the two-character Hanja rendering, e.g. "甲子".
func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// Korean returns the two-syllable Hangul rendering, e.g. "갑자".
func (p Pillar) Korean() string {
	return p.Stem.Korean() + p.Branch.Korean()
}

// ParsePillar resolves a two-symbol pillar string (Hanja or Hangul) to a
// Pillar. The boolean is false if either symbol is unknown or the pair is
// not one of the 60 valid pillars.
func ParsePillar(symbol string) (Pillar, bool) {
	runes := []rune(symbol)
	if len(runes) != 2 {
		return Pillar{}, false
	}
	si := StemIndex(string(runes[0]))
	bi := BranchIndex(string(runes[1]))
	if si < 0 || bi < 0 {
		return Pillar{}, false
	}
	p := Pillar{Stem: Stem(si), Branch: Branch(bi)}
	return p, p.Valid()
}

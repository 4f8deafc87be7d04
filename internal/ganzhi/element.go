package ganzhi

// Element is one of the five phases (오행). The declaration order follows the
// generation cycle: each element generates the next, wrapping at the end.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// NumElements is the size of the element cycle.
const NumElements = 5

// elementNames indexes English, Korean and Hanja labels by Element.
var elementNames = [NumElements]struct {
	english string
	korean  string
	hanja   string
}{
	{"Wood", "목", "木"},
	{"Fire", "화", "火"},
	{"Earth", "토", "土"},
	{"Metal", "금", "金"},
	{"Water", "수", "水"},
}

// String returns the English name.
func (e Element) String() string {
	if !e.Valid() {
		return "Invalid"
	}
	return elementNames[e].english
}

// Korean returns the Korean (Hangul) name.
func (e Element) Korean() string {
	if !e.Valid() {
		return ""
	}
	return elementNames[e].korean
}

// Hanja returns the Hanja character.
func (e Element) Hanja() string {
	if !e.Valid() {
		return ""
	}
	return elementNames[e].hanja
}

// Valid reports whether e is one of the five defined elements.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// Generates returns the element e produces in the generation cycle
// (wood→fire→earth→metal→water→wood).
func (e Element) Generates() Element {
	return Element(Mod(int(e)+1, NumElements))
}

// GeneratedBy returns the element that produces e.
func (e Element) GeneratedBy() Element {
	return Element(Mod(int(e)-1, NumElements))
}

// Controls returns the element e restrains in the control cycle: each
// element controls the element two steps ahead (wood→earth, fire→metal, ...).
func (e Element) Controls() Element {
	return Element(Mod(int(e)+2, NumElements))
}

// ControlledBy returns the element that restrains e.
func (e Element) ControlledBy() Element {
	return Element(Mod(int(e)-2, NumElements))
}

// Polarity is the yin/yang attribute of a stem or branch.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

// String returns the English name.
func (p Polarity) String() string {
	switch p {
	case Yang:
		return "Yang"
	case Yin:
		return "Yin"
	}
	return "Invalid"
}

// Korean returns the Korean name.
func (p Polarity) Korean() string {
	switch p {
	case Yang:
		return "양"
	case Yin:
		return "음"
	}
	return ""
}

// polarityByIndex assigns polarity by strict alternation: even indices are
// yang, odd indices are yin. Shared by stems and branches.
func polarityByIndex(i int) Polarity {
	if i%2 == 0 {
		return Yang
	}
	return Yin
}

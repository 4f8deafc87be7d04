package ganzhi

import "golang.org/x/text/unicode/norm"

// Stem is one of the ten heavenly stems (천간), identified by cycle index.
// Element assignment pairs consecutive stems (甲乙 wood, 丙丁 fire, ...);
// polarity alternates strictly by index (even yang, odd yin).
type Stem int

const (
	StemGap    Stem = iota // 甲 yang wood
	StemEul                // 乙 yin wood
	StemByeong             // 丙 yang fire
	StemJeong              // 丁 yin fire
	StemMu                 // 戊 yang earth
	StemGi                 // 己 yin earth
	StemGyeong             // 庚 yang metal
	StemSin                // 辛 yin metal
	StemIm                 // 壬 yang water
	StemGye                // 癸 yin water
)

// NumStems is the size of the stem cycle.
const NumStems = 10

var stemNames = [NumStems]struct {
	hanja  string
	korean string
}{
	{"甲", "갑"},
	{"乙", "을"},
	{"丙", "병"},
	{"丁", "정"},
	{"戊", "무"},
	{"己", "기"},
	{"庚", "경"},
	{"辛", "신"},
	{"壬", "임"},
	{"癸", "계"},
}

// stemBySymbol maps both Hanja and Hangul symbols to stem indices.
// Keys are NFC-normalized; lookups normalize before indexing.
var stemBySymbol = func() map[string]Stem {
	m := make(map[string]Stem, NumStems*2)
	for i, n := range stemNames {
		m[norm.NFC.String(n.hanja)] = Stem(i)
		m[norm.NFC.String(n.korean)] = Stem(i)
	}
	return m
}()

// String returns the Hanja symbol, the canonical rendering of a stem.
func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemNames[s].hanja
}

// Korean returns the Hangul reading.
func (s Stem) Korean() string {
	if !s.Valid() {
		return ""
	}
	return stemNames[s].korean
}

// Valid reports whether s is one of the ten defined stems.
func (s Stem) Valid() bool {
	return s >= StemGap && s <= StemGye
}

// Element returns the stem's fixed element: index/2 walks the generation
// cycle two stems per element.
func (s Stem) Element() Element {
	return Element(int(s) / 2)
}

// Polarity returns yang for even indices, yin for odd.
func (s Stem) Polarity() Polarity {
	return polarityByIndex(int(s))
}

// StemIndex returns the cycle index of a stem symbol (Hanja or Hangul),
// or -1 if the symbol is not one of the ten stems. The input is NFC
// normalized first so decomposed Unicode forms resolve identically.
//
// The -1 sentinel is contractual, not an error: callers uniformly treat
// "not found" as "not applicable".
func StemIndex(symbol string) int {
	if s, ok := stemBySymbol[norm.NFC.String(symbol)]; ok {
		return int(s)
	}
	return -1
}

// StemFromIndex returns the stem at index i, total over all integers via
// modulo-10 normalization.
func StemFromIndex(i int) Stem {
	return Stem(Mod(i, NumStems))
}

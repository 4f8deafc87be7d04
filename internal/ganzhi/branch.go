package ganzhi

import "golang.org/x/text/unicode/norm"

// Branch is one of the twelve earthly branches (지지), identified by cycle
// index. Each branch carries a fixed element, an alternating polarity, and
// an ordered list of one to three hidden stems (지장간) describing its
// latent elemental composition, principal qi first.
type Branch int

const (
	BranchJa      Branch = iota // 子 water
	BranchChuk                  // 丑 earth
	BranchIn                    // 寅 wood
	BranchMyo                   // 卯 wood
	BranchJin                   // 辰 earth
	BranchSa                    // 巳 fire
	BranchO                     // 午 fire
	BranchMi                    // 未 earth
	BranchSinMonkey             // 申 metal
	BranchYu                    // 酉 metal
	BranchSul                   // 戌 earth
	BranchHae                   // 亥 water
)

// NumBranches is the size of the branch cycle.
const NumBranches = 12

var branchNames = [NumBranches]struct {
	hanja  string
	korean string
}{
	{"子", "자"},
	{"丑", "축"},
	{"寅", "인"},
	{"卯", "묘"},
	{"辰", "진"},
	{"巳", "사"},
	{"午", "오"},
	{"未", "미"},
	{"申", "신"},
	{"酉", "유"},
	{"戌", "술"},
	{"亥", "해"},
}

// branchElements assigns each branch its fixed element. Unlike stems there
// is no arithmetic shortcut; the assignment interleaves the four seasonal
// elements with earth at the season transitions.
var branchElements = [NumBranches]Element{
	Water, // 子
	Earth, // 丑
	Wood,  // 寅
	Wood,  // 卯
	Earth, // 辰
	Fire,  // 巳
	Fire,  // 午
	Earth, // 未
	Metal, // 申
	Metal, // 酉
	Earth, // 戌
	Water, // 亥
}

// branchHiddenStems lists each branch's hidden stems, principal qi first.
var branchHiddenStems = [NumBranches][]Stem{
	{StemGye},                     // 子: 癸
	{StemGi, StemGye, StemSin},    // 丑: 己癸辛
	{StemGap, StemByeong, StemMu}, // 寅: 甲丙戊
	{StemEul},                     // 卯: 乙
	{StemMu, StemEul, StemGye},    // 辰: 戊乙癸
	{StemByeong, StemGyeong, StemMu}, // 巳: 丙庚戊
	{StemJeong, StemGi},              // 午: 丁己
	{StemGi, StemJeong, StemEul},     // 未: 己丁乙
	{StemGyeong, StemIm, StemMu},     // 申: 庚壬戊
	{StemSin},                        // 酉: 辛
	{StemMu, StemSin, StemJeong},     // 戌: 戊辛丁
	{StemIm, StemGap},                // 亥: 壬甲
}

var branchBySymbol = func() map[string]Branch {
	m := make(map[string]Branch, NumBranches*2)
	for i, n := range branchNames {
		m[norm.NFC.String(n.hanja)] = Branch(i)
		m[norm.NFC.String(n.korean)] = Branch(i)
	}
	return m
}()

// String returns the Hanja symbol, the canonical rendering of a branch.
func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchNames[b].hanja
}

// Korean returns the Hangul reading.
func (b Branch) Korean() string {
	if !b.Valid() {
		return ""
	}
	return branchNames[b].korean
}

// Valid reports whether b is one of the twelve defined branches.
func (b Branch) Valid() bool {
	return b >= BranchJa && b <= BranchHae
}

// Element returns the branch's fixed element, or an invalid element for
// an out-of-range branch.
func (b Branch) Element() Element {
	if !b.Valid() {
		return Element(-1)
	}
	return branchElements[b]
}

// Polarity returns yang for even indices, yin for odd.
func (b Branch) Polarity() Polarity {
	return polarityByIndex(int(b))
}

// HiddenStems returns the branch's hidden stems, principal qi first.
// The returned slice is a copy; the underlying tables are never mutated.
func (b Branch) HiddenStems() []Stem {
	if !b.Valid() {
		return nil
	}
	hs := branchHiddenStems[b]
	out := make([]Stem, len(hs))
	copy(out, hs)
	return out
}

// BranchIndex returns the cycle index of a branch symbol (Hanja or Hangul),
// or -1 if the symbol is not one of the twelve branches. Same sentinel
// contract as StemIndex.
func BranchIndex(symbol string) int {
	if b, ok := branchBySymbol[norm.NFC.String(symbol)]; ok {
		return int(b)
	}
	return -1
}

// BranchFromIndex returns the branch at index i, total over all integers via
// modulo-12 normalization.
func BranchFromIndex(i int) Branch {
	return Branch(Mod(i, NumBranches))
}

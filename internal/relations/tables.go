package relations

import "github.com/roach88/saju/internal/ganzhi"

// stemCombo is one of the five heavenly-stem combinations; the paired
// stems transform into a fixed element.
type stemCombo struct {
	a, b    ganzhi.Stem
	element ganzhi.Element
	korean  string
}

var stemCombos = [5]stemCombo{
	{ganzhi.StemGap, ganzhi.StemGi, ganzhi.Earth, "갑기합"},
	{ganzhi.StemEul, ganzhi.StemGyeong, ganzhi.Metal, "을경합"},
	{ganzhi.StemByeong, ganzhi.StemSin, ganzhi.Water, "병신합"},
	{ganzhi.StemJeong, ganzhi.StemIm, ganzhi.Wood, "정임합"},
	{ganzhi.StemMu, ganzhi.StemGye, ganzhi.Fire, "무계합"},
}

// branchPair is a two-branch table entry. Element is meaningful only for
// combination tables; zero otherwise.
type branchPair struct {
	a, b    ganzhi.Branch
	element ganzhi.Element
	korean  string
}

// Clashes pair branches at cyclic distance six.
var clashes = [6]branchPair{
	{ganzhi.BranchJa, ganzhi.BranchO, 0, "자오충"},
	{ganzhi.BranchChuk, ganzhi.BranchMi, 0, "축미충"},
	{ganzhi.BranchIn, ganzhi.BranchSinMonkey, 0, "인신충"},
	{ganzhi.BranchMyo, ganzhi.BranchYu, 0, "묘유충"},
	{ganzhi.BranchJin, ganzhi.BranchSul, 0, "진술충"},
	{ganzhi.BranchSa, ganzhi.BranchHae, 0, "사해충"},
}

// Six combinations, each transforming to an element. 午未 resolves to
// fire, the Korean table convention.
var sixCombos = [6]branchPair{
	{ganzhi.BranchJa, ganzhi.BranchChuk, ganzhi.Earth, "자축합"},
	{ganzhi.BranchIn, ganzhi.BranchHae, ganzhi.Wood, "인해합"},
	{ganzhi.BranchMyo, ganzhi.BranchSul, ganzhi.Fire, "묘술합"},
	{ganzhi.BranchJin, ganzhi.BranchYu, ganzhi.Metal, "진유합"},
	{ganzhi.BranchSa, ganzhi.BranchSinMonkey, ganzhi.Water, "사신합"},
	{ganzhi.BranchO, ganzhi.BranchMi, ganzhi.Fire, "오미합"},
}

var harms = [6]branchPair{
	{ganzhi.BranchJa, ganzhi.BranchMi, 0, "자미해"},
	{ganzhi.BranchChuk, ganzhi.BranchO, 0, "축오해"},
	{ganzhi.BranchIn, ganzhi.BranchSa, 0, "인사해"},
	{ganzhi.BranchMyo, ganzhi.BranchJin, 0, "묘진해"},
	{ganzhi.BranchSinMonkey, ganzhi.BranchHae, 0, "신해해"},
	{ganzhi.BranchYu, ganzhi.BranchSul, 0, "유술해"},
}

var destructions = [6]branchPair{
	{ganzhi.BranchJa, ganzhi.BranchYu, 0, "자유파"},
	{ganzhi.BranchChuk, ganzhi.BranchJin, 0, "축진파"},
	{ganzhi.BranchIn, ganzhi.BranchHae, 0, "인해파"},
	{ganzhi.BranchMyo, ganzhi.BranchO, 0, "묘오파"},
	{ganzhi.BranchSa, ganzhi.BranchSinMonkey, 0, "사신파"},
	{ganzhi.BranchSul, ganzhi.BranchMi, 0, "술미파"},
}

// branchTriple is a three-branch table entry.
type branchTriple struct {
	members [3]ganzhi.Branch
	element ganzhi.Element
	korean  string
}

// Triple combinations (삼합): all three members required.
var tripleCombos = [4]branchTriple{
	{[3]ganzhi.Branch{ganzhi.BranchSinMonkey, ganzhi.BranchJa, ganzhi.BranchJin}, ganzhi.Water, "신자진 삼합"},
	{[3]ganzhi.Branch{ganzhi.BranchHae, ganzhi.BranchMyo, ganzhi.BranchMi}, ganzhi.Wood, "해묘미 삼합"},
	{[3]ganzhi.Branch{ganzhi.BranchIn, ganzhi.BranchO, ganzhi.BranchSul}, ganzhi.Fire, "인오술 삼합"},
	{[3]ganzhi.Branch{ganzhi.BranchSa, ganzhi.BranchYu, ganzhi.BranchChuk}, ganzhi.Metal, "사유축 삼합"},
}

// Directional combinations (방합): the seasonal branch trios.
var directionalCombos = [4]branchTriple{
	{[3]ganzhi.Branch{ganzhi.BranchIn, ganzhi.BranchMyo, ganzhi.BranchJin}, ganzhi.Wood, "인묘진 방합"},
	{[3]ganzhi.Branch{ganzhi.BranchSa, ganzhi.BranchO, ganzhi.BranchMi}, ganzhi.Fire, "사오미 방합"},
	{[3]ganzhi.Branch{ganzhi.BranchSinMonkey, ganzhi.BranchYu, ganzhi.BranchSul}, ganzhi.Metal, "신유술 방합"},
	{[3]ganzhi.Branch{ganzhi.BranchHae, ganzhi.BranchJa, ganzhi.BranchChuk}, ganzhi.Water, "해자축 방합"},
}

// Punishment sub-types, keyed by their qualifying sets.
var punishmentTriples = [2]struct {
	members [3]ganzhi.Branch
	subtype string
	korean  string
}{
	{[3]ganzhi.Branch{ganzhi.BranchIn, ganzhi.BranchSa, ganzhi.BranchSinMonkey}, "무은지형", "인사신형"},
	{[3]ganzhi.Branch{ganzhi.BranchChuk, ganzhi.BranchSul, ganzhi.BranchMi}, "지세지형", "축술미형"},
}

// 子卯 is the sole pair punishment.
var punishmentPair = struct {
	a, b    ganzhi.Branch
	subtype string
	korean  string
}{ganzhi.BranchJa, ganzhi.BranchMyo, "무례지형", "자묘형"}

// Self-punishing branches fire when the branch appears at least twice.
var selfPunishments = [4]ganzhi.Branch{
	ganzhi.BranchJin, ganzhi.BranchO, ganzhi.BranchYu, ganzhi.BranchHae,
}

const selfPunishmentSubtype = "자형"

// Package stages maps the day master's vigor at each branch through the
// twelve life-cycle stages (십이운성), from Long Life to Nurturing.
//
// Every stem has a fixed birth branch (장생지). Yang stems walk the branch
// cycle forward from it, yin stems backward; the walked distance indexes
// the fixed stage sequence.
package stages

import (
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

// Stage is one of the twelve life-cycle stages, in fixed order.
type Stage int

const (
	LongLife      Stage = iota // 장생
	Bathing                    // 목욕
	CrownBelt                  // 관대
	Establishment              // 건록
	Imperial                   // 제왕
	Decline                    // 쇠
	Illness                    // 병
	Death                      // 사
	Tomb                       // 묘
	Extinction                 // 절
	Conception                 // 태
	Nurturing                  // 양
)

// Vigor classifies a stage's strength contribution.
type Vigor string

const (
	VigorStrong  Vigor = "strong"
	VigorNeutral Vigor = "neutral"
	VigorWeak    Vigor = "weak"
)

var stageInfo = [12]struct {
	english string
	korean  string
	hanja   string
	meaning string
	vigor   Vigor
}{
	{"Long Life", "장생", "長生", "growth begins; fresh vitality", VigorStrong},
	{"Bathing", "목욕", "沐浴", "cleansing and instability after birth", VigorWeak},
	{"Crown Belt", "관대", "冠帶", "coming of age; readiness", VigorNeutral},
	{"Establishment", "건록", "建祿", "standing on one's own strength", VigorStrong},
	{"Imperial", "제왕", "帝旺", "peak vigor; full command", VigorStrong},
	{"Decline", "쇠", "衰", "strength begins to recede", VigorNeutral},
	{"Illness", "병", "病", "vitality weakened", VigorWeak},
	{"Death", "사", "死", "activity exhausted", VigorWeak},
	{"Tomb", "묘", "墓", "stored away; dormant", VigorNeutral},
	{"Extinction", "절", "絶", "the thread is cut; emptiness", VigorWeak},
	{"Conception", "태", "胎", "new stirring in the void", VigorNeutral},
	{"Nurturing", "양", "養", "quiet growth before emergence", VigorNeutral},
}

// String returns the English stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageInfo) {
		return "Invalid"
	}
	return stageInfo[s].english
}

// Korean returns the Korean label.
func (s Stage) Korean() string { return stageInfo[s].korean }

// Hanja returns the Hanja label.
func (s Stage) Hanja() string { return stageInfo[s].hanja }

// Meaning returns the short interpretation text.
func (s Stage) Meaning() string { return stageInfo[s].meaning }

// Vigor returns the strength classification.
func (s Stage) Vigor() Vigor { return stageInfo[s].vigor }

// birthBranches holds each stem's Long Life branch: one five-entry table
// per polarity, disjoint by construction.
var birthBranches = map[ganzhi.Stem]ganzhi.Branch{
	// Yang stems.
	ganzhi.StemGap:    ganzhi.BranchHae,       // 甲 → 亥
	ganzhi.StemByeong: ganzhi.BranchIn,        // 丙 → 寅
	ganzhi.StemMu:     ganzhi.BranchIn,        // 戊 → 寅
	ganzhi.StemGyeong: ganzhi.BranchSa,        // 庚 → 巳
	ganzhi.StemIm:     ganzhi.BranchSinMonkey, // 壬 → 申
	// Yin stems.
	ganzhi.StemEul:   ganzhi.BranchO,   // 乙 → 午
	ganzhi.StemJeong: ganzhi.BranchYu,  // 丁 → 酉
	ganzhi.StemGi:    ganzhi.BranchYu,  // 己 → 酉
	ganzhi.StemSin:   ganzhi.BranchJa,  // 辛 → 子
	ganzhi.StemGye:   ganzhi.BranchMyo, // 癸 → 卯
}

// At returns the day master's stage at a branch: the forward (yang) or
// backward (yin) distance from the birth branch, modulo twelve.
func At(dayMaster ganzhi.Stem, branch ganzhi.Branch) Stage {
	birth := birthBranches[dayMaster]
	var distance int
	if dayMaster.Polarity() == ganzhi.Yang {
		distance = ganzhi.Mod(int(branch)-int(birth), ganzhi.NumBranches)
	} else {
		distance = ganzhi.Mod(int(birth)-int(branch), ganzhi.NumBranches)
	}
	return Stage(distance)
}

// Reading is one pillar's stage assessment.
type Reading struct {
	Position string `json:"position"`
	Branch   string `json:"branch"`
	Stage    string `json:"stage"`
	Korean   string `json:"korean"`
	Hanja    string `json:"hanja"`
	Meaning  string `json:"meaning"`
	Vigor    Vigor  `json:"vigor"`
}

var positionNames = [4]string{"year", "month", "day", "hour"}

// Analyze maps the day master through all four pillar branches.
func Analyze(fp pillars.FourPillars) []Reading {
	dm := fp.DayMaster()
	out := make([]Reading, 0, 4)
	for i, p := range fp.Pillars() {
		st := At(dm, p.Branch)
		out = append(out, Reading{
			Position: positionNames[i],
			Branch:   p.Branch.String(),
			Stage:    st.String(),
			Korean:   st.Korean(),
			Hanja:    st.Hanja(),
			Meaning:  st.Meaning(),
			Vigor:    st.Vigor(),
		})
	}
	return out
}

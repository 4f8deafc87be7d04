// Package tengods classifies every stem of a chart against the day master
// using the ten-god system: the cross product of the five-element
// generation/control relation and polarity match.
package tengods

import (
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

// God is one of the ten relational categories, plus the distinguished
// DayMaster marker for the day pillar's own visible stem.
type God int

const (
	Friend           God = iota // 비견: same element, same polarity
	RobWealth                   // 겁재: same element, opposite polarity
	EatingGod                   // 식신: day master generates, same polarity
	HurtingOfficer              // 상관: day master generates, opposite polarity
	IndirectWealth              // 편재: day master controls, same polarity
	DirectWealth                // 정재: day master controls, opposite polarity
	SevenKillings               // 편관: controls day master, same polarity
	DirectOfficer               // 정관: controls day master, opposite polarity
	IndirectResource            // 편인: generates day master, same polarity
	DirectResource              // 정인: generates day master, opposite polarity
	DayMaster                   // 일간: the day pillar's visible stem itself
)

var godNames = [...]struct {
	english string
	korean  string
	hanja   string
}{
	{"Friend", "비견", "比肩"},
	{"Rob Wealth", "겁재", "劫財"},
	{"Eating God", "식신", "食神"},
	{"Hurting Officer", "상관", "傷官"},
	{"Indirect Wealth", "편재", "偏財"},
	{"Direct Wealth", "정재", "正財"},
	{"Seven Killings", "편관", "偏官"},
	{"Direct Officer", "정관", "正官"},
	{"Indirect Resource", "편인", "偏印"},
	{"Direct Resource", "정인", "正印"},
	{"Day Master", "일간", "日干"},
}

// String returns the English name.
func (g God) String() string {
	if g < 0 || int(g) >= len(godNames) {
		return "Invalid"
	}
	return godNames[g].english
}

// Korean returns the Korean label.
func (g God) Korean() string {
	if g < 0 || int(g) >= len(godNames) {
		return ""
	}
	return godNames[g].korean
}

// Hanja returns the Hanja label.
func (g God) Hanja() string {
	if g < 0 || int(g) >= len(godNames) {
		return ""
	}
	return godNames[g].hanja
}

// Classify returns the ten-god category of stem s relative to the day
// master d. Identical stems classify as Friend; the distinguished
// DayMaster category is positional and assigned only by Analyze.
func Classify(d, s ganzhi.Stem) God {
	de, se := d.Element(), s.Element()
	samePolarity := d.Polarity() == s.Polarity()

	switch {
	case de == se:
		return pick(samePolarity, Friend, RobWealth)
	case de.Generates() == se:
		return pick(samePolarity, EatingGod, HurtingOfficer)
	case de.Controls() == se:
		return pick(samePolarity, IndirectWealth, DirectWealth)
	case se.Controls() == de:
		return pick(samePolarity, SevenKillings, DirectOfficer)
	default: // se.Generates() == de
		return pick(samePolarity, IndirectResource, DirectResource)
	}
}

func pick(same bool, a, b God) God {
	if same {
		return a
	}
	return b
}

// Reading is the classification of one stem position in the chart.
type Reading struct {
	// Position names the pillar: "year", "month", "day" or "hour".
	Position string `json:"position"`

	// Stem is the classified stem.
	Stem string `json:"stem"`

	// Hidden marks hidden-stem positions inside the pillar's branch.
	Hidden bool `json:"hidden"`

	// God is the category key (English name).
	God string `json:"god"`

	// Korean is the category's Korean label.
	Korean string `json:"korean"`

	// Element is the stem's element.
	Element string `json:"element"`
}

// Analysis aggregates ten-god readings over a whole chart: the four
// visible stems and every hidden stem, up to eight stem positions total
// per pillar group.
type Analysis struct {
	// DayMaster is the day pillar's stem symbol.
	DayMaster string `json:"day_master"`

	// DayMasterElement is its element.
	DayMasterElement string `json:"day_master_element"`

	// Readings covers every stem position in pillar order, visible stem
	// first, then that branch's hidden stems.
	Readings []Reading `json:"readings"`

	// CountsByGod tallies occurrences per category (English keys). The
	// day-master position itself counts under "Day Master".
	CountsByGod map[string]int `json:"counts_by_god"`

	// CountsByElement tallies stem occurrences per element across all
	// positions, the day master included.
	CountsByElement map[string]int `json:"counts_by_element"`
}

var positionNames = [4]string{"year", "month", "day", "hour"}

// Analyze classifies every stem position of the chart against its day
// master.
func Analyze(fp pillars.FourPillars) Analysis {
	dm := fp.DayMaster()
	a := Analysis{
		DayMaster:        dm.String(),
		DayMasterElement: dm.Element().String(),
		CountsByGod:      make(map[string]int),
		CountsByElement:  make(map[string]int),
	}

	for i, p := range fp.Pillars() {
		pos := positionNames[i]

		god := Classify(dm, p.Stem)
		if pos == "day" {
			god = DayMaster
		}
		a.add(pos, p.Stem, false, god)

		for _, hs := range p.Branch.HiddenStems() {
			a.add(pos, hs, true, Classify(dm, hs))
		}
	}
	return a
}

func (a *Analysis) add(pos string, s ganzhi.Stem, hidden bool, god God) {
	a.Readings = append(a.Readings, Reading{
		Position: pos,
		Stem:     s.String(),
		Hidden:   hidden,
		God:      god.String(),
		Korean:   god.Korean(),
		Element:  s.Element().String(),
	})
	a.CountsByGod[god.String()]++
	a.CountsByElement[s.Element().String()]++
}

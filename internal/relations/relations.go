package relations

import (
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

// Type tags a relation category.
type Type string

const (
	TypeStemCombination        Type = "stem_combination"
	TypeBranchClash            Type = "branch_clash"
	TypeSixCombination         Type = "six_combination"
	TypeTripleCombination      Type = "triple_combination"
	TypeDirectionalCombination Type = "directional_combination"
	TypePunishment             Type = "punishment"
	TypeHarm                   Type = "harm"
	TypeDestruction            Type = "destruction"
)

// Relation is one detected relation. Only the fields relevant to its type
// are populated: Element for combinations, Subtype for punishments.
type Relation struct {
	Type Type `json:"type"`

	// Participants are the stem or branch symbols involved.
	Participants []string `json:"participants"`

	// Positions are the pillar positions holding the participants, in
	// year/month/day/hour order.
	Positions []string `json:"positions"`

	// Label is the human reading, e.g. "인신충".
	Label string `json:"label"`

	// Element is the transformation result of combination types.
	Element string `json:"element,omitempty"`

	// Subtype distinguishes punishment kinds, e.g. "무은지형".
	Subtype string `json:"subtype,omitempty"`
}

// Analysis aggregates every detector's findings. All is the flattened
// union; its length always equals the sum of the per-type lists.
type Analysis struct {
	StemCombinations        []Relation `json:"stem_combinations"`
	BranchClashes           []Relation `json:"branch_clashes"`
	SixCombinations         []Relation `json:"six_combinations"`
	TripleCombinations      []Relation `json:"triple_combinations"`
	DirectionalCombinations []Relation `json:"directional_combinations"`
	Punishments             []Relation `json:"punishments"`
	Harms                   []Relation `json:"harms"`
	Destructions            []Relation `json:"destructions"`

	All []Relation `json:"all"`
}

var positionNames = [4]string{"year", "month", "day", "hour"}

// Analyze runs all seven detectors over the chart's pillars.
func Analyze(fp pillars.FourPillars) Analysis {
	ps := fp.Pillars()

	var stems [4]ganzhi.Stem
	var branches [4]ganzhi.Branch
	for i, p := range ps {
		stems[i] = p.Stem
		branches[i] = p.Branch
	}

	a := Analysis{
		StemCombinations:        detectStemCombos(stems),
		BranchClashes:           detectPairs(branches, clashes[:], TypeBranchClash),
		SixCombinations:         detectPairs(branches, sixCombos[:], TypeSixCombination),
		TripleCombinations:      detectTriples(branches, tripleCombos[:], TypeTripleCombination),
		DirectionalCombinations: detectTriples(branches, directionalCombos[:], TypeDirectionalCombination),
		Punishments:             detectPunishments(branches),
		Harms:                   detectPairs(branches, harms[:], TypeHarm),
		Destructions:            detectPairs(branches, destructions[:], TypeDestruction),
	}

	for _, list := range [][]Relation{
		a.StemCombinations, a.BranchClashes, a.SixCombinations,
		a.TripleCombinations, a.DirectionalCombinations,
		a.Punishments, a.Harms, a.Destructions,
	} {
		a.All = append(a.All, list...)
	}
	return a
}

// detectStemCombos fires once per unordered pillar pair whose visible
// stems match a combination entry.
func detectStemCombos(stems [4]ganzhi.Stem) []Relation {
	out := []Relation{}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for _, c := range stemCombos {
				if matchPair(int(stems[i]), int(stems[j]), int(c.a), int(c.b)) {
					out = append(out, Relation{
						Type:         TypeStemCombination,
						Participants: []string{stems[i].String(), stems[j].String()},
						Positions:    []string{positionNames[i], positionNames[j]},
						Label:        c.korean,
						Element:      c.element.String(),
					})
				}
			}
		}
	}
	return out
}

// detectPairs fires once per unordered pillar pair whose branches match a
// table entry. Combination tables carry an element; clash/harm/destruction
// entries do not.
func detectPairs(branches [4]ganzhi.Branch, table []branchPair, typ Type) []Relation {
	withElement := typ == TypeSixCombination
	out := []Relation{}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for _, e := range table {
				if !matchPair(int(branches[i]), int(branches[j]), int(e.a), int(e.b)) {
					continue
				}
				r := Relation{
					Type:         typ,
					Participants: []string{branches[i].String(), branches[j].String()},
					Positions:    []string{positionNames[i], positionNames[j]},
					Label:        e.korean,
				}
				if withElement {
					r.Element = e.element.String()
				}
				out = append(out, r)
			}
		}
	}
	return out
}

// detectTriples fires once per table entry whose three branch values are
// all present, listing every position that holds one of them. A complete
// 3-of-3 match is required; partial pairs never fire.
func detectTriples(branches [4]ganzhi.Branch, table []branchTriple, typ Type) []Relation {
	out := []Relation{}
	for _, e := range table {
		positions := setPositions(branches, e.members[:])
		if positions == nil {
			continue
		}
		out = append(out, Relation{
			Type:         typ,
			Participants: []string{e.members[0].String(), e.members[1].String(), e.members[2].String()},
			Positions:    positions,
			Label:        e.korean,
			Element:      e.element.String(),
		})
	}
	return out
}

// detectPunishments covers the three punishment shapes: the two triples,
// the 子卯 pair, and self-punishments (a branch present at least twice).
// Each fires once per maximal qualifying set, not per sub-pair.
func detectPunishments(branches [4]ganzhi.Branch) []Relation {
	out := []Relation{}

	for _, e := range punishmentTriples {
		positions := setPositions(branches, e.members[:])
		if positions == nil {
			continue
		}
		out = append(out, Relation{
			Type:         TypePunishment,
			Participants: []string{e.members[0].String(), e.members[1].String(), e.members[2].String()},
			Positions:    positions,
			Label:        e.korean,
			Subtype:      e.subtype,
		})
	}

	if positions := setPositions(branches, []ganzhi.Branch{punishmentPair.a, punishmentPair.b}); positions != nil {
		out = append(out, Relation{
			Type:         TypePunishment,
			Participants: []string{punishmentPair.a.String(), punishmentPair.b.String()},
			Positions:    positions,
			Label:        punishmentPair.korean,
			Subtype:      punishmentPair.subtype,
		})
	}

	for _, b := range selfPunishments {
		var positions []string
		for i, have := range branches {
			if have == b {
				positions = append(positions, positionNames[i])
			}
		}
		if len(positions) < 2 {
			continue
		}
		out = append(out, Relation{
			Type:         TypePunishment,
			Participants: []string{b.String(), b.String()},
			Positions:    positions,
			Label:        b.Korean() + b.Korean() + "형",
			Subtype:      selfPunishmentSubtype,
		})
	}
	return out
}

// matchPair reports whether {x, y} equals {a, b} as an unordered pair.
func matchPair(x, y, a, b int) bool {
	return (x == a && y == b) || (x == b && y == a)
}

// setPositions returns the positions holding any member when every member
// is present, nil otherwise.
func setPositions(branches [4]ganzhi.Branch, members []ganzhi.Branch) []string {
	for _, m := range members {
		found := false
		for _, b := range branches {
			if b == m {
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	var positions []string
	for i, b := range branches {
		for _, m := range members {
			if b == m {
				positions = append(positions, positionNames[i])
				break
			}
		}
	}
	return positions
}

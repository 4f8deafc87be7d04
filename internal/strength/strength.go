// Package strength scores the day master's vigor from three classical
// factors: seasonal command (득령), branch rooting (득지) and stem allies
// (득세). The weighted sum is discretized into five named bands.
package strength

import (
	"fmt"

	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

// Level is a discretized strength band, ordered weakest to strongest.
type Level int

const (
	ExtremelyWeak Level = iota
	Weak
	Balanced
	Strong
	ExtremelyStrong
)

var levelNames = [...]struct {
	english string
	korean  string
}{
	{"Extremely Weak", "극약"},
	{"Weak", "신약"},
	{"Balanced", "중화"},
	{"Strong", "신강"},
	{"Extremely Strong", "극강"},
}

// String returns the English band name.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "Invalid"
	}
	return levelNames[l].english
}

// Korean returns the Korean band name.
func (l Level) Korean() string {
	if l < 0 || int(l) >= len(levelNames) {
		return ""
	}
	return levelNames[l].korean
}

// Scoring weights and thresholds. Seasonal command dominates, as the month
// branch sets the climate the day master lives in.
const (
	seasonalWeight = 50.0
	rootingWeight  = 15.0
	allyWeight     = 7.0
)

// levelFor selects the band by fixed score thresholds.
func levelFor(score float64) Level {
	switch {
	case score >= 85:
		return ExtremelyStrong
	case score >= 65:
		return Strong
	case score >= 45:
		return Balanced
	case score >= 25:
		return Weak
	default:
		return ExtremelyWeak
	}
}

// SeasonalCommand describes the month-branch support factor.
type SeasonalCommand struct {
	// MonthBranch and its element.
	MonthBranch string `json:"month_branch"`
	Element     string `json:"element"`

	// Multiplier is the fixed support factor in [0, 1].
	Multiplier float64 `json:"multiplier"`

	// Supported is true when the day master is in command of the season
	// (multiplier at least 0.8).
	Supported bool `json:"supported"`
}

// Rooting describes branch support from the day and hour pillars.
type Rooting struct {
	Count    int      `json:"count"`
	Branches []string `json:"branches"`
}

// Allies describes visible-stem support from the year, month and hour
// pillars.
type Allies struct {
	Count int      `json:"count"`
	Stems []string `json:"stems"`
}

// Result is the full strength assessment.
type Result struct {
	DayMaster string  `json:"day_master"`
	Level     string  `json:"level"`
	Korean    string  `json:"korean"`
	Score     float64 `json:"score"`

	Seasonal SeasonalCommand `json:"seasonal_command"`
	Rooting  Rooting         `json:"rooting"`
	Allies   Allies          `json:"allies"`

	Description string `json:"description"`
}

// LevelValue returns the typed band for programmatic consumers.
func (r Result) LevelValue() Level {
	for i := range levelNames {
		if levelNames[i].english == r.Level {
			return Level(i)
		}
	}
	return Balanced
}

// Score assesses the day master's strength in its chart.
func Score(fp pillars.FourPillars) Result {
	dm := fp.DayMaster()
	dme := dm.Element()

	seasonal := seasonalCommand(dme, fp.Month.Branch)
	rooting := rooted(dme, fp)
	allies := alliedStems(dme, fp)

	score := seasonal.Multiplier*seasonalWeight +
		float64(rooting.Count)*rootingWeight +
		float64(allies.Count)*allyWeight
	level := levelFor(score)

	return Result{
		DayMaster: dm.String(),
		Level:     level.String(),
		Korean:    level.Korean(),
		Score:     score,
		Seasonal:  seasonal,
		Rooting:   rooting,
		Allies:    allies,
		Description: fmt.Sprintf("Day master %s (%s %s) is %s: seasonal command %.1f, rooting %d, allies %d.",
			dm.String(), dm.Polarity().String(), dme.String(), level.String(),
			seasonal.Multiplier, rooting.Count, allies.Count),
	}
}

// seasonalCommand looks up the fixed month-branch support multiplier:
// full command when the month matches or generates the day master,
// fading through drain (day master generates the month) and control
// relations down to zero when the month controls the day master.
func seasonalCommand(dme ganzhi.Element, month ganzhi.Branch) SeasonalCommand {
	me := month.Element()

	var mult float64
	switch {
	case me == dme:
		mult = 1.0
	case me.Generates() == dme:
		mult = 0.8
	case dme.Generates() == me:
		mult = 0.4
	case dme.Controls() == me:
		mult = 0.2
	default: // me.Controls() == dme
		mult = 0.0
	}

	return SeasonalCommand{
		MonthBranch: month.String(),
		Element:     me.String(),
		Multiplier:  mult,
		Supported:   mult >= 0.8,
	}
}

// rooted counts day and hour branches whose own element or any hidden-stem
// element matches the day master's.
func rooted(dme ganzhi.Element, fp pillars.FourPillars) Rooting {
	r := Rooting{Branches: []string{}}
	for _, b := range []ganzhi.Branch{fp.Day.Branch, fp.Hour.Branch} {
		if branchSupports(dme, b) {
			r.Count++
			r.Branches = append(r.Branches, b.String())
		}
	}
	return r
}

func branchSupports(dme ganzhi.Element, b ganzhi.Branch) bool {
	if b.Element() == dme {
		return true
	}
	for _, hs := range b.HiddenStems() {
		if hs.Element() == dme {
			return true
		}
	}
	return false
}

// alliedStems counts year, month and hour visible stems sharing the day
// master's element.
func alliedStems(dme ganzhi.Element, fp pillars.FourPillars) Allies {
	a := Allies{Stems: []string{}}
	for _, s := range []ganzhi.Stem{fp.Year.Stem, fp.Month.Stem, fp.Hour.Stem} {
		if s.Element() == dme {
			a.Count++
			a.Stems = append(a.Stems, s.String())
		}
	}
	return a
}

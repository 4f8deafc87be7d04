// Package yongshen resolves the useful element (용신): the element that
// best corrects the chart's imbalance, with a reasoned trail.
//
// Near-balanced charts in a climatically extreme month use the seasonal
// adjustment method (조후); everything else uses support/restrain (부억):
// a weak day master wants what feeds it, a strong one wants what drains
// or checks it, preferring whichever is least represented.
package yongshen

import (
	"fmt"

	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
	"github.com/roach88/saju/internal/strength"
	"github.com/roach88/saju/internal/tengods"
)

// Method names the resolution strategy used.
type Method string

const (
	// MethodSupport strengthens a weak day master.
	MethodSupport Method = "support"

	// MethodRestrain drains or checks a strong day master.
	MethodRestrain Method = "restrain"

	// MethodSeasonal corrects climatic excess of the birth month.
	MethodSeasonal Method = "seasonal"
)

// Role flags an element's standing relative to the chosen useful element.
type Role string

const (
	RoleUseful      Role = "useful"
	RoleUnfavorable Role = "unfavorable"
	RoleNeutral     Role = "neutral"
)

// Result is the resolved useful element with its full reasoning trail.
type Result struct {
	// Primary is the useful element; Secondary, when present, supports it.
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`

	// Method names the strategy that selected the primary.
	Method Method `json:"method"`

	// Reasoning is the ordered, never-empty list of derivation steps.
	Reasoning []string `json:"reasoning"`

	// Elements flags every element useful, unfavorable or neutral.
	Elements map[string]Role `json:"elements"`
}

// Climatic month groups for the seasonal method.
var (
	coldMonths = map[ganzhi.Branch]bool{
		ganzhi.BranchHae: true, ganzhi.BranchJa: true, ganzhi.BranchChuk: true,
	}
	hotMonths = map[ganzhi.Branch]bool{
		ganzhi.BranchSa: true, ganzhi.BranchO: true, ganzhi.BranchMi: true,
	}
)

// Resolve selects the useful element for a chart given its strength
// assessment and ten-god aggregation.
func Resolve(fp pillars.FourPillars, str strength.Result, tg tengods.Analysis) Result {
	dm := fp.DayMaster()
	dme := dm.Element()
	level := str.LevelValue()
	month := fp.Month.Branch

	var (
		primary, secondary ganzhi.Element
		method             Method
		reasoning          []string
	)

	reasoning = append(reasoning, fmt.Sprintf(
		"Day master %s is %s %s; strength level is %s (score %.1f).",
		dm.String(), dm.Polarity().String(), dme.String(), str.Level, str.Score))

	switch {
	case level == strength.Balanced && coldMonths[month]:
		method = MethodSeasonal
		primary, secondary = ganzhi.Fire, ganzhi.Wood
		reasoning = append(reasoning,
			fmt.Sprintf("The chart is balanced but born in the cold %s month: seasonal adjustment applies.", month.String()),
			"Fire warms the chart; Wood feeds the fire.")

	case level == strength.Balanced && hotMonths[month]:
		method = MethodSeasonal
		primary, secondary = ganzhi.Water, ganzhi.Metal
		reasoning = append(reasoning,
			fmt.Sprintf("The chart is balanced but born in the hot %s month: seasonal adjustment applies.", month.String()),
			"Water cools the chart; Metal feeds the water.")

	case level <= strength.Balanced:
		// Weak side (a balanced chart in a mild month also leans on
		// support rather than drains).
		method = MethodSupport
		primary, secondary = dme.GeneratedBy(), dme
		reasoning = append(reasoning,
			fmt.Sprintf("The day master needs support: %s generates %s, and %s itself reinforces it.",
				primary.String(), dme.String(), dme.String()))

	default:
		method = MethodRestrain
		output := dme.Generates()
		officer := dme.ControlledBy()
		counts := tg.CountsByElement

		// Prefer the least represented corrective.
		if counts[output.String()] <= counts[officer.String()] {
			primary, secondary = output, officer
		} else {
			primary, secondary = officer, output
		}
		reasoning = append(reasoning,
			fmt.Sprintf("The day master is strong: %s drains it and %s checks it.",
				output.String(), officer.String()),
			fmt.Sprintf("%s is the least represented corrective (%d vs %d occurrences), so it leads.",
				primary.String(), counts[primary.String()], counts[secondary.String()]))
	}

	elements := elementRoles(primary, secondary)
	reasoning = append(reasoning, fmt.Sprintf(
		"Useful elements: %s (primary), %s (secondary); %s works against them.",
		primary.String(), secondary.String(), primary.ControlledBy().String()))

	return Result{
		Primary:   primary.String(),
		Secondary: secondary.String(),
		Method:    method,
		Reasoning: reasoning,
		Elements:  elements,
	}
}

// elementRoles flags all five elements. The element controlling the
// primary is the principal unfavorable (기신); the one feeding that
// controller is unfavorable as well; anything else outside the useful
// pair stays neutral.
func elementRoles(primary, secondary ganzhi.Element) map[string]Role {
	roles := make(map[string]Role, ganzhi.NumElements)
	for e := ganzhi.Wood; e <= ganzhi.Water; e++ {
		roles[e.String()] = RoleNeutral
	}
	roles[primary.String()] = RoleUseful
	roles[secondary.String()] = RoleUseful

	enemy := primary.ControlledBy()
	if roles[enemy.String()] == RoleNeutral {
		roles[enemy.String()] = RoleUnfavorable
	}
	feeder := enemy.GeneratedBy()
	if roles[feeder.String()] == RoleNeutral {
		roles[feeder.String()] = RoleUnfavorable
	}
	return roles
}

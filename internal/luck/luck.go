// Package luck projects luck pillars forward from a resolved chart:
// decade (대운) sequences anchored on the month pillar, and direct
// yearly, monthly and daily cycle lookups.
package luck

import (
	"fmt"
	"math"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
	"github.com/roach88/saju/internal/solarterm"
)

// Gender selects the decade-luck direction together with the year stem.
type Gender int

const (
	Male Gender = iota
	Female
)

// String returns the lowercase English name.
func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

// ParseGender accepts the lowercase English names.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return Male, fmt.Errorf("unknown gender %q (want male or female)", s)
}

// Direction is the walk through the sexagenary cycle for decade pillars.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DefaultBands is the number of decade pillars projected when the caller
// does not ask for a specific count.
const DefaultBands = 8

// BandYears is the span of one decade pillar.
const BandYears = 10

// daysPerYear is the classical conversion rate between term-boundary
// distance and luck onset: three days of solar travel stand for one year
// of life.
const daysPerYear = 3.0

// MajorPillar is one decade band. Never mutated after construction.
type MajorPillar struct {
	// Sequence is the 1-based band number.
	Sequence int `json:"sequence"`

	Pillar ganzhi.Pillar `json:"pillar"`

	// StartAge and EndAge bound the band, inclusive.
	StartAge int `json:"start_age"`
	EndAge   int `json:"end_age"`
}

// Major is the full decade-luck projection.
type Major struct {
	Gender    string `json:"gender"`
	Direction string `json:"direction"`

	// StartAge is the onset age of the first band, in whole years after
	// rounding.
	StartAge int `json:"start_age"`

	// StartMonths is the onset in total months before year rounding,
	// kept for provenance.
	StartMonths int `json:"start_months"`

	Pillars []MajorPillar `json:"pillars"`
}

// Projector computes decade luck, which needs term boundaries and hence
// an astronomical adapter. The direct lookups below are free functions.
type Projector struct {
	locator *solarterm.Locator
}

// NewProjector creates a Projector over the given adapter.
func NewProjector(adapter astro.Adapter) *Projector {
	return &Projector{locator: solarterm.NewLocator(adapter)}
}

// Major projects count decade pillars from a resolved chart. A count of
// zero or less means DefaultBands.
//
// Direction is forward when year-stem polarity and gender agree (yang
// year with male, yin year with female), backward otherwise. The onset
// age converts the distance to the nearest term boundary at the classical
// three-days-per-year rate: forward charts measure to the next boundary,
// backward charts since the previous one. A fractional remainder of six
// months or more rounds the onset up to the next whole year.
func (p *Projector) Major(fp pillars.FourPillars, gender Gender, count int) (Major, error) {
	if count <= 0 {
		count = DefaultBands
	}

	pos, err := p.locator.At(fp.AdjustedTime)
	if err != nil {
		return Major{}, err
	}

	yang := fp.Year.Stem.Polarity() == ganzhi.Yang
	direction := Backward
	if yang == (gender == Male) {
		direction = Forward
	}

	var days float64
	if direction == Forward {
		days = pos.NextAt.Sub(fp.AdjustedTime).Hours() / 24
	} else {
		days = fp.AdjustedTime.Sub(pos.CurrentAt).Hours() / 24
	}

	totalMonths := int(math.Round(days / daysPerYear * 12))
	startAge := totalMonths / 12
	if totalMonths%12 >= 6 {
		startAge++
	}

	step := 1
	if direction == Backward {
		step = -1
	}
	base := fp.Month.Index()

	out := make([]MajorPillar, 0, count)
	for i := 1; i <= count; i++ {
		start := startAge + BandYears*(i-1)
		out = append(out, MajorPillar{
			Sequence: i,
			Pillar:   ganzhi.PillarFromIndex(ganzhi.Mod(base+step*i, ganzhi.CycleLen)),
			StartAge: start,
			EndAge:   start + BandYears - 1,
		})
	}

	return Major{
		Gender:      gender.String(),
		Direction:   direction.String(),
		StartAge:    startAge,
		StartMonths: totalMonths,
		Pillars:     out,
	}, nil
}

// YearEntry is one year of yearly luck.
type YearEntry struct {
	Year int `json:"year"`

	// Age counts inclusively from the birth year (Korean convention).
	Age int `json:"age"`

	Pillar ganzhi.Pillar `json:"pillar"`
}

// YearPillar returns the sexagenary pillar of a calendar year.
func YearPillar(year int) ganzhi.Pillar {
	return ganzhi.PillarFromIndex(ganzhi.YearPillarIndex(year))
}

// Yearly lists yearly luck over [from, to]. An empty range yields nil.
func Yearly(birthYear, from, to int) []YearEntry {
	if to < from {
		return nil
	}
	out := make([]YearEntry, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, YearEntry{
			Year:   y,
			Age:    y - birthYear + 1,
			Pillar: YearPillar(y),
		})
	}
	return out
}

// MonthPillar returns the pillar of the nth month of a cycle year, where
// ordinal 1 is the first month (寅). The month stem runs from the five
// tigers start of the year stem; this is a plain cycle projection with no
// term-boundary correction.
func MonthPillar(year, ordinal int) ganzhi.Pillar {
	yearStem := int(YearPillar(year).Stem)
	stem := ganzhi.Mod(ganzhi.Mod(yearStem, 5)*2+2+ordinal-1, 10)
	branch := ganzhi.Mod(2+ordinal-1, 12)
	return ganzhi.Pillar{Stem: ganzhi.Stem(stem), Branch: ganzhi.Branch(branch)}
}

// DayPillar returns the pillar of a civil date, by Julian day number.
func DayPillar(year, month, day int) ganzhi.Pillar {
	return ganzhi.PillarFromIndex(ganzhi.DayPillarIndex(ganzhi.JDN(year, month, day)))
}

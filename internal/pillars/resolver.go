package pillars

import (
	"errors"
	"math"
	"time"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/solarterm"
)

// ErrInvalidPreset reports an unknown or malformed preset configuration.
var ErrInvalidPreset = errors.New("invalid preset")

// FourPillars is the fully resolved chart backbone: the four pillars plus
// the provenance needed to audit boundary decisions.
type FourPillars struct {
	Year  ganzhi.Pillar `json:"year"`
	Month ganzhi.Pillar `json:"month"`
	Day   ganzhi.Pillar `json:"day"`
	Hour  ganzhi.Pillar `json:"hour"`

	// SolarYear is the effective cycle year after the Li Chun boundary.
	SolarYear int `json:"solar_year"`

	// SunLongitude is the apparent solar longitude at the adjusted instant.
	SunLongitude float64 `json:"sun_longitude"`

	// EffectiveDate is the civil date the day pillar was computed from,
	// after the day-boundary policy.
	EffectiveDate time.Time `json:"effective_date"`

	// AdjustedTime is the instant after mean-solar-time correction; the
	// hour pillar derives from it.
	AdjustedTime time.Time `json:"adjusted_time"`

	// Preset names the configuration that produced this resolution.
	Preset string `json:"preset"`
}

// DayMaster returns the day pillar's stem, the reference point for all
// relational analysis.
func (fp FourPillars) DayMaster() ganzhi.Stem {
	return fp.Day.Stem
}

// Pillars returns the four pillars in year, month, day, hour order.
func (fp FourPillars) Pillars() [4]ganzhi.Pillar {
	return [4]ganzhi.Pillar{fp.Year, fp.Month, fp.Day, fp.Hour}
}

// Resolver computes four pillars from instants using a date adapter.
type Resolver struct {
	adapter astro.Adapter
	locator *solarterm.Locator
}

// NewResolver creates a Resolver over the given adapter.
func NewResolver(adapter astro.Adapter) *Resolver {
	return &Resolver{
		adapter: adapter,
		locator: solarterm.NewLocator(adapter),
	}
}

// Resolve computes the four pillars of a zone-aware local instant.
// longitude, when non-nil and enabled by the preset, applies the
// mean-solar-time correction; nil leaves zone time untouched.
func (r *Resolver) Resolve(local time.Time, longitude *float64, preset Preset) (FourPillars, error) {
	if err := preset.Validate(); err != nil {
		return FourPillars{}, err
	}

	adjusted := local
	if preset.LongitudeCorrection && longitude != nil {
		adjusted = local.Add(meanSolarOffset(local, *longitude))
	}

	lon, err := r.adapter.SolarLongitude(adjusted)
	if err != nil {
		return FourPillars{}, err
	}

	// Year pillar: the cycle year flips at Li Chun, not January 1.
	solarYear, err := r.effectiveSolarYear(adjusted)
	if err != nil {
		return FourPillars{}, err
	}
	yearPillar := ganzhi.PillarFromIndex(ganzhi.YearPillarIndex(solarYear))

	// Month pillar: branch from the principal-term month the sun is in
	// (month 0 opens at Spring Begins, 315°, branch 寅), stem from the
	// year stem via the five-tigers rule.
	monthOrd := monthOrdinal(lon)
	monthBranch := ganzhi.BranchFromIndex(2 + monthOrd)
	monthStem := ganzhi.StemFromIndex(fiveTigersStart(yearPillar.Stem) + monthOrd)
	monthPillar := ganzhi.Pillar{Stem: monthStem, Branch: monthBranch}

	// Day pillar: from the effective civil day under the boundary policy.
	effective := effectiveDay(adjusted, preset.DayBoundary)
	y, m, d := effective.Date()
	dayPillar := ganzhi.PillarFromIndex(ganzhi.DayPillarIndex(ganzhi.JDN(y, int(m), d)))

	// Hour pillar: twelve two-hour blocks starting at 23:00, stem from
	// the day stem via the five-rats rule.
	hourOrd := hourOrdinal(adjusted.Hour())
	hourBranch := ganzhi.BranchFromIndex(hourOrd)
	hourStem := ganzhi.StemFromIndex(fiveRatsStart(dayPillar.Stem) + hourOrd)
	hourPillar := ganzhi.Pillar{Stem: hourStem, Branch: hourBranch}

	return FourPillars{
		Year:          yearPillar,
		Month:         monthPillar,
		Day:           dayPillar,
		Hour:          hourPillar,
		SolarYear:     solarYear,
		SunLongitude:  lon,
		EffectiveDate: time.Date(y, m, d, 0, 0, 0, 0, adjusted.Location()),
		AdjustedTime:  adjusted,
		Preset:        preset.Name,
	}, nil
}

// effectiveSolarYear returns the cycle year of an instant: the calendar
// year, stepped back by one before that year's Li Chun crossing.
func (r *Resolver) effectiveSolarYear(t time.Time) (int, error) {
	year := t.Year()
	spring, _ := solarterm.ByKey("spring_begins")
	liChun, err := r.locator.TermInstant(year, spring)
	if err != nil {
		return 0, err
	}
	if t.Before(liChun) {
		return year - 1, nil
	}
	return year, nil
}

// meanSolarOffset is the difference between true local mean solar time and
// zone standard time: four minutes of time per degree of longitude away
// from the zone's standard meridian. The equation-of-time term is omitted,
// following the common manse-ryeok convention.
func meanSolarOffset(t time.Time, longitude float64) time.Duration {
	_, zoneSeconds := t.Zone()
	meridian := math.Round(float64(zoneSeconds)/3600) * 15
	minutes := 4 * (longitude - meridian)
	return time.Duration(minutes * float64(time.Minute))
}

// monthOrdinal maps a solar longitude to the pillar month, 0 = the month
// opened by Spring Begins (315°).
func monthOrdinal(lon float64) int {
	off := lon - 315
	for off < 0 {
		off += 360
	}
	return ganzhi.Mod(int(off/30), 12)
}

// hourOrdinal maps a civil hour to the branch index of its two-hour block;
// block 0 (子) runs 23:00–00:59.
func hourOrdinal(hour int) int {
	return ganzhi.Mod((hour+1)/2, 12)
}

// effectiveDay applies the day-boundary policy: under the zi-hour policy
// an instant at or after 23:00 belongs to the next civil day.
func effectiveDay(t time.Time, boundary DayBoundary) time.Time {
	if boundary == BoundaryZiHour && t.Hour() == 23 {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// fiveTigersStart gives the month stem of the first pillar month (寅) for
// a year stem: 甲己→丙, 乙庚→戊, 丙辛→庚, 丁壬→壬, 戊癸→甲.
func fiveTigersStart(yearStem ganzhi.Stem) int {
	return ganzhi.Mod(ganzhi.Mod(int(yearStem), 5)*2+2, ganzhi.NumStems)
}

// fiveRatsStart gives the hour stem of the 子 block for a day stem:
// 甲己→甲, 乙庚→丙, 丙辛→戊, 丁壬→庚, 戊癸→壬.
func fiveRatsStart(dayStem ganzhi.Stem) int {
	return ganzhi.Mod(ganzhi.Mod(int(dayStem), 5)*2, ganzhi.NumStems)
}

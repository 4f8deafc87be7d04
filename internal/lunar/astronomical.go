package lunar

import (
	"fmt"
	"math"
	"time"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/solarterm"
)

// meanSynodicDays is the mean length of a lunation.
const meanSynodicDays = 29.530588

// relativeDailyMotion is how fast the moon gains ecliptic longitude on the
// sun, degrees per day. Seeds the conjunction iteration.
const relativeDailyMotion = 360.0 / meanSynodicDays

// Astronomical derives lunar dates from conjunction instants and solar
// terms. It is a pure computation over the adapter; no tables.
type Astronomical struct {
	adapter astro.Adapter
	locator *solarterm.Locator
	zone    *time.Location
}

// NewAstronomical creates an astronomical provider. A nil zone defaults to
// UTC+9 (Korean civil days).
func NewAstronomical(adapter astro.Adapter, zone *time.Location) *Astronomical {
	if zone == nil {
		zone = time.FixedZone("UTC+9", 9*3600)
	}
	return &Astronomical{
		adapter: adapter,
		locator: solarterm.NewLocator(adapter),
		zone:    zone,
	}
}

// FromSolar implements Provider.
//
// Month numbering follows the classical rule: anchor at the December
// solstice on or before the date; the lunar month containing that solstice
// is month 11 of the anchor year. When thirteen months fit between
// successive month-11 starts, the first of them without a major solar term
// is the leap month and repeats its predecessor's number.
func (a *Astronomical) FromSolar(year, month, day int) (Date, error) {
	// End of the civil day: a conjunction later the same day still opens
	// the month on this date.
	dayEnd := time.Date(year, time.Month(month), day, 23, 59, 59, 0, a.zone)
	dayJDN := ganzhi.JDN(year, month, day)

	monthStart, err := a.newMoonOnOrBefore(dayEnd)
	if err != nil {
		return Date{}, err
	}
	startJDN := a.civilJDN(monthStart)

	// Anchor solstice and the month-11 starts bracketing this date.
	w1, err := a.solsticeOnOrBefore(dayEnd)
	if err != nil {
		return Date{}, err
	}
	w1Year := w1.In(a.zone).Year()
	m11, err := a.newMoonOnOrBefore(a.endOfCivilDay(w1))
	if err != nil {
		return Date{}, err
	}
	w2, err := a.locator.TermInstant(w1Year+1, mustTerm("winter_solstice"))
	if err != nil {
		return Date{}, err
	}
	m11next, err := a.newMoonOnOrBefore(a.endOfCivilDay(w2))
	if err != nil {
		return Date{}, err
	}

	m11JDN := a.civilJDN(m11)
	monthsInSui := int(math.Round(float64(a.civilJDN(m11next)-m11JDN) / meanSynodicDays))
	offset := int(math.Round(float64(startJDN-m11JDN) / meanSynodicDays))

	leapSeen := false
	isLeap := false
	if monthsInSui == 13 && offset > 0 {
		leapSeen, isLeap, err = a.leapBefore(m11, offset)
		if err != nil {
			return Date{}, err
		}
	}

	sub := 0
	if leapSeen {
		sub = 1
	}
	number := ganzhi.Mod(11+offset-sub-1, 12) + 1

	// Only months 11 and 12 of the anchor sui predate the lunar new year.
	// A month 11 at the far end of the sui, before the next solstice,
	// wraps to the same number but belongs to the following year.
	lunarYear := w1Year + 1
	if offset-sub <= 1 {
		lunarYear = w1Year
	}

	return Date{
		Year:  lunarYear,
		Month: number,
		Day:   dayJDN - startJDN + 1,
		Leap:  isLeap,
	}, nil
}

// leapBefore walks the months of the sui up to the queried month (index
// offset from month 11) and reports whether a leap month occurred at or
// before it, and whether the queried month is itself the leap month.
func (a *Astronomical) leapBefore(m11 time.Time, offset int) (seen, queriedIsLeap bool, err error) {
	starts := make([]time.Time, offset+2)
	starts[0] = m11
	for i := 1; i <= offset+1; i++ {
		starts[i], err = a.newMoonAfter(starts[i-1].Add(24 * time.Hour))
		if err != nil {
			return false, false, err
		}
	}
	for i := 1; i <= offset; i++ {
		hasMajor, err := a.hasMajorTerm(starts[i], starts[i+1])
		if err != nil {
			return false, false, err
		}
		if !hasMajor {
			// Only the first termless month of the sui is intercalary.
			return true, i == offset, nil
		}
	}
	return false, false, nil
}

// hasMajorTerm reports whether the sun crosses a multiple of 30 degrees
// (a 중기) between the two instants. A lunation spans under 31 degrees of
// solar motion, so at most one crossing is possible.
func (a *Astronomical) hasMajorTerm(from, to time.Time) (bool, error) {
	ls, err := a.adapter.SolarLongitude(from)
	if err != nil {
		return false, err
	}
	le, err := a.adapter.SolarLongitude(to)
	if err != nil {
		return false, err
	}
	advance := le - ls
	for advance < 0 {
		advance += 360
	}
	return math.Floor((ls+advance)/30) > math.Floor(ls/30), nil
}

// newMoonNear converges on the conjunction closest to the seed instant.
func (a *Astronomical) newMoonNear(seed time.Time) (time.Time, error) {
	t := seed
	for i := 0; i < 12; i++ {
		d, err := a.phaseSigned(t)
		if err != nil {
			return time.Time{}, err
		}
		if math.Abs(d) < 1e-5 {
			return t, nil
		}
		t = t.Add(time.Duration(-d / relativeDailyMotion * 24 * float64(time.Hour)))
	}
	return t, nil
}

// newMoonOnOrBefore returns the latest conjunction not after t.
func (a *Astronomical) newMoonOnOrBefore(t time.Time) (time.Time, error) {
	elapsed, err := a.phasePositive(t)
	if err != nil {
		return time.Time{}, err
	}
	nm, err := a.newMoonNear(t.Add(time.Duration(-elapsed / relativeDailyMotion * 24 * float64(time.Hour))))
	if err != nil {
		return time.Time{}, err
	}
	if nm.After(t) {
		return a.newMoonNear(nm.Add(-time.Duration(meanSynodicDays * 24 * float64(time.Hour))))
	}
	return nm, nil
}

// newMoonAfter returns the earliest conjunction strictly after t.
func (a *Astronomical) newMoonAfter(t time.Time) (time.Time, error) {
	elapsed, err := a.phasePositive(t)
	if err != nil {
		return time.Time{}, err
	}
	nm, err := a.newMoonNear(t.Add(time.Duration((360 - elapsed) / relativeDailyMotion * 24 * float64(time.Hour))))
	if err != nil {
		return time.Time{}, err
	}
	if !nm.After(t) {
		return a.newMoonNear(nm.Add(time.Duration(meanSynodicDays * 24 * float64(time.Hour))))
	}
	return nm, nil
}

// phaseSigned is the moon-sun longitude difference wrapped to (-180, 180].
func (a *Astronomical) phaseSigned(t time.Time) (float64, error) {
	d, err := a.phasePositive(t)
	if err != nil {
		return 0, err
	}
	if d > 180 {
		d -= 360
	}
	return d, nil
}

// phasePositive is the moon-sun longitude difference wrapped to [0, 360).
func (a *Astronomical) phasePositive(t time.Time) (float64, error) {
	sun, err := a.adapter.SolarLongitude(t)
	if err != nil {
		return 0, err
	}
	moon, err := a.adapter.LunarLongitude(t)
	if err != nil {
		return 0, err
	}
	d := math.Mod(moon-sun, 360)
	if d < 0 {
		d += 360
	}
	return d, nil
}

// solsticeOnOrBefore returns the December solstice instant not after t.
func (a *Astronomical) solsticeOnOrBefore(t time.Time) (time.Time, error) {
	year := t.In(a.zone).Year()
	ws, err := a.locator.TermInstant(year, mustTerm("winter_solstice"))
	if err != nil {
		return time.Time{}, err
	}
	if ws.After(t) {
		return a.locator.TermInstant(year-1, mustTerm("winter_solstice"))
	}
	return ws, nil
}

// civilJDN returns the Julian Day Number of the civil day containing t in
// the reference zone.
func (a *Astronomical) civilJDN(t time.Time) int {
	y, m, d := t.In(a.zone).Date()
	return ganzhi.JDN(y, int(m), d)
}

// endOfCivilDay returns the last second of t's civil day in the zone.
func (a *Astronomical) endOfCivilDay(t time.Time) time.Time {
	y, m, d := t.In(a.zone).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, a.zone)
}

func mustTerm(key string) solarterm.Term {
	t, ok := solarterm.ByKey(key)
	if !ok {
		panic(fmt.Sprintf("unknown solar term key %q", key))
	}
	return t
}

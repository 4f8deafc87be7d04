package solarterm

import (
	"fmt"
	"math"
	"time"

	"github.com/roach88/saju/internal/astro"
)

// meanDailyMotion is the sun's mean advance in ecliptic longitude,
// degrees per day. Used only to seed the crossing iteration.
const meanDailyMotion = 360.0 / 365.2422

// Position describes the solar-term context of an instant: the term most
// recently entered and the one coming next, with exact crossing instants
// and whole-day distances.
type Position struct {
	Current Term `json:"current"`
	Next    Term `json:"next"`

	// CurrentAt and NextAt are the exact instants the sun crosses the
	// respective defining longitudes (UTC).
	CurrentAt time.Time `json:"current_at"`
	NextAt    time.Time `json:"next_at"`

	// DaysSinceCurrent and DaysUntilNext are whole-day counts relative to
	// the query instant (floored).
	DaysSinceCurrent int `json:"days_since_current"`
	DaysUntilNext    int `json:"days_until_next"`

	// SunLongitude is the apparent solar longitude at the query instant.
	SunLongitude float64 `json:"sun_longitude"`
}

// Locator finds solar terms using an astronomical adapter.
type Locator struct {
	adapter astro.Adapter
}

// NewLocator creates a Locator over the given adapter.
func NewLocator(adapter astro.Adapter) *Locator {
	return &Locator{adapter: adapter}
}

// At resolves the solar-term position of an instant. An exact longitude
// match resolves to that term as current, never as next.
func (l *Locator) At(t time.Time) (Position, error) {
	lon, err := l.adapter.SolarLongitude(t)
	if err != nil {
		return Position{}, err
	}

	current := AtLongitude(lon)
	next := current.Next()

	currentAt, err := l.CrossingNear(t, float64(current.Longitude))
	if err != nil {
		return Position{}, err
	}
	nextAt, err := l.CrossingNear(t.AddDate(0, 0, daysAhead(lon, float64(next.Longitude))), float64(next.Longitude))
	if err != nil {
		return Position{}, err
	}

	return Position{
		Current:          current,
		Next:             next,
		CurrentAt:        currentAt,
		NextAt:           nextAt,
		DaysSinceCurrent: int(math.Floor(t.Sub(currentAt).Hours() / 24)),
		DaysUntilNext:    int(math.Floor(nextAt.Sub(t).Hours() / 24)),
		SunLongitude:     lon,
	}, nil
}

// CrossingNear finds the instant closest to seed at which the sun's apparent
// longitude equals target (degrees). Newton iteration on the wrapped
// difference; converges in a few steps because solar motion is nearly
// linear over the two-week scale separating terms.
func (l *Locator) CrossingNear(seed time.Time, target float64) (time.Time, error) {
	t := seed
	for i := 0; i < 10; i++ {
		lon, err := l.adapter.SolarLongitude(t)
		if err != nil {
			return time.Time{}, err
		}
		d := wrapSigned(target - lon)
		if math.Abs(d) < 1e-6 {
			return t, nil
		}
		t = t.Add(time.Duration(d / meanDailyMotion * 24 * float64(time.Hour)))
	}
	return t, nil
}

// TermInstant returns the exact instant a term occurs in the given calendar
// year. Terms near the year boundary resolve to the crossing belonging to
// that calendar year (Minor Cold in early January, Winter Solstice in late
// December).
func (l *Locator) TermInstant(year int, term Term) (time.Time, error) {
	if term.Key == "" {
		return time.Time{}, fmt.Errorf("undefined solar term")
	}
	// Terms fall roughly 15.2 days apart starting near January 5.
	seed := time.Date(year, 1, 5, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(float64(term.Index) * 15.218 * 24 * float64(time.Hour)))
	return l.CrossingNear(seed, float64(term.Longitude))
}

// daysAhead estimates how many days until the sun advances from lon to
// target, for seeding the next-term search.
func daysAhead(lon, target float64) int {
	d := target - lon
	for d < 0 {
		d += 360
	}
	return int(d / meanDailyMotion)
}

// wrapSigned normalizes an angle difference to (-180, 180].
func wrapSigned(a float64) float64 {
	m := math.Mod(a, 360)
	if m <= -180 {
		m += 360
	}
	if m > 180 {
		m -= 360
	}
	return m
}

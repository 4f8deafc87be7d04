package astro

import (
	"errors"
	"fmt"
	"time"
)

// Adapter abstracts the astronomical and calendrical primitives the engine
// consumes. Implementations must be side-effect-free: the engine's
// referential transparency depends on it.
type Adapter interface {
	// SolarLongitude returns the sun's apparent ecliptic longitude in
	// degrees, normalized to [0, 360).
	SolarLongitude(t time.Time) (float64, error)

	// LunarLongitude returns the moon's apparent ecliptic longitude in
	// degrees, normalized to [0, 360).
	LunarLongitude(t time.Time) (float64, error)

	// Civil constructs a zone-aware instant from civil date-time fields.
	Civil(year, month, day, hour, minute int, zone string) (time.Time, error)
}

// ErrOutOfRange reports an instant outside the adapter's supported span.
// There is no meaningful fallback for an undefined solar position; callers
// propagate this rather than recovering.
var ErrOutOfRange = errors.New("instant outside supported year range")

// Supported year span for the Meeus series. The truncated terms degrade
// gracefully outside this window, but the error is no longer bounded.
const (
	MinYear = 1000
	MaxYear = 3000
)

// Calculator is the default Adapter, computing longitudes directly from the
// Meeus series. The zero value is ready to use.
type Calculator struct{}

var _ Adapter = Calculator{}

// SolarLongitude implements Adapter.
func (Calculator) SolarLongitude(t time.Time) (float64, error) {
	if err := checkRange(t); err != nil {
		return 0, err
	}
	return apparentSolarLongitude(julianDay(t)), nil
}

// LunarLongitude implements Adapter.
func (Calculator) LunarLongitude(t time.Time) (float64, error) {
	if err := checkRange(t); err != nil {
		return 0, err
	}
	return lunarLongitude(julianDay(t)), nil
}

// Civil implements Adapter. The zone is an IANA name such as "Asia/Seoul".
func (Calculator) Civil(year, month, day, hour, minute int, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown zone %q: %w", zone, err)
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), nil
}

func checkRange(t time.Time) error {
	y := t.UTC().Year()
	if y < MinYear || y > MaxYear {
		return fmt.Errorf("year %d: %w", y, ErrOutOfRange)
	}
	return nil
}

// EpochMillis converts an instant to milliseconds since the Unix epoch.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromEpochMillis converts epoch milliseconds back to a UTC instant.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// julianDay converts an instant to a Julian Date (fractional days since
// -4712-01-01 12:00 UT).
func julianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000.0 + 2440587.5
}

package solarterm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/ganzhi"
)

func TestTerms_FixedContent(t *testing.T) {
	require.Len(t, Terms, 24)

	for k, term := range Terms {
		assert.Equal(t, k, term.Index)
		assert.Equal(t, ganzhi.Mod(285+15*k, 360), term.Longitude, "term %s", term.Key)
		assert.Equal(t, k%2 == 0, term.Principal, "principal terms alternate starting at Minor Cold")
	}

	assert.Equal(t, "Minor Cold", Terms[0].Name)
	assert.Equal(t, 285, Terms[0].Longitude)

	spring, ok := ByKey("spring_begins")
	require.True(t, ok)
	assert.Equal(t, 315, spring.Longitude)

	_, ok = ByKey("thirteenth_month")
	assert.False(t, ok)
}

func TestAtLongitude_Boundaries(t *testing.T) {
	assert.Equal(t, "minor_cold", AtLongitude(285).Key, "exact match resolves to that term, not next")
	assert.Equal(t, "minor_cold", AtLongitude(299.9).Key)
	assert.Equal(t, "major_cold", AtLongitude(300).Key)
	assert.Equal(t, "spring_begins", AtLongitude(315).Key)
	assert.Equal(t, "winter_solstice", AtLongitude(284.9).Key, "just before the cycle start wraps to the last term")
	assert.Equal(t, "vernal_equinox", AtLongitude(0).Key)
	assert.Equal(t, "vernal_equinox", AtLongitude(14.9).Key)
}

func TestTermNext_Wraps(t *testing.T) {
	assert.Equal(t, "major_cold", Terms[0].Next().Key)
	assert.Equal(t, "minor_cold", Terms[23].Next().Key, "cyclical order wraps at the end")
}

func TestLocatorAt_EarlyFebruary1990(t *testing.T) {
	loc := NewLocator(astro.Calculator{})

	// 1990-02-01 03:10 UT (12:10 KST). Li Chun 1990 is still three days
	// away, so the current term is Major Cold.
	at := time.Date(1990, 2, 1, 3, 10, 0, 0, time.UTC)
	pos, err := loc.At(at)
	require.NoError(t, err)

	assert.Equal(t, "major_cold", pos.Current.Key)
	assert.Equal(t, "spring_begins", pos.Next.Key)
	assert.True(t, pos.CurrentAt.Before(at))
	assert.True(t, pos.NextAt.After(at))
	assert.GreaterOrEqual(t, pos.DaysSinceCurrent, 0)
	assert.GreaterOrEqual(t, pos.DaysUntilNext, 0)
	assert.InDelta(t, 311.8, pos.SunLongitude, 0.3)
}

func TestLocatorAt_YearWrap(t *testing.T) {
	loc := NewLocator(astro.Calculator{})

	// Early January sits between Winter Solstice (late December, previous
	// calendar year) and Minor Cold.
	pos, err := loc.At(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "winter_solstice", pos.Current.Key)
	assert.Equal(t, "minor_cold", pos.Next.Key)
	assert.Equal(t, 1989, pos.CurrentAt.Year(), "current crossing belongs to the previous calendar year")
	assert.Equal(t, 1990, pos.NextAt.Year())
}

func TestTermInstant_LiChun1990(t *testing.T) {
	loc := NewLocator(astro.Calculator{})

	spring, _ := ByKey("spring_begins")
	at, err := loc.TermInstant(1990, spring)
	require.NoError(t, err)

	// Li Chun 1990 fell on February 4 KST.
	kst := at.In(time.FixedZone("KST", 9*3600))
	assert.Equal(t, 1990, kst.Year())
	assert.Equal(t, time.February, kst.Month())
	assert.Equal(t, 4, kst.Day())

	// The crossing instant itself must sit exactly on the defining
	// longitude, and locating the position there reports the term as
	// current (non-strict boundary).
	lon, err := astro.Calculator{}.SolarLongitude(at)
	require.NoError(t, err)
	assert.InDelta(t, 315.0, lon, 1e-4)

	pos, err := loc.At(at.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "spring_begins", pos.Current.Key)
}

func TestTermInstant_WinterSolstice(t *testing.T) {
	loc := NewLocator(astro.Calculator{})

	solstice, _ := ByKey("winter_solstice")
	at, err := loc.TermInstant(1990, solstice)
	require.NoError(t, err)
	assert.Equal(t, 1990, at.UTC().Year(), "December terms stay in the queried year")
	assert.Equal(t, time.December, at.UTC().Month())
	assert.Equal(t, 22, at.UTC().Day())
}

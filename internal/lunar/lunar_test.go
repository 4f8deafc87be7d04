package lunar

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/saju/internal/astro"
)

func newProvider(t *testing.T) *Astronomical {
	t.Helper()
	return NewAstronomical(astro.Calculator{}, nil)
}

func TestFromSolar_KnownAnchors(t *testing.T) {
	p := newProvider(t)

	cases := []struct {
		name  string
		solar [3]int
		want  Date
	}{
		{
			// The end-to-end fixture date. Lunar new year 1990 was
			// January 27, so February 1 is the sixth day of month 1.
			name:  "1990-02-01",
			solar: [3]int{1990, 2, 1},
			want:  Date{Year: 1990, Month: 1, Day: 6},
		},
		{
			name:  "lunar new year 1990",
			solar: [3]int{1990, 1, 27},
			want:  Date{Year: 1990, Month: 1, Day: 1},
		},
		{
			// The day before new year still belongs to the old year's
			// final month.
			name:  "new year's eve 1990",
			solar: [3]int{1990, 1, 26},
			want:  Date{Year: 1989, Month: 12, Day: 30},
		},
		{
			name:  "lunar new year 2000",
			solar: [3]int{2000, 2, 5},
			want:  Date{Year: 2000, Month: 1, Day: 1},
		},
		{
			name:  "lunar new year 2024",
			solar: [3]int{2024, 2, 10},
			want:  Date{Year: 2024, Month: 1, Day: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.FromSolar(tc.solar[0], tc.solar[1], tc.solar[2])
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromSolar_LeapMonth1990(t *testing.T) {
	// 1990 intercalated month 5 (윤오월). Mid-June 1990 falls inside it.
	p := newProvider(t)

	got, err := p.FromSolar(1990, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Month)
	assert.True(t, got.Leap, "1990-07-01 is in the leap fifth month")

	// A date in the regular fifth month is not flagged.
	got, err = p.FromSolar(1990, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Month)
	assert.False(t, got.Leap)
}

func TestFromSolar_MonthEleven(t *testing.T) {
	// The month containing the December solstice is always month 11.
	p := newProvider(t)

	got, err := p.FromSolar(1989, 12, 22)
	require.NoError(t, err)
	assert.Equal(t, 11, got.Month)
	assert.Equal(t, 1989, got.Year)
	assert.False(t, got.Leap)
}

func TestFromSolar_MonthElevenBeforeSolstice(t *testing.T) {
	// A date in month 11 but ahead of that year's solstice still anchors
	// on the previous solstice; the year must come from the month's place
	// in the sui, not from the wrapped month number.
	p := newProvider(t)

	cases := []struct {
		name  string
		solar [3]int
		want  Date
	}{
		{
			// Month 11 of 2023 opened December 13; the solstice fell on
			// the 22nd. The anchor sui (starting November 2022) carried a
			// leap second month.
			name:  "2023-12-15",
			solar: [3]int{2023, 12, 15},
			want:  Date{Year: 2023, Month: 11, Day: 3},
		},
		{
			// Month 11 of 2024 opened December 1, three weeks before the
			// solstice, in a plain twelve-month sui.
			name:  "2024-12-05",
			solar: [3]int{2024, 12, 5},
			want:  Date{Year: 2024, Month: 11, Day: 5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.FromSolar(tc.solar[0], tc.solar[1], tc.solar[2])
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromSolar_DayProgression(t *testing.T) {
	// Consecutive solar days advance the lunar day by one within a month
	// and reset to one at each new moon.
	p := newProvider(t)

	prev, err := p.FromSolar(1990, 1, 27)
	require.NoError(t, err)
	for d := 28; d <= 31; d++ {
		cur, err := p.FromSolar(1990, 1, d)
		require.NoError(t, err)
		assert.Equal(t, prev.Day+1, cur.Day)
		prev = cur
	}
}

func TestSQLite_RoundTripsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lunar.db")

	table, err := OpenSQLite(path)
	require.NoError(t, err)
	defer table.Close()

	source := newProvider(t)
	require.NoError(t, table.Seed(source, 1990, 1991))

	// The table must agree with the provider that seeded it, day by day.
	for _, date := range [][3]int{
		{1990, 1, 27}, {1990, 2, 1}, {1990, 7, 1}, {1990, 12, 31}, {1991, 6, 15},
	} {
		want, err := source.FromSolar(date[0], date[1], date[2])
		require.NoError(t, err)
		got, err := table.FromSolar(date[0], date[1], date[2])
		require.NoError(t, err)
		assert.Equal(t, want, got, "solar %v", date)
	}
}

func TestSQLite_NotCovered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lunar.db")

	table, err := OpenSQLite(path)
	require.NoError(t, err)
	defer table.Close()

	_, err = table.FromSolar(1990, 2, 1)
	assert.ErrorIs(t, err, ErrNotCovered, "empty table covers nothing")

	require.NoError(t, table.Seed(newProvider(t), 1990, 1990))

	_, err = table.FromSolar(2050, 1, 1)
	assert.ErrorIs(t, err, ErrNotCovered, "dates past the seeded span are rejected, not extrapolated")
}

package ganzhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillarFromIndex_InverseLaw(t *testing.T) {
	for i := 0; i < CycleLen; i++ {
		p := PillarFromIndex(i)
		require.True(t, p.Valid(), "index %d produced invalid pillar %s", i, p)
		assert.Equal(t, i, p.Index(), "round trip failed for index %d (%s)", i, p)
	}
}

func TestPillarFromIndex_Wraparound(t *testing.T) {
	last := PillarFromIndex(59)
	assert.Equal(t, "癸亥", last.String(), "index 59 is the last pillar of the cycle")
	assert.Equal(t, last, PillarFromIndex(-1), "negative indices wrap from the top")
	assert.Equal(t, PillarFromIndex(0), PillarFromIndex(60), "indices past 59 wrap down")
	assert.Equal(t, "甲子", PillarFromIndex(0).String())
}

func TestPillarIndex_InvalidParity(t *testing.T) {
	// 甲丑 mixes a yang stem with a yin branch; only 60 of the 120 pairs
	// are sexagenary.
	p := Pillar{Stem: StemGap, Branch: BranchChuk}
	assert.False(t, p.Valid())
	assert.Equal(t, -1, p.Index())
}

func TestMod_NegativeWrap(t *testing.T) {
	cases := []struct {
		n, m, want int
	}{
		{-1, 60, 59},
		{-61, 60, 59},
		{0, 60, 0},
		{60, 60, 0},
		{-3, 12, 9},
		{-10, 5, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Mod(tc.n, tc.m), "Mod(%d, %d)", tc.n, tc.m)
	}
}

func TestStemIndex_Sentinel(t *testing.T) {
	assert.Equal(t, 0, StemIndex("甲"))
	assert.Equal(t, 9, StemIndex("癸"))
	assert.Equal(t, 3, StemIndex("정"), "Hangul readings resolve too")
	assert.Equal(t, -1, StemIndex("子"), "branch symbols are not stems")
	assert.Equal(t, -1, StemIndex(""), "empty input is not an error, just absent")
	assert.Equal(t, -1, StemIndex("xyz"))
}

func TestBranchIndex_Sentinel(t *testing.T) {
	assert.Equal(t, 0, BranchIndex("子"))
	assert.Equal(t, 11, BranchIndex("亥"))
	assert.Equal(t, 6, BranchIndex("오"))
	assert.Equal(t, -1, BranchIndex("甲"), "stem symbols are not branches")
	assert.Equal(t, -1, BranchIndex("not-a-branch"))
}

func TestBranchProperties_OutOfRange(t *testing.T) {
	// Invalid branches degrade the same way String does instead of
	// panicking on the fixed tables.
	for _, b := range []Branch{Branch(-1), Branch(NumBranches)} {
		assert.Equal(t, "?", b.String())
		assert.False(t, b.Element().Valid(), "branch %d", int(b))
		assert.Nil(t, b.HiddenStems(), "branch %d", int(b))
	}
}

func TestStemProperties_Alternation(t *testing.T) {
	for i := 0; i < NumStems; i++ {
		s := Stem(i)
		if i%2 == 0 {
			assert.Equal(t, Yang, s.Polarity(), "stem %s", s)
		} else {
			assert.Equal(t, Yin, s.Polarity(), "stem %s", s)
		}
		assert.Equal(t, Element(i/2), s.Element(), "stem %s", s)
	}
}

func TestBranchHiddenStems_Principal(t *testing.T) {
	cases := []struct {
		branch    Branch
		count     int
		principal Stem
	}{
		{BranchJa, 1, StemGye},
		{BranchChuk, 3, StemGi},
		{BranchIn, 3, StemGap},
		{BranchMyo, 1, StemEul},
		{BranchO, 2, StemJeong},
		{BranchHae, 2, StemIm},
	}
	for _, tc := range cases {
		hs := tc.branch.HiddenStems()
		require.Len(t, hs, tc.count, "branch %s", tc.branch)
		assert.Equal(t, tc.principal, hs[0], "principal qi of %s", tc.branch)
	}
	// Every branch hides between one and three stems, and the principal qi
	// always shares the branch's element.
	for i := 0; i < NumBranches; i++ {
		b := Branch(i)
		hs := b.HiddenStems()
		require.NotEmpty(t, hs, "branch %s", b)
		require.LessOrEqual(t, len(hs), 3, "branch %s", b)
		assert.Equal(t, b.Element(), hs[0].Element(), "principal qi of %s", b)
	}
}

func TestElementCycles(t *testing.T) {
	assert.Equal(t, Fire, Wood.Generates())
	assert.Equal(t, Wood, Water.Generates(), "generation cycle wraps")
	assert.Equal(t, Earth, Wood.Controls())
	assert.Equal(t, Fire, Water.Controls(), "control cycle wraps")
	for e := Wood; e <= Water; e++ {
		assert.Equal(t, e, e.Generates().GeneratedBy())
		assert.Equal(t, e, e.Controls().ControlledBy())
	}
}

func TestParsePillar(t *testing.T) {
	p, ok := ParsePillar("甲子")
	require.True(t, ok)
	assert.Equal(t, 0, p.Index())

	p, ok = ParsePillar("丁酉")
	require.True(t, ok)
	assert.Equal(t, 33, p.Index())

	_, ok = ParsePillar("甲丑")
	assert.False(t, ok, "parity-mismatched pairs are rejected")

	_, ok = ParsePillar("甲")
	assert.False(t, ok)
}

func TestJDN_FixedPoints(t *testing.T) {
	assert.Equal(t, 2451545, JDN(2000, 1, 1))
	assert.Equal(t, 2440588, JDN(1970, 1, 1))

	y, m, d := DateFromJDN(2451545)
	assert.Equal(t, []int{2000, 1, 1}, []int{y, m, d})

	// Round trip across a few centuries, including leap boundaries.
	for _, date := range [][3]int{{1600, 2, 29}, {1900, 3, 1}, {1990, 2, 1}, {2100, 12, 31}} {
		y, m, d := DateFromJDN(JDN(date[0], date[1], date[2]))
		assert.Equal(t, date, [3]int{y, m, d})
	}
}

func TestDayPillarIndex_Calibration(t *testing.T) {
	// 2000-01-01 is the 戊午 day.
	idx := DayPillarIndex(JDN(2000, 1, 1))
	assert.Equal(t, "戊午", PillarFromIndex(idx).String())

	// 1990-02-01 is the 丁酉 day (used by the end-to-end fixture).
	idx = DayPillarIndex(JDN(1990, 2, 1))
	assert.Equal(t, "丁酉", PillarFromIndex(idx).String())
}

func TestYearPillarIndex_Reference(t *testing.T) {
	assert.Equal(t, 0, YearPillarIndex(1984), "1984 is the reference 甲子 year")
	assert.Equal(t, "甲子", PillarFromIndex(YearPillarIndex(1984)).String())
	assert.Equal(t, "己巳", PillarFromIndex(YearPillarIndex(1989)).String())
	assert.Equal(t, 59, YearPillarIndex(1983), "years before the reference wrap backwards")
}

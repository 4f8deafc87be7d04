package tengods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

func TestClassify_SelfIsFriend(t *testing.T) {
	for i := 0; i < ganzhi.NumStems; i++ {
		s := ganzhi.Stem(i)
		assert.Equal(t, Friend, Classify(s, s), "stem %s against itself", s)
	}
}

func TestClassify_AllCategoriesFromJia(t *testing.T) {
	// 甲 (yang wood) against every stem covers all ten categories.
	day := ganzhi.StemGap
	cases := []struct {
		other ganzhi.Stem
		want  God
	}{
		{ganzhi.StemGap, Friend},              // 甲 yang wood
		{ganzhi.StemEul, RobWealth},           // 乙 yin wood
		{ganzhi.StemByeong, EatingGod},        // 丙 yang fire
		{ganzhi.StemJeong, HurtingOfficer},    // 丁 yin fire
		{ganzhi.StemMu, IndirectWealth},       // 戊 yang earth
		{ganzhi.StemGi, DirectWealth},         // 己 yin earth
		{ganzhi.StemGyeong, SevenKillings},    // 庚 yang metal
		{ganzhi.StemSin, DirectOfficer},       // 辛 yin metal
		{ganzhi.StemIm, IndirectResource},     // 壬 yang water
		{ganzhi.StemGye, DirectResource},      // 癸 yin water
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(day, tc.other), "甲 vs %s", tc.other)
	}
}

func TestClassify_YinDayMaster(t *testing.T) {
	// 丁 (yin fire): polarity matching is relative, not absolute yang/yin.
	day := ganzhi.StemJeong
	assert.Equal(t, Friend, Classify(day, ganzhi.StemJeong))
	assert.Equal(t, RobWealth, Classify(day, ganzhi.StemByeong))
	assert.Equal(t, EatingGod, Classify(day, ganzhi.StemGi), "丁 generates earth; 己 matches yin")
	assert.Equal(t, DirectOfficer, Classify(day, ganzhi.StemIm), "壬 controls fire, opposite polarity")
	assert.Equal(t, IndirectResource, Classify(day, ganzhi.StemEul), "乙 generates fire, matching polarity")
}

// referenceChart is the 1990-02-01 fixture: 己巳 丁丑 丁酉 丙午.
func referenceChart(t *testing.T) pillars.FourPillars {
	t.Helper()
	mustPillar := func(s string) ganzhi.Pillar {
		p, ok := ganzhi.ParsePillar(s)
		require.True(t, ok, s)
		return p
	}
	return pillars.FourPillars{
		Year:  mustPillar("己巳"),
		Month: mustPillar("丁丑"),
		Day:   mustPillar("丁酉"),
		Hour:  mustPillar("丙午"),
	}
}

func TestAnalyze_ReferenceChart(t *testing.T) {
	a := Analyze(referenceChart(t))

	assert.Equal(t, "丁", a.DayMaster)
	assert.Equal(t, "Fire", a.DayMasterElement)

	// The day pillar's visible stem is the distinguished Day Master, not
	// a generic Friend.
	assert.Equal(t, 1, a.CountsByGod["Day Master"])

	// 4 visible stems plus hidden stems: 巳 has 3, 丑 has 3, 酉 has 1,
	// 午 has 2, thirteen positions in total.
	assert.Len(t, a.Readings, 13)

	var daySeen bool
	for _, r := range a.Readings {
		if r.Position == "day" && !r.Hidden {
			daySeen = true
			assert.Equal(t, "Day Master", r.God)
		}
	}
	assert.True(t, daySeen)

	// Year stem 己 is the yin-earth Eating God of a 丁 day master.
	assert.Equal(t, "Eating God", a.Readings[0].God)

	// Counts reconcile with the reading list.
	total := 0
	for _, n := range a.CountsByGod {
		total += n
	}
	assert.Equal(t, len(a.Readings), total)

	total = 0
	for _, n := range a.CountsByElement {
		total += n
	}
	assert.Equal(t, len(a.Readings), total)
}

func TestAnalyze_HiddenStemsClassified(t *testing.T) {
	a := Analyze(referenceChart(t))

	// 酉 hides only 辛 (yin metal): the 丁 day master controls metal with
	// matching polarity, so Indirect Wealth.
	var found bool
	for _, r := range a.Readings {
		if r.Position == "day" && r.Hidden {
			found = true
			assert.Equal(t, "辛", r.Stem)
			assert.Equal(t, "Indirect Wealth", r.God)
		}
	}
	assert.True(t, found)
}

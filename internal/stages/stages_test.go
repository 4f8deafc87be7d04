package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/saju/internal/ganzhi"
	"github.com/roach88/saju/internal/pillars"
)

func TestAt_YangWoodReciprocity(t *testing.T) {
	// 甲 is born at 亥 and walks forward.
	assert.Equal(t, LongLife, At(ganzhi.StemGap, ganzhi.BranchHae))
	assert.Equal(t, Imperial, At(ganzhi.StemGap, ganzhi.BranchMyo))
	assert.Equal(t, Tomb, At(ganzhi.StemGap, ganzhi.BranchMi))
	assert.Equal(t, Bathing, At(ganzhi.StemGap, ganzhi.BranchJa))
}

func TestAt_YinWalksBackward(t *testing.T) {
	// 乙 is born at 午 and walks backward: 巳 is one step on.
	assert.Equal(t, LongLife, At(ganzhi.StemEul, ganzhi.BranchO))
	assert.Equal(t, Bathing, At(ganzhi.StemEul, ganzhi.BranchSa))
	// 丁 is born at 酉; its Imperial seat is 巳.
	assert.Equal(t, Imperial, At(ganzhi.StemJeong, ganzhi.BranchSa))
}

func TestAt_CoversAllTwelve(t *testing.T) {
	// Walking any stem through all twelve branches visits each stage
	// exactly once.
	for s := 0; s < ganzhi.NumStems; s++ {
		seen := map[Stage]bool{}
		for b := 0; b < ganzhi.NumBranches; b++ {
			seen[At(ganzhi.Stem(s), ganzhi.Branch(b))] = true
		}
		assert.Len(t, seen, 12, "stem %s", ganzhi.Stem(s))
	}
}

func TestStageLabels(t *testing.T) {
	assert.Equal(t, "장생", LongLife.Korean())
	assert.Equal(t, "帝旺", Imperial.Hanja())
	assert.Equal(t, VigorStrong, Imperial.Vigor())
	assert.Equal(t, VigorWeak, Extinction.Vigor())
	assert.NotEmpty(t, Tomb.Meaning())
}

func TestAnalyze_ReferenceChart(t *testing.T) {
	parse := func(s string) ganzhi.Pillar {
		p, ok := ganzhi.ParsePillar(s)
		require.True(t, ok, s)
		return p
	}
	fp := pillars.FourPillars{
		Year:  parse("己巳"),
		Month: parse("丁丑"),
		Day:   parse("丁酉"),
		Hour:  parse("丙午"),
	}

	readings := Analyze(fp)
	require.Len(t, readings, 4)

	// 丁 day master, born at 酉, walking backward.
	assert.Equal(t, "Imperial", readings[0].Stage, "巳 is 丁's Imperial seat")
	assert.Equal(t, "Tomb", readings[1].Stage, "丑 is 丁's Tomb")
	assert.Equal(t, "Long Life", readings[2].Stage, "酉 is 丁's birth branch")
	assert.Equal(t, "Establishment", readings[3].Stage, "午 is 丁's Establishment seat")
}

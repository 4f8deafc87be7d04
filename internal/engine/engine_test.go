package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/pillars"
)

func seoulRequest() Request {
	lon := 126.9778
	return Request{
		Year: 1990, Month: 2, Day: 1, Hour: 12, Minute: 10,
		Zone:      "Asia/Seoul",
		Longitude: &lon,
		Preset:    "standard",
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.Gender = "male"
	req.YearlyFrom, req.YearlyTo = 2024, 2026
	req.CurrentYear = 2026

	res, err := e.Analyze(req)
	require.NoError(t, err)

	assert.Equal(t, "己巳", res.Pillars.Year.String())
	assert.Equal(t, "丁丑", res.Pillars.Month.String())
	assert.Equal(t, "丁酉", res.Pillars.Day.String())
	assert.Equal(t, "丙午", res.Pillars.Hour.String())
	assert.Equal(t, "丁", res.TenGods.DayMaster)

	// Birth falls in the Major Cold term, twelfth lunar month of 1990's
	// predecessor year already rolled over: lunar 1990-01-06.
	assert.Equal(t, "major_cold", res.SolarTerm.Current.Key)
	assert.Equal(t, 1990, res.Lunar.Year)
	assert.Equal(t, 1, res.Lunar.Month)
	assert.Equal(t, 6, res.Lunar.Day)
	assert.False(t, res.Lunar.Leap)

	require.NotEmpty(t, res.MajorLuck.Pillars)
	assert.Equal(t, "backward", res.MajorLuck.Direction)

	require.Len(t, res.YearlyLuck, 3)
	assert.Equal(t, 2024, res.YearlyLuck[0].Year)
	assert.Equal(t, 35, res.YearlyLuck[0].Age)

	require.Len(t, res.Stages, 4)
	assert.NotEmpty(t, res.Yongshen.Primary)
	assert.NotEmpty(t, res.Yongshen.Reasoning)

	assert.Equal(t, "standard", res.Provenance.Preset)
	assert.Equal(t, 1989, res.Provenance.SolarYear)
	assert.Equal(t, 37, res.Provenance.CurrentAge)
}

func TestAnalyze_DefaultsPresetAndGender(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.Preset = ""
	req.Gender = ""

	res, err := e.Analyze(req)
	require.NoError(t, err)
	assert.Equal(t, "standard", res.Provenance.Preset)
	assert.Equal(t, "male", res.MajorLuck.Gender)
	assert.Empty(t, res.YearlyLuck)
	assert.Zero(t, res.Provenance.CurrentAge)
}

func TestAnalyze_InvalidPreset(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.Preset = "bogus"

	_, err := e.Analyze(req)
	require.Error(t, err)
	assert.True(t, IsInvalidPreset(err))
	assert.False(t, IsAdapterError(err))

	var ce *ChartError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeInvalidPreset, ce.Code)
	assert.Equal(t, "bogus", ce.Input)
}

func TestAnalyze_CustomPreset(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.CustomPreset = &pillars.Preset{
		Name:                "local",
		LongitudeCorrection: false,
		DayBoundary:         pillars.BoundaryMidnight,
	}

	res, err := e.Analyze(req)
	require.NoError(t, err)
	assert.Equal(t, "local", res.Provenance.Preset)

	req.CustomPreset.DayBoundary = "noon"
	_, err = e.Analyze(req)
	require.Error(t, err)
	assert.True(t, IsInvalidPreset(err))
}

func TestAnalyze_InvalidGender(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.Gender = "unknown"

	_, err := e.Analyze(req)
	require.Error(t, err)
	assert.True(t, IsInvalidSymbol(err))
}

func TestAnalyze_OutOfRangeInstant(t *testing.T) {
	e := New(astro.Calculator{}, nil)

	req := seoulRequest()
	req.Year = 500

	_, err := e.Analyze(req)
	require.Error(t, err)
	assert.True(t, IsAdapterError(err))

	var ce *ChartError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrCodeOutOfRange, ce.Code)
}

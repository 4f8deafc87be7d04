package engine

import (
	"errors"
	"time"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/luck"
	"github.com/roach88/saju/internal/lunar"
	"github.com/roach88/saju/internal/pillars"
	"github.com/roach88/saju/internal/relations"
	"github.com/roach88/saju/internal/solarterm"
	"github.com/roach88/saju/internal/stages"
	"github.com/roach88/saju/internal/strength"
	"github.com/roach88/saju/internal/tengods"
	"github.com/roach88/saju/internal/yongshen"
)

// Request describes one chart computation. Zero values of the optional
// fields disable the corresponding sections of the result.
type Request struct {
	// Civil birth instant in the named zone.
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Zone   string `json:"zone"`

	// Longitude enables mean-solar-time correction when set. Presets
	// with correction disabled ignore it.
	Longitude *float64 `json:"longitude,omitempty"`

	// Preset names the resolution policy; empty means "standard".
	Preset string `json:"preset,omitempty"`

	// CustomPreset overrides Preset with an explicit policy value, for
	// callers that load preset definitions from configuration files.
	CustomPreset *pillars.Preset `json:"custom_preset,omitempty"`

	// Gender selects the decade-luck direction; empty defaults to male.
	Gender string `json:"gender,omitempty"`

	// LuckBands overrides the number of decade pillars (default 8).
	LuckBands int `json:"luck_bands,omitempty"`

	// CurrentYear, when set, adds the subject's current age to the
	// provenance block.
	CurrentYear int `json:"current_year,omitempty"`

	// YearlyFrom/YearlyTo, when both set, request yearly luck over the
	// inclusive range.
	YearlyFrom int `json:"yearly_from,omitempty"`
	YearlyTo   int `json:"yearly_to,omitempty"`
}

// Provenance records how the chart was resolved, for auditability.
type Provenance struct {
	Preset       string    `json:"preset"`
	Zone         string    `json:"zone"`
	Longitude    *float64  `json:"longitude,omitempty"`
	SolarYear    int       `json:"solar_year"`
	SunLongitude float64   `json:"sun_longitude"`
	AdjustedTime time.Time `json:"adjusted_time"`
	EffectiveDay time.Time `json:"effective_day"`

	// CurrentAge counts inclusively from the birth year, present only
	// when the request carried a current year.
	CurrentAge int `json:"current_age,omitempty"`
}

// Result is the full analysis aggregate. Optional sections are nil when
// the request did not ask for them.
type Result struct {
	Pillars   pillars.FourPillars `json:"pillars"`
	Lunar     lunar.Date          `json:"lunar"`
	SolarTerm solarterm.Position  `json:"solar_term"`

	TenGods   tengods.Analysis   `json:"ten_gods"`
	Strength  strength.Result    `json:"strength"`
	Relations relations.Analysis `json:"relations"`
	Yongshen  yongshen.Result    `json:"yongshen"`
	Stages    []stages.Reading   `json:"stages"`

	MajorLuck  luck.Major       `json:"major_luck"`
	YearlyLuck []luck.YearEntry `json:"yearly_luck,omitempty"`

	Provenance Provenance `json:"provenance"`
}

// Engine wires the adapter and lunar provider into the analysis chain.
type Engine struct {
	adapter   astro.Adapter
	resolver  *pillars.Resolver
	locator   *solarterm.Locator
	projector *luck.Projector
	lunar     lunar.Provider
}

// New creates an Engine. A nil lunar provider falls back to the
// astronomical one over the same adapter.
func New(adapter astro.Adapter, lunarProvider lunar.Provider) *Engine {
	if lunarProvider == nil {
		lunarProvider = lunar.NewAstronomical(adapter, nil)
	}
	return &Engine{
		adapter:   adapter,
		resolver:  pillars.NewResolver(adapter),
		locator:   solarterm.NewLocator(adapter),
		projector: luck.NewProjector(adapter),
		lunar:     lunarProvider,
	}
}

// Analyze resolves the chart and every analysis layer in one pass.
//
// Configuration problems (unknown preset, unknown gender) are rejected
// before any astronomy runs. Adapter failures propagate as ADAPTER_ERROR
// or OUT_OF_RANGE; there is no fallback for an undefined solar position.
func (e *Engine) Analyze(req Request) (*Result, error) {
	var preset pillars.Preset
	var err error
	if req.CustomPreset != nil {
		preset = *req.CustomPreset
		if err = preset.Validate(); err != nil {
			return nil, NewInvalidPresetError(preset.Name, pillars.PresetNames())
		}
	} else {
		presetName := req.Preset
		if presetName == "" {
			presetName = "standard"
		}
		preset, err = pillars.PresetByName(presetName)
		if err != nil {
			return nil, NewInvalidPresetError(presetName, pillars.PresetNames())
		}
	}

	gender := luck.Male
	if req.Gender != "" {
		gender, err = luck.ParseGender(req.Gender)
		if err != nil {
			return nil, NewInvalidSymbolError(req.Gender)
		}
	}

	local, err := e.adapter.Civil(req.Year, req.Month, req.Day, req.Hour, req.Minute, req.Zone)
	if err != nil {
		return nil, NewAdapterError(err)
	}

	fp, err := e.resolver.Resolve(local, req.Longitude, preset)
	if err != nil {
		if errors.Is(err, pillars.ErrInvalidPreset) {
			return nil, NewInvalidPresetError(preset.Name, pillars.PresetNames())
		}
		return nil, NewAdapterError(err)
	}

	lunarDate, err := e.lunar.FromSolar(req.Year, req.Month, req.Day)
	if err != nil {
		return nil, NewAdapterError(err)
	}

	pos, err := e.locator.At(fp.AdjustedTime)
	if err != nil {
		return nil, NewAdapterError(err)
	}

	major, err := e.projector.Major(fp, gender, req.LuckBands)
	if err != nil {
		return nil, NewAdapterError(err)
	}

	res := &Result{
		Pillars:   fp,
		Lunar:     lunarDate,
		SolarTerm: pos,
		TenGods:   tengods.Analyze(fp),
		Strength:  strength.Score(fp),
		Relations: relations.Analyze(fp),
		Stages:    stages.Analyze(fp),
		MajorLuck: major,
		Provenance: Provenance{
			Preset:       fp.Preset,
			Zone:         req.Zone,
			Longitude:    req.Longitude,
			SolarYear:    fp.SolarYear,
			SunLongitude: fp.SunLongitude,
			AdjustedTime: fp.AdjustedTime,
			EffectiveDay: fp.EffectiveDate,
		},
	}
	res.Yongshen = yongshen.Resolve(fp, res.Strength, res.TenGods)

	if req.YearlyFrom != 0 && req.YearlyTo != 0 {
		res.YearlyLuck = luck.Yearly(req.Year, req.YearlyFrom, req.YearlyTo)
	}
	if req.CurrentYear != 0 {
		res.Provenance.CurrentAge = req.CurrentYear - req.Year + 1
	}
	return res, nil
}

package pillars

import (
	"fmt"
	"sort"
)

// DayBoundary selects when the day pillar advances.
type DayBoundary string

const (
	// BoundaryMidnight advances the day pillar at civil midnight.
	BoundaryMidnight DayBoundary = "midnight"

	// BoundaryZiHour advances the day pillar at 23:00, the start of the
	// 子 hour, following the tradition that cuts the day at the hour
	// boundary rather than midnight.
	BoundaryZiHour DayBoundary = "zi-hour"
)

// Preset is a closed configuration of correction policies. Presets are
// values, never mutated; unknown names are a configuration error rejected
// eagerly at entry.
type Preset struct {
	Name string `json:"name"`

	// LongitudeCorrection applies the mean-solar-time adjustment derived
	// from the geographic longitude versus the zone's standard meridian.
	LongitudeCorrection bool `json:"longitude_correction"`

	// DayBoundary is the day-pillar boundary policy.
	DayBoundary DayBoundary `json:"day_boundary"`
}

// Validate checks the preset's fields against the closed value sets.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty preset name", ErrInvalidPreset)
	}
	switch p.DayBoundary {
	case BoundaryMidnight, BoundaryZiHour:
		return nil
	default:
		return fmt.Errorf("%w: unknown day boundary %q", ErrInvalidPreset, p.DayBoundary)
	}
}

// presets is the closed set of built-in configurations.
var presets = map[string]Preset{
	"standard": {Name: "standard", LongitudeCorrection: true, DayBoundary: BoundaryMidnight},
	"classic":  {Name: "classic", LongitudeCorrection: true, DayBoundary: BoundaryZiHour},
	"civil":    {Name: "civil", LongitudeCorrection: false, DayBoundary: BoundaryMidnight},
}

// PresetByName resolves a built-in preset. Unknown names fail with
// ErrInvalidPreset; there is no runtime fallback.
func PresetByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (known: %v)", ErrInvalidPreset, name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

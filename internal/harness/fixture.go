package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture defines one conformance case: a birth input plus the headline
// values it must resolve to.
type Fixture struct {
	// Name uniquely identifies this fixture and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this fixture pins down.
	Description string `yaml:"description"`

	// Input is the birth request.
	Input FixtureInput `yaml:"input"`

	// Expect holds the headline expectations. Empty fields are skipped.
	Expect FixtureExpect `yaml:"expect"`
}

// FixtureInput mirrors the engine request in YAML-friendly form.
type FixtureInput struct {
	// Date and Time are the civil birth instant, YYYY-MM-DD and HH:MM.
	Date string `yaml:"date"`
	Time string `yaml:"time,omitempty"`

	// Zone is the IANA zone name.
	Zone string `yaml:"zone"`

	// Longitude enables mean-solar correction when present.
	Longitude *float64 `yaml:"longitude,omitempty"`

	Preset string `yaml:"preset,omitempty"`
	Gender string `yaml:"gender,omitempty"`

	// Yearly is an optional FROM:TO luck range.
	Yearly string `yaml:"yearly,omitempty"`
}

// FixtureExpect is the headline expectation set.
type FixtureExpect struct {
	// Pillars maps position (year, month, day, hour) to the expected
	// pillar symbol.
	Pillars map[string]string `yaml:"pillars"`

	DayMaster     string `yaml:"day_master,omitempty"`
	StrengthLevel string `yaml:"strength_level,omitempty"`

	// Lunar is the expected lunisolar date as YYYY-MM-DD, with a
	// " leap" suffix for intercalary months.
	Lunar string `yaml:"lunar,omitempty"`

	// Term is the expected current solar-term key.
	Term string `yaml:"term,omitempty"`
}

// LoadFixture reads and parses a fixture YAML file. Unknown fields are
// rejected so typos fail loudly.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateFixture(&fixture); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &fixture, nil
}

// validateFixture checks that required fields are present and valid.
func validateFixture(f *Fixture) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if f.Description == "" {
		return fmt.Errorf("description is required")
	}
	if f.Input.Date == "" {
		return fmt.Errorf("input.date is required")
	}
	if f.Input.Zone == "" {
		return fmt.Errorf("input.zone is required")
	}
	if len(f.Expect.Pillars) == 0 {
		return fmt.Errorf("expect.pillars is required and must be non-empty")
	}
	for position := range f.Expect.Pillars {
		switch position {
		case "year", "month", "day", "hour":
		default:
			return fmt.Errorf("expect.pillars: unknown position %q", position)
		}
	}
	return nil
}

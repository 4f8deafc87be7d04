package harness

import (
	"fmt"
	"time"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/engine"
)

// Result captures one fixture execution: the full chart plus every
// expectation mismatch.
type Result struct {
	Fixture *Fixture
	Chart   *engine.Result

	// Errors lists expectation failures; empty means the fixture passed.
	Errors []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// AddError records an expectation failure.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Run executes a fixture against a fresh engine and evaluates its
// expectations. The returned error covers malformed fixtures and engine
// failures; expectation mismatches land in Result.Errors instead.
func Run(fixture *Fixture) (*Result, error) {
	req, err := buildRequest(&fixture.Input)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", fixture.Name, err)
	}

	e := engine.New(astro.Calculator{}, nil)
	chart, err := e.Analyze(req)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", fixture.Name, err)
	}

	result := &Result{Fixture: fixture, Chart: chart}
	evaluate(result)
	return result, nil
}

// buildRequest converts the YAML input into an engine request.
func buildRequest(in *FixtureInput) (engine.Request, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return engine.Request{}, fmt.Errorf("invalid date %q: %w", in.Date, err)
	}

	clockText := in.Time
	if clockText == "" {
		clockText = "00:00"
	}
	clock, err := time.Parse("15:04", clockText)
	if err != nil {
		return engine.Request{}, fmt.Errorf("invalid time %q: %w", in.Time, err)
	}

	req := engine.Request{
		Year:      date.Year(),
		Month:     int(date.Month()),
		Day:       date.Day(),
		Hour:      clock.Hour(),
		Minute:    clock.Minute(),
		Zone:      in.Zone,
		Longitude: in.Longitude,
		Preset:    in.Preset,
		Gender:    in.Gender,
	}
	if in.Yearly != "" {
		if _, err := fmt.Sscanf(in.Yearly, "%d:%d", &req.YearlyFrom, &req.YearlyTo); err != nil {
			return engine.Request{}, fmt.Errorf("invalid yearly range %q: want FROM:TO", in.Yearly)
		}
	}
	return req, nil
}

// evaluate compares the chart against the fixture's expectations.
func evaluate(r *Result) {
	expect := r.Fixture.Expect
	chart := r.Chart

	actual := map[string]string{
		"year":  chart.Pillars.Year.String(),
		"month": chart.Pillars.Month.String(),
		"day":   chart.Pillars.Day.String(),
		"hour":  chart.Pillars.Hour.String(),
	}
	for position, want := range expect.Pillars {
		if got := actual[position]; got != want {
			r.AddError(fmt.Sprintf("%s pillar: got %s, want %s", position, got, want))
		}
	}

	if expect.DayMaster != "" && chart.TenGods.DayMaster != expect.DayMaster {
		r.AddError(fmt.Sprintf("day master: got %s, want %s", chart.TenGods.DayMaster, expect.DayMaster))
	}
	if expect.StrengthLevel != "" && chart.Strength.Level != expect.StrengthLevel {
		r.AddError(fmt.Sprintf("strength level: got %s, want %s", chart.Strength.Level, expect.StrengthLevel))
	}
	if expect.Lunar != "" {
		if got := lunarText(chart); got != expect.Lunar {
			r.AddError(fmt.Sprintf("lunar date: got %s, want %s", got, expect.Lunar))
		}
	}
	if expect.Term != "" && chart.SolarTerm.Current.Key != expect.Term {
		r.AddError(fmt.Sprintf("solar term: got %s, want %s", chart.SolarTerm.Current.Key, expect.Term))
	}
}

// lunarText renders the lunar date in the fixture's notation.
func lunarText(chart *engine.Result) string {
	text := fmt.Sprintf("%d-%02d-%02d", chart.Lunar.Year, chart.Lunar.Month, chart.Lunar.Day)
	if chart.Lunar.Leap {
		text += " leap"
	}
	return text
}

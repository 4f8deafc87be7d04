package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/saju/internal/engine"
)

// ChartSnapshot is the golden-file image of one chart. Only discrete
// fields appear; scores, longitudes and instants stay out so the files
// are byte-stable.
type ChartSnapshot struct {
	Name      string   `json:"name"`
	Pillars   []string `json:"pillars"`
	SolarYear int      `json:"solar_year"`
	Lunar     string   `json:"lunar"`

	TermCurrent string `json:"term_current"`
	TermNext    string `json:"term_next"`

	DayMaster     string `json:"day_master"`
	StrengthLevel string `json:"strength_level"`
	Yongshen      string `json:"yongshen"`

	Relations []string `json:"relations"`
	Stages    []string `json:"stages"`

	LuckDirection string   `json:"luck_direction"`
	LuckStartAge  int      `json:"luck_start_age"`
	LuckPillars   []string `json:"luck_pillars"`

	Yearly []string `json:"yearly,omitempty"`
}

// BuildSnapshot flattens a chart into its golden form.
func BuildSnapshot(name string, chart *engine.Result) ChartSnapshot {
	snap := ChartSnapshot{
		Name: name,
		Pillars: []string{
			chart.Pillars.Year.String(),
			chart.Pillars.Month.String(),
			chart.Pillars.Day.String(),
			chart.Pillars.Hour.String(),
		},
		SolarYear:     chart.Pillars.SolarYear,
		Lunar:         lunarText(chart),
		TermCurrent:   chart.SolarTerm.Current.Key,
		TermNext:      chart.SolarTerm.Next.Key,
		DayMaster:     chart.TenGods.DayMaster,
		StrengthLevel: chart.Strength.Level,
		Yongshen: fmt.Sprintf("%s/%s (%s)",
			chart.Yongshen.Primary, chart.Yongshen.Secondary, chart.Yongshen.Method),
		Relations:     []string{},
		Stages:        []string{},
		LuckDirection: chart.MajorLuck.Direction,
		LuckStartAge:  chart.MajorLuck.StartAge,
		LuckPillars:   []string{},
	}

	for _, rel := range chart.Relations.All {
		snap.Relations = append(snap.Relations, rel.Label)
	}
	for _, st := range chart.Stages {
		snap.Stages = append(snap.Stages, fmt.Sprintf("%s: %s", st.Position, st.Stage))
	}
	for _, b := range chart.MajorLuck.Pillars {
		snap.LuckPillars = append(snap.LuckPillars, b.Pillar.String())
	}
	for _, y := range chart.YearlyLuck {
		snap.Yearly = append(snap.Yearly, fmt.Sprintf("%d %s", y.Year, y.Pillar))
	}
	return snap
}

// AssertGolden compares a chart snapshot against its golden file under
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, chart *engine.Result) error {
	t.Helper()

	data, err := json.MarshalIndent(BuildSnapshot(name, chart), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}

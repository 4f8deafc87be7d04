package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/engine"
)

// BirthOptions holds the birth-instant flags shared by the chart and
// luck commands.
type BirthOptions struct {
	Date        string
	Time        string
	Zone        string
	Longitude   float64
	Preset      string
	PresetsFile string
	Gender      string
}

func addBirthFlags(cmd *cobra.Command, opts *BirthOptions) {
	cmd.Flags().StringVar(&opts.Date, "date", "", "birth date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Time, "time", "00:00", "birth time as HH:MM")
	cmd.Flags().StringVar(&opts.Zone, "zone", "Asia/Seoul", "IANA time zone of the birth instant")
	cmd.Flags().Float64Var(&opts.Longitude, "longitude", 0, "birthplace longitude in degrees east (enables mean solar correction)")
	cmd.Flags().StringVar(&opts.Preset, "preset", "standard", "resolution preset name")
	cmd.Flags().StringVar(&opts.PresetsFile, "presets-file", "", "CUE file with custom preset definitions")
	cmd.Flags().StringVar(&opts.Gender, "gender", "", "gender for decade luck direction (male|female)")
	_ = cmd.MarkFlagRequired("date")
}

// buildRequest converts the flags into an engine request. The longitude
// flows through only when the flag was set; custom presets from a CUE
// file shadow the built-in names.
func (o *BirthOptions) buildRequest(cmd *cobra.Command) (engine.Request, error) {
	date, err := time.Parse("2006-01-02", o.Date)
	if err != nil {
		return engine.Request{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", o.Date)
	}
	clock, err := time.Parse("15:04", o.Time)
	if err != nil {
		return engine.Request{}, fmt.Errorf("invalid --time %q: want HH:MM", o.Time)
	}

	req := engine.Request{
		Year:   date.Year(),
		Month:  int(date.Month()),
		Day:    date.Day(),
		Hour:   clock.Hour(),
		Minute: clock.Minute(),
		Zone:   o.Zone,
		Preset: o.Preset,
		Gender: o.Gender,
	}
	if cmd.Flags().Changed("longitude") {
		lon := o.Longitude
		req.Longitude = &lon
	}

	if o.PresetsFile != "" {
		loaded, errs := LoadPresets(o.PresetsFile)
		if len(errs) > 0 {
			return engine.Request{}, fmt.Errorf("loading presets from %s: %v", o.PresetsFile, errs[0])
		}
		for i := range loaded {
			if loaded[i].Name == o.Preset {
				req.CustomPreset = &loaded[i]
				break
			}
		}
	}
	return req, nil
}

// ChartOptions holds flags for the chart command.
type ChartOptions struct {
	*RootOptions
	Birth       BirthOptions
	CurrentYear int
	YearlyRange string
}

// NewChartCommand creates the chart command.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Resolve a birth chart with the full analysis",
		Long: `Resolve the four pillars of a birth instant and run every analysis
layer: lunar date, solar-term context, ten gods, strength, relations,
useful element, twelve stages and luck projections.

Example:
  saju chart --date 1990-02-01 --time 12:10 --zone Asia/Seoul --longitude 126.9778
  saju chart --date 1990-02-01 --time 12:10 --gender male --yearly 2024:2026 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(opts, cmd)
		},
	}

	addBirthFlags(cmd, &opts.Birth)
	cmd.Flags().IntVar(&opts.CurrentYear, "current-year", 0, "adds the current age to the provenance block")
	cmd.Flags().StringVar(&opts.YearlyRange, "yearly", "", "yearly luck range as FROM:TO")

	return cmd
}

func runChart(opts *ChartOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts.RootOptions)

	req, err := opts.Birth.buildRequest(cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid chart request", err)
	}
	req.CurrentYear = opts.CurrentYear
	if opts.YearlyRange != "" {
		if req.YearlyFrom, req.YearlyTo, err = parseYearRange(opts.YearlyRange); err != nil {
			return WrapExitError(ExitCommandError, "invalid --yearly range", err)
		}
	}

	e := engine.New(astro.Calculator{}, nil)
	res, err := e.Analyze(req)
	if err != nil {
		return reportChartError(f, err)
	}

	return f.Success(res, func(w io.Writer) { renderChart(w, res) })
}

func parseYearRange(s string) (from, to int, err error) {
	if _, err = fmt.Sscanf(s, "%d:%d", &from, &to); err != nil {
		return 0, 0, fmt.Errorf("%q: want FROM:TO", s)
	}
	if to < from {
		return 0, 0, fmt.Errorf("%q: empty range", s)
	}
	return from, to, nil
}

// reportChartError prints the typed engine failure and converts it to
// an exit code.
func reportChartError(f *OutputFormatter, err error) error {
	code := "COMMAND_ERROR"
	var details interface{}
	var ce *engine.ChartError
	if errors.As(err, &ce) {
		code = string(ce.Code)
		details = ce.Details
	}
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(ExitFailure, "chart resolution failed", err)
}

func renderChart(w io.Writer, res *engine.Result) {
	p := res.Pillars
	fmt.Fprintf(w, "Pillars   %s %s %s %s  (year month day hour)\n",
		p.Year, p.Month, p.Day, p.Hour)
	fmt.Fprintf(w, "Lunar     %d-%02d-%02d", res.Lunar.Year, res.Lunar.Month, res.Lunar.Day)
	if res.Lunar.Leap {
		fmt.Fprint(w, " (leap month)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Term      %s (%s), next %s in %d days\n",
		res.SolarTerm.Current.Name, res.SolarTerm.Current.Korean,
		res.SolarTerm.Next.Name, res.SolarTerm.DaysUntilNext)
	fmt.Fprintf(w, "DayMaster %s (%s)\n", res.TenGods.DayMaster, res.TenGods.DayMasterElement)
	fmt.Fprintf(w, "Strength  %s (score %.1f)\n", res.Strength.Level, res.Strength.Score)
	fmt.Fprintf(w, "Yongshen  %s", res.Yongshen.Primary)
	if res.Yongshen.Secondary != "" {
		fmt.Fprintf(w, " / %s", res.Yongshen.Secondary)
	}
	fmt.Fprintf(w, " (%s method)\n", res.Yongshen.Method)

	fmt.Fprintf(w, "Relations %d detected\n", len(res.Relations.All))
	for _, rel := range res.Relations.All {
		fmt.Fprintf(w, "  - %s\n", rel.Label)
	}

	fmt.Fprintln(w, "Stages")
	for _, st := range res.Stages {
		fmt.Fprintf(w, "  %-6s %s (%s)\n", st.Position, st.Stage, st.Korean)
	}

	fmt.Fprintf(w, "Luck      %s from age %d\n", res.MajorLuck.Direction, res.MajorLuck.StartAge)
	for _, b := range res.MajorLuck.Pillars {
		fmt.Fprintf(w, "  %2d-%2d  %s\n", b.StartAge, b.EndAge, b.Pillar)
	}
	for _, y := range res.YearlyLuck {
		fmt.Fprintf(w, "  %d  %s (age %d)\n", y.Year, y.Pillar, y.Age)
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/engine"
)

// LuckOptions holds flags for the luck command.
type LuckOptions struct {
	*RootOptions
	Birth       BirthOptions
	Bands       int
	YearlyRange string
}

// luckPayload is the JSON body of the luck command.
type luckPayload struct {
	Major  interface{} `json:"major"`
	Yearly interface{} `json:"yearly,omitempty"`
}

// NewLuckCommand creates the luck command.
func NewLuckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LuckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "luck",
		Short: "Project decade and yearly luck pillars",
		Long: `Project the decade luck sequence of a birth chart, and optionally
yearly luck over a calendar range.

Example:
  saju luck --date 1990-02-01 --time 12:10 --gender male
  saju luck --date 1990-02-01 --gender female --bands 10 --yearly 2024:2026`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLuck(opts, cmd)
		},
	}

	addBirthFlags(cmd, &opts.Birth)
	cmd.Flags().IntVar(&opts.Bands, "bands", 0, "number of decade bands (default 8)")
	cmd.Flags().StringVar(&opts.YearlyRange, "yearly", "", "yearly luck range as FROM:TO")

	return cmd
}

func runLuck(opts *LuckOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts.RootOptions)

	req, err := opts.Birth.buildRequest(cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid luck request", err)
	}
	req.LuckBands = opts.Bands
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

	payload := luckPayload{Major: res.MajorLuck}
	if len(res.YearlyLuck) > 0 {
		payload.Yearly = res.YearlyLuck
	}
	return f.Success(payload, func(w io.Writer) {
		fmt.Fprintf(w, "Direction %s (%s), onset age %d\n",
			res.MajorLuck.Direction, res.MajorLuck.Gender, res.MajorLuck.StartAge)
		for _, b := range res.MajorLuck.Pillars {
			fmt.Fprintf(w, "  %2d-%2d  %s\n", b.StartAge, b.EndAge, b.Pillar)
		}
		for _, y := range res.YearlyLuck {
			fmt.Fprintf(w, "  %d  %s (age %d)\n", y.Year, y.Pillar, y.Age)
		}
	})
}

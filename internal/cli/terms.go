package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/solarterm"
)

// TermsOptions holds flags for the terms command.
type TermsOptions struct {
	*RootOptions
	Year int
	At   string
	Zone string
}

// termEntry is one row of the year listing.
type termEntry struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Korean    string  `json:"korean"`
	Longitude float64 `json:"longitude"`
	Instant   string  `json:"instant"`
}

// NewTermsCommand creates the terms command.
func NewTermsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TermsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "List solar terms or locate an instant among them",
		Long: `List the 24 solar-term crossing instants of a year, or resolve the
term position of a specific instant with --at.

Example:
  saju terms --year 1990
  saju terms --at 1990-02-01T12:10 --zone Asia/Seoul`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerms(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "calendar year to list")
	cmd.Flags().StringVar(&opts.At, "at", "", "instant to locate, as YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&opts.Zone, "zone", "Asia/Seoul", "zone for input parsing and output rendering")

	return cmd
}

func runTerms(opts *TermsOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts.RootOptions)
	loc := solarterm.NewLocator(astro.Calculator{})

	zone, err := time.LoadLocation(opts.Zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown zone", err)
	}

	if opts.At != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04", opts.At, zone)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --at instant", err)
		}
		pos, err := loc.At(t)
		if err != nil {
			return WrapExitError(ExitFailure, "term location failed", err)
		}
		return f.Success(pos, func(w io.Writer) {
			fmt.Fprintf(w, "Sun at %.3f°\n", pos.SunLongitude)
			fmt.Fprintf(w, "Current  %s (%s) since %s (%d days)\n",
				pos.Current.Name, pos.Current.Korean,
				pos.CurrentAt.In(zone).Format("2006-01-02 15:04"), pos.DaysSinceCurrent)
			fmt.Fprintf(w, "Next     %s (%s) at %s (%d days)\n",
				pos.Next.Name, pos.Next.Korean,
				pos.NextAt.In(zone).Format("2006-01-02 15:04"), pos.DaysUntilNext)
		})
	}

	if opts.Year == 0 {
		return NewExitError(ExitCommandError, "one of --year or --at is required")
	}

	entries := make([]termEntry, 0, len(solarterm.Terms))
	for _, term := range solarterm.Terms {
		at, err := loc.TermInstant(opts.Year, term)
		if err != nil {
			return WrapExitError(ExitFailure, "term computation failed", err)
		}
		entries = append(entries, termEntry{
			Key:       term.Key,
			Name:      term.Name,
			Korean:    term.Korean,
			Longitude: float64(term.Longitude),
			Instant:   at.In(zone).Format("2006-01-02 15:04"),
		})
	}
	return f.Success(entries, func(w io.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%-16s %-4s %4.0f°  %s\n", e.Name, e.Korean, e.Longitude, e.Instant)
		}
	})
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/saju/internal/astro"
	"github.com/roach88/saju/internal/lunar"
)

// LunarOptions holds flags for the lunar command group.
type LunarOptions struct {
	*RootOptions
	Date     string
	Database string
	FromYear int
	ToYear   int
}

// NewLunarCommand creates the lunar command with its convert and seed
// subcommands.
func NewLunarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lunar",
		Short: "Lunisolar calendar conversion and table seeding",
	}
	cmd.AddCommand(newLunarConvertCommand(rootOpts))
	cmd.AddCommand(newLunarSeedCommand(rootOpts))
	return cmd
}

func newLunarConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LunarOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a solar date to its lunisolar date",
		Long: `Convert a solar calendar date to the lunisolar calendar. With --db the
conversion reads a seeded SQLite table; otherwise it computes the date
astronomically.

Example:
  saju lunar convert --date 1990-02-01
  saju lunar convert --date 1990-02-01 --db ./lunar.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLunarConvert(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "solar date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to a seeded SQLite lunar table")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runLunarConvert(opts *LunarOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts.RootOptions)

	date, err := time.Parse("2006-01-02", opts.Date)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --date", err)
	}

	var provider lunar.Provider = lunar.NewAstronomical(astro.Calculator{}, nil)
	if opts.Database != "" {
		db, err := lunar.OpenSQLite(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open lunar table", err)
		}
		defer db.Close()
		provider = db
	}

	ld, err := provider.FromSolar(date.Year(), int(date.Month()), date.Day())
	if err != nil {
		return WrapExitError(ExitFailure, "lunar conversion failed", err)
	}

	return f.Success(ld, func(w io.Writer) {
		fmt.Fprintf(w, "%d-%02d-%02d", ld.Year, ld.Month, ld.Day)
		if ld.Leap {
			fmt.Fprint(w, " (leap month)")
		}
		fmt.Fprintln(w)
	})
}

func newLunarSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LunarOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Materialize a SQLite lunar table from the astronomical provider",
		Long: `Compute lunisolar months astronomically over a year range and write
them into a SQLite table file, creating it if needed. Seeding is
idempotent; overlapping ranges are replaced.

Example:
  saju lunar seed --db ./lunar.db --from 1900 --to 2050`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLunarSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite table file (required)")
	cmd.Flags().IntVar(&opts.FromYear, "from", 1900, "first solar year to seed")
	cmd.Flags().IntVar(&opts.ToYear, "to", 2050, "last solar year to seed")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLunarSeed(opts *LunarOptions, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	if opts.ToYear < opts.FromYear {
		return NewExitError(ExitCommandError, "--to must not precede --from")
	}

	slog.Info("opening lunar table", "path", opts.Database)
	db, err := lunar.OpenSQLite(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open lunar table", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing lunar table", "error", closeErr)
		}
	}()

	source := lunar.NewAstronomical(astro.Calculator{}, nil)
	slog.Info("seeding", "from", opts.FromYear, "to", opts.ToYear)
	if err := db.Seed(source, opts.FromYear, opts.ToYear); err != nil {
		return WrapExitError(ExitFailure, "seeding failed", err)
	}
	slog.Info("seeding complete")

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d-%d into %s\n", opts.FromYear, opts.ToYear, opts.Database)
	return nil
}

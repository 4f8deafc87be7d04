package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/saju/internal/pillars"
)

// PresetsOptions holds flags for the presets command.
type PresetsOptions struct {
	*RootOptions
	File string
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PresetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List resolution presets",
		Long: `List the built-in resolution presets, plus any custom definitions
from a CUE file.

Example:
  saju presets
  saju presets --file ./presets.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "CUE file with custom preset definitions")

	return cmd
}

func runPresets(opts *PresetsOptions, cmd *cobra.Command) error {
	f := newFormatter(cmd, opts.RootOptions)

	var all []pillars.Preset
	for _, name := range pillars.PresetNames() {
		p, err := pillars.PresetByName(name)
		if err != nil {
			return WrapExitError(ExitCommandError, "preset registry inconsistent", err)
		}
		all = append(all, p)
	}

	if opts.File != "" {
		loaded, errs := LoadPresets(opts.File)
		if len(errs) > 0 {
			return WrapExitError(ExitCommandError, "failed to load custom presets", errs[0])
		}
		all = append(all, loaded...)
	}

	return f.Success(all, func(w io.Writer) {
		for _, p := range all {
			correction := "off"
			if p.LongitudeCorrection {
				correction = "on"
			}
			fmt.Fprintf(w, "%-10s longitude correction %-3s  day boundary %s\n",
				p.Name, correction, p.DayBoundary)
		}
	})
}

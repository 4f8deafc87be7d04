package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/saju/internal/pillars"
)

// LoadError represents an error that occurred during preset loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants for preset loading.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeLoadFailed    = "E004" // CUE load failed
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeBuildFailed   = "E006" // CUE build failed
	ErrCodeInvalidPreset = "E201" // Preset fails validation
)

// presetFields mirrors one preset body in the CUE file.
type presetFields struct {
	LongitudeCorrection bool   `json:"longitude_correction"`
	DayBoundary         string `json:"day_boundary"`
}

// knownPresetFields is the closed set of labels a preset body may carry.
// Decode follows encoding/json semantics and drops unmatched fields, so
// typos must be rejected before decoding.
var knownPresetFields = map[string]bool{
	"longitude_correction": true,
	"day_boundary":         true,
}

// unknownPresetField returns the first label outside the closed set.
func unknownPresetField(v cue.Value) (string, bool) {
	fields, err := v.Fields()
	if err != nil {
		return "", false
	}
	for fields.Next() {
		if !knownPresetFields[fields.Label()] {
			return fields.Label(), true
		}
	}
	return "", false
}

// LoadPresets loads custom preset definitions from a CUE file. The file
// declares presets under a top-level "preset" struct keyed by name:
//
//	preset: solar: {
//	    longitude_correction: true
//	    day_boundary:         "zi-hour"
//	}
//
// All definitions are validated; every invalid one contributes an error
// while valid ones still load.
func LoadPresets(path string) ([]pillars.Preset, []error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("presets file not found: %s", path)}}
	} else if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing presets file: %v", err)}}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{path}, &load.Config{})
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE file: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	presetsVal := value.LookupPath(cue.ParsePath("preset"))
	if !presetsVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: "no top-level preset struct found"}}
	}

	iter, err := presetsVal.Fields()
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating presets: %v", err)}}
	}

	var (
		out  []pillars.Preset
		errs []error
	)
	for iter.Next() {
		name := iter.Label()

		if label, ok := unknownPresetField(iter.Value()); ok {
			errs = append(errs, &LoadError{
				Code:    ErrCodeInvalidPreset,
				Message: fmt.Sprintf("preset %q: unknown field %q", name, label),
				Pos:     iter.Value().Pos(),
			})
			continue
		}

		var fields presetFields
		if decodeErr := iter.Value().Decode(&fields); decodeErr != nil {
			errs = append(errs, &LoadError{
				Code:    ErrCodeInvalidPreset,
				Message: fmt.Sprintf("preset %q: %v", name, decodeErr),
				Pos:     iter.Value().Pos(),
			})
			continue
		}

		p := pillars.Preset{
			Name:                name,
			LongitudeCorrection: fields.LongitudeCorrection,
			DayBoundary:         pillars.DayBoundary(fields.DayBoundary),
		}
		if validateErr := p.Validate(); validateErr != nil {
			errs = append(errs, &LoadError{
				Code:    ErrCodeInvalidPreset,
				Message: fmt.Sprintf("preset %q: %v", name, validateErr),
				Pos:     iter.Value().Pos(),
			})
			continue
		}
		out = append(out, p)
	}

	if len(out) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no presets found in file"})
	}
	return out, errs
}

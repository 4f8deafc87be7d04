package lunar

import "errors"

// Date is a lunisolar calendar date. Month is 1..12; Leap marks the
// intercalary duplicate of that month number.
type Date struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Leap  bool `json:"leap"`
}

// Provider resolves solar calendar dates to lunar dates. Implementations
// must be side-effect-free lookups.
type Provider interface {
	FromSolar(year, month, day int) (Date, error)
}

// ErrNotCovered reports a solar date outside the provider's coverage.
var ErrNotCovered = errors.New("solar date outside lunar table coverage")

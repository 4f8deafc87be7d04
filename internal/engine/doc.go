// Package engine is the single entry point of the chart system: it
// accepts a civil birth instant with location and options, and returns
// the full analysis aggregate in one synchronous call.
//
// The engine owns no state across calls. Every request resolves fresh
// from the injected date adapter and lunar provider, so concurrent use
// needs no locking. Failures are terminal and typed: see ChartError and
// its code constants.
package engine

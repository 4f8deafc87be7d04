// Package harness provides a conformance testing layer for the chart
// engine: YAML fixtures describe a birth input with expected headline
// values, and golden files snapshot the full discrete output.
//
// Fixtures keep the expectation surface small (pillars, day master,
// strength band, lunar date) so they stay readable; the golden snapshot
// covers everything else. Snapshots hold only discrete fields, never
// floating-point values, so the files are byte-stable across platforms.
package harness

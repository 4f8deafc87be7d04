// Package lunar converts solar calendar dates to lunisolar dates.
//
// Two providers implement the lookup. Astronomical derives months from new
// moon conjunctions and numbers them with the classical winter-solstice
// rule: the month containing the December solstice is month 11, and in a
// 13-month sui the first month without a major solar term (중기) is the
// leap month. SQLite reads a prepared table file, treating the calendar as
// an opaque lookup; a table can be materialized from any Provider with
// Seed.
//
// Civil day boundaries use a configurable reference zone (default UTC+9,
// the Korean convention; the Chinese calendar uses UTC+8 and occasionally
// disagrees by one day near midnight conjunctions).
package lunar

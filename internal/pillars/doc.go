// Package pillars resolves a zone-aware civil instant into the four
// sexagenary pillars (year, month, day, hour).
//
// Resolution is policy-driven by a closed set of presets controlling the
// mean-solar-time longitude correction and the day-boundary convention.
// The year boundary is Li Chun (Spring Begins), not January 1; the month
// boundary follows the twelve principal solar terms; both are derived from
// the sun's actual longitude at the (corrected) instant, so boundary-
// adjacent dates resolve consistently with the astronomy.
//
// Results carry full provenance (effective solar year, effective day, sun
// longitude, adjusted instant) so downstream consumers can audit why a
// boundary-adjacent date resolved the way it did.
package pillars

// Package astro is the engine's date adapter: the sole source of real-world
// time truth. It provides epoch-millisecond conversion, timezone-aware civil
// construction, and apparent ecliptic longitudes of the sun and moon.
//
// Longitudes use the low-precision series from Meeus, Astronomical
// Algorithms (2nd ed.), chapters 25 and 47. Accuracy is roughly 0.01° for
// the sun and 0.1° for the moon, which bounds solar-term crossing instants
// to under a minute and new-moon instants to a few minutes. ΔT is ignored;
// for the supported year range it stays below the series' own error.
//
// The adapter is side-effect-free and stateless, preserving the engine's
// purity guarantees. All operations outside the supported year range fail
// with ErrOutOfRange rather than extrapolating.
package astro

// Package solarterm locates the 24 solar terms: calendar markers defined by
// the sun's apparent ecliptic longitude, spaced exactly 15 degrees apart
// starting at 285 (Minor Cold). Term identity is invariant; only the
// crossing instants vary by year.
//
// Crossing instants are found by Newton-style iteration on the wrapped
// longitude difference, using the date adapter as the source of solar
// position. The sun advances ~0.9856 degrees per day, so a handful of
// iterations converges well below the adapter's own accuracy.
package solarterm

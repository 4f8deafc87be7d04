// Package ganzhi provides the foundational value types for the Saju engine.
//
// This package contains the closed symbol sets (ten heavenly stems, twelve
// earthly branches, five elements, two polarities), the sexagenary 60-cycle
// index algebra, and Julian Day Number arithmetic. All other internal
// packages import ganzhi; ganzhi imports nothing internal. This keeps it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - All tables are package-level, exhaustively initialized, never mutated
//   - Cycle arithmetic goes through a single normalization primitive (Mod)
//     so negative wraparound behaves identically everywhere
//   - Raw symbol lookups (StemIndex, BranchIndex) return -1 sentinels, not
//     errors: callers treat "not found" as "not applicable"
package ganzhi

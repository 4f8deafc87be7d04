// Package relations detects the combinatorial stem/branch relations of a
// chart: stem combinations, branch clashes, six combinations, triple and
// directional combinations, punishments, harms and destructions.
//
// Each detector is a pure scan of fixed tables over the four pillars.
// Pair relations fire once per unordered pillar pair; set relations
// (triples, punishments) fire once per maximal qualifying set of branch
// values, listing every position that participates. A pair may legally
// appear under two different types (巳申 is both a six combination and a
// destruction) but never twice under the same type.
package relations

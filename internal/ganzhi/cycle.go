package ganzhi

// Mod normalizes n into [0, m) with mathematical (floored) semantics:
// negative inputs wrap from the top, so Mod(-1, 60) == 59.
//
// Every piece of cycle arithmetic in the engine goes through this one
// primitive. Go's % operator truncates toward zero, which would make
// wraparound behavior depend on the sign of the input.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

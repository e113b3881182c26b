package core

// RandomSource supplies every random draw the simulation makes: board prices,
// dice rolls, seating shuffles and the Random strategy's coin flips.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform int in [0, n). Precondition: n > 0.
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// IntRange returns a uniform int in [lo, hi], both inclusive.
func IntRange(src RandomSource, lo, hi int) int {
	if hi < lo {
		panic("core: IntRange called with hi < lo")
	}
	return lo + src.Intn(hi-lo+1)
}

// Coin returns a uniform bool.
func Coin(src RandomSource) bool {
	return src.Intn(2) == 1
}

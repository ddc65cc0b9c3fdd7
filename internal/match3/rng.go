package match3

import "math/rand"

// RandomSource yields uniform integers in [0, n).
// It is the only source of randomness the engine consumes, which keeps
// every operation replayable: feed the same source, get the same boards.
type RandomSource interface {
	IntN(n int) int
}

// randSource adapts math/rand to RandomSource.
type randSource struct {
	r *rand.Rand
}

// NewRand returns a RandomSource seeded with the given value.
func NewRand(seed int64) RandomSource {
	return randSource{r: rand.New(rand.NewSource(seed))}
}

// WrapRand adapts an existing *rand.Rand.
func WrapRand(r *rand.Rand) RandomSource {
	return randSource{r: r}
}

func (s randSource) IntN(n int) int {
	return s.r.Intn(n)
}

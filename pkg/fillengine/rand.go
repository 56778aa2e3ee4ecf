package fillengine

import "math/rand"

// randSource is the minimal interface the engine needs from
// *rand.Rand, isolated so tie-break randomization is easy to reason
// about independently of candidate shuffling.
type randSource interface {
	Intn(n int) int
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

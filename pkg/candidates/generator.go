// Package candidates turns a slot pattern into an ordered sequence of
// dictionary words the fill engine can try. Deterministic mode streams
// the word index in its build-derived (dictionary) order; randomized
// mode shuffles that same set with a caller-supplied *rand.Rand so a
// run is reproducible given its seed. Grounded on tcstacks-crossy's
// pkg/grid/seed.go rand.New(rand.NewSource(...)) pattern: the engine
// never reads an ambient or process-global random source, only the one
// threaded through Options.
package candidates

import (
	"math/rand"

	"github.com/latticewords/xfill/pkg/wordindex"
)

// Generator produces candidate words for a slot pattern against one
// Index, in either deterministic or randomized order.
type Generator struct {
	index *wordindex.Index
	rng   *rand.Rand // nil in deterministic mode
}

// New returns a deterministic Generator.
func New(index *wordindex.Index) *Generator {
	return &Generator{index: index}
}

// NewRandomized returns a Generator whose candidate order is shuffled
// using rng. The caller owns rng's lifetime and seeding; the same rng
// (or an equally-seeded fresh one) reproduces the same order.
func NewRandomized(index *wordindex.Index, rng *rand.Rand) *Generator {
	return &Generator{index: index, rng: rng}
}

// Each streams every candidate for pattern to yield, stopping early if
// yield returns false. In deterministic mode this never materializes
// the full match set; in randomized mode the match set must be
// collected first so it can be shuffled, trading memory for a uniform
// shuffle.
func (g *Generator) Each(pattern []rune, yield func(word string) bool) {
	if g.rng == nil {
		g.index.MatchFunc(pattern, yield)
		return
	}
	words := g.index.Match(pattern)
	g.rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	for _, w := range words {
		if !yield(w) {
			return
		}
	}
}

// Count returns the number of candidates for pattern, used by the fill
// engine's most-constrained-variable heuristic. Order does not affect
// count, so this is the same in both modes.
func (g *Generator) Count(pattern []rune) int {
	return g.index.MatchCount(pattern)
}

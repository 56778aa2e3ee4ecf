package grid

import (
	"fmt"

	"github.com/latticewords/xfill/pkg/wordindex"
	"github.com/latticewords/xfill/pkg/xwerr"
)

// CheckWordLengths reports a StructuralError if any slot has a length
// for which the dictionary holds zero words. Such a slot can never be
// filled regardless of search strategy, so this is rejected up front
// rather than discovered only after the search exhausts every ordering.
// Grounded on tcstacks-crossy's pkg/grid wordlength.go (its fixed
// MinWordLength=3 floor), generalized to check against the actual
// dictionary's length distribution instead of a hardcoded minimum,
// since what matters is dictionary coverage, not an arbitrary floor.
func CheckWordLengths(g *Grid, ix *wordindex.Index) *xwerr.StructuralError {
	counts := ix.LengthCounts()
	for _, s := range g.Slots {
		if counts[s.Length] == 0 {
			return xwerr.NewStructural(fmt.Sprintf(
				"slot %d (%s, length %d) has no dictionary words of that length",
				s.ID, s.Direction, s.Length))
		}
	}
	return nil
}

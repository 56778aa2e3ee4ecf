package grid

import (
	"fmt"

	"github.com/latticewords/xfill/pkg/wordindex"
	"github.com/latticewords/xfill/pkg/xwerr"
)

// CheckAlphabet reports a StructuralError if any Fixed cell's letter is
// not a member of ix.Alphabet(). Such a letter can never appear in any
// dictionary match for its slot, so every query against that slot would
// silently come back empty (MatchCount/HasMatch both 0) and the search
// would misreport the grid as Infeasible rather than structurally
// unfillable. Checked up front alongside CheckConnected/CheckWordLengths
// so the two are never confused.
func CheckAlphabet(g *Grid, ix *wordindex.Index) *xwerr.StructuralError {
	alpha := ix.Alphabet()
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.Cells[r][c]
			if cell.State != Fixed {
				continue
			}
			if _, ok := alpha.Index(cell.Letter); !ok {
				return xwerr.NewStructural(fmt.Sprintf(
					"cell (%d,%d) has Fixed letter %q, which is outside the dictionary's alphabet",
					r, c, string(cell.Letter)))
			}
		}
	}
	return nil
}

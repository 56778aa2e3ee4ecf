// Package fillengine implements the fill algorithm: best-first
// backtracking with forward checking over a grid's slots. At each step
// it picks the slot with the fewest remaining candidates (most
// constrained variable), tries each candidate in the generator's order,
// forward-checks every crossing slot before committing a write, and
// undoes by tag on failure.
//
// Grounded on tcstacks-crossy's pkg/fill (recursive backtracking over
// entries, undo-on-backtrack shape), generalized from its
// next-entry-in-list traversal and unimplemented conflict/sort helpers
// into the spec's MRV-ordered, forward-checking search with an explicit
// undo log instead of ad hoc word removal.
package fillengine

import (
	"context"

	"github.com/latticewords/xfill/pkg/candidates"
	"github.com/latticewords/xfill/pkg/grid"
	"github.com/latticewords/xfill/pkg/wordindex"
	"github.com/latticewords/xfill/pkg/xwerr"
)

// Options configures one Fill run.
type Options struct {
	// Randomize selects shuffled candidate order and random tie-breaking
	// among equally-constrained slots. Deterministic (the zero value)
	// always tries candidates in dictionary order and breaks MRV ties by
	// the lower slot ID.
	Randomize bool

	// Seed seeds the run's *rand.Rand when Randomize is set. The same
	// seed against the same grid and dictionary reproduces the same
	// fill.
	Seed int64
}

// Fill attempts to assign a dictionary word to every slot of g so that
// every crossing agrees, respecting cells already Fixed. On success it
// writes the solution directly into g and returns nil. On failure it
// returns xwerr.ErrInfeasible (search exhausted) or xwerr.ErrCancelled
// (ctx was done), leaving g exactly as it was when Fill was called.
//
// Before any search, Fill runs the structural checks itself —
// grid.CheckConnected, grid.CheckWordLengths, and grid.CheckAlphabet —
// and returns a *xwerr.StructuralError if any of them fails. This is
// part of Fill's own contract, not just the CLI's: a disconnected grid,
// a slot length the dictionary cannot cover, or a Fixed letter outside
// the dictionary's alphabet can never be satisfied regardless of search
// strategy, and reporting that as ErrInfeasible instead would collapse
// the structural/infeasible distinction for any caller that imports
// this package directly.
func Fill(ctx context.Context, g *grid.Grid, ix *wordindex.Index, opts Options) error {
	if err := grid.CheckConnected(g); err != nil {
		return err
	}
	if err := grid.CheckWordLengths(g, ix); err != nil {
		return err
	}
	if err := grid.CheckAlphabet(g, ix); err != nil {
		return err
	}

	e := &engine{ctx: ctx, grid: g, index: ix}
	if opts.Randomize {
		e.gen = candidates.NewRandomized(ix, newRand(opts.Seed))
		e.rng = newRand(opts.Seed + 1) // distinct stream from candidate shuffling
		e.randomize = true
	} else {
		e.gen = candidates.New(ix)
	}

	if err := e.validatePrefilled(); err != nil {
		return err
	}

	remaining := make([]*grid.Slot, 0, len(g.Slots))
	for _, s := range g.Slots {
		if !s.IsComplete() {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == 0 {
		return nil // already fully and validly filled
	}

	ok, err := e.search(remaining)
	if err != nil {
		return err
	}
	if !ok {
		return xwerr.ErrInfeasible
	}
	return nil
}

type engine struct {
	ctx       context.Context
	grid      *grid.Grid
	index     *wordindex.Index
	gen       *candidates.Generator
	rng       randSource
	randomize bool
}

// validatePrefilled rejects, before any search, a grid whose already-
// complete slots spell a word outside the dictionary. This is what
// makes Fill idempotent: re-running it on an already-validly-filled
// grid finds zero remaining slots and returns immediately (see the
// len(remaining) == 0 check in Fill), and re-running it on an
// already-filled but invalid grid is rejected here instead of silently
// trying to search, which would otherwise mutate Filled cells without
// ever being able to fix the underlying Fixed-letter conflict.
func (e *engine) validatePrefilled() error {
	for _, s := range e.grid.Slots {
		if !s.IsComplete() {
			continue
		}
		word := []rune(s.Pattern())
		if !e.index.Exists(string(word)) {
			return xwerr.ErrInfeasible
		}
	}
	return nil
}

// search tries to fill every slot in remaining, recursing one slot
// deeper per call. It returns (true, nil) on success, (false, nil) if
// every candidate ordering was exhausted, and (false, err) if ctx was
// cancelled mid-search.
func (e *engine) search(remaining []*grid.Slot) (bool, error) {
	select {
	case <-e.ctx.Done():
		return false, xwerr.ErrCancelled
	default:
	}

	if len(remaining) == 0 {
		return true, nil
	}

	slotIdx, pattern := e.pickSlot(remaining)
	slot := remaining[slotIdx]
	rest := make([]*grid.Slot, 0, len(remaining)-1)
	rest = append(rest, remaining[:slotIdx]...)
	rest = append(rest, remaining[slotIdx+1:]...)

	var searchErr error
	found := false
	e.gen.Each(pattern, func(word string) bool {
		tag := e.grid.NewTag()
		if !e.tryPlace(slot, []rune(word), tag) {
			e.grid.UndoTo(tag)
			return true // try next candidate
		}
		ok, err := e.search(rest)
		if err != nil {
			e.grid.UndoTo(tag)
			searchErr = err
			return false
		}
		if ok {
			found = true
			return false
		}
		e.grid.UndoTo(tag)
		return true
	})

	if searchErr != nil {
		return false, searchErr
	}
	return found, nil
}

// pickSlot chooses the most-constrained slot (fewest dictionary matches
// for its current pattern), breaking ties by lowest slot ID in
// deterministic mode or uniformly at random in randomized mode. It
// returns the chosen slot's index within remaining and its pattern.
func (e *engine) pickSlot(remaining []*grid.Slot) (int, []rune) {
	best := 0
	bestCount := -1
	var bestPattern []rune
	ties := []int{0}

	for i, s := range remaining {
		pattern := s.Pattern()
		count := e.gen.Count(pattern)
		switch {
		case bestCount == -1 || count < bestCount:
			bestCount = count
			best = i
			bestPattern = pattern
			ties = ties[:0]
			ties = append(ties, i)
		case count == bestCount:
			ties = append(ties, i)
		}
	}

	if len(ties) > 1 {
		if e.randomize {
			best = ties[e.rng.Intn(len(ties))]
		} else {
			best = ties[0]
			for _, t := range ties {
				if remaining[t].ID < remaining[best].ID {
					best = t
				}
			}
		}
		bestPattern = remaining[best].Pattern()
	}

	return best, bestPattern
}

// tryPlace forward-checks word against every crossing of slot before
// writing any cell: it verifies that after slot's cells take on word's
// letters, every crossing slot still has at least one dictionary match
// for its resulting pattern. Only if every crossing survives does it
// commit the writes under tag. Returns false (with nothing written) if
// the forward check fails.
func (e *engine) tryPlace(slot *grid.Slot, word []rune, tag int) bool {
	for i, c := range slot.Cells {
		if c.HasLetter() {
			if c.Letter != word[i] {
				return false // conflicts with a Fixed letter
			}
			continue
		}
		crossing, offset := slot.CrossingAt(i)
		if crossing != nil {
			crossPattern := crossing.Pattern()
			crossPattern[offset] = word[i]
			if !e.index.HasMatch(crossPattern) {
				return false
			}
		}
	}

	for i, c := range slot.Cells {
		if c.HasLetter() {
			continue
		}
		e.grid.WriteLetter(c, word[i], tag)
	}
	return true
}

// Package alphabet represents Σ, the finite letter set a wordlist is
// built from. Σ is not restricted to ASCII: Romanian, Icelandic, and
// other Latin-with-diacritics wordlists are first-class (see
// github.com/vthorsteinsson/GoSkrafl's Dawg/Alphabet for the same
// bitmap-over-runes idea in a sibling domain, Scrabble move generation).
package alphabet

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var folder = cases.Upper(language.Und)

// Fold canonicalizes a string the same way BuildIndex canonicalizes
// dictionary words, so that query patterns and dictionary entries are
// comparable. Unicode case folding (not strings.ToUpper) is required to
// get diacritics like ț/ţ or ö right.
func Fold(s string) string {
	return folder.String(s)
}

// Alphabet maps the runes observed in a wordlist to dense integer
// indices, suitable for use as bitset positions.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// Build constructs an Alphabet from an observed set of runes. The index
// assignment is sorted by codepoint so that two builds over the same
// rune set always agree, independent of map iteration order elsewhere.
func Build(observed map[rune]bool) *Alphabet {
	runes := make([]rune, 0, len(observed))
	for r := range observed {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		index[r] = i
	}
	return &Alphabet{runes: runes, index: index}
}

// Len returns |Σ|.
func (a *Alphabet) Len() int {
	return len(a.runes)
}

// Index returns the dense index of r, or false if r is not in Σ.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Rune returns the letter at dense index i. Panics if i is out of range;
// callers only ever pass indices they obtained from this Alphabet.
func (a *Alphabet) Rune(i int) rune {
	return a.runes[i]
}

// Runes returns Σ as a sorted slice, for diagnostics (e.g. the stats
// command).
func (a *Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

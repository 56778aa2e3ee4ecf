// Package wordindex implements the word index: a trie over Σ, one per
// word length, augmented at every node with per-remaining-depth letter
// sets. It answers Exists, Match, and PossibleLetters in sub-millisecond
// time for the patterns the fill engine generates.
//
// Grounded in the base trie shape of tcstacks-crossy's pkg/wordlist.Trie
// (map/struct-of-children, recursive wildcard descent) and in the
// Σ-as-dense-indices / fixed-width-bitset representation of GoSkrafl's
// Dawg/Alphabet, generalized with per-length roots (so a node's depth
// bitsets are never polluted by words of a different total length) and
// with the forward-checking query PossibleLetters the spec requires.
package wordindex

import (
	"unicode"

	"github.com/latticewords/xfill/pkg/alphabet"
	"github.com/latticewords/xfill/pkg/bitset"
)

// Wildcard is the rune a Pattern uses for "not yet known". It matches
// the same zero-value convention the grid package uses for an unfilled
// cell, so grid patterns can be passed to the index without translation.
const Wildcard rune = 0

const noIndex = -1

// Index is the built, immutable word index for one dictionary.
type Index struct {
	alpha        *alphabet.Alphabet
	tries        map[int]*trieNode
	count        int
	lengthCounts map[int]int
}

// BuildIndex builds an Index from a list of words. Words are folded
// case-insensitively, deduplicated, and words shorter than two letters
// or containing anything other than a Unicode letter are dropped. Σ is
// the set of letters observed across the surviving words. BuildIndex
// never fails: an index built from zero usable words is simply empty,
// and every query against it returns the empty/false answer.
func BuildIndex(words []string) *Index {
	seen := make(map[string]bool)
	observed := make(map[rune]bool)
	valid := make([]string, 0, len(words))

	for _, w := range words {
		folded := alphabet.Fold(w)
		runes := []rune(folded)
		if len(runes) < 2 {
			continue
		}
		ok := true
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				ok = false
				break
			}
		}
		if !ok || seen[folded] {
			continue
		}
		seen[folded] = true
		valid = append(valid, folded)
		for _, r := range runes {
			observed[r] = true
		}
	}

	alpha := alphabet.Build(observed)
	ix := &Index{
		alpha:        alpha,
		tries:        make(map[int]*trieNode),
		lengthCounts: make(map[int]int),
	}

	for _, w := range valid {
		runes := []rune(w)
		idx := make([]int, len(runes))
		for i, r := range runes {
			idx[i], _ = alpha.Index(r) // always present: alpha was built from these runes
		}
		root := ix.tries[len(idx)]
		if root == nil {
			root = &trieNode{}
			ix.tries[len(idx)] = root
		}
		insert(root, idx, alpha.Len())
		ix.count++
		ix.lengthCounts[len(idx)]++
	}

	return ix
}

// Alphabet returns the Σ this index was built over.
func (ix *Index) Alphabet() *alphabet.Alphabet {
	return ix.alpha
}

// Len returns the number of distinct dictionary words.
func (ix *Index) Len() int {
	return ix.count
}

// LengthCounts returns, for each word length with at least one entry,
// how many words of that length the index holds. Used by the stats
// command and by structural validation.
func (ix *Index) LengthCounts() map[int]int {
	out := make(map[int]int, len(ix.lengthCounts))
	for l, c := range ix.lengthCounts {
		out[l] = c
	}
	return out
}

// Exists reports whether w, case-folded, is in the dictionary.
func (ix *Index) Exists(w string) bool {
	runes := []rune(alphabet.Fold(w))
	root, ok := ix.tries[len(runes)]
	if !ok {
		return false
	}
	node := root
	for _, r := range runes {
		ai, ok := ix.alpha.Index(r)
		if !ok {
			return false
		}
		node = node.child(ai)
		if node == nil {
			return false
		}
	}
	return node.isEnd
}

// toIndices converts a Pattern (runes, Wildcard for unknown positions)
// to dense alphabet indices (noIndex for unknown). A known rune not
// found in Σ as given is looked up again after alphabet.Fold, so patterns
// are matched case-insensitively like Exists. Returns ok=false if any
// known rune still falls outside Σ, meaning the pattern can never match.
func (ix *Index) toIndices(pattern []rune) ([]int, bool) {
	out := make([]int, len(pattern))
	for i, r := range pattern {
		if r == Wildcard {
			out[i] = noIndex
			continue
		}
		ai, ok := ix.alpha.Index(r)
		if !ok {
			ai, ok = ix.alpha.Index([]rune(alphabet.Fold(string(r)))[0])
		}
		if !ok {
			return nil, false
		}
		out[i] = ai
	}
	return out, true
}

// MatchFunc streams every dictionary word matching pattern (same
// length, Wildcard matches any letter) to yield, in the index's
// deterministic build-derived order, stopping as soon as yield returns
// false. It never materializes the full match set, satisfying the
// streaming requirement for deterministic-mode candidate generation.
func (ix *Index) MatchFunc(pattern []rune, yield func(word string) bool) {
	root, ok := ix.tries[len(pattern)]
	if !ok {
		return
	}
	idx, ok := ix.toIndices(pattern)
	if !ok {
		return
	}
	buf := make([]rune, len(pattern))
	ix.walk(root, idx, 0, buf, yield)
}

func (ix *Index) walk(n *trieNode, pattern []int, pos int, buf []rune, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if pos == len(pattern) {
		if n.isEnd {
			return yield(string(buf))
		}
		return true
	}
	if pattern[pos] == noIndex {
		for _, e := range n.children {
			buf[pos] = ix.alpha.Rune(e.letter)
			if !ix.walk(e.node, pattern, pos+1, buf, yield) {
				return false
			}
		}
		return true
	}
	child := n.child(pattern[pos])
	if child == nil {
		return true
	}
	buf[pos] = ix.alpha.Rune(pattern[pos])
	return ix.walk(child, pattern, pos+1, buf, yield)
}

// Match returns every dictionary word matching pattern, in the index's
// deterministic build-derived order. Prefer MatchFunc or HasMatch in
// the fill engine's hot path; Match is for callers that want the whole
// set (tests, and the candidate generator's randomized mode, which
// shuffles it).
func (ix *Index) Match(pattern []rune) []string {
	var out []string
	ix.MatchFunc(pattern, func(w string) bool {
		out = append(out, w)
		return true
	})
	return out
}

// HasMatch reports whether any dictionary word matches pattern, without
// materializing the match set. Used by the fill engine's crossing
// forward-check, where only existence (not the word itself) matters.
func (ix *Index) HasMatch(pattern []rune) bool {
	found := false
	ix.MatchFunc(pattern, func(string) bool {
		found = true
		return false
	})
	return found
}

// MatchCount returns len(Match(pattern)) without allocating a result
// slice. Used by the fill engine's most-constrained-variable heuristic.
func (ix *Index) MatchCount(pattern []rune) int {
	n := 0
	ix.MatchFunc(pattern, func(string) bool {
		n++
		return true
	})
	return n
}

// PossibleLetters returns the set of alphabet indices c such that some
// dictionary word matches pattern and has c at position i. If position
// i is itself known, the result is that one letter when the pattern has
// a match, and empty otherwise.
//
// Fast path: when the known letters form a prefix of the pattern that
// ends before i and every position after that prefix is Wildcard, the
// answer is exactly the node's precomputed depth bitset reached by
// descending the known prefix — an O(L) walk with no branching. This is
// the common shape during forward checking: a slot usually has at most
// the one letter just fixed by its crossing neighbor.
//
// General path: any other arrangement of known letters (a known letter
// after a wildcard, or one at or after i) falls back to a
// correctness-first recursive descent that
// unions children at each interior wildcard and, at position i itself,
// verifies the remainder of the pattern can still be completed before
// accepting a letter. This can in the worst case touch the whole
// dictionary, but interior multi-wildcard patterns are rare once a
// couple of crossings have already fixed letters.
func (ix *Index) PossibleLetters(pattern []rune, i int) bitset.Set {
	result := bitset.New(ix.alpha.Len())
	root, ok := ix.tries[len(pattern)]
	if !ok {
		return result
	}
	idx, ok := ix.toIndices(pattern)
	if !ok {
		return result
	}
	if idx[i] != noIndex {
		if ix.HasMatch(pattern) {
			result.Add(idx[i])
		}
		return result
	}

	prefixLen := 0
	for prefixLen < len(idx) && idx[prefixLen] != noIndex {
		prefixLen++
	}

	fastPath := i >= prefixLen
	if fastPath {
		for p := prefixLen; p < len(idx); p++ {
			if p != i && idx[p] != noIndex {
				fastPath = false
				break
			}
		}
	}

	if fastPath {
		node := root
		for k := 0; k < prefixLen; k++ {
			node = node.child(idx[k])
			if node == nil {
				return result
			}
		}
		depth := i - prefixLen
		if depth < len(node.letters) {
			return node.letters[depth].Clone()
		}
		return result
	}

	ix.collect(root, idx, 0, i, result)
	return result
}

// collect implements the general (correctness-first) path of
// PossibleLetters: descend pattern, unioning over children at every
// Wildcard position, and at position i record every letter for which
// the remainder of the pattern can still be completed.
func (ix *Index) collect(n *trieNode, pattern []int, pos, i int, out bitset.Set) {
	if n == nil {
		return
	}
	if pos == i {
		for _, e := range n.children {
			if ix.matchesRemainder(e.node, pattern, pos+1) {
				out.Add(e.letter)
			}
		}
		return
	}
	if pattern[pos] == noIndex {
		for _, e := range n.children {
			ix.collect(e.node, pattern, pos+1, i, out)
		}
		return
	}
	ix.collect(n.child(pattern[pos]), pattern, pos+1, i, out)
}

// matchesRemainder reports whether some word completes pattern[pos:]
// starting from n.
func (ix *Index) matchesRemainder(n *trieNode, pattern []int, pos int) bool {
	if n == nil {
		return false
	}
	if pos == len(pattern) {
		return n.isEnd
	}
	if pattern[pos] == noIndex {
		for _, e := range n.children {
			if ix.matchesRemainder(e.node, pattern, pos+1) {
				return true
			}
		}
		return false
	}
	return ix.matchesRemainder(n.child(pattern[pos]), pattern, pos+1)
}

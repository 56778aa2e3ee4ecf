package wordindex

import "github.com/latticewords/xfill/pkg/bitset"

// trieNode is one node of a per-length trie. Every node carries, for
// each remaining depth δ below it, the set of letters observed at that
// depth among all of its terminal descendants (see letters below). This
// is the structure that lets PossibleLetters answer most queries with a
// single precomputed lookup instead of a re-scan of the dictionary.
//
// children is kept as a slice rather than a map so that traversal order
// is the order children were first inserted, which in turn is the order
// words were supplied to BuildIndex. That determinism is what makes
// deterministic-mode Match reproducible across runs.
type trieNode struct {
	children []childEdge
	isEnd    bool

	// letters[δ] is the union, over every word passing through this
	// node, of the letter found at position (depth-of-node + δ). Grown
	// lazily as longer words are inserted along this prefix.
	letters []bitset.Set
}

type childEdge struct {
	letter int
	node   *trieNode
}

func (n *trieNode) child(letter int) *trieNode {
	for _, e := range n.children {
		if e.letter == letter {
			return e.node
		}
	}
	return nil
}

func (n *trieNode) childOrCreate(letter int) *trieNode {
	if c := n.child(letter); c != nil {
		return c
	}
	c := &trieNode{}
	n.children = append(n.children, childEdge{letter: letter, node: c})
	return c
}

// ensureDepth grows n.letters to at least `need` entries, initializing
// any new entries to an empty Σ-sized bitset.
func (n *trieNode) ensureDepth(need, alphaLen int) {
	if len(n.letters) >= need {
		return
	}
	grown := make([]bitset.Set, need)
	copy(grown, n.letters)
	for i := len(n.letters); i < need; i++ {
		grown[i] = bitset.New(alphaLen)
	}
	n.letters = grown
}

// insert walks the trie rooted at root for one word, given as dense
// alphabet indices, recording isEnd at the terminal node and widening
// every visited node's depth bitsets to cover the letters still ahead.
func insert(root *trieNode, word []int, alphaLen int) {
	node := root
	length := len(word)
	for depth := 0; depth <= length; depth++ {
		remaining := length - depth
		node.ensureDepth(remaining, alphaLen)
		for j := depth; j < length; j++ {
			node.letters[j-depth].Add(word[j])
		}
		if depth == length {
			node.isEnd = true
			return
		}
		node = node.childOrCreate(word[depth])
	}
}

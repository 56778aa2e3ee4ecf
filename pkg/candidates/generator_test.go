package candidates

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/latticewords/xfill/pkg/wordindex"
)

func buildTestIndex() *wordindex.Index {
	return wordindex.BuildIndex([]string{"cat", "car", "can", "cap", "dot"})
}

func collect(g *Generator, pattern []rune) []string {
	var out []string
	g.Each(pattern, func(w string) bool {
		out = append(out, w)
		return true
	})
	return out
}

func TestDeterministicOrderStable(t *testing.T) {
	ix := buildTestIndex()
	pattern := []rune{'c', 'a', wordindex.Wildcard}
	a := collect(New(ix), pattern)
	b := collect(New(ix), pattern)
	if len(a) != len(b) {
		t.Fatalf("result sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("deterministic order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRandomizedOrderReproducibleWithSameSeed(t *testing.T) {
	ix := buildTestIndex()
	pattern := []rune{'c', 'a', wordindex.Wildcard}
	a := collect(NewRandomized(ix, rand.New(rand.NewSource(42))), pattern)
	b := collect(NewRandomized(ix, rand.New(rand.NewSource(42))), pattern)
	if len(a) != len(b) {
		t.Fatalf("result sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same-seed order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRandomizedAndDeterministicSameSet(t *testing.T) {
	ix := buildTestIndex()
	pattern := []rune{'c', 'a', wordindex.Wildcard}
	det := collect(New(ix), pattern)
	rnd := collect(NewRandomized(ix, rand.New(rand.NewSource(7))), pattern)
	sort.Strings(det)
	sort.Strings(rnd)
	if len(det) != len(rnd) {
		t.Fatalf("set sizes differ")
	}
	for i := range det {
		if det[i] != rnd[i] {
			t.Fatalf("sets differ: %v vs %v", det, rnd)
		}
	}
}

func TestEarlyStop(t *testing.T) {
	ix := buildTestIndex()
	pattern := []rune{'c', 'a', wordindex.Wildcard}
	count := 0
	New(ix).Each(pattern, func(string) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("yield returning false should stop after one candidate, got %d", count)
	}
}

func TestCount(t *testing.T) {
	ix := buildTestIndex()
	pattern := []rune{'c', 'a', wordindex.Wildcard}
	if n := New(ix).Count(pattern); n != 4 {
		t.Fatalf("Count() = %d, want 4", n)
	}
}

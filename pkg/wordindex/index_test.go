package wordindex

import (
	"sort"
	"testing"
)

func TestBuildIndexDedupesAndFoldsCase(t *testing.T) {
	ix := BuildIndex([]string{"cat", "CAT", "Cat", "dog"})
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}
	if !ix.Exists("cat") || !ix.Exists("CAT") || !ix.Exists("Dog") {
		t.Fatalf("expected case-insensitive Exists to find both words")
	}
}

func TestBuildIndexDropsShortAndNonLetterWords(t *testing.T) {
	ix := BuildIndex([]string{"a", "ab", "a1", "ok"})
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (ab, ok); got words filtered incorrectly", ix.Len())
	}
	if ix.Exists("a") || ix.Exists("a1") {
		t.Fatalf("short or non-letter words should have been dropped")
	}
}

func TestExists(t *testing.T) {
	ix := BuildIndex([]string{"cat", "cats", "car"})
	cases := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"cats", true},
		{"car", true},
		{"ca", false},
		{"dog", false},
		{"catss", false},
	}
	for _, c := range cases {
		if got := ix.Exists(c.word); got != c.want {
			t.Errorf("Exists(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestMatchWildcards(t *testing.T) {
	ix := BuildIndex([]string{"cat", "car", "can", "cap", "dot"})
	got := ix.Match([]rune("ca" + string(rune(0))))
	sort.Strings(got)
	want := []string{"CAN", "CAP", "CAR", "CAT"}
	if len(got) != len(want) {
		t.Fatalf("Match = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Match = %v, want %v", got, want)
		}
	}
}

func TestMatchFullWildcard(t *testing.T) {
	ix := BuildIndex([]string{"cat", "dog", "owl"})
	pattern := []rune{Wildcard, Wildcard, Wildcard}
	got := ix.Match(pattern)
	if len(got) != 3 {
		t.Fatalf("Match(***) = %v, want 3 results", got)
	}
}

func TestMatchRespectsLength(t *testing.T) {
	ix := BuildIndex([]string{"cat", "cats"})
	got := ix.Match([]rune{'c', 'a', 't'})
	if len(got) != 1 || got[0] != "CAT" {
		t.Fatalf("Match(cat) = %v, want [CAT]", got)
	}
}

func TestHasMatchAndMatchCount(t *testing.T) {
	ix := BuildIndex([]string{"cat", "car", "dog"})
	pattern := []rune{'c', Wildcard, 't'}
	if !ix.HasMatch(pattern) {
		t.Fatalf("HasMatch(c_t) = false, want true")
	}
	if n := ix.MatchCount(pattern); n != 1 {
		t.Fatalf("MatchCount(c_t) = %d, want 1", n)
	}
	if ix.HasMatch([]rune{'z', Wildcard, 'z'}) {
		t.Fatalf("HasMatch(z_z) = true, want false")
	}
}

func TestPossibleLettersFastPath(t *testing.T) {
	ix := BuildIndex([]string{"cat", "car", "can", "cop"})
	set := ix.PossibleLetters([]rune{'c', 'a', Wildcard}, 2)
	got := map[rune]bool{}
	for _, bi := range set.Bits() {
		got[ix.Alphabet().Rune(bi)] = true
	}
	want := map[rune]bool{'T': true, 'R': true, 'N': true}
	if len(got) != len(want) {
		t.Fatalf("PossibleLetters = %v, want %v", got, want)
	}
	for r := range want {
		if !got[r] {
			t.Errorf("PossibleLetters missing %q", r)
		}
	}
}

func TestPossibleLettersScatteredWildcards(t *testing.T) {
	// "__t" at position 0 (scattered: position 2 is known, position 0 queried)
	ix := BuildIndex([]string{"cat", "cot", "bat"})
	set := ix.PossibleLetters([]rune{Wildcard, Wildcard, 't'}, 0)
	got := map[rune]bool{}
	for _, bi := range set.Bits() {
		got[ix.Alphabet().Rune(bi)] = true
	}
	want := map[rune]bool{'C': true, 'B': true}
	if len(got) != len(want) {
		t.Fatalf("PossibleLetters = %v, want %v", got, want)
	}
}

func TestPossibleLettersEmptyWhenNoMatch(t *testing.T) {
	ix := BuildIndex([]string{"cat", "dog"})
	set := ix.PossibleLetters([]rune{'z', Wildcard}, 1)
	if !set.Empty() {
		t.Fatalf("PossibleLetters for nonexistent prefix should be empty, got %v", set.Bits())
	}
}

func TestBuildIndexKeepsDiacriticWords(t *testing.T) {
	ix := BuildIndex([]string{"ţară", "țara", "masă"})
	if ix.Len() == 0 {
		t.Fatalf("expected Romanian diacritic words to survive folding")
	}
}

func TestLengthCounts(t *testing.T) {
	ix := BuildIndex([]string{"cat", "car", "cats", "dogs"})
	lc := ix.LengthCounts()
	if lc[3] != 2 || lc[4] != 2 {
		t.Fatalf("LengthCounts = %v, want {3:2, 4:2}", lc)
	}
}

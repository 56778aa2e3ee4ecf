// Package gobcache caches a word list, as read from a wordlist file, to
// disk as an opaque encoding/gob blob, so a repeated run against the
// same --words file skips re-reading the text file. The cached list is
// not folded, filtered or deduplicated; BuildIndex still does that on
// every run. Only the word list is
// cached, never the built trie: the spec requires every index to be
// reconstructible from the raw word list, and gob has no convenient way
// to serialize the trie's unexported per-length structure anyway.
package gobcache

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Save writes words to path as a gob-encoded blob.
func Save(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(words); err != nil {
		return fmt.Errorf("encoding cache file: %w", err)
	}
	return nil
}

// Load reads a word list previously written by Save. Callers should
// treat any error (missing file, stale/incompatible encoding) as a
// cache miss and fall back to reloading the raw word list file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	var words []string
	if err := gob.NewDecoder(f).Decode(&words); err != nil {
		return nil, fmt.Errorf("decoding cache file: %w", err)
	}
	return words, nil
}

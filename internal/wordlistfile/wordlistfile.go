// Package wordlistfile loads a plain word-per-line dictionary file from
// the conventional wordlist directory the --words flag names. Adapted
// from tcstacks-crossy's pkg/wordlist.LoadBrodaWordlist: the WORD;SCORE
// format and its per-length score sort are dropped (puzzle-quality
// ranking is out of scope here), leaving the same line-scanning,
// error-wrapping shape over one bare word per line.
package wordlistfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the conventional directory wordlist files are read from,
// relative to the working directory, matching --words <name> resolving
// to Dir/<name>.txt.
const Dir = "wordlists"

// Load reads each line of path, trimmed of surrounding whitespace, as
// one word, skipping blank lines and lines starting with '#'.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist file at line %d: %w", lineNum, err)
	}
	return words, nil
}

// ResolveName turns a --words <name> flag value into the file path
// Load expects: Dir/<name>.txt.
func ResolveName(name string) string {
	return filepath.Join(Dir, name+".txt")
}

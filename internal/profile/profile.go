// Package profile wraps runtime/pprof behind the --profile flag. No
// profiling library appears anywhere in the retrieved example corpus,
// so this stays on the standard library rather than inventing a
// dependency that nothing in the corpus grounds.
package profile

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/uuid"
)

// Session is one profiling run's open CPU profile file.
type Session struct {
	file *os.File
}

// Start begins CPU profiling, writing the profile to dir under a
// uuid-labeled filename so concurrent or repeated runs never collide.
func Start(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}
	path := fmt.Sprintf("%s/fill-%s.pprof", dir, uuid.NewString())
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}
	return &Session{file: f}, nil
}

// Stop finishes profiling and closes the profile file.
func (s *Session) Stop() error {
	pprof.StopCPUProfile()
	return s.file.Close()
}

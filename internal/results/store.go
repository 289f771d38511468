// Package results provides a thread-safe store for the most recent search
// result. Scans run on background commands while the UI keeps rendering, so
// the store is the coordination point: the scan command publishes its
// outcome, and the render and save paths read consistent snapshots of
// exactly what is displayed.
package results

import (
	"fmt"
	"sync"
	"time"

	"github.com/LucAce/uvm-message-search/internal/scan"
)

// Snapshot is the outcome of the most recent scan.
type Snapshot struct {
	Path    string
	Terms   []string
	Options scan.Options
	Lines   []string
	Ran     time.Time
	Err     error
}

// HasResult reports whether a scan has completed successfully at least once.
func (s Snapshot) HasResult() bool {
	return !s.Ran.IsZero() && s.Err == nil
}

// Store coordinates concurrent access to the latest snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// result is kept but the error is recorded for visibility.
func (s *Store) Update(path string, terms []string, opts scan.Options, lines []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.Err = err
		s.snapshot.Ran = time.Now()
		return
	}

	s.snapshot = Snapshot{
		Path:    path,
		Terms:   cloneStrings(terms),
		Options: opts,
		Lines:   cloneStrings(lines),
		Ran:     time.Now(),
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Terms = cloneStrings(s.snapshot.Terms)
	snap.Lines = cloneStrings(s.snapshot.Lines)
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}

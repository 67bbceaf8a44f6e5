package state

import (
	"fmt"
	"sync"
	"time"
)

// Profile is the startup profile the runtime resolved from its CLI args and
// config. It is fixed for the lifetime of the process.
type Profile struct {
	Testing   bool
	Verbose   bool
	Port      uint16
	PortFrom  string // "flag", "testing" or "default"
	StorePath string
	LogPath   string
	Version   string
}

// Mode returns a short label for the active profile.
func (p Profile) Mode() string {
	if p.Testing {
		return "testing"
	}
	return "production"
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Profile             Profile
	LogLines            []string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale returns true when the log has been unreadable for multiple polls.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store seeded with the resolved profile.
func NewStore(p Profile) *Store {
	return &Store{snapshot: Snapshot{Profile: p}}
}

// Update replaces the stored log lines. When err is non-nil the previous
// lines are kept and the error is recorded for visibility.
func (s *Store) Update(lines []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.LogLines = cloneLines(lines)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.LogLines = cloneLines(s.snapshot.LogLines)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]string, len(lines))
	copy(dup, lines)
	return dup
}

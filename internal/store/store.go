// internal/store/store.go
//
// Aggregate per-day guess tallies.
// Only anonymous counters are kept: how many accepted guesses were scored
// for a puzzle date and how many of them matched the solution. There is no
// per-player or per-session state.
//
// Implementations:
//   - memory (this file): map guarded by RWMutex, lost on restart.
//   - sqlite (sqlite.go): durable, one row per date.

package store

import (
	"context"
	"sync"
)

// Tally is the aggregate for one puzzle date.
type Tally struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Guesses int    `json:"guesses"` // accepted guesses evaluated
	Solves  int    `json:"solves"`  // guesses equal to the solution
}

// Store defines the persistence interface for daily tallies.
type Store interface {
	// RecordGuess counts one evaluated guess for date.
	RecordGuess(ctx context.Context, date string, solved bool) error

	// Tally returns the counters for date; unknown dates yield zero counts.
	Tally(ctx context.Context, date string) (Tally, error)

	// Close releases underlying resources.
	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex     // guards tallies
	tallies map[string]Tally // keyed by date
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{tallies: make(map[string]Tally)}
}

func (m *memory) RecordGuess(ctx context.Context, date string, solved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.tallies[date]
	t.Date = date
	t.Guesses++
	if solved {
		t.Solves++
	}
	m.tallies[date] = t
	return nil
}

func (m *memory) Tally(ctx context.Context, date string) (Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.tallies[date]; ok {
		return t, nil
	}
	return Tally{Date: date}, nil
}

func (m *memory) Close() error { return nil }

// Package journal captures evaluation outcomes for later inspection.
package journal

import (
	"sync"

	"github.com/hanayukiz/aifunny/internal/policy"
)

// Ledger stores outcomes in memory for quick inspection.
type Ledger struct {
	mu       sync.Mutex
	outcomes []policy.Outcome
}

// NewLedger creates an empty ledger optionally pre-sizing storage.
func NewLedger(capacity int) *Ledger {
	if capacity < 0 {
		capacity = 0
	}
	return &Ledger{outcomes: make([]policy.Outcome, 0, capacity)}
}

// Record appends an outcome to the ledger.
func (l *Ledger) Record(out policy.Outcome) {
	l.mu.Lock()
	l.outcomes = append(l.outcomes, out)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded outcomes.
func (l *Ledger) Snapshot() []policy.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]policy.Outcome, len(l.outcomes))
	copy(out, l.outcomes)
	return out
}

// Reset clears all stored outcomes.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.outcomes = l.outcomes[:0]
	l.mu.Unlock()
}

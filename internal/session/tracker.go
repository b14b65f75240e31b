// Package session tracks which parsed items have already been committed to
// the bill during a listening session. The parsing core is stateless and
// re-emits every item on every transcript update; the tracker is the
// caller-side bookkeeping that keeps those re-emissions from turning into
// duplicate bill lines.
//
// Items are identified by their (name, quantity, rate) fingerprint, never by
// position, so a re-parse that shifts earlier items around cannot confuse it.
package session

import (
	"sync"

	"github.com/MSathish01/VoiceBill/internal/parse"
)

// Tracker records committed item fingerprints for one listening session.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	committed map[string]struct{}
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{committed: make(map[string]struct{})}
}

// CommitCompleted takes a full parse result and returns, in order, the items
// that are complete (name, quantity and rate all present) and not yet
// committed, marking them committed as it goes. The final element of a live
// parse is typically incomplete and simply passes through uncommitted.
func (t *Tracker) CommitCompleted(items []parse.Item) []parse.Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	fresh := []parse.Item{}
	for _, it := range items {
		if !it.Complete() {
			continue
		}
		fp := it.Fingerprint()
		if _, seen := t.committed[fp]; seen {
			continue
		}
		t.committed[fp] = struct{}{}
		fresh = append(fresh, it)
	}
	return fresh
}

// Len returns the number of committed items.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.committed)
}

// Reset clears all committed state, starting a fresh session.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.committed = make(map[string]struct{})
}

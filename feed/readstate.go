package feed

import "sync"

// ReadChecker is the read-only view of a Tracker used by Filter.
type ReadChecker interface {
	IsRead(link string) bool
}

// Tracker holds the links viewed in the current reader session. It is never
// persisted; Reset is called once when a reader view opens. The zero value is
// an empty tracker.
type Tracker struct {
	mu   sync.RWMutex
	read map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{read: make(map[string]struct{})}
}

// MarkRead records link as read and reports whether it was newly marked.
// Empty links are never tracked.
func (t *Tracker) MarkRead(link string) bool {
	if link == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.read[link]; ok {
		return false
	}
	if t.read == nil {
		t.read = make(map[string]struct{})
	}
	t.read[link] = struct{}{}
	return true
}

func (t *Tracker) IsRead(link string) bool {
	if link == "" {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.read[link]
	return ok
}

func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.read = make(map[string]struct{})
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.read)
}

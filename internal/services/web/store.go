package web

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/louisbranch/accountform/internal/signup/wizard"
)

// formEntry is one live form. mu serialises every operation on session and
// the notifications it queues; expiresAt is guarded by the store lock.
type formEntry struct {
	mu        sync.Mutex
	session   *wizard.Session
	pending   []wizard.Notification
	expiresAt time.Time
}

// drain returns and clears the queued notifications. Callers hold mu.
func (e *formEntry) drain() []wizard.Notification {
	out := e.pending
	e.pending = nil
	return out
}

// formStore is a thread-safe in-memory form session store.
type formStore struct {
	mu      sync.Mutex
	entries map[string]*formEntry
	ttl     time.Duration
	now     func() time.Time
}

func newFormStore(ttl time.Duration) *formStore {
	return &formStore{
		entries: make(map[string]*formEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// create mounts a fresh form and returns its id. build receives the entry's
// notifier so notifications queue on the entry.
func (s *formStore) create(build func(wizard.Notifier) *wizard.Session) (string, *formEntry) {
	entry := &formEntry{expiresAt: s.now().Add(s.ttl)}
	entry.session = build(wizard.NotifierFunc(func(n wizard.Notification) {
		entry.pending = append(entry.pending, n)
	}))
	id := uuid.NewString()
	s.mu.Lock()
	s.entries[id] = entry
	s.mu.Unlock()
	return id, entry
}

// get returns the entry for id, or nil if missing or expired. A hit extends
// the entry's lifetime.
func (s *formStore) get(id string) *formEntry {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil
	}
	if now.After(entry.expiresAt) {
		delete(s.entries, id)
		return nil
	}
	entry.expiresAt = now.Add(s.ttl)
	return entry
}

func (s *formStore) delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// clear drops every form and reports how many were live.
func (s *formStore) clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = make(map[string]*formEntry)
	return n
}

// sweep drops abandoned forms and reports how many were removed.
func (s *formStore) sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// runSweeper sweeps every interval until ctx ends.
func (s *formStore) runSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 {
				log.Printf("swept %d abandoned form sessions", removed)
			}
		}
	}
}

// Package memory holds in-process adapters.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
)

var _ ports.SessionStore = (*SessionStore)(nil)

type sessionEntry struct {
	mu       sync.Mutex
	session  *checkout.Session
	lastUsed time.Time
	removed  atomic.Bool
}

// SessionStore keeps checkout sessions in a map. Each session has its own
// lock so a slow confirm only blocks requests for the same session.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[kernel.UUID]*sessionEntry
	clock   clock.Clock
	ttl     time.Duration
}

// NewSessionStore returns an empty store. Sessions idle for longer than ttl
// are reported as missing even before the sweeper removes them; a zero ttl
// disables that check.
func NewSessionStore(clk clock.Clock, ttl time.Duration) *SessionStore {
	return &SessionStore{
		entries: make(map[kernel.UUID]*sessionEntry),
		clock:   clk,
		ttl:     ttl,
	}
}

func (s *SessionStore) Add(_ context.Context, session *checkout.Session) error {
	if session == nil {
		return errs.NewValueIsRequiredError("session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session.ID()] = &sessionEntry{session: session, lastUsed: s.clock.Now()}
	return nil
}

func (s *SessionStore) Update(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	return s.run(ctx, id, true, fn)
}

func (s *SessionStore) View(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error {
	return s.run(ctx, id, false, fn)
}

func (s *SessionStore) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if ok {
		e.removed.Store(true)
	}
	return nil
}

func (s *SessionStore) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			e.removed.Store(true)
			delete(s.entries, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed, nil
}

// Len reports the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *SessionStore) run(ctx context.Context, id kernel.UUID, touch bool, fn func(*checkout.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return notFound(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.clock.Now()
	if e.removed.Load() || s.expired(e, now) {
		return notFound(id)
	}

	if err := fn(e.session); err != nil {
		return err
	}
	if touch {
		e.lastUsed = now
	}
	return nil
}

func (s *SessionStore) expired(e *sessionEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastUsed) > s.ttl
}

func notFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("checkout session", id.String())
}

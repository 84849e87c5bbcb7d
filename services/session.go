package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type session struct {
	flow     *Flow
	lastSeen time.Time
}

// SessionStore keeps one Flow per user.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*session
	taxRate  decimal.Decimal
	now      func() time.Time
}

func NewSessionStore(taxRate decimal.Decimal) *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*session),
		taxRate:  taxRate,
		now:      time.Now,
	}
}

// Get returns the user's flow, creating it on first use.
func (s *SessionStore) Get(userID int64) *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{flow: NewFlow(s.taxRate)}
		s.sessions[userID] = sess
	}
	sess.lastSeen = s.now()
	return sess.flow
}

func (s *SessionStore) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Expire drops sessions idle longer than ttl and returns how many were removed.
func (s *SessionStore) Expire(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunReaper calls Expire every interval until ctx is done.
func (s *SessionStore) RunReaper(ctx context.Context, ttl, interval time.Duration, onExpire func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Expire(ttl); n > 0 && onExpire != nil {
				onExpire(n)
			}
		}
	}
}

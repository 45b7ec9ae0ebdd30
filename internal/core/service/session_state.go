package service

import (
	"sync"

	"github.com/smartlogi/frontend/internal/core/domain"
)

const subscriberBuffer = 8

// SessionState is the process-wide record of whether a user is authenticated
// and who the current user is. It is constructed once at startup, torn down
// never, and mutated only through the auth session manager.
//
// Both facts are independently observable so UI components can react to
// either without polling. Fan-out is non-blocking: a subscriber that falls
// more than subscriberBuffer states behind misses intermediate values but can
// never block a mutation.
type SessionState struct {
	mu            sync.RWMutex
	authenticated bool
	user          *domain.User

	nextID   int
	authSubs map[int]chan bool
	userSubs map[int]chan *domain.User
}

func NewSessionState() *SessionState {
	return &SessionState{
		authSubs: make(map[int]chan bool),
		userSubs: make(map[int]chan *domain.User),
	}
}

// Authenticated reports the last state set by the session manager. Callers
// deciding access must go through AuthSession.IsAuthenticated, which
// re-derives the answer from token state.
func (s *SessionState) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// CurrentUser returns the current user, or nil when no session exists. The
// user may be a minimal synthesis from token claims after a plain login.
func (s *SessionState) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetAuthenticated marks the session authenticated with the given user. A nil
// user is allowed during initial-session recovery, where only the stored
// token is known.
func (s *SessionState) SetAuthenticated(user *domain.User) {
	s.mu.Lock()
	s.authenticated = true
	s.user = user
	s.notifyLocked()
	s.mu.Unlock()
}

// Reset clears the session: not authenticated, no user.
func (s *SessionState) Reset() {
	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.notifyLocked()
	s.mu.Unlock()
}

// SubscribeAuth returns a stream of authentication-flag changes plus a cancel
// function. The cancel function must be called when the subscriber goes away.
func (s *SessionState) SubscribeAuth() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan bool, subscriberBuffer)
	s.authSubs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.authSubs[id]; ok {
			delete(s.authSubs, id)
			close(ch)
		}
	}
}

// SubscribeUser returns a stream of current-user changes plus a cancel
// function.
func (s *SessionState) SubscribeUser() (<-chan *domain.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan *domain.User, subscriberBuffer)
	s.userSubs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.userSubs[id]; ok {
			delete(s.userSubs, id)
			close(ch)
		}
	}
}

func (s *SessionState) notifyLocked() {
	for _, ch := range s.authSubs {
		select {
		case ch <- s.authenticated:
		default:
		}
	}
	for _, ch := range s.userSubs {
		select {
		case ch <- s.user:
		default:
		}
	}
}

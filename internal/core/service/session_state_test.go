package service

import (
	"testing"

	"github.com/smartlogi/frontend/internal/core/domain"
)

func TestSessionState_SetAndReset(t *testing.T) {
	s := NewSessionState()
	if s.Authenticated() || s.CurrentUser() != nil {
		t.Fatalf("new state must start empty")
	}

	user := &domain.User{Username: "alice", Roles: []domain.Role{domain.RoleClient}}
	s.SetAuthenticated(user)
	if !s.Authenticated() {
		t.Fatalf("expected authenticated after set")
	}
	if got := s.CurrentUser(); got == nil || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}

	s.Reset()
	if s.Authenticated() || s.CurrentUser() != nil {
		t.Fatalf("expected empty state after reset")
	}
}

func TestSessionState_SetAuthenticated_NilUser(t *testing.T) {
	s := NewSessionState()
	s.SetAuthenticated(nil)
	if !s.Authenticated() {
		t.Fatalf("expected authenticated with nil user")
	}
	if s.CurrentUser() != nil {
		t.Fatalf("expected nil user")
	}
}

func TestSessionState_SubscribeAuth(t *testing.T) {
	s := NewSessionState()
	auth, cancel := s.SubscribeAuth()
	defer cancel()

	s.SetAuthenticated(&domain.User{Username: "alice"})
	if got := <-auth; !got {
		t.Fatalf("expected true notification")
	}

	s.Reset()
	if got := <-auth; got {
		t.Fatalf("expected false notification")
	}
}

func TestSessionState_SubscribeUser(t *testing.T) {
	s := NewSessionState()
	users, cancel := s.SubscribeUser()
	defer cancel()

	s.SetAuthenticated(&domain.User{Username: "bob"})
	got := <-users
	if got == nil || got.Username != "bob" {
		t.Fatalf("unexpected user notification: %+v", got)
	}

	s.Reset()
	if got := <-users; got != nil {
		t.Fatalf("expected nil user notification, got %+v", got)
	}
}

func TestSessionState_Cancel(t *testing.T) {
	s := NewSessionState()
	auth, cancel := s.SubscribeAuth()
	cancel()

	if _, ok := <-auth; ok {
		t.Fatalf("expected closed channel after cancel")
	}

	// Cancelling twice is safe, and mutations after cancel must not panic.
	cancel()
	s.SetAuthenticated(nil)
}

func TestSessionState_SlowSubscriberNeverBlocks(t *testing.T) {
	s := NewSessionState()
	auth, cancel := s.SubscribeAuth()
	defer cancel()

	// Overflow the buffer without ever reading. Mutations must not block.
	for i := 0; i < subscriberBuffer*2; i++ {
		s.SetAuthenticated(nil)
		s.Reset()
	}

	// The subscriber still sees the buffered prefix.
	if got := <-auth; !got {
		t.Fatalf("expected first buffered notification to be true")
	}
}

func TestSessionState_MultipleSubscribers(t *testing.T) {
	s := NewSessionState()
	a, cancelA := s.SubscribeAuth()
	defer cancelA()
	b, cancelB := s.SubscribeAuth()
	defer cancelB()

	s.SetAuthenticated(nil)
	if !<-a || !<-b {
		t.Fatalf("expected both subscribers to be notified")
	}
}

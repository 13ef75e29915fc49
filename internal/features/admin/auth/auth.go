package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Authenticator verifies admin credentials. The production implementation is
// a single static credential pair; the interface exists so it can be swapped
// for a real credential mechanism without touching the workflow.
type Authenticator interface {
	Verify(username, password string) bool
}

type staticAuthenticator struct {
	username string
	password string
}

// NewStaticAuthenticator builds an Authenticator over a fixed credential pair.
func NewStaticAuthenticator(username, password string) Authenticator {
	return &staticAuthenticator{username: username, password: password}
}

func (a *staticAuthenticator) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// SessionStore keeps issued admin session tokens in memory. Sessions do not
// survive a restart; the admin logs in again.
type SessionStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time
	now    func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:    ttl,
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Issue creates a new session token.
func (s *SessionStore) Issue() string {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.tokens[token] = s.now().Add(s.ttl)

	return token
}

// Valid reports whether token is a live session.
func (s *SessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Revoke drops a session token.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// prune drops expired tokens; caller holds the lock.
func (s *SessionStore) prune() {
	now := s.now()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
}

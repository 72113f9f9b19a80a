package servicelayer

import (
	"context"
	"sync"
)

// LoginFunc performs one ERP login and returns a fresh session token.
type LoginFunc func(ctx context.Context) (string, error)

// SessionCache holds the single process-wide Service Layer session token.
// The token is acquired lazily on first need and kept until Invalidate; there
// is no liveness probing, so an expired token is only discovered by a failed
// downstream call.
//
// The mutex is held across the login call, so concurrent cold acquirers share
// one login flight instead of racing to overwrite each other's token.
type SessionCache struct {
	mu    sync.Mutex
	token string
	login LoginFunc
}

// NewSessionCache creates a SessionCache that logs in with the given function
func NewSessionCache(login LoginFunc) *SessionCache {
	return &SessionCache{login: login}
}

// Acquire returns the cached token, logging in first if none is held.
// A failed login leaves no token stored.
func (s *SessionCache) Acquire(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	token, err := s.login(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	return token, nil
}

// Invalidate clears the cached token, but only if it still is the given one.
// A caller holding a stale token cannot wipe a newer session acquired by
// someone else in the meantime.
func (s *SessionCache) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == token {
		s.token = ""
	}
}

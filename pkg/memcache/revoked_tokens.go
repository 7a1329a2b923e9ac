// pkg/mem/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

type RevokedTokenStore interface {
	// Revoke denies the token id until expiresAt. Past that point the token
	// fails validation on its own, so the entry is dropped.
	Revoke(tokenID string, expiresAt time.Time)

	IsRevoked(tokenID string) bool

	// Len counts the entries currently held, expired or not.
	Len() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return NewRevokedTokensWithClock(time.Now)
}

func NewRevokedTokensWithClock(now func() time.Time) *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.data {
		if now.After(exp) {
			delete(s.data, id) // cleanup expired
		}
	}
	if now.After(expiresAt) {
		return
	}
	s.data[tokenID] = expiresAt
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[tokenID]
	if !ok {
		return false
	}
	return !s.now().After(exp)
}

func (s *RevokedTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

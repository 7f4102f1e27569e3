// Package session holds the locally cached authentication state: the
// bearer token and the serialized user profile. It is created on login
// and evicted on logout or on any 401 response.
package session

import (
	"encoding/json"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Session is an explicit session object owned by the client instance.
// All reads and writes go through it; nothing else touches the KV keys.
type Session struct {
	kv KV
}

// New wraps kv; a nil kv gets an in-memory store.
func New(kv KV) *Session {
	if kv == nil {
		kv = NewMemoryKV()
	}
	return &Session{kv: kv}
}

// Token returns the cached bearer token, or "" when logged out.
func (s *Session) Token() string {
	v, _ := s.kv.Get(tokenKey)
	return v
}

// Authenticated reports whether a token is cached. No network call.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// User returns the cached user profile, or nil when absent or unparseable.
func (s *Session) User() *types.User {
	raw, ok := s.kv.Get(userKey)
	if !ok || raw == "" {
		return nil
	}
	var u types.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

// Save persists the token and/or user from a successful login. Empty
// fields leave the existing entry untouched.
func (s *Session) Save(token string, user *types.User) error {
	if token != "" {
		if err := s.kv.Set(tokenKey, token); err != nil {
			return err
		}
	}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := s.kv.Set(userKey, string(raw)); err != nil {
			return err
		}
	}
	return nil
}

// Clear evicts both entries unconditionally.
func (s *Session) Clear() {
	_ = s.kv.Delete(tokenKey)
	_ = s.kv.Delete(userKey)
}

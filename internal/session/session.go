// Package session owns the single optional authenticated-user record.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Ramoniswack/vinc/internal/model"
	"github.com/Ramoniswack/vinc/internal/storage"
)

// Store is the auth state container: at most one signed-in user at a time.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	verifier Verifier

	user          *model.User
	authenticated bool
}

// snapshot is the persisted form of the store.
type snapshot struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

// New creates a session store backed by kv and verifier, rehydrating any
// previously persisted session.
func New(ctx context.Context, kv storage.KV, verifier Verifier) (*Store, error) {
	s := &Store{kv: kv, verifier: verifier}

	value, found, err := kv.Load(ctx, storage.AuthKey)
	if err != nil {
		return nil, err
	}
	if found {
		var snap snapshot
		if err := json.Unmarshal(value, &snap); err != nil {
			return nil, err
		}
		s.user = snap.User
		s.authenticated = snap.IsAuthenticated && snap.User != nil
	}

	return s, nil
}

// Login verifies the credentials and, on success, replaces the session with
// the signed-in admin. On failure the prior state, including any existing
// session, is left untouched. The two outcomes are the whole contract: a
// future verifier backed by a real service must not leave the session
// partially updated on failure.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	if !s.verifier.Verify(ctx, username, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &model.User{Username: username, IsAdmin: true}
	s.authenticated = true
	s.persist(ctx)
	return true
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.authenticated = false
	s.persist(ctx)
}

// Current returns the signed-in user, if any. The second return mirrors the
// invariant that a user is present iff the session is authenticated.
func (s *Store) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.authenticated || s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// persist writes the current snapshot. Failures are logged, not surfaced.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	value, err := json.Marshal(snapshot{User: s.user, IsAuthenticated: s.authenticated})
	if err != nil {
		slog.Error("encoding session snapshot", "error", err)
		return
	}
	if err := s.kv.Save(ctx, storage.AuthKey, value); err != nil {
		slog.Error("persisting session snapshot", "error", err)
	}
}

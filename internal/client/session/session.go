// Package session tracks who the client is acting as. The state persists in
// the local metadata table, so a restart resumes the previous session: a
// stored token means authenticated, no token means anonymous.
package session

import (
	"context"
	"sync"

	"github.com/sam-ezra/todo/internal/client/repositories/metadata"
)

const (
	keyAuthToken   = "authToken"
	keyIsAnonymous = "isAnonymous"
)

// Session is the persisted auth state. Safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	repo   metadata.Repository
	token  string
	loaded bool
}

// New returns a Session backed by the given metadata repository.
func New(repo metadata.Repository) *Session {
	return &Session{repo: repo}
}

// load reads the persisted token once; callers hold s.mu.
func (s *Session) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	token, _, err := s.repo.Get(ctx, keyAuthToken)
	if err != nil {
		return err
	}
	s.token = token
	s.loaded = true
	return nil
}

// IsAnonymous reports whether the client has no auth token.
func (s *Session) IsAnonymous(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return true, err
	}
	return s.token == "", nil
}

// Token returns the current auth token, empty when anonymous.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return "", err
	}
	return s.token, nil
}

// SetAuthenticated stores the token and marks the session authenticated.
func (s *Session) SetAuthenticated(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, keyAuthToken, token); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyIsAnonymous, "false"); err != nil {
		return err
	}
	s.token = token
	s.loaded = true
	return nil
}

// SetAnonymous drops the token and marks the session anonymous. Used for an
// explicit logout.
func (s *Session) SetAnonymous(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(ctx, keyAuthToken); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyIsAnonymous, "true"); err != nil {
		return err
	}
	s.token = ""
	s.loaded = true
	return nil
}

// Expire drops the token after the server rejected it. Subsequent calls see
// an anonymous session.
func (s *Session) Expire(ctx context.Context) error {
	return s.SetAnonymous(ctx)
}

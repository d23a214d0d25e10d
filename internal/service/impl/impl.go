package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/sidereusnuntius/flock/internal/service"
	"github.com/sidereusnuntius/flock/internal/session"
	"github.com/sidereusnuntius/flock/internal/snapshot"
	"github.com/sidereusnuntius/flock/internal/social"
)

// AppService implements service.Service over the in-memory engine. One
// RWMutex guards every operation: acceptance and mutual-crush detection
// mutate two user aggregates in one step, so readers must never observe a
// half-applied edge.
type AppService struct {
	mu sync.RWMutex

	dir         *social.Directory
	communities *social.Communities
	coord       *social.Coordinator
	sessions    *session.Table
	store       snapshot.Store
}

func New(dir *social.Directory, communities *social.Communities, sessions *session.Table, store snapshot.Store) *AppService {
	return &AppService{
		dir:         dir,
		communities: communities,
		coord:       social.NewCoordinator(dir),
		sessions:    sessions,
		store:       store,
	}
}

// resolve maps a session id to its live user. Callers hold the lock.
func (s *AppService) resolve(sessionID string) (*social.User, error) {
	login, ok := s.sessions.Resolve(sessionID)
	if !ok {
		return nil, service.ErrInvalidSession
	}
	u := s.dir.Get(login)
	if u == nil {
		// The account was removed while the session id was still around.
		return nil, service.ErrInvalidSession
	}
	return u, nil
}

func (s *AppService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir.Reset()
	s.communities.Reset()
	s.sessions.Reset()
}

func (s *AppService) SaveAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.store.SaveAll(ctx, s.dir, s.communities); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

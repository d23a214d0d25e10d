package core

import (
	"fmt"

	"github.com/sidereusnuntius/flock/internal/social"
)

func (s *AppService) CreateCommunity(sessionID, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	_, err = s.communities.Create(u, name, description)
	return err
}

func (s *AppService) CommunityDescription(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.communities.Get(name)
	if err != nil {
		return "", err
	}
	return c.Description, nil
}

func (s *AppService) CommunityOwner(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.communities.Get(name)
	if err != nil {
		return "", err
	}
	return c.Owner, nil
}

func (s *AppService) CommunityMembers(name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.communities.Get(name)
	if err != nil {
		return nil, err
	}
	return c.Members(), nil
}

func (s *AppService) JoinCommunity(sessionID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.communities.AddMember(u, name)
}

func (s *AppService) CommunitiesOf(login string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.dir.Contains(login) {
		return nil, fmt.Errorf("%w: %q", social.ErrUserNotFound, login)
	}
	return s.communities.Of(login), nil
}

func (s *AppService) SendBroadcast(sessionID, community, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.resolve(sessionID); err != nil {
		return err
	}
	return s.communities.Broadcast(s.dir, community, body)
}

// ReadBroadcast pops the session user's oldest community broadcast.
func (s *AppService) ReadBroadcast(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return "", err
	}
	return u.ReadBroadcast()
}

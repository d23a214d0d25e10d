package core

import "github.com/sidereusnuntius/flock/internal/social"

func (s *AppService) AddFriend(sessionID, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.coord.RequestFriendship(u, target)
}

func (s *AppService) AreFriends(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coord.AreFriends(a, b)
}

func (s *AppService) Friends(login string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coord.Friends(login)
}

func (s *AppService) AddIdol(sessionID, idol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.coord.AddIdol(u, idol)
}

func (s *AppService) IsFan(fan, idol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coord.IsFan(fan, idol)
}

func (s *AppService) Fans(login string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coord.Fans(login)
}

func (s *AppService) AddCrush(sessionID, crush string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.coord.AddCrush(u, crush)
}

func (s *AppService) HasCrushOn(sessionID, crush string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return false, err
	}
	return s.coord.HasCrushOn(u, crush), nil
}

func (s *AppService) Crushes(sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return nil, err
	}
	return s.coord.Crushes(u), nil
}

func (s *AppService) AddEnemy(sessionID, enemy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.coord.AddEnemy(u, enemy)
}

func (s *AppService) SendMessage(sessionID, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return s.coord.SendMessage(u, to, body)
}

// ReadMessage pops the session user's oldest private message. Reading
// consumes, so this takes the write lock.
func (s *AppService) ReadMessage(sessionID string) (social.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return social.Message{}, err
	}
	return u.ReadMessage()
}

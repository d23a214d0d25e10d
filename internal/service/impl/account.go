package core

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sidereusnuntius/flock/internal/service"
	"github.com/sidereusnuntius/flock/internal/social"
	"github.com/sidereusnuntius/flock/internal/validate"
)

const BcryptCost = 10

// NameAttribute is the built-in profile key that resolves to the display
// name instead of a stored attribute.
const NameAttribute = "name"

func (s *AppService) CreateAccount(login, password, name string) error {
	if err := validate.Account(login, password, name); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.dir.Create(login, string(hash), name)
	return err
}

func (s *AppService) Login(login, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.dir.Get(login)
	if u == nil {
		return "", service.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", service.ErrInvalidCredentials
	}
	return s.sessions.Open(login), nil
}

func (s *AppService) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Close(sessionID)
}

func (s *AppService) RemoveAccount(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	s.communities.RemoveUser(u)
	s.sessions.Drop(u.Login)
	s.dir.Remove(u)
	return nil
}

func (s *AppService) EditProfile(sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.resolve(sessionID)
	if err != nil {
		return err
	}
	return u.SetAttribute(key, value)
}

func (s *AppService) UserAttribute(login, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.dir.Get(login)
	if u == nil {
		return "", fmt.Errorf("%w: %q", social.ErrUserNotFound, login)
	}
	if key == NameAttribute {
		return u.DisplayName, nil
	}
	return u.Attribute(key)
}

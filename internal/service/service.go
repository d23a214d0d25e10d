package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/flock/internal/social"
)

var (
	ErrInvalidInput       = errors.New("invalid")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidSession     = errors.New("invalid session")
)

// Service is the request-facing facade over the engine. Every operation is a
// complete unit of work: it either applies fully or fails with no partial
// mutation. Session-taking operations resolve the session to a user first
// and fail with ErrInvalidSession when it does not resolve.
type Service interface {
	// CreateAccount registers a new user. The password is hashed before the
	// engine ever sees it.
	CreateAccount(login, password, name string) error
	// Login verifies the credentials and opens a session, returning its id.
	Login(login, password string) (string, error)
	Logout(sessionID string)
	// RemoveAccount deletes the session's user: communities it owns are
	// deleted, memberships and inbound references are removed, its sessions
	// are dropped, and finally the user itself is discarded.
	RemoveAccount(sessionID string) error

	EditProfile(sessionID, key, value string) error
	// UserAttribute reads a profile attribute of any user by login. The
	// built-in "name" key always resolves to the display name.
	UserAttribute(login, key string) (string, error)

	AddFriend(sessionID, target string) error
	AreFriends(a, b string) bool
	Friends(login string) []string

	SendMessage(sessionID, to, body string) error
	ReadMessage(sessionID string) (social.Message, error)

	AddIdol(sessionID, idol string) error
	IsFan(fan, idol string) bool
	Fans(login string) []string

	AddCrush(sessionID, crush string) error
	HasCrushOn(sessionID, crush string) (bool, error)
	Crushes(sessionID string) ([]string, error)

	AddEnemy(sessionID, enemy string) error

	CreateCommunity(sessionID, name, description string) error
	CommunityDescription(name string) (string, error)
	CommunityOwner(name string) (string, error)
	CommunityMembers(name string) ([]string, error)
	JoinCommunity(sessionID, name string) error
	CommunitiesOf(login string) ([]string, error)
	SendBroadcast(sessionID, community, body string) error
	ReadBroadcast(sessionID string) (string, error)

	// ResetAll clears every user, community and session in place.
	ResetAll()
	// SaveAll writes the full engine state to the snapshot store. Called
	// once at shutdown.
	SaveAll(ctx context.Context) error
}

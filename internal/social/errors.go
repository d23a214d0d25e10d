package social

import "errors"

var (
	ErrUserNotFound     = errors.New("social: user not found")
	ErrSelfReference    = errors.New("social: operation targets its own user")
	ErrBlockedByEnmity  = errors.New("social: blocked by enmity")
	ErrAlreadyFriends   = errors.New("social: users are already friends")
	ErrRequestPending   = errors.New("social: friend request already pending")
	ErrAlreadyIdol      = errors.New("social: user is already an idol")
	ErrAlreadyCrush     = errors.New("social: user is already a crush")
	ErrAlreadyEnemy     = errors.New("social: user is already an enemy")
	ErrDuplicateAccount = errors.New("social: account with this login already exists")

	ErrNoMessages       = errors.New("social: no queued messages")
	ErrInvalidAttribute = errors.New("social: empty profile attribute key")
	ErrAttributeNotSet  = errors.New("social: profile attribute not set")

	ErrDuplicateCommunity = errors.New("social: community with this name already exists")
	ErrCommunityNotFound  = errors.New("social: community not found")
	ErrAlreadyMember      = errors.New("social: user is already a member")
)

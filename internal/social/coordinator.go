package social

import (
	"fmt"
	"sort"
)

// Coordinator enforces the cross-user rules no single user can check on its
// own: target existence, self-reference and enmity. Validation order is
// fixed: unknown target first, then self-reference, then enmity, and only
// then the per-edge rules.
type Coordinator struct {
	dir *Directory
}

func NewCoordinator(dir *Directory) *Coordinator {
	return &Coordinator{dir: dir}
}

// resolve looks up the target of an operation and runs the shared checks.
// Enmity blocks in either direction; the enemy edge itself is one-sided.
func (c *Coordinator) resolve(actor *User, targetLogin string, enmityBlocks bool) (*User, error) {
	target := c.dir.Get(targetLogin)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, targetLogin)
	}
	if target == actor {
		return nil, ErrSelfReference
	}
	if enmityBlocks && (actor.IsEnemyOf(target) || target.IsEnemyOf(actor)) {
		return nil, fmt.Errorf("%w: %s", ErrBlockedByEnmity, target.DisplayName)
	}
	return target, nil
}

// RequestFriendship sends a friend request from actor to targetLogin. A
// reciprocal pending request is accepted instead of producing a second one,
// which is the only way a friendship forms.
func (c *Coordinator) RequestFriendship(actor *User, targetLogin string) error {
	target, err := c.resolve(actor, targetLogin, true)
	if err != nil {
		return err
	}
	if actor.IsFriendOf(target) {
		return ErrAlreadyFriends
	}
	if actor.HasPendingRequestFrom(target) {
		actor.AcceptFriendRequest(target)
		return nil
	}
	if actor.HasRequestedFriendship(target) {
		return ErrRequestPending
	}
	actor.SendFriendRequest(target)
	return nil
}

// SendMessage delivers a private message from actor to targetLogin.
func (c *Coordinator) SendMessage(actor *User, targetLogin, body string) error {
	target, err := c.resolve(actor, targetLogin, true)
	if err != nil {
		return err
	}
	target.ReceiveMessage(actor.Login, body)
	return nil
}

// AddIdol records targetLogin as an idol of actor.
func (c *Coordinator) AddIdol(actor *User, targetLogin string) error {
	target, err := c.resolve(actor, targetLogin, true)
	if err != nil {
		return err
	}
	return actor.AddIdol(target)
}

// AddCrush records targetLogin as a crush of actor, notifying both parties
// when the crush turns out to be mutual.
func (c *Coordinator) AddCrush(actor *User, targetLogin string) error {
	target, err := c.resolve(actor, targetLogin, true)
	if err != nil {
		return err
	}
	return actor.AddCrush(target)
}

// AddEnemy records targetLogin as an enemy of actor. Existing enmity in the
// other direction does not block this; the edge is independent per side.
func (c *Coordinator) AddEnemy(actor *User, targetLogin string) error {
	target, err := c.resolve(actor, targetLogin, false)
	if err != nil {
		return err
	}
	return actor.AddEnemy(target)
}

// AreFriends reports whether both users list each other as friends. Unknown
// logins are simply not friends.
func (c *Coordinator) AreFriends(a, b string) bool {
	ua, ub := c.dir.Get(a), c.dir.Get(b)
	return ua != nil && ub != nil && ua.IsFriendOf(ub) && ub.IsFriendOf(ua)
}

// IsFan reports whether fan admires idol.
func (c *Coordinator) IsFan(fan, idol string) bool {
	uf, ui := c.dir.Get(fan), c.dir.Get(idol)
	return uf != nil && ui != nil && uf.IsFanOf(ui)
}

// HasCrushOn reports whether actor has a crush on targetLogin.
func (c *Coordinator) HasCrushOn(actor *User, targetLogin string) bool {
	target := c.dir.Get(targetLogin)
	return target != nil && actor.HasCrushOn(target)
}

// Friends lists a user's friends in the order the friendships formed.
func (c *Coordinator) Friends(login string) []string {
	u := c.dir.Get(login)
	if u == nil {
		return nil
	}
	return cloned(u.friends)
}

// Fans lists a user's fans, sorted by login.
func (c *Coordinator) Fans(login string) []string {
	u := c.dir.Get(login)
	if u == nil {
		return nil
	}
	fans := cloned(u.fans)
	sort.Strings(fans)
	return fans
}

// Crushes lists a user's crushes, sorted by login.
func (c *Coordinator) Crushes(u *User) []string {
	crushes := cloned(u.crushes)
	sort.Strings(crushes)
	return crushes
}

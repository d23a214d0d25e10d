package social

import "fmt"

// PlatformSender is the sender login recorded on messages generated by the
// platform itself, such as the mutual crush notice. It is not a registered
// user and can never collide with one, since logins never start with '@'.
const PlatformSender = "@flock"

// Message is one entry in a user's private message queue.
type Message struct {
	Sender string
	Body   string
}

// User is a single account: identity, profile and every relationship edge and
// message queue owned by it. Relationship sets hold logins, not pointers;
// users are always reached through the Directory. All sets preserve insertion
// order and hold no duplicates. User methods assume their cross-user
// preconditions (existence, self-reference, enmity) were already checked by
// the Coordinator.
type User struct {
	Login       string
	Password    string
	DisplayName string

	profile map[string]string

	friends     []string
	requestsOut []string
	requestsIn  []string
	idols       []string
	fans        []string
	crushes     []string
	enemies     []string

	messages   []Message
	broadcasts []string
}

func NewUser(login, password, displayName string) *User {
	return &User{
		Login:       login,
		Password:    password,
		DisplayName: displayName,
		profile:     make(map[string]string),
	}
}

// SetAttribute inserts or overwrites a profile attribute. Empty values are
// allowed; an empty key is not.
func (u *User) SetAttribute(key, value string) error {
	if key == "" {
		return ErrInvalidAttribute
	}
	u.profile[key] = value
	return nil
}

// Attribute returns a profile attribute, distinguishing "never written" from
// "written as empty".
func (u *User) Attribute(key string) (string, error) {
	v, ok := u.profile[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrAttributeNotSet, key)
	}
	return v, nil
}

// AttributeKeys returns every profile key in unspecified order.
func (u *User) AttributeKeys() []string {
	keys := make([]string, 0, len(u.profile))
	for k := range u.profile {
		keys = append(keys, k)
	}
	return keys
}

// SendFriendRequest records an outgoing request on u and mirrors it into
// target's incoming set. Calling it again for the same target is a no-op, so
// a repeated invite never duplicates the edge.
func (u *User) SendFriendRequest(target *User) {
	if contains(u.requestsOut, target.Login) {
		return
	}
	u.requestsOut = append(u.requestsOut, target.Login)
	if !contains(target.requestsIn, u.Login) {
		target.requestsIn = append(target.requestsIn, u.Login)
	}
}

// AcceptFriendRequest turns a pending request from source into a mutual
// friendship, clearing the mirrored request entries on both sides. It reports
// whether a pending request existed; when it returns false no state changed.
func (u *User) AcceptFriendRequest(source *User) bool {
	if !contains(u.requestsIn, source.Login) {
		return false
	}
	u.requestsIn = remove(u.requestsIn, source.Login)
	source.requestsOut = remove(source.requestsOut, u.Login)
	u.friends = append(u.friends, source.Login)
	source.friends = append(source.friends, u.Login)
	return true
}

func (u *User) HasPendingRequestFrom(source *User) bool {
	return contains(u.requestsIn, source.Login)
}

func (u *User) HasRequestedFriendship(target *User) bool {
	return contains(u.requestsOut, target.Login)
}

func (u *User) IsFriendOf(other *User) bool {
	return contains(u.friends, other.Login)
}

// AddIdol records target as an idol of u and u as a fan of target. This is
// the one edge with no consent step: both sides are written in the same call.
func (u *User) AddIdol(target *User) error {
	if contains(u.idols, target.Login) {
		return ErrAlreadyIdol
	}
	u.idols = append(u.idols, target.Login)
	target.fans = append(target.fans, u.Login)
	return nil
}

func (u *User) IsFanOf(idol *User) bool {
	return contains(idol.fans, u.Login)
}

// AddCrush records target as a crush of u. When target already has a crush
// back on u, both users receive one platform-attributed notice each; the
// notice fires only on this call, the one that completes the pair.
func (u *User) AddCrush(target *User) error {
	if contains(u.crushes, target.Login) {
		return ErrAlreadyCrush
	}
	u.crushes = append(u.crushes, target.Login)

	if contains(target.crushes, u.Login) {
		u.ReceiveMessage(PlatformSender, fmt.Sprintf("%s is your mutual crush", target.DisplayName))
		target.ReceiveMessage(PlatformSender, fmt.Sprintf("%s is your mutual crush", u.DisplayName))
	}
	return nil
}

func (u *User) HasCrushOn(target *User) bool {
	return contains(u.crushes, target.Login)
}

// AddEnemy records target as an enemy of u. The edge is one-directional;
// the Coordinator checks it in both directions wherever enmity blocks an
// action.
func (u *User) AddEnemy(target *User) error {
	if contains(u.enemies, target.Login) {
		return ErrAlreadyEnemy
	}
	u.enemies = append(u.enemies, target.Login)
	return nil
}

func (u *User) IsEnemyOf(target *User) bool {
	return contains(u.enemies, target.Login)
}

func (u *User) ReceiveMessage(sender, body string) {
	u.messages = append(u.messages, Message{Sender: sender, Body: body})
}

// ReadMessage pops the oldest private message.
func (u *User) ReadMessage() (Message, error) {
	if len(u.messages) == 0 {
		return Message{}, ErrNoMessages
	}
	m := u.messages[0]
	u.messages = u.messages[1:]
	return m, nil
}

func (u *User) HasMessages() bool {
	return len(u.messages) > 0
}

func (u *User) ReceiveBroadcast(body string) {
	u.broadcasts = append(u.broadcasts, body)
}

// ReadBroadcast pops the oldest community broadcast.
func (u *User) ReadBroadcast() (string, error) {
	if len(u.broadcasts) == 0 {
		return "", ErrNoMessages
	}
	b := u.broadcasts[0]
	u.broadcasts = u.broadcasts[1:]
	return b, nil
}

func (u *User) HasBroadcasts() bool {
	return len(u.broadcasts) > 0
}

// PurgeSender drops every queued private message attributed to sender,
// keeping the rest in their relative order. Used by the account deletion
// cascade.
func (u *User) PurgeSender(sender string) {
	kept := u.messages[:0]
	for _, m := range u.messages {
		if m.Sender != sender {
			kept = append(kept, m)
		}
	}
	u.messages = kept
}

// forget removes every relationship edge pointing at login. Message purging
// is separate because messages outlive the relationship that produced them.
func (u *User) forget(login string) {
	u.friends = remove(u.friends, login)
	u.requestsOut = remove(u.requestsOut, login)
	u.requestsIn = remove(u.requestsIn, login)
	u.idols = remove(u.idols, login)
	u.fans = remove(u.fans, login)
	u.crushes = remove(u.crushes, login)
	u.enemies = remove(u.enemies, login)
}

func contains(set []string, login string) bool {
	for _, l := range set {
		if l == login {
			return true
		}
	}
	return false
}

func remove(set []string, login string) []string {
	for i, l := range set {
		if l == login {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}

package social

// UserState is the full serializable state of one user. It exists for the
// snapshot boundary: rebuilding a user from stored state must not replay
// operations, or side effects such as the mutual crush notice would fire
// again on load.
type UserState struct {
	Login       string
	Password    string
	DisplayName string
	Profile     map[string]string

	Friends     []string
	RequestsOut []string
	RequestsIn  []string
	Idols       []string
	Fans        []string
	Crushes     []string
	Enemies     []string

	Messages   []Message
	Broadcasts []string
}

// State copies the user's complete state. Slice and map contents are copied;
// mutating the result never touches the live user.
func (u *User) State() UserState {
	profile := make(map[string]string, len(u.profile))
	for k, v := range u.profile {
		profile[k] = v
	}
	return UserState{
		Login:       u.Login,
		Password:    u.Password,
		DisplayName: u.DisplayName,
		Profile:     profile,
		Friends:     cloned(u.friends),
		RequestsOut: cloned(u.requestsOut),
		RequestsIn:  cloned(u.requestsIn),
		Idols:       cloned(u.idols),
		Fans:        cloned(u.fans),
		Crushes:     cloned(u.crushes),
		Enemies:     cloned(u.enemies),
		Messages:    append([]Message(nil), u.messages...),
		Broadcasts:  cloned(u.broadcasts),
	}
}

// RestoreUser rebuilds a user from stored state without triggering any
// operation side effects.
func RestoreUser(s UserState) *User {
	u := NewUser(s.Login, s.Password, s.DisplayName)
	for k, v := range s.Profile {
		u.profile[k] = v
	}
	u.friends = cloned(s.Friends)
	u.requestsOut = cloned(s.RequestsOut)
	u.requestsIn = cloned(s.RequestsIn)
	u.idols = cloned(s.Idols)
	u.fans = cloned(s.Fans)
	u.crushes = cloned(s.Crushes)
	u.enemies = cloned(s.Enemies)
	u.messages = append([]Message(nil), s.Messages...)
	u.broadcasts = cloned(s.Broadcasts)
	return u
}

// CommunityState is the serializable state of one community. Members keeps
// insertion order, with the owner first.
type CommunityState struct {
	Name        string
	Description string
	Owner       string
	Members     []string
}

func (c *Community) State() CommunityState {
	return CommunityState{
		Name:        c.Name,
		Description: c.Description,
		Owner:       c.Owner,
		Members:     cloned(c.members),
	}
}

// RestoreCommunity rebuilds a community from stored state.
func RestoreCommunity(s CommunityState) *Community {
	return &Community{
		Name:        s.Name,
		Description: s.Description,
		Owner:       s.Owner,
		members:     cloned(s.Members),
	}
}

func cloned(set []string) []string {
	if set == nil {
		return nil
	}
	return append([]string(nil), set...)
}

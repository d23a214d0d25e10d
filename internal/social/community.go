package social

import "sort"

// Community is a named group with a fixed owner and an insertion-ordered
// membership. The owner joins at creation and stays at position 0 for the
// community's whole life.
type Community struct {
	Name        string
	Description string
	Owner       string

	members []string
}

func (c *Community) IsMember(login string) bool {
	return contains(c.members, login)
}

// Members returns the membership in insertion order, owner first.
func (c *Community) Members() []string {
	return cloned(c.members)
}

// Communities is the authoritative collection of communities, indexed by
// name and kept in creation order for deterministic iteration.
type Communities struct {
	byName map[string]*Community
	order  []string
}

func NewCommunities() *Communities {
	return &Communities{byName: make(map[string]*Community)}
}

// Create registers a new community with owner enrolled as its first member.
func (cs *Communities) Create(owner *User, name, description string) (*Community, error) {
	if _, ok := cs.byName[name]; ok {
		return nil, ErrDuplicateCommunity
	}
	c := &Community{
		Name:        name,
		Description: description,
		Owner:       owner.Login,
		members:     []string{owner.Login},
	}
	cs.byName[name] = c
	cs.order = append(cs.order, name)
	return c, nil
}

// Get returns the community for name, or ErrCommunityNotFound.
func (cs *Communities) Get(name string) (*Community, error) {
	c, ok := cs.byName[name]
	if !ok {
		return nil, ErrCommunityNotFound
	}
	return c, nil
}

// All returns every community in creation order.
func (cs *Communities) All() []*Community {
	all := make([]*Community, 0, len(cs.order))
	for _, name := range cs.order {
		all = append(all, cs.byName[name])
	}
	return all
}

// Add registers an already-built community, used when loading a snapshot.
func (cs *Communities) Add(c *Community) error {
	if _, ok := cs.byName[c.Name]; ok {
		return ErrDuplicateCommunity
	}
	cs.byName[c.Name] = c
	cs.order = append(cs.order, c.Name)
	return nil
}

// AddMember appends user to the community's membership.
func (cs *Communities) AddMember(u *User, name string) error {
	c, err := cs.Get(name)
	if err != nil {
		return err
	}
	if c.IsMember(u.Login) {
		return ErrAlreadyMember
	}
	c.members = append(c.members, u.Login)
	return nil
}

// Broadcast enqueues body onto the broadcast queue of every member present
// at send time, in membership order. Users joining afterwards do not receive
// it.
func (cs *Communities) Broadcast(dir *Directory, name, body string) error {
	c, err := cs.Get(name)
	if err != nil {
		return err
	}
	for _, login := range c.members {
		if m := dir.Get(login); m != nil {
			m.ReceiveBroadcast(body)
		}
	}
	return nil
}

// Of lists the names of every community the user belongs to, sorted.
func (cs *Communities) Of(login string) []string {
	var names []string
	for _, name := range cs.order {
		if cs.byName[name].IsMember(login) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RemoveUser is the account deletion cascade: communities owned by the user
// are deleted outright, communities merely joined lose the user from their
// membership and carry on.
func (cs *Communities) RemoveUser(u *User) {
	var doomed []string
	for _, name := range cs.order {
		c := cs.byName[name]
		if c.Owner == u.Login {
			doomed = append(doomed, name)
			continue
		}
		c.members = remove(c.members, u.Login)
	}
	for _, name := range doomed {
		delete(cs.byName, name)
		cs.order = remove(cs.order, name)
	}
}

// Reset clears all communities in place.
func (cs *Communities) Reset() {
	cs.byName = make(map[string]*Community)
	cs.order = nil
}

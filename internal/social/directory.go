package social

// Directory is the authoritative collection of users, indexed by login.
// Insertion order is kept so that iteration, and therefore snapshots, are
// deterministic.
type Directory struct {
	users map[string]*User
	order []string
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[string]*User)}
}

// Create registers a new user. The login is the identity key and must be
// unique across the directory.
func (d *Directory) Create(login, password, displayName string) (*User, error) {
	if _, ok := d.users[login]; ok {
		return nil, ErrDuplicateAccount
	}
	u := NewUser(login, password, displayName)
	d.users[login] = u
	d.order = append(d.order, login)
	return u, nil
}

// Get returns the user for login, or nil when no such user exists.
func (d *Directory) Get(login string) *User {
	return d.users[login]
}

func (d *Directory) Contains(login string) bool {
	_, ok := d.users[login]
	return ok
}

// All returns every user in insertion order.
func (d *Directory) All() []*User {
	all := make([]*User, 0, len(d.order))
	for _, login := range d.order {
		all = append(all, d.users[login])
	}
	return all
}

func (d *Directory) Len() int {
	return len(d.users)
}

// Add registers an already-built user, used when loading a snapshot.
func (d *Directory) Add(u *User) error {
	if _, ok := d.users[u.Login]; ok {
		return ErrDuplicateAccount
	}
	d.users[u.Login] = u
	d.order = append(d.order, u.Login)
	return nil
}

// Remove deletes a user and every inbound reference to it: relationship
// edges on all other users and every private message it authored. The user
// itself is discarded last.
func (d *Directory) Remove(u *User) {
	for _, other := range d.users {
		if other == u {
			continue
		}
		other.forget(u.Login)
		other.PurgeSender(u.Login)
	}
	delete(d.users, u.Login)
	d.order = remove(d.order, u.Login)
}

// Reset clears all users in place.
func (d *Directory) Reset() {
	d.users = make(map[string]*User)
	d.order = nil
}

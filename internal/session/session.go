// Package session holds the table that maps opaque session identifiers to
// logins. The table knows nothing about users beyond their login; callers
// are expected to check that the login still exists.
package session

import "fmt"

type Table struct {
	sessions map[string]string
	next     int
}

func NewTable() *Table {
	return &Table{sessions: make(map[string]string), next: 1}
}

// Open registers a new session for login and returns its identifier.
// Identifiers are counter-keyed and never reused within a process lifetime.
func (t *Table) Open(login string) string {
	id := fmt.Sprintf("session-%d", t.next)
	t.next++
	t.sessions[id] = login
	return id
}

// Resolve returns the login a session id was opened for.
func (t *Table) Resolve(id string) (string, bool) {
	login, ok := t.sessions[id]
	return login, ok
}

// Close discards a single session.
func (t *Table) Close(id string) {
	delete(t.sessions, id)
}

// Drop discards every session opened for login, used when the account is
// removed.
func (t *Table) Drop(login string) {
	for id, l := range t.sessions {
		if l == login {
			delete(t.sessions, id)
		}
	}
}

// Reset clears the table and restarts the identifier counter.
func (t *Table) Reset() {
	t.sessions = make(map[string]string)
	t.next = 1
}

// Package users is the static, read-only user directory.
package users

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// User is an entry in the directory
type User struct {
	ID     string
	Name   string
	Avatar string
}

// Directory is an ordered, read-only list of users
type Directory struct {
	users []User
}

// Default returns the built-in directory
func Default() *Directory {
	return New([]User{
		{ID: "u1", Name: "Alice", Avatar: "/avatars/alice.png"},
		{ID: "u2", Name: "Bob", Avatar: "/avatars/bob.png"},
		{ID: "u3", Name: "Sara", Avatar: "/avatars/sara.png"},
	})
}

// New builds a directory from the given users
func New(list []User) *Directory {
	users := make([]User, len(list))
	copy(users, list)
	return &Directory{users: users}
}

// All returns the users in directory order
func (d *Directory) All() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

// Lookup returns the user with the given id
func (d *Directory) Lookup(id string) (User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Exists reports whether id is a known user
func (d *Directory) Exists(id string) bool {
	_, ok := d.Lookup(id)
	return ok
}

// Name returns the display name for id, falling back to the id itself
func (d *Directory) Name(id string) string {
	if u, ok := d.Lookup(id); ok {
		return u.Name
	}
	return id
}

// Find resolves a query to a single user. An exact id or case-insensitive
// name wins; otherwise the best fuzzy match over names is used.
func (d *Directory) Find(query string) (User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return User{}, fmt.Errorf("empty user query")
	}

	for _, u := range d.users {
		if u.ID == query || strings.EqualFold(u.Name, query) {
			return u, nil
		}
	}

	names := make([]string, len(d.users))
	for i, u := range d.users {
		names[i] = u.Name
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return User{}, fmt.Errorf("no user matches %q", query)
	}
	return d.users[matches[0].Index], nil
}

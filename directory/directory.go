// Package directory keeps the registry of users of the voting service.
// Registrations start as pending and become users once approved.
package directory

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// User is the registration record of an identity.
type User struct {
	ID            common.Address `json:"id"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	PostalAddress string         `json:"postalAddress"`
	NationalID    string         `json:"nationalId"`
	Age           uint8          `json:"age"`
}

// Directory holds pending and accepted users, each list in insertion order.
// It is not safe for concurrent use.
type Directory struct {
	pending  []User
	accepted []User
	index    map[common.Address]entry
}

type entry struct {
	accepted bool
	pos      int
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{index: make(map[common.Address]entry)}
}

// Restore builds a Directory from previously listed pending and accepted users.
func Restore(pending, accepted []User) (*Directory, error) {
	d := New()
	for _, u := range accepted {
		if _, ok := d.index[u.ID]; ok {
			return nil, fmt.Errorf("duplicated user %s", u.ID)
		}
		d.index[u.ID] = entry{accepted: true, pos: len(d.accepted)}
		d.accepted = append(d.accepted, u)
	}
	for _, u := range pending {
		if _, ok := d.index[u.ID]; ok {
			return nil, fmt.Errorf("duplicated user %s", u.ID)
		}
		d.index[u.ID] = entry{pos: len(d.pending)}
		d.pending = append(d.pending, u)
	}
	return d, nil
}

// Register adds a pending registration for id. Fields are stored as given.
func (d *Directory) Register(id common.Address, firstName, lastName, postalAddress,
	nationalID string, age uint8,
) (User, error) {
	if e, ok := d.index[id]; ok {
		if e.accepted {
			return User{}, ErrAlreadyRegistered
		}
		return User{}, ErrUserNotAccepted
	}
	u := User{
		ID:            id,
		FirstName:     firstName,
		LastName:      lastName,
		PostalAddress: postalAddress,
		NationalID:    nationalID,
		Age:           age,
	}
	d.index[id] = entry{pos: len(d.pending)}
	d.pending = append(d.pending, u)
	return u, nil
}

// Approve moves the pending registration of id to the accepted users.
func (d *Directory) Approve(id common.Address) (User, error) {
	e, ok := d.index[id]
	if !ok || e.accepted {
		return User{}, ErrPendingUserNotFound
	}
	u := d.pending[e.pos]
	d.pending = append(d.pending[:e.pos], d.pending[e.pos+1:]...)
	for i := e.pos; i < len(d.pending); i++ {
		d.index[d.pending[i].ID] = entry{pos: i}
	}
	d.index[id] = entry{accepted: true, pos: len(d.accepted)}
	d.accepted = append(d.accepted, u)
	return u, nil
}

// Pending returns the pending registration of id.
func (d *Directory) Pending(id common.Address) (User, error) {
	e, ok := d.index[id]
	if !ok || e.accepted {
		return User{}, ErrPendingUserNotFound
	}
	return d.pending[e.pos], nil
}

// Get returns the accepted user id.
func (d *Directory) Get(id common.Address) (User, error) {
	e, ok := d.index[id]
	if !ok || !e.accepted {
		return User{}, ErrUserNotFound
	}
	return d.accepted[e.pos], nil
}

// IsAccepted reports whether id is an accepted user.
func (d *Directory) IsAccepted(id common.Address) bool {
	e, ok := d.index[id]
	return ok && e.accepted
}

// IsPending reports whether id is waiting for approval.
func (d *Directory) IsPending(id common.Address) bool {
	e, ok := d.index[id]
	return ok && !e.accepted
}

// PendingUsers returns a copy of the pending registrations.
func (d *Directory) PendingUsers() []User {
	return append([]User{}, d.pending...)
}

// Users returns a copy of the accepted users.
func (d *Directory) Users() []User {
	return append([]User{}, d.accepted...)
}

// Clone returns a deep copy of d.
func (d *Directory) Clone() *Directory {
	c := &Directory{
		pending:  d.PendingUsers(),
		accepted: d.Users(),
		index:    make(map[common.Address]entry, len(d.index)),
	}
	for k, v := range d.index {
		c.index[k] = v
	}
	return c
}

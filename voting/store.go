package voting

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Vicen621-Facultad/votacion/db"
	"github.com/Vicen621-Facultad/votacion/db/prefixeddb"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
)

// Changes tells a Store which parts of the aggregate were modified.
type Changes struct {
	Meta      bool
	Users     bool
	Elections []uint32
}

// Store persists the aggregate between calls.
type Store interface {
	// Load returns the stored aggregate, or nil if nothing was stored yet.
	Load() (*State, error)
	// Save atomically writes the parts of s listed in changes.
	Save(s *State, changes Changes) error
}

var (
	storePrefix = []byte("voting/")

	metaKey         = []byte("meta")
	pendingPrefix   = []byte("users/p/")
	acceptedPrefix  = []byte("users/a/")
	electionsPrefix = []byte("elections/")
)

// DBStore is a Store over a db.Database.
type DBStore struct {
	db db.Database
}

var _ Store = (*DBStore)(nil)

// NewDBStore returns a Store keeping its records under the voting/ prefix
// of database.
func NewDBStore(database db.Database) *DBStore {
	return &DBStore{db: prefixeddb.NewPrefixedDatabase(database, storePrefix)}
}

func indexKey(prefix []byte, i uint32) []byte {
	k := make([]byte, len(prefix)+4)
	copy(k, prefix)
	binary.BigEndian.PutUint32(k[len(prefix):], i)
	return k
}

// Load implements Store.
func (s *DBStore) Load() (*State, error) {
	mb, err := s.db.Get(metaKey)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m, err := decodeMeta(mb)
	if err != nil {
		return nil, err
	}

	readUsers := func(prefix []byte) ([]directory.User, error) {
		var users []directory.User
		var derr error
		if err := s.db.Iterate(prefix, func(_, v []byte) bool {
			u, err := decodeUser(v)
			if err != nil {
				derr = err
				return false
			}
			users = append(users, u)
			return true
		}); err != nil {
			return nil, err
		}
		return users, derr
	}
	pending, err := readUsers(pendingPrefix)
	if err != nil {
		return nil, err
	}
	accepted, err := readUsers(acceptedPrefix)
	if err != nil {
		return nil, err
	}
	users, err := directory.Restore(pending, accepted)
	if err != nil {
		return nil, err
	}

	state := &State{
		Admin:     m.admin,
		Reporter:  m.reporter,
		Users:     users,
		Elections: make([]*election.Election, m.elections),
	}
	for i := range state.Elections {
		eb, err := s.db.Get(indexKey(electionsPrefix, uint32(i)))
		if err != nil {
			return nil, fmt.Errorf("cannot load election %d: %w", i, err)
		}
		e, err := decodeElection(eb)
		if err != nil {
			return nil, fmt.Errorf("cannot load election %d: %w", i, err)
		}
		if e.ID() != uint32(i) {
			return nil, fmt.Errorf("election stored at %d has id %d", i, e.ID())
		}
		state.Elections[i] = e
	}
	return state, nil
}

// Save implements Store.
func (s *DBStore) Save(state *State, changes Changes) error {
	wTx := s.db.WriteTx()
	defer wTx.Discard()

	if changes.Meta || len(changes.Elections) > 0 {
		m := meta{
			admin:     state.Admin,
			reporter:  state.Reporter,
			elections: uint32(len(state.Elections)),
		}
		b, err := encodeMeta(m)
		if err != nil {
			return err
		}
		if err := wTx.Set(metaKey, b); err != nil {
			return err
		}
	}
	if changes.Users {
		for _, group := range []struct {
			prefix []byte
			users  []directory.User
		}{
			{pendingPrefix, state.Users.PendingUsers()},
			{acceptedPrefix, state.Users.Users()},
		} {
			if err := db.DeletePrefix(wTx, group.prefix); err != nil {
				return err
			}
			for i, u := range group.users {
				b, err := encodeUser(u)
				if err != nil {
					return err
				}
				if err := wTx.Set(indexKey(group.prefix, uint32(i)), b); err != nil {
					return err
				}
			}
		}
	}
	for _, id := range changes.Elections {
		e, err := state.election(id)
		if err != nil {
			return err
		}
		b, err := encodeElection(e.Record())
		if err != nil {
			return fmt.Errorf("cannot encode election %d: %w", id, err)
		}
		if err := wTx.Set(indexKey(electionsPrefix, id), b); err != nil {
			return fmt.Errorf("cannot store election %d: %w", id, err)
		}
	}
	return wTx.Commit()
}

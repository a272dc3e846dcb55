package voting

import (
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultReporter is the reporter identity used when none is configured.
var DefaultReporter = common.BytesToAddress([]byte{
	0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10,
	0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10,
})

// State is the aggregate persisted between calls: the admin and reporter
// identities, the user directory and every election, indexed by id.
type State struct {
	Admin     common.Address
	Reporter  common.Address
	Users     *directory.Directory
	Elections []*election.Election
}

// NewState returns an empty aggregate owned by admin.
func NewState(admin, reporter common.Address) *State {
	return &State{
		Admin:    admin,
		Reporter: reporter,
		Users:    directory.New(),
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		Admin:     s.Admin,
		Reporter:  s.Reporter,
		Users:     s.Users.Clone(),
		Elections: make([]*election.Election, len(s.Elections)),
	}
	for i, e := range s.Elections {
		c.Elections[i] = e.Clone()
	}
	return c
}

func (s *State) election(id uint32) (*election.Election, error) {
	if int(id) >= len(s.Elections) {
		return nil, ErrElectionNotFound
	}
	return s.Elections[id], nil
}

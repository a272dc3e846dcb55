// Package reporting builds the views available to the reporter identity on
// top of the voting service: the directory entries of the voters of an
// election, its participation and its sorted results.
//
// Closed elections never change, so participation and results are computed
// once and kept in an LRU cache.
package reporting

import (
	"sort"

	"github.com/Vicen621-Facultad/votacion/db/lru"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/Vicen621-Facultad/votacion/voting"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultCacheSize is the number of elections whose reports are cached.
const DefaultCacheSize = 256

// Source is the reporter-gated query surface of the voting service.
type Source interface {
	Reporter() common.Address
	User(who common.Address) (directory.User, error)
	RegisteredVoters(caller common.Address, id uint32) ([]common.Address, error)
	Participation(caller common.Address, id uint32) (voters, voted int, err error)
	AllVotes(caller common.Address, id uint32) ([]election.Tally, error)
}

var _ Source = (*voting.Service)(nil)

// Participation is the turnout of a closed election. Percent is rounded down.
type Participation struct {
	Voters  uint32 `json:"voters"`
	Votes   uint32 `json:"votes"`
	Percent uint32 `json:"percent"`
}

// NewParticipation computes the turnout of voted out of voters.
func NewParticipation(voters, voted int) Participation {
	p := Participation{Voters: uint32(voters), Votes: uint32(voted)}
	if voters > 0 {
		p.Percent = uint32(uint64(voted) * 100 / uint64(voters))
	}
	return p
}

// Service answers the reporter queries.
type Service struct {
	src           Source
	participation *lru.Cache
	results       *lru.Cache
}

// New returns a reporting Service over src, caching the reports of up to
// cacheSize elections (DefaultCacheSize if not positive).
func New(src Source, cacheSize int) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Service{
		src:           src,
		participation: lru.New(cacheSize),
		results:       lru.New(cacheSize),
	}
}

// RegisteredVoters returns the directory entries of the accepted voters of
// election id, in approval order.
func (s *Service) RegisteredVoters(caller common.Address, id uint32) ([]directory.User, error) {
	voters, err := s.src.RegisteredVoters(caller, id)
	if err != nil {
		return nil, err
	}
	users := make([]directory.User, 0, len(voters))
	for _, v := range voters {
		u, err := s.src.User(v)
		if err != nil {
			log.Warnw("voter without directory entry", "election", id, "voter", v.Hex())
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Participation returns the turnout of the closed election id.
func (s *Service) Participation(caller common.Address, id uint32) (Participation, error) {
	if caller != s.src.Reporter() {
		return Participation{}, voting.ErrReportersOnly
	}
	if p, ok := s.participation.Get(id).(Participation); ok {
		cacheHits.Inc()
		return p, nil
	}
	cacheMisses.Inc()
	voters, voted, err := s.src.Participation(caller, id)
	if err != nil {
		return Participation{}, err
	}
	p := NewParticipation(voters, voted)
	s.participation.Add(id, p)
	return p, nil
}

// Results returns the tally of the closed election id sorted by ascending
// votes. Candidates with the same votes keep their approval order.
func (s *Service) Results(caller common.Address, id uint32) ([]election.Tally, error) {
	if caller != s.src.Reporter() {
		return nil, voting.ErrReportersOnly
	}
	if r, ok := s.results.Get(id).([]election.Tally); ok {
		cacheHits.Inc()
		return append([]election.Tally{}, r...), nil
	}
	cacheMisses.Inc()
	tally, err := s.src.AllVotes(caller, id)
	if err != nil {
		return nil, err
	}
	sorted := append([]election.Tally{}, tally...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes < sorted[j].Votes
	})
	s.results.Add(id, sorted)
	return append([]election.Tally{}, sorted...), nil
}

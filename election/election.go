// Package election implements the state machine of a single election.
//
// Every identity moves at most once from unrelated to pending (voter or
// candidate) and from pending to accepted in the same role. Nominations and
// approvals are only possible before the election starts, votes only while it
// is open, and results only once it has ended. Phase checks always come first,
// so an ended election reports ErrElectionEnded whatever the identity.
package election

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/ethereum/go-ethereum/common"
)

// Tally is the vote count of a candidate.
type Tally struct {
	Candidate common.Address `json:"candidate"`
	Votes     uint32         `json:"votes"`
}

// Election holds the participants and tally of one election. It is not safe
// for concurrent use.
type Election struct {
	id      uint32
	start   date.Date
	end     date.Date
	startTS uint64
	endTS   uint64

	pendingVoters     *addrSet
	pendingCandidates *addrSet
	voters            *addrSet
	candidates        *addrSet
	voted             *addrSet

	tally    []Tally
	tallyPos map[common.Address]int
}

// New returns an empty election open between start and end, both inclusive.
// The dates must be valid. Their ordering is checked by the caller.
func New(id uint32, start, end date.Date) (*Election, error) {
	startTS, err := start.Timestamp()
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	endTS, err := end.Timestamp()
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return &Election{
		id:                id,
		start:             start,
		end:               end,
		startTS:           startTS,
		endTS:             endTS,
		pendingVoters:     newAddrSet(),
		pendingCandidates: newAddrSet(),
		voters:            newAddrSet(),
		candidates:        newAddrSet(),
		voted:             newAddrSet(),
		tallyPos:          make(map[common.Address]int),
	}, nil
}

// ID returns the election identifier.
func (e *Election) ID() uint32 { return e.id }

// Start returns the opening date.
func (e *Election) Start() date.Date { return e.start }

// End returns the closing date.
func (e *Election) End() date.Date { return e.end }

// StartTimestamp returns the opening instant in milliseconds.
func (e *Election) StartTimestamp() uint64 { return e.startTS }

// EndTimestamp returns the closing instant in milliseconds.
func (e *Election) EndTimestamp() uint64 { return e.endTS }

// Started reports whether the election is open or closed at now.
func (e *Election) Started(now uint64) bool {
	return now >= e.startTS
}

// Ended reports whether the election is closed at now.
func (e *Election) Ended(now uint64) bool {
	return now > e.endTS
}

func (e *Election) checkNomination(id common.Address, now uint64) error {
	switch {
	case e.Ended(now):
		return ErrElectionEnded
	case e.Started(now):
		return ErrElectionStarted
	case e.pendingCandidates.has(id):
		return ErrAlreadyNominatedAsCandidate
	case e.pendingVoters.has(id):
		return ErrAlreadyNominatedAsVoter
	case e.voters.has(id):
		return ErrAlreadyVoter
	case e.candidates.has(id):
		return ErrAlreadyCandidate
	}
	return nil
}

// NominateCandidate adds id to the pending candidates.
func (e *Election) NominateCandidate(id common.Address, now uint64) error {
	if err := e.checkNomination(id, now); err != nil {
		return err
	}
	e.pendingCandidates.add(id)
	return nil
}

// NominateVoter adds id to the pending voters.
func (e *Election) NominateVoter(id common.Address, now uint64) error {
	if err := e.checkNomination(id, now); err != nil {
		return err
	}
	e.pendingVoters.add(id)
	return nil
}

// ApproveCandidate accepts the pending candidate id and opens its tally at 0.
// Authorization is up to the caller.
func (e *Election) ApproveCandidate(id common.Address, now uint64) error {
	switch {
	case e.Ended(now):
		return ErrElectionEnded
	case e.Started(now):
		return ErrElectionStarted
	case e.candidates.has(id):
		return ErrAlreadyCandidate
	case e.voters.has(id):
		return ErrAlreadyVoter
	case !e.pendingCandidates.has(id):
		return ErrNotNominatedAsCandidate
	}
	e.pendingCandidates.remove(id)
	e.candidates.add(id)
	e.tallyPos[id] = len(e.tally)
	e.tally = append(e.tally, Tally{Candidate: id})
	return nil
}

// ApproveVoter accepts the pending voter id. Authorization is up to the caller.
func (e *Election) ApproveVoter(id common.Address, now uint64) error {
	switch {
	case e.Ended(now):
		return ErrElectionEnded
	case e.Started(now):
		return ErrElectionStarted
	case e.voters.has(id):
		return ErrAlreadyVoter
	case e.candidates.has(id):
		return ErrAlreadyCandidate
	case !e.pendingVoters.has(id):
		return ErrNotNominatedAsVoter
	}
	e.pendingVoters.remove(id)
	e.voters.add(id)
	return nil
}

// Vote records that voter has voted and counts one vote for candidate.
func (e *Election) Vote(voter, candidate common.Address, now uint64) error {
	switch {
	case e.Ended(now):
		return ErrElectionEnded
	case !e.Started(now):
		return ErrElectionNotStarted
	case !e.voters.has(voter):
		return ErrNotAVoter
	case !e.candidates.has(candidate):
		return ErrNotACandidate
	case e.voted.has(voter):
		return ErrAlreadyVoted
	}
	e.voted.add(voter)
	pos, ok := e.tallyPos[candidate]
	if !ok {
		pos = len(e.tally)
		e.tallyPos[candidate] = pos
		e.tally = append(e.tally, Tally{Candidate: candidate})
	}
	e.tally[pos].Votes++
	return nil
}

// HasVoted reports whether id has already voted.
func (e *Election) HasVoted(id common.Address) bool {
	return e.voted.has(id)
}

// VotesForCandidate returns the votes received by the candidate id once the
// election has ended.
func (e *Election) VotesForCandidate(id common.Address, now uint64) (uint32, error) {
	if !e.Ended(now) {
		return 0, ErrElectionNotFinished
	}
	if !e.candidates.has(id) {
		return 0, ErrNotACandidate
	}
	pos, ok := e.tallyPos[id]
	if !ok {
		return 0, nil
	}
	return e.tally[pos].Votes, nil
}

// AllVotes returns the tally of every candidate, in approval order, once the
// election has ended.
func (e *Election) AllVotes(now uint64) ([]Tally, error) {
	if !e.Ended(now) {
		return nil, ErrElectionNotFinished
	}
	return append([]Tally{}, e.tally...), nil
}

// Participation returns the number of accepted voters and how many of them
// voted, once the election has ended.
func (e *Election) Participation(now uint64) (voters, voted int, err error) {
	if !e.Ended(now) {
		return 0, 0, ErrElectionNotFinished
	}
	return e.voters.len(), e.voted.len(), nil
}

// IsPendingVoter reports whether id waits for approval as a voter.
func (e *Election) IsPendingVoter(id common.Address) bool { return e.pendingVoters.has(id) }

// IsPendingCandidate reports whether id waits for approval as a candidate.
func (e *Election) IsPendingCandidate(id common.Address) bool { return e.pendingCandidates.has(id) }

// IsVoter reports whether id is an accepted voter.
func (e *Election) IsVoter(id common.Address) bool { return e.voters.has(id) }

// IsCandidate reports whether id is an accepted candidate.
func (e *Election) IsCandidate(id common.Address) bool { return e.candidates.has(id) }

// Voters returns the accepted voters in approval order.
func (e *Election) Voters() []common.Address { return e.voters.slice() }

// Candidates returns the accepted candidates in approval order.
func (e *Election) Candidates() []common.Address { return e.candidates.slice() }

// PendingVoters returns the voters waiting for approval.
func (e *Election) PendingVoters() []common.Address { return e.pendingVoters.slice() }

// PendingCandidates returns the candidates waiting for approval.
func (e *Election) PendingCandidates() []common.Address { return e.pendingCandidates.slice() }

// VotedCount returns how many voters have voted.
func (e *Election) VotedCount() int { return e.voted.len() }

// Clone returns a deep copy of e.
func (e *Election) Clone() *Election {
	c := *e
	c.pendingVoters = e.pendingVoters.clone()
	c.pendingCandidates = e.pendingCandidates.clone()
	c.voters = e.voters.clone()
	c.candidates = e.candidates.clone()
	c.voted = e.voted.clone()
	c.tally = append([]Tally{}, e.tally...)
	c.tallyPos = make(map[common.Address]int, len(e.tallyPos))
	for k, v := range e.tallyPos {
		c.tallyPos[k] = v
	}
	return &c
}

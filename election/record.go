package election

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/ethereum/go-ethereum/common"
)

// Record is the flat representation of an Election used for storage and
// transport. Lists keep the election order.
type Record struct {
	ID                uint32           `json:"id"`
	Start             date.Date        `json:"start"`
	End               date.Date        `json:"end"`
	PendingVoters     []common.Address `json:"pendingVoters"`
	PendingCandidates []common.Address `json:"pendingCandidates"`
	Voters            []common.Address `json:"voters"`
	Candidates        []common.Address `json:"candidates"`
	Voted             []common.Address `json:"voted"`
	Tally             []Tally          `json:"tally"`
}

// Record returns the flat representation of e.
func (e *Election) Record() Record {
	return Record{
		ID:                e.id,
		Start:             e.start,
		End:               e.end,
		PendingVoters:     e.pendingVoters.slice(),
		PendingCandidates: e.pendingCandidates.slice(),
		Voters:            e.voters.slice(),
		Candidates:        e.candidates.slice(),
		Voted:             e.voted.slice(),
		Tally:             append([]Tally{}, e.tally...),
	}
}

// FromRecord rebuilds an Election, checking that no identity holds two roles
// and that the tally belongs to accepted candidates.
func FromRecord(r Record) (*Election, error) {
	e, err := New(r.ID, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	seen := make(map[common.Address]bool)
	for _, group := range []struct {
		set   *addrSet
		addrs []common.Address
	}{
		{e.pendingVoters, r.PendingVoters},
		{e.pendingCandidates, r.PendingCandidates},
		{e.voters, r.Voters},
		{e.candidates, r.Candidates},
	} {
		for _, a := range group.addrs {
			if seen[a] {
				return nil, fmt.Errorf("election %d: %s holds more than one role", r.ID, a)
			}
			seen[a] = true
			group.set.add(a)
		}
	}
	for _, a := range r.Voted {
		if !e.voters.has(a) {
			return nil, fmt.Errorf("election %d: %s voted but is not a voter", r.ID, a)
		}
		e.voted.add(a)
	}
	for _, t := range r.Tally {
		if !e.candidates.has(t.Candidate) {
			return nil, fmt.Errorf("election %d: tally for non candidate %s", r.ID, t.Candidate)
		}
		if _, ok := e.tallyPos[t.Candidate]; ok {
			return nil, fmt.Errorf("election %d: duplicated tally for %s", r.ID, t.Candidate)
		}
		e.tallyPos[t.Candidate] = len(e.tally)
		e.tally = append(e.tally, t)
	}
	return e, nil
}

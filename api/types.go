package api

import (
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/ethereum/go-ethereum/common"
)

// Election status names.
const (
	ElectionStatusUpcoming = "upcoming"
	ElectionStatusOngoing  = "ongoing"
	ElectionStatusEnded    = "ended"
)

// Info is the node information returned by GET /info.
type Info struct {
	Version   string         `json:"version"`
	Admin     common.Address `json:"admin"`
	Reporter  common.Address `json:"reporter"`
	Elections uint32         `json:"elections"`
	Health    int32          `json:"health"`
}

// RegisterRequest is the body of a user registration.
type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PostalAddress string `json:"postalAddress"`
	NationalID    string `json:"nationalId"`
	Age           uint8  `json:"age"`
}

// UserList wraps a list of users.
type UserList struct {
	Users []directory.User `json:"users"`
}

// AddressRequest names an identity, used to change the admin or the reporter.
type AddressRequest struct {
	Address common.Address `json:"address"`
}

// NewElectionRequest is the body of an election creation. Dates use the
// DD/MM/YYYY [HH:MM:SS] layout.
type NewElectionRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewElectionResponse returns the id of a created election.
type NewElectionResponse struct {
	ElectionID uint32 `json:"electionId"`
}

// Election is the public view of an election. Votes are never part of it.
type Election struct {
	ElectionID uint32           `json:"electionId"`
	Start      date.Date        `json:"start"`
	End        date.Date        `json:"end"`
	Status     string           `json:"status"`
	Candidates []common.Address `json:"candidates"`
	VoterCount int              `json:"voterCount"`
	VoteCount  int              `json:"voteCount"`
}

// ElectionList wraps a list of elections.
type ElectionList struct {
	Elections []Election `json:"elections"`
}

// Nominations lists the pending nominations of an election.
type Nominations struct {
	Candidates []common.Address `json:"candidates"`
	Voters     []common.Address `json:"voters"`
}

// VoteRequest is the body of a vote.
type VoteRequest struct {
	Candidate common.Address `json:"candidate"`
}

// HasVotedResponse tells whether a voter voted.
type HasVotedResponse struct {
	Voted bool `json:"voted"`
}

// ElectionStatus is the phase of an election.
type ElectionStatus struct {
	Started bool `json:"started"`
	Ended   bool `json:"ended"`
}

// CandidateVotes are the votes received by a candidate.
type CandidateVotes struct {
	Candidate common.Address `json:"candidate"`
	Votes     uint32         `json:"votes"`
}

// Results is the tally of a closed election, by ascending votes.
type Results struct {
	ElectionID uint32           `json:"electionId"`
	Tally      []election.Tally `json:"tally"`
}

// ParticipationReport is the turnout of a closed election.
type ParticipationReport struct {
	ElectionID uint32 `json:"electionId"`
	reporting.Participation
}

// JournalEntries wraps a list of journal entries.
type JournalEntries struct {
	Entries []journal.Entry `json:"entries"`
}

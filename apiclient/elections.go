package apiclient

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/ethereum/go-ethereum/common"
)

func electionPath(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CreateElection creates an election running from start to end and returns
// its id.
func (c *HTTPclient) CreateElection(start, end date.Date) (uint32, error) {
	resp := &api.NewElectionResponse{}
	req := &api.NewElectionRequest{Start: start.String(), End: end.String()}
	if err := c.call(HTTPPOST, req, resp, nil, "elections"); err != nil {
		return 0, err
	}
	return resp.ElectionID, nil
}

// Elections lists every election.
func (c *HTTPclient) Elections() ([]api.Election, error) {
	list := &api.ElectionList{}
	if err := c.call(HTTPGET, nil, list, nil, "elections"); err != nil {
		return nil, err
	}
	return list.Elections, nil
}

// Election returns the public view of election id.
func (c *HTTPclient) Election(id uint32) (*api.Election, error) {
	e := &api.Election{}
	if err := c.call(HTTPGET, nil, e, nil, "elections", electionPath(id)); err != nil {
		return nil, err
	}
	return e, nil
}

// ElectionStatus tells whether election id started and ended.
func (c *HTTPclient) ElectionStatus(id uint32) (*api.ElectionStatus, error) {
	s := &api.ElectionStatus{}
	if err := c.call(HTTPGET, nil, s, nil, "elections", electionPath(id), "status"); err != nil {
		return nil, err
	}
	return s, nil
}

// Nominations lists the pending nominations of election id.
func (c *HTTPclient) Nominations(id uint32) (*api.Nominations, error) {
	n := &api.Nominations{}
	if err := c.call(HTTPGET, nil, n, nil, "elections", electionPath(id), "nominations"); err != nil {
		return nil, err
	}
	return n, nil
}

// NominateCandidate nominates the account as a candidate of election id.
func (c *HTTPclient) NominateCandidate(id uint32) error {
	return c.call(HTTPPOST, nil, nil, nil, "elections", electionPath(id), "candidates")
}

// NominateVoter nominates the account as a voter of election id.
func (c *HTTPclient) NominateVoter(id uint32) error {
	return c.call(HTTPPOST, nil, nil, nil, "elections", electionPath(id), "voters")
}

// ApproveCandidate accepts who as a candidate of election id.
func (c *HTTPclient) ApproveCandidate(id uint32, who common.Address) error {
	return c.call(HTTPPOST, nil, nil, nil, "elections", electionPath(id), "candidates", who.Hex(), "approve")
}

// ApproveVoter accepts who as a voter of election id.
func (c *HTTPclient) ApproveVoter(id uint32, who common.Address) error {
	return c.call(HTTPPOST, nil, nil, nil, "elections", electionPath(id), "voters", who.Hex(), "approve")
}

// Vote casts the vote of the account for candidate in election id.
func (c *HTTPclient) Vote(id uint32, candidate common.Address) error {
	return c.call(HTTPPOST, &api.VoteRequest{Candidate: candidate}, nil, nil,
		"elections", electionPath(id), "votes")
}

// HasVoted tells whether who voted in election id.
func (c *HTTPclient) HasVoted(id uint32, who common.Address) (bool, error) {
	r := &api.HasVotedResponse{}
	if err := c.call(HTTPGET, nil, r, nil, "elections", electionPath(id), "voters", who.Hex(), "voted"); err != nil {
		return false, err
	}
	return r.Voted, nil
}

// VotesForCandidate returns the votes of candidate who in the closed election id.
func (c *HTTPclient) VotesForCandidate(id uint32, who common.Address) (uint32, error) {
	r := &api.CandidateVotes{}
	if err := c.call(HTTPGET, nil, r, nil, "elections", electionPath(id), "candidates", who.Hex(), "votes"); err != nil {
		return 0, err
	}
	return r.Votes, nil
}

// RegisteredVoters returns the accepted voters of election id.
func (c *HTTPclient) RegisteredVoters(id uint32) ([]directory.User, error) {
	list := &api.UserList{}
	if err := c.call(HTTPGET, nil, list, nil, "reports", electionPath(id), "voters"); err != nil {
		return nil, err
	}
	return list.Users, nil
}

// Participation returns the turnout of the closed election id.
func (c *HTTPclient) Participation(id uint32) (*reporting.Participation, error) {
	r := &api.ParticipationReport{}
	if err := c.call(HTTPGET, nil, r, nil, "reports", electionPath(id), "participation"); err != nil {
		return nil, err
	}
	return &r.Participation, nil
}

// Results returns the tally of the closed election id, by ascending votes.
func (c *HTTPclient) Results(id uint32) ([]election.Tally, error) {
	r := &api.Results{}
	if err := c.call(HTTPGET, nil, r, nil, "reports", electionPath(id), "results"); err != nil {
		return nil, err
	}
	return r.Tally, nil
}

// Journal returns up to limit journal entries starting at sequence number
// from. A limit of zero uses the server maximum.
func (c *HTTPclient) Journal(from uint64, limit int) ([]journal.Entry, error) {
	q := url.Values{}
	q.Set("from", strconv.FormatUint(from, 10))
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	r := &api.JournalEntries{}
	if err := c.call(HTTPGET, nil, r, q, "journal"); err != nil {
		return nil, err
	}
	return r.Entries, nil
}

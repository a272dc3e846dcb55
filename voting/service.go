// Package voting implements the election registry: it owns the admin and
// reporter identities, the user directory and every election, authorizes
// each call and persists the aggregate after every successful change.
//
// All operations are serialized. A mutation is applied to a copy of the
// touched parts of the aggregate, saved through the Store and only then made
// visible, so a failed call leaves no trace.
package voting

import (
	"fmt"
	"sync"

	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/ethereum/go-ethereum/common"
)

// Journal receives an entry for every successful mutation.
type Journal interface {
	Push(journal.Entry) error
}

// Service is the voting service. It is safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	state   *State
	store   Store
	clock   Clock
	journal Journal
}

// New loads the aggregate from store. If the store is empty, a new aggregate
// is created with creator as admin and reporter as the reporter identity
// (DefaultReporter if reporter is the zero address).
func New(store Store, clock Clock, creator, reporter common.Address) (*Service, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load voting state: %w", err)
	}
	if state == nil {
		if reporter == (common.Address{}) {
			reporter = DefaultReporter
		}
		state = NewState(creator, reporter)
		if err := store.Save(state, Changes{Meta: true, Users: true}); err != nil {
			return nil, fmt.Errorf("cannot store voting state: %w", err)
		}
		log.Infow("voting state created", "admin", creator.Hex(), "reporter", reporter.Hex())
	} else {
		log.Infow("voting state loaded", "admin", state.Admin.Hex(),
			"reporter", state.Reporter.Hex(), "elections", len(state.Elections))
	}
	return &Service{
		state: state,
		store: store,
		clock: clock,
	}, nil
}

// SetJournal makes the service push an entry to j after every mutation.
func (s *Service) SetJournal(j Journal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = j
}

// commit persists next and makes it the current state. Must be called with
// the write lock held.
func (s *Service) commit(next *State, changes Changes) error {
	if err := s.store.Save(next, changes); err != nil {
		return fmt.Errorf("cannot store voting state: %w", err)
	}
	s.state = next
	return nil
}

// record pushes an entry to the journal, if any. A full journal never fails
// the operation.
func (s *Service) record(e journal.Entry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Push(e); err != nil {
		log.Warnw("journal entry dropped", "kind", e.Kind, "err", err)
	}
}

// shallow returns a copy of s sharing every component.
func (s *State) shallow() *State {
	c := *s
	return &c
}

// mutableUsers replaces the directory of s with a private copy.
func (s *State) mutableUsers() *directory.Directory {
	s.Users = s.Users.Clone()
	return s.Users
}

// mutableElection replaces election id of s with a private copy.
func (s *State) mutableElection(id uint32) (*election.Election, error) {
	e, err := s.election(id)
	if err != nil {
		return nil, err
	}
	c := e.Clone()
	elections := make([]*election.Election, len(s.Elections))
	copy(elections, s.Elections)
	elections[id] = c
	s.Elections = elections
	return c, nil
}

// Now returns the current time of the service clock, in milliseconds.
func (s *Service) Now() uint64 {
	return s.clock.Now()
}

// Admin returns the admin identity.
func (s *Service) Admin() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Admin
}

// Reporter returns the identity allowed to request reports.
func (s *Service) Reporter() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Reporter
}

// SetAdmin transfers the admin role to admin.
func (s *Service) SetAdmin(caller, admin common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return ErrNotAdmin
	}
	next := s.state.shallow()
	next.Admin = admin
	if err := s.commit(next, Changes{Meta: true}); err != nil {
		return err
	}
	log.Infow("admin changed", "from", caller.Hex(), "to", admin.Hex())
	s.record(journal.Entry{Kind: journal.AdminChanged, Actor: caller, Subject: admin, Time: now})
	return nil
}

// SetReporter changes the identity allowed to request reports.
func (s *Service) SetReporter(caller, reporter common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return ErrNotAdmin
	}
	next := s.state.shallow()
	next.Reporter = reporter
	if err := s.commit(next, Changes{Meta: true}); err != nil {
		return err
	}
	log.Infow("reporter changed", "reporter", reporter.Hex())
	s.record(journal.Entry{Kind: journal.ReporterChanged, Actor: caller, Subject: reporter, Time: now})
	return nil
}

// Register adds a pending registration for the caller.
func (s *Service) Register(caller common.Address, firstName, lastName, postalAddress,
	nationalID string, age uint8,
) (directory.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	next := s.state.shallow()
	u, err := next.mutableUsers().Register(caller, firstName, lastName, postalAddress, nationalID, age)
	if err != nil {
		return directory.User{}, err
	}
	if err := s.commit(next, Changes{Users: true}); err != nil {
		return directory.User{}, err
	}
	log.Infow("user registered", "user", caller.Hex())
	s.record(journal.Entry{Kind: journal.UserRegistered, Actor: caller, Subject: caller, Time: now})
	return u, nil
}

// ApproveUser accepts the pending registration of who.
func (s *Service) ApproveUser(caller, who common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return ErrNotAdmin
	}
	next := s.state.shallow()
	if _, err := next.mutableUsers().Approve(who); err != nil {
		return err
	}
	if err := s.commit(next, Changes{Users: true}); err != nil {
		return err
	}
	log.Infow("user approved", "user", who.Hex())
	s.record(journal.Entry{Kind: journal.UserApproved, Actor: caller, Subject: who, Time: now})
	return nil
}

// PendingUser returns the pending registration of who.
func (s *Service) PendingUser(who common.Address) (directory.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Users.Pending(who)
}

// User returns the accepted user who.
func (s *Service) User(who common.Address) (directory.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Users.Get(who)
}

// PendingUsers lists the registrations waiting for approval.
func (s *Service) PendingUsers() []directory.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Users.PendingUsers()
}

// Users lists the accepted users.
func (s *Service) Users() []directory.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Users.Users()
}

// CreateElection opens a new election between start and end and returns its id.
func (s *Service) CreateElection(caller common.Address, start, end date.Date) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return 0, ErrNotAdmin
	}
	startTS, err := start.Timestamp()
	if err != nil {
		return 0, err
	}
	endTS, err := end.Timestamp()
	if err != nil {
		return 0, err
	}
	if startTS > endTS {
		return 0, ErrStartAfterEnd
	}
	id := uint32(len(s.state.Elections))
	e, err := election.New(id, start, end)
	if err != nil {
		return 0, err
	}
	next := s.state.shallow()
	next.Elections = append(append(make([]*election.Election, 0, id+1), s.state.Elections...), e)
	if err := s.commit(next, Changes{Elections: []uint32{id}}); err != nil {
		return 0, err
	}
	electionsCreated.Inc()
	log.Infow("new election", "election", id, "start", start.String(), "end", end.String())
	s.record(journal.Entry{Kind: journal.ElectionCreated, Actor: caller, Election: id, Time: now})
	return id, nil
}

// Election returns a copy of election id, or false if it does not exist.
func (s *Service) Election(id uint32) (*election.Election, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.state.election(id)
	if err != nil {
		return nil, false
	}
	return e.Clone(), true
}

// ElectionCount returns the number of elections, which is also the id of the
// next one.
func (s *Service) ElectionCount() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint32(len(s.state.Elections))
}

// Elections returns a copy of every election, by id.
func (s *Service) Elections() []*election.Election {
	s.mu.RLock()
	defer s.mu.RUnlock()
	elections := make([]*election.Election, len(s.state.Elections))
	for i, e := range s.state.Elections {
		elections[i] = e.Clone()
	}
	return elections
}

// checkUser fails unless who is an accepted user.
func (s *Service) checkUser(who common.Address) error {
	if s.state.Users.IsPending(who) {
		return directory.ErrUserNotAccepted
	}
	if !s.state.Users.IsAccepted(who) {
		return directory.ErrUserNotFound
	}
	return nil
}

// updateElection applies fn to a copy of election id and commits it. Must be
// called with the write lock held.
func (s *Service) updateElection(id uint32, fn func(e *election.Election) error) error {
	next := s.state.shallow()
	e, err := next.mutableElection(id)
	if err != nil {
		return err
	}
	if err := fn(e); err != nil {
		return err
	}
	return s.commit(next, Changes{Elections: []uint32{id}})
}

// NominateCandidate nominates the caller as a candidate of election id.
func (s *Service) NominateCandidate(caller common.Address, id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.checkUser(caller); err != nil {
		return err
	}
	if err := s.updateElection(id, func(e *election.Election) error {
		return e.NominateCandidate(caller, now)
	}); err != nil {
		return err
	}
	log.Infow("candidate nominated", "election", id, "candidate", caller.Hex())
	s.record(journal.Entry{Kind: journal.CandidateNominated, Actor: caller, Subject: caller, Election: id, Time: now})
	return nil
}

// NominateVoter nominates the caller as a voter of election id.
func (s *Service) NominateVoter(caller common.Address, id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if err := s.checkUser(caller); err != nil {
		return err
	}
	if err := s.updateElection(id, func(e *election.Election) error {
		return e.NominateVoter(caller, now)
	}); err != nil {
		return err
	}
	log.Infow("voter nominated", "election", id, "voter", caller.Hex())
	s.record(journal.Entry{Kind: journal.VoterNominated, Actor: caller, Subject: caller, Election: id, Time: now})
	return nil
}

// ApproveCandidate accepts the nomination of who as a candidate of election id.
func (s *Service) ApproveCandidate(caller common.Address, id uint32, who common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return ErrNotAdmin
	}
	if !s.state.Users.IsAccepted(who) {
		return directory.ErrUserNotFound
	}
	if err := s.updateElection(id, func(e *election.Election) error {
		return e.ApproveCandidate(who, now)
	}); err != nil {
		return err
	}
	log.Infow("candidate approved", "election", id, "candidate", who.Hex())
	s.record(journal.Entry{Kind: journal.CandidateApproved, Actor: caller, Subject: who, Election: id, Time: now})
	return nil
}

// ApproveVoter accepts the nomination of who as a voter of election id.
func (s *Service) ApproveVoter(caller common.Address, id uint32, who common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if caller != s.state.Admin {
		return ErrNotAdmin
	}
	if !s.state.Users.IsAccepted(who) {
		return directory.ErrUserNotFound
	}
	if err := s.updateElection(id, func(e *election.Election) error {
		return e.ApproveVoter(who, now)
	}); err != nil {
		return err
	}
	log.Infow("voter approved", "election", id, "voter", who.Hex())
	s.record(journal.Entry{Kind: journal.VoterApproved, Actor: caller, Subject: who, Election: id, Time: now})
	return nil
}

// Vote casts the vote of the caller for candidate in election id.
func (s *Service) Vote(caller common.Address, id uint32, candidate common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if !s.state.Users.IsAccepted(caller) || !s.state.Users.IsAccepted(candidate) {
		return directory.ErrUserNotFound
	}
	if err := s.updateElection(id, func(e *election.Election) error {
		return e.Vote(caller, candidate, now)
	}); err != nil {
		return err
	}
	votesCast.Inc()
	log.Infow("vote", "election", id, "voter", caller.Hex())
	s.record(journal.Entry{Kind: journal.VoteCast, Actor: caller, Election: id, Time: now})
	return nil
}

// adminElection returns election id after checking the caller is the admin.
// Must be called with the lock held.
func (s *Service) adminElection(caller common.Address, id uint32) (*election.Election, error) {
	if caller != s.state.Admin {
		return nil, ErrNotAdmin
	}
	return s.state.election(id)
}

// HasVoted reports whether who has voted in election id.
func (s *Service) HasVoted(caller common.Address, id uint32, who common.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if caller != s.state.Admin {
		return false, ErrNotAdmin
	}
	if !s.state.Users.IsAccepted(who) {
		return false, directory.ErrUserNotFound
	}
	e, err := s.state.election(id)
	if err != nil {
		return false, err
	}
	return e.HasVoted(who), nil
}

// ElectionStarted reports whether election id is open or closed.
func (s *Service) ElectionStarted(caller common.Address, id uint32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.adminElection(caller, id)
	if err != nil {
		return false, err
	}
	return e.Started(s.clock.Now()), nil
}

// ElectionEnded reports whether election id is closed.
func (s *Service) ElectionEnded(caller common.Address, id uint32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.adminElection(caller, id)
	if err != nil {
		return false, err
	}
	return e.Ended(s.clock.Now()), nil
}

// VotesForCandidate returns the votes of candidate who in the closed election id.
func (s *Service) VotesForCandidate(caller common.Address, id uint32, who common.Address) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.adminElection(caller, id)
	if err != nil {
		return 0, err
	}
	return e.VotesForCandidate(who, s.clock.Now())
}

// reporterElection returns election id after checking the caller is the
// reporter. Must be called with the lock held.
func (s *Service) reporterElection(caller common.Address, id uint32) (*election.Election, error) {
	if caller != s.state.Reporter {
		return nil, ErrReportersOnly
	}
	return s.state.election(id)
}

// RegisteredVoters returns the accepted voters of election id.
func (s *Service) RegisteredVoters(caller common.Address, id uint32) ([]common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.reporterElection(caller, id)
	if err != nil {
		return nil, err
	}
	return e.Voters(), nil
}

// Participation returns the number of accepted voters of the closed election
// id and how many of them voted.
func (s *Service) Participation(caller common.Address, id uint32) (voters, voted int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.reporterElection(caller, id)
	if err != nil {
		return 0, 0, err
	}
	return e.Participation(s.clock.Now())
}

// AllVotes returns the tally of the closed election id, in approval order.
func (s *Service) AllVotes(caller common.Address, id uint32) ([]election.Tally, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.reporterElection(caller, id)
	if err != nil {
		return nil, err
	}
	return e.AllVotes(s.clock.Now())
}

package voting

import (
	"fmt"
	"testing"

	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/db/metadb"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/test/testcommon/testutil"
	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"
)

var (
	admin    = testutil.Address(0xad)
	reporter = testutil.Address(0x8e)
	alice    = testutil.Address(0xa1)
	bob      = testutil.Address(0xb0)
	carol    = testutil.Address(0xca)
	mallory  = testutil.Address(0x66)
)

func ts(t testing.TB, d date.Date) uint64 {
	ms, err := d.Timestamp()
	qt.Assert(t, err, qt.IsNil)
	return ms
}

type testService struct {
	*Service
	clock *testutil.MockClock
	store Store
}

// newTestService returns a service with alice, bob and carol accepted, and
// the clock before 2024.
func newTestService(t testing.TB) *testService {
	store := NewDBStore(metadb.NewTest(t))
	clock := testutil.NewMockClock(ts(t, date.New(1, 12, 2023)))
	s, err := New(store, clock, admin, reporter)
	qt.Assert(t, err, qt.IsNil)
	for _, u := range []common.Address{alice, bob, carol} {
		_, err := s.Register(u, "name", "surname", "street 1", "12345678", 30)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, s.ApproveUser(admin, u), qt.IsNil)
	}
	return &testService{Service: s, clock: clock, store: store}
}

func (s *testService) createElection2024(t testing.TB) uint32 {
	id, err := s.CreateElection(admin, date.New(1, 1, 2024), date.New(31, 12, 2024))
	qt.Assert(t, err, qt.IsNil)
	return id
}

func TestNew(t *testing.T) {
	store := NewDBStore(metadb.NewTest(t))
	s, err := New(store, SystemClock{}, admin, common.Address{})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, s.Admin(), qt.Equals, admin)
	qt.Assert(t, s.Reporter(), qt.Equals, DefaultReporter)
	qt.Assert(t, DefaultReporter, qt.Equals, testutil.Address(0x10))

	// the creator of a reloaded service is ignored
	s, err = New(store, SystemClock{}, mallory, mallory)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, s.Admin(), qt.Equals, admin)
	qt.Assert(t, s.Reporter(), qt.Equals, DefaultReporter)
}

func TestElectionScenario(t *testing.T) {
	s := newTestService(t)
	id := s.createElection2024(t)
	qt.Assert(t, id, qt.Equals, uint32(0))

	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNil)
	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
	qt.Assert(t, s.ApproveVoter(admin, id, bob), qt.IsNil)
	qt.Assert(t, s.ApproveCandidate(admin, id, alice), qt.IsNil)

	s.clock.Set(ts(t, date.New(15, 6, 2024)))
	qt.Assert(t, s.Vote(bob, id, alice), qt.IsNil)

	voted, err := s.HasVoted(admin, id, bob)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, voted, qt.IsTrue)

	_, err = s.VotesForCandidate(admin, id, alice)
	qt.Assert(t, err, qt.ErrorIs, election.ErrElectionNotFinished)

	s.clock.Set(ts(t, date.New(1, 1, 2025)))
	n, err := s.VotesForCandidate(admin, id, alice)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, n, qt.Equals, uint32(1))

	ended, err := s.ElectionEnded(admin, id)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, ended, qt.IsTrue)
	started, err := s.ElectionStarted(admin, id)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, started, qt.IsTrue)
}

func TestCreateElection(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateElection(alice, date.New(1, 1, 2024), date.New(31, 12, 2024))
	qt.Assert(t, err, qt.ErrorIs, ErrNotAdmin)
	_, err = s.CreateElection(admin, date.New(31, 12, 2024), date.New(1, 1, 2024))
	qt.Assert(t, err, qt.ErrorIs, ErrStartAfterEnd)
	_, err = s.CreateElection(admin, date.New(32, 1, 2024), date.New(1, 2, 2024))
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	_, err = s.CreateElection(admin, date.New(1, 1, 2024), date.New(30, 2, 2024))
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	_, err = s.CreateElection(admin, date.New(1, 1, 2024), date.New(1, 1, 600000000))
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	qt.Assert(t, s.ElectionCount(), qt.Equals, uint32(0))

	// ids are dense
	for i := uint32(0); i < 3; i++ {
		qt.Assert(t, s.createElection2024(t), qt.Equals, i)
	}
	// a single day election, start and end at the same instant
	id, err := s.CreateElection(admin, date.New(5, 5, 2024), date.New(5, 5, 2024))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, id, qt.Equals, uint32(3))

	e, ok := s.Election(1)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, e.ID(), qt.Equals, uint32(1))
	qt.Assert(t, e.Start(), qt.Equals, date.New(1, 1, 2024))
	_, ok = s.Election(4)
	qt.Assert(t, ok, qt.IsFalse)
	qt.Assert(t, s.Elections(), qt.HasLen, 4)
}

func TestUsers(t *testing.T) {
	s := newTestService(t)

	u, err := s.Register(mallory, "Mallory", "M", "nowhere", "0", 99)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, u.FirstName, qt.Equals, "Mallory")
	_, err = s.Register(mallory, "Mallory", "M", "nowhere", "0", 99)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrUserNotAccepted)
	_, err = s.Register(alice, "Alice", "A", "", "", 1)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrAlreadyRegistered)

	p, err := s.PendingUser(mallory)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, p, qt.Equals, u)
	_, err = s.User(mallory)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrUserNotFound)

	qt.Assert(t, s.ApproveUser(alice, mallory), qt.ErrorIs, ErrNotAdmin)
	qt.Assert(t, s.ApproveUser(admin, testutil.Address(0x01)), qt.ErrorIs, directory.ErrPendingUserNotFound)
	qt.Assert(t, s.PendingUsers(), qt.HasLen, 1)
	qt.Assert(t, s.ApproveUser(admin, mallory), qt.IsNil)
	qt.Assert(t, s.PendingUsers(), qt.HasLen, 0)
	qt.Assert(t, s.Users(), qt.HasLen, 4)
	_, err = s.PendingUser(mallory)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrPendingUserNotFound)
}

func TestNominationAuthorization(t *testing.T) {
	s := newTestService(t)
	id := s.createElection2024(t)

	_, err := s.Register(mallory, "Mallory", "M", "", "", 20)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, s.NominateVoter(mallory, id), qt.ErrorIs, directory.ErrUserNotAccepted)
	qt.Assert(t, s.NominateCandidate(testutil.Address(0x02), id), qt.ErrorIs, directory.ErrUserNotFound)
	qt.Assert(t, s.NominateCandidate(alice, 7), qt.ErrorIs, ErrElectionNotFound)

	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
	qt.Assert(t, s.NominateVoter(alice, id), qt.ErrorIs, election.ErrAlreadyNominatedAsCandidate)

	qt.Assert(t, s.ApproveCandidate(bob, id, alice), qt.ErrorIs, ErrNotAdmin)
	qt.Assert(t, s.ApproveCandidate(admin, id, mallory), qt.ErrorIs, directory.ErrUserNotFound)
	qt.Assert(t, s.ApproveCandidate(admin, 7, alice), qt.ErrorIs, ErrElectionNotFound)
	qt.Assert(t, s.ApproveVoter(admin, id, alice), qt.ErrorIs, election.ErrNotNominatedAsVoter)
	qt.Assert(t, s.ApproveCandidate(admin, id, alice), qt.IsNil)

	s.clock.Set(ts(t, date.New(2, 1, 2024)))
	qt.Assert(t, s.NominateVoter(bob, id), qt.ErrorIs, election.ErrElectionStarted)
}

func TestVoteAuthorization(t *testing.T) {
	s := newTestService(t)
	id := s.createElection2024(t)
	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNil)
	qt.Assert(t, s.ApproveVoter(admin, id, bob), qt.IsNil)
	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
	qt.Assert(t, s.ApproveCandidate(admin, id, alice), qt.IsNil)
	s.clock.Set(ts(t, date.New(15, 6, 2024)))

	qt.Assert(t, s.Vote(mallory, id, alice), qt.ErrorIs, directory.ErrUserNotFound)
	qt.Assert(t, s.Vote(bob, id, mallory), qt.ErrorIs, directory.ErrUserNotFound)
	qt.Assert(t, s.Vote(bob, 9, alice), qt.ErrorIs, ErrElectionNotFound)
	// the admin cannot vote on behalf of a voter
	qt.Assert(t, s.Vote(admin, id, alice), qt.ErrorIs, directory.ErrUserNotFound)
	qt.Assert(t, s.Vote(carol, id, alice), qt.ErrorIs, election.ErrNotAVoter)
	qt.Assert(t, s.Vote(bob, id, carol), qt.ErrorIs, election.ErrNotACandidate)
	qt.Assert(t, s.Vote(bob, id, alice), qt.IsNil)
	qt.Assert(t, s.Vote(bob, id, alice), qt.ErrorIs, election.ErrAlreadyVoted)

	_, err := s.HasVoted(bob, id, bob)
	qt.Assert(t, err, qt.ErrorIs, ErrNotAdmin)
	_, err = s.HasVoted(admin, id, mallory)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrUserNotFound)
	_, err = s.HasVoted(admin, 9, bob)
	qt.Assert(t, err, qt.ErrorIs, ErrElectionNotFound)
	voted, err := s.HasVoted(admin, id, carol)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, voted, qt.IsFalse)

	_, err = s.ElectionStarted(bob, id)
	qt.Assert(t, err, qt.ErrorIs, ErrNotAdmin)
	_, err = s.ElectionEnded(admin, 9)
	qt.Assert(t, err, qt.ErrorIs, ErrElectionNotFound)
}

func TestAdminAndReporter(t *testing.T) {
	s := newTestService(t)

	qt.Assert(t, s.SetAdmin(alice, alice), qt.ErrorIs, ErrNotAdmin)
	qt.Assert(t, s.SetReporter(alice, alice), qt.ErrorIs, ErrNotAdmin)
	qt.Assert(t, s.SetReporter(admin, carol), qt.IsNil)
	qt.Assert(t, s.Reporter(), qt.Equals, carol)

	qt.Assert(t, s.SetAdmin(admin, alice), qt.IsNil)
	qt.Assert(t, s.Admin(), qt.Equals, alice)
	_, err := s.CreateElection(admin, date.New(1, 1, 2024), date.New(2, 1, 2024))
	qt.Assert(t, err, qt.ErrorIs, ErrNotAdmin)
	_, err = s.CreateElection(alice, date.New(1, 1, 2024), date.New(2, 1, 2024))
	qt.Assert(t, err, qt.IsNil)
}

func TestReporterQueries(t *testing.T) {
	s := newTestService(t)
	id := s.createElection2024(t)
	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNil)
	qt.Assert(t, s.ApproveVoter(admin, id, bob), qt.IsNil)
	qt.Assert(t, s.NominateVoter(carol, id), qt.IsNil)
	qt.Assert(t, s.ApproveVoter(admin, id, carol), qt.IsNil)
	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
	qt.Assert(t, s.ApproveCandidate(admin, id, alice), qt.IsNil)

	_, err := s.RegisteredVoters(admin, id)
	qt.Assert(t, err, qt.ErrorIs, ErrReportersOnly)
	_, err = s.RegisteredVoters(reporter, 5)
	qt.Assert(t, err, qt.ErrorIs, ErrElectionNotFound)
	voters, err := s.RegisteredVoters(reporter, id)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, voters, qt.DeepEquals, []common.Address{bob, carol})

	s.clock.Set(ts(t, date.New(15, 6, 2024)))
	qt.Assert(t, s.Vote(bob, id, alice), qt.IsNil)
	_, _, err = s.Participation(reporter, id)
	qt.Assert(t, err, qt.ErrorIs, election.ErrElectionNotFinished)
	_, err = s.AllVotes(reporter, id)
	qt.Assert(t, err, qt.ErrorIs, election.ErrElectionNotFinished)

	s.clock.Set(ts(t, date.New(1, 1, 2025)))
	_, _, err = s.Participation(alice, id)
	qt.Assert(t, err, qt.ErrorIs, ErrReportersOnly)
	total, voted, err := s.Participation(reporter, id)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, total, qt.Equals, 2)
	qt.Assert(t, voted, qt.Equals, 1)
	tally, err := s.AllVotes(reporter, id)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, tally, qt.DeepEquals, []election.Tally{{Candidate: alice, Votes: 1}})
}

func TestPersistence(t *testing.T) {
	s := newTestService(t)
	id := s.createElection2024(t)
	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNil)
	qt.Assert(t, s.ApproveVoter(admin, id, bob), qt.IsNil)
	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
	qt.Assert(t, s.ApproveCandidate(admin, id, alice), qt.IsNil)
	qt.Assert(t, s.NominateVoter(carol, id), qt.IsNil)
	_, err := s.Register(mallory, "Mallory", "M", "x", "y", 7)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, s.SetReporter(admin, carol), qt.IsNil)
	s.clock.Set(ts(t, date.New(15, 6, 2024)))
	qt.Assert(t, s.Vote(bob, id, alice), qt.IsNil)

	reloaded, err := New(s.store, s.clock, mallory, mallory)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, reloaded.Admin(), qt.Equals, admin)
	qt.Assert(t, reloaded.Reporter(), qt.Equals, carol)
	qt.Assert(t, reloaded.Users(), qt.DeepEquals, s.Users())
	qt.Assert(t, reloaded.PendingUsers(), qt.DeepEquals, s.PendingUsers())
	qt.Assert(t, reloaded.ElectionCount(), qt.Equals, uint32(1))
	want, _ := s.Election(id)
	got, ok := reloaded.Election(id)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, got.Record(), qt.DeepEquals, want.Record())
	qt.Assert(t, reloaded.Vote(bob, id, alice), qt.ErrorIs, election.ErrAlreadyVoted)
}

// failingStore fails every save once armed.
type failingStore struct {
	Store
	fail bool
}

func (f *failingStore) Save(s *State, changes Changes) error {
	if f.fail {
		return fmt.Errorf("disk full")
	}
	return f.Store.Save(s, changes)
}

func TestFailedSaveLeavesNoTrace(t *testing.T) {
	store := &failingStore{Store: NewDBStore(metadb.NewTest(t))}
	clock := testutil.NewMockClock(ts(t, date.New(1, 12, 2023)))
	s, err := New(store, clock, admin, reporter)
	qt.Assert(t, err, qt.IsNil)
	_, err = s.Register(alice, "Alice", "A", "", "", 1)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, s.ApproveUser(admin, alice), qt.IsNil)
	id, err := s.CreateElection(admin, date.New(1, 1, 2024), date.New(31, 12, 2024))
	qt.Assert(t, err, qt.IsNil)

	store.fail = true
	qt.Assert(t, s.NominateCandidate(alice, id), qt.ErrorMatches, ".*disk full")
	_, err = s.CreateElection(admin, date.New(1, 1, 2024), date.New(31, 12, 2024))
	qt.Assert(t, err, qt.ErrorMatches, ".*disk full")
	_, err = s.Register(bob, "Bob", "B", "", "", 1)
	qt.Assert(t, err, qt.ErrorMatches, ".*disk full")

	e, _ := s.Election(id)
	qt.Assert(t, e.IsPendingCandidate(alice), qt.IsFalse)
	qt.Assert(t, s.ElectionCount(), qt.Equals, uint32(1))
	_, err = s.PendingUser(bob)
	qt.Assert(t, err, qt.ErrorIs, directory.ErrPendingUserNotFound)

	store.fail = false
	qt.Assert(t, s.NominateCandidate(alice, id), qt.IsNil)
}

func TestJournal(t *testing.T) {
	s := newTestService(t)
	j, err := journal.New(metadb.NewTest(t), 64)
	qt.Assert(t, err, qt.IsNil)
	s.SetJournal(j)

	id := s.createElection2024(t)
	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNil)
	qt.Assert(t, s.NominateVoter(bob, id), qt.IsNotNil)
	qt.Assert(t, s.ApproveVoter(admin, id, bob), qt.IsNil)

	n, err := j.Flush()
	qt.Assert(t, err, qt.IsNil)
	// failed operations are not recorded
	qt.Assert(t, n, qt.Equals, 3)
	entries, err := j.Entries(0, 0)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, entries[0].Kind, qt.Equals, journal.ElectionCreated)
	qt.Assert(t, entries[1].Kind, qt.Equals, journal.VoterNominated)
	qt.Assert(t, entries[1].Actor, qt.Equals, bob)
	qt.Assert(t, entries[2].Kind, qt.Equals, journal.VoterApproved)
	qt.Assert(t, entries[2].Subject, qt.Equals, bob)
	qt.Assert(t, entries[2].Time, qt.Equals, s.clock.Now())
}

package apiclient

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/Vicen621-Facultad/votacion/test/testcommon"
	"github.com/Vicen621-Facultad/votacion/test/testcommon/testutil"
	"github.com/Vicen621-Facultad/votacion/voting"
	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newClient(t *testing.T, addr *url.URL, k *ethereum.SignKeys) *HTTPclient {
	c, err := NewHTTPclient(addr, k)
	qt.Assert(t, err, qt.IsNil)
	return c
}

func TestClient(t *testing.T) {
	c := qt.New(t)
	start, err := date.New(1, 1, 2024).Timestamp()
	c.Assert(err, qt.IsNil)
	server := testcommon.APIserver{}
	server.Start(t, start-1)
	clock, addr := server.Clock, server.ListenAddr
	keys := testutil.RandomSigners(t, 3)
	alice, bob, carol := keys[0], keys[1], keys[2]

	ac := newClient(t, addr, server.Admin)
	rc := newClient(t, addr, server.Reporter)
	clients := map[*ethereum.SignKeys]*HTTPclient{}
	for i, k := range []*ethereum.SignKeys{alice, bob, carol} {
		clients[k] = newClient(t, addr, k)
		u, err := clients[k].Register(&api.RegisterRequest{
			FirstName: fmt.Sprintf("user%d", i), NationalID: fmt.Sprint(i), Age: 40,
		})
		c.Assert(err, qt.IsNil)
		c.Assert(u.ID, qt.Equals, k.Address())
	}

	// errors come back as the api errors, wrapping the domain ones
	_, err = clients[alice].Register(&api.RegisterRequest{FirstName: "again"})
	c.Assert(err, qt.ErrorIs, api.ErrAlreadyRegistered)
	c.Assert(err, qt.ErrorIs, directory.ErrAlreadyRegistered)
	c.Assert(clients[alice].ApproveUser(bob.Address()), qt.ErrorIs, voting.ErrNotAdmin)

	pending, err := ac.PendingUsers()
	c.Assert(err, qt.IsNil)
	c.Assert(pending, qt.HasLen, 3)
	for _, u := range pending {
		c.Assert(ac.ApproveUser(u.ID), qt.IsNil)
	}
	users, err := ac.Users()
	c.Assert(err, qt.IsNil)
	c.Assert(users, qt.CmpEquals(cmpopts.SortSlices(func(a, b directory.User) bool {
		return a.FirstName < b.FirstName
	})), pending)

	id, err := ac.CreateElection(date.New(1, 1, 2024), date.NewWithTime(31, 1, 2024, 18, 0, 0))
	c.Assert(err, qt.IsNil)
	c.Assert(clients[alice].NominateCandidate(id), qt.IsNil)
	c.Assert(clients[bob].NominateCandidate(id), qt.IsNil)
	c.Assert(clients[carol].NominateVoter(id), qt.IsNil)
	noms, err := ac.Nominations(id)
	c.Assert(err, qt.IsNil)
	c.Assert(noms.Candidates, qt.DeepEquals, []common.Address{alice.Address(), bob.Address()})
	c.Assert(ac.ApproveCandidate(id, alice.Address()), qt.IsNil)
	c.Assert(ac.ApproveCandidate(id, bob.Address()), qt.IsNil)
	c.Assert(ac.ApproveVoter(id, carol.Address()), qt.IsNil)
	c.Assert(ac.ApproveVoter(id, carol.Address()), qt.ErrorIs, election.ErrAlreadyVoter)

	clock.Advance(1)
	status, err := ac.ElectionStatus(id)
	c.Assert(err, qt.IsNil)
	c.Assert(status.Started, qt.IsTrue)
	c.Assert(clients[carol].Vote(id, bob.Address()), qt.IsNil)
	voted, err := ac.HasVoted(id, carol.Address())
	c.Assert(err, qt.IsNil)
	c.Assert(voted, qt.IsTrue)
	_, err = rc.Results(id)
	c.Assert(err, qt.ErrorIs, election.ErrElectionNotFinished)

	end, err := date.NewWithTime(31, 1, 2024, 18, 0, 0).Timestamp()
	c.Assert(err, qt.IsNil)
	clock.Set(end + 1)
	e, err := newClient(t, addr, nil).Election(id)
	c.Assert(err, qt.IsNil)
	c.Assert(e.Status, qt.Equals, api.ElectionStatusEnded)

	tally, err := rc.Results(id)
	c.Assert(err, qt.IsNil)
	c.Assert(tally, qt.DeepEquals, []election.Tally{
		{Candidate: alice.Address(), Votes: 0},
		{Candidate: bob.Address(), Votes: 1},
	})
	votes, err := ac.VotesForCandidate(id, bob.Address())
	c.Assert(err, qt.IsNil)
	c.Assert(votes, qt.Equals, uint32(1))
	p, err := rc.Participation(id)
	c.Assert(err, qt.IsNil)
	c.Assert(*p, qt.Equals, reporting.NewParticipation(1, 1))
	voters, err := rc.RegisteredVoters(id)
	c.Assert(err, qt.IsNil)
	c.Assert(voters, qt.HasLen, 1)
	c.Assert(voters[0].ID, qt.Equals, carol.Address())

	entries, err := ac.Journal(1, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(entries[len(entries)-1].Kind, qt.Equals, journal.VoteCast)
	c.Assert(entries[len(entries)-1].Actor, qt.Equals, carol.Address())
	entries, err = ac.Journal(2, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 2)
	c.Assert(entries[0].Seq, qt.Equals, uint64(2))
}

func TestSetAccount(t *testing.T) {
	server := testcommon.APIserver{}
	server.Start(t, 0, api.InfoHandler, api.UserHandler)
	admin := server.Admin

	cl := newClient(t, server.ListenAddr, nil)
	qt.Assert(t, cl.Account(), qt.Equals, common.Address{})
	_, err := cl.Users()
	qt.Assert(t, err, qt.ErrorMatches, `(?s).*status code is not 200: 401.*`)

	_, priv := admin.HexString()
	qt.Assert(t, cl.SetAccount(priv), qt.IsNil)
	qt.Assert(t, cl.Account(), qt.Equals, admin.Address())
	users, err := cl.Users()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, users, qt.HasLen, 0)
	qt.Assert(t, cl.SetAccount("not a key"), qt.IsNotNil)
	qt.Assert(t, cl.Account(), qt.Equals, admin.Address())

	qt.Assert(t, cl.SetReporter(admin.Address()), qt.IsNil)
	info, err := cl.Info()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, info.Reporter, qt.Equals, admin.Address())
}

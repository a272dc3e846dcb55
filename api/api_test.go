package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/db/metadb"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/Vicen621-Facultad/votacion/test/testcommon/testutil"
	"github.com/Vicen621-Facultad/votacion/voting"
	qt "github.com/frankban/quicktest"
)

type testNode struct {
	clock *testutil.MockClock
	base  *url.URL
	anon  *testutil.TestHTTPclient
}

func (n *testNode) client(t *testing.T, k *ethereum.SignKeys) *testutil.TestHTTPclient {
	return testutil.NewTestHTTPclient(t, n.base, k)
}

func timestamp(t testing.TB, d date.Date) uint64 {
	ms, err := d.Timestamp()
	qt.Assert(t, err, qt.IsNil)
	return ms
}

func newTestNode(t *testing.T, admin, reporter *ethereum.SignKeys) *testNode {
	r := httprouter.HTTProuter{}
	qt.Assert(t, r.Init("127.0.0.1", 0), qt.IsNil)
	t.Cleanup(func() { _ = r.Close() })

	database := metadb.NewTest(t)
	clock := testutil.NewMockClock(timestamp(t, date.New(1, 12, 2023)))
	vs, err := voting.New(voting.NewDBStore(database), clock, admin.Address(), reporter.Address())
	qt.Assert(t, err, qt.IsNil)
	j, err := journal.New(database, 100)
	qt.Assert(t, err, qt.IsNil)
	vs.SetJournal(j)

	a, err := api.NewAPI(&r, "/v1")
	qt.Assert(t, err, qt.IsNil)
	a.Attach(vs, reporting.New(vs, 16), j)
	qt.Assert(t, a.EnableHandlers(api.AllHandlers...), qt.IsNil)

	base, err := url.Parse(fmt.Sprintf("http://%s/v1", r.Address()))
	qt.Assert(t, err, qt.IsNil)
	return &testNode{
		clock: clock,
		base:  base,
		anon:  testutil.NewTestHTTPclient(t, base, nil),
	}
}

func decodeJSON(t *testing.T, data []byte, v any) {
	t.Helper()
	qt.Assert(t, json.Unmarshal(data, v), qt.IsNil, qt.Commentf("%s", data))
}

// assertCode checks the HTTP status and the error code of a failed request.
func assertCode(t *testing.T, resp []byte, status int, want int, wantErr apirest.APIerror) {
	t.Helper()
	qt.Assert(t, status, qt.Equals, want, qt.Commentf("%s", resp))
	var e struct {
		Code int `json:"code"`
	}
	decodeJSON(t, resp, &e)
	qt.Assert(t, e.Code, qt.Equals, wantErr.Code)
}

func TestEnableHandlers(t *testing.T) {
	r := httprouter.HTTProuter{}
	qt.Assert(t, r.Init("127.0.0.1", 0), qt.IsNil)
	t.Cleanup(func() { _ = r.Close() })

	_, err := api.NewAPI(nil, "/")
	qt.Assert(t, err, qt.ErrorIs, api.ErrHTTPRouterIsNil)
	_, err = api.NewAPI(&r, "v1")
	qt.Assert(t, err, qt.ErrorIs, api.ErrBaseRouteInvalid)

	a, err := api.NewAPI(&r, "/")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, a.EnableHandlers(api.InfoHandler), qt.ErrorIs, api.ErrMissingModulesForHandler)

	vs, err := voting.New(voting.NewDBStore(metadb.NewTest(t)), voting.SystemClock{},
		testutil.Address(1), testutil.Address(2))
	qt.Assert(t, err, qt.IsNil)
	a.Attach(vs, nil, nil)
	qt.Assert(t, a.EnableHandlers(api.ReportHandler), qt.ErrorIs, api.ErrMissingModulesForHandler)
	qt.Assert(t, a.EnableHandlers(api.JournalHandler), qt.ErrorIs, api.ErrMissingModulesForHandler)
	qt.Assert(t, a.EnableHandlers("chain"), qt.ErrorIs, api.ErrHandlerUnknown)
	qt.Assert(t, a.EnableHandlers(api.InfoHandler, api.UserHandler), qt.IsNil)
}

func TestElectionLifecycle(t *testing.T) {
	keys := testutil.RandomSigners(t, 5)
	admin, reporter, alice, bob, carol := keys[0], keys[1], keys[2], keys[3], keys[4]
	n := newTestNode(t, admin, reporter)
	ac := n.client(t, admin)
	rc := n.client(t, reporter)

	resp, code := n.anon.Request("GET", nil, "info")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	info := api.Info{}
	decodeJSON(t, resp, &info)
	qt.Assert(t, info.Admin, qt.Equals, admin.Address())
	qt.Assert(t, info.Reporter, qt.Equals, reporter.Address())
	qt.Assert(t, info.Elections, qt.Equals, uint32(0))

	// registration and approval
	for i, k := range []*ethereum.SignKeys{alice, bob, carol} {
		resp, code := n.client(t, k).Request("POST", api.RegisterRequest{
			FirstName:     fmt.Sprintf("user%d", i),
			LastName:      "test",
			PostalAddress: "street 1",
			NationalID:    fmt.Sprintf("%08d", i),
			Age:           30,
		}, "users")
		qt.Assert(t, code, qt.Equals, http.StatusOK, qt.Commentf("%s", resp))
	}
	resp, code = ac.Request("GET", nil, "users", "pending")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	pending := api.UserList{}
	decodeJSON(t, resp, &pending)
	qt.Assert(t, pending.Users, qt.HasLen, 3)
	qt.Assert(t, pending.Users[0].ID, qt.Equals, alice.Address())

	resp, code = n.client(t, alice).Request("GET", nil, "users", "pending", bob.Address().Hex())
	assertCode(t, resp, code, http.StatusForbidden, api.ErrNotAdmin)
	_, code = n.client(t, alice).Request("GET", nil, "users", "pending", alice.Address().Hex())
	qt.Assert(t, code, qt.Equals, http.StatusOK)

	for _, k := range []*ethereum.SignKeys{alice, bob, carol} {
		_, code := ac.Request("POST", nil, "users", k.Address().Hex(), "approve")
		qt.Assert(t, code, qt.Equals, http.StatusOK)
	}
	resp, code = ac.Request("POST", nil, "users", alice.Address().Hex(), "approve")
	assertCode(t, resp, code, http.StatusNotFound, api.ErrPendingUserNotFound)

	// election setup
	resp, code = n.client(t, alice).Request("POST",
		api.NewElectionRequest{Start: "01/01/2024", End: "31/12/2024"}, "elections")
	assertCode(t, resp, code, http.StatusForbidden, api.ErrNotAdmin)
	resp, code = ac.Request("POST", api.NewElectionRequest{Start: "1-1-2024", End: "31/12/2024"}, "elections")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrCantParseDate)
	resp, code = ac.Request("POST", api.NewElectionRequest{Start: "31/12/2024", End: "01/01/2024"}, "elections")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrStartAfterEnd)

	resp, code = ac.Request("POST", api.NewElectionRequest{Start: "01/01/2024", End: "31/12/2024"}, "elections")
	qt.Assert(t, code, qt.Equals, http.StatusOK, qt.Commentf("%s", resp))
	created := api.NewElectionResponse{}
	decodeJSON(t, resp, &created)
	qt.Assert(t, created.ElectionID, qt.Equals, uint32(0))
	id := fmt.Sprint(created.ElectionID)

	_, code = n.client(t, alice).Request("POST", nil, "elections", id, "candidates")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	resp, code = n.client(t, alice).Request("POST", nil, "elections", id, "voters")
	assertCode(t, resp, code, http.StatusConflict, api.ErrAlreadyNominatedAsCandidate)
	for _, k := range []*ethereum.SignKeys{bob, carol} {
		_, code := n.client(t, k).Request("POST", nil, "elections", id, "voters")
		qt.Assert(t, code, qt.Equals, http.StatusOK)
	}
	resp, code = ac.Request("GET", nil, "elections", id, "nominations")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	noms := api.Nominations{}
	decodeJSON(t, resp, &noms)
	qt.Assert(t, noms.Candidates, qt.HasLen, 1)
	qt.Assert(t, noms.Voters, qt.HasLen, 2)

	_, code = ac.Request("POST", nil, "elections", id, "candidates", alice.Address().Hex(), "approve")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	for _, k := range []*ethereum.SignKeys{bob, carol} {
		_, code := ac.Request("POST", nil, "elections", id, "voters", k.Address().Hex(), "approve")
		qt.Assert(t, code, qt.Equals, http.StatusOK)
	}

	resp, code = n.anon.Request("GET", nil, "elections", id)
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	e := api.Election{}
	decodeJSON(t, resp, &e)
	qt.Assert(t, e.Status, qt.Equals, api.ElectionStatusUpcoming)
	qt.Assert(t, e.VoterCount, qt.Equals, 2)
	qt.Assert(t, e.Start, qt.Equals, date.New(1, 1, 2024))

	// voting
	resp, code = n.client(t, bob).Request("POST", api.VoteRequest{Candidate: alice.Address()}, "elections", id, "votes")
	assertCode(t, resp, code, http.StatusConflict, api.ErrElectionNotStarted)

	n.clock.Set(timestamp(t, date.New(15, 6, 2024)))
	_, code = n.client(t, bob).Request("POST", api.VoteRequest{Candidate: alice.Address()}, "elections", id, "votes")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	resp, code = n.client(t, bob).Request("POST", api.VoteRequest{Candidate: alice.Address()}, "elections", id, "votes")
	assertCode(t, resp, code, http.StatusConflict, api.ErrAlreadyVoted)
	resp, code = n.client(t, alice).Request("POST", api.VoteRequest{Candidate: alice.Address()}, "elections", id, "votes")
	assertCode(t, resp, code, http.StatusConflict, api.ErrNotAVoter)

	resp, code = ac.Request("GET", nil, "elections", id, "voters", bob.Address().Hex(), "voted")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	voted := api.HasVotedResponse{}
	decodeJSON(t, resp, &voted)
	qt.Assert(t, voted.Voted, qt.IsTrue)

	resp, code = ac.Request("GET", nil, "elections", id, "status")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	status := api.ElectionStatus{}
	decodeJSON(t, resp, &status)
	qt.Assert(t, status, qt.Equals, api.ElectionStatus{Started: true, Ended: false})

	resp, code = rc.Request("GET", nil, "reports", id, "results")
	assertCode(t, resp, code, http.StatusConflict, api.ErrElectionNotFinished)

	// reports
	n.clock.Set(timestamp(t, date.New(1, 1, 2025)))
	resp, code = ac.Request("GET", nil, "elections", id, "candidates", alice.Address().Hex(), "votes")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	cv := api.CandidateVotes{}
	decodeJSON(t, resp, &cv)
	qt.Assert(t, cv.Votes, qt.Equals, uint32(1))

	resp, code = ac.Request("GET", nil, "reports", id, "participation")
	assertCode(t, resp, code, http.StatusForbidden, api.ErrReportersOnly)
	resp, code = rc.Request("GET", nil, "reports", id, "participation")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	part := api.ParticipationReport{}
	decodeJSON(t, resp, &part)
	qt.Assert(t, part.Participation, qt.Equals, reporting.NewParticipation(2, 1))
	qt.Assert(t, part.Percent, qt.Equals, uint32(50))

	resp, code = rc.Request("GET", nil, "reports", id, "results")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	results := api.Results{}
	decodeJSON(t, resp, &results)
	qt.Assert(t, results.Tally, qt.HasLen, 1)
	qt.Assert(t, results.Tally[0].Candidate, qt.Equals, alice.Address())
	qt.Assert(t, results.Tally[0].Votes, qt.Equals, uint32(1))

	resp, code = rc.Request("GET", nil, "reports", id, "voters")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	voters := api.UserList{}
	decodeJSON(t, resp, &voters)
	qt.Assert(t, voters.Users, qt.HasLen, 2)

	resp, code = n.anon.Request("GET", nil, "elections")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	list := api.ElectionList{}
	decodeJSON(t, resp, &list)
	qt.Assert(t, list.Elections, qt.HasLen, 1)
	qt.Assert(t, list.Elections[0].Status, qt.Equals, api.ElectionStatusEnded)
	qt.Assert(t, list.Elections[0].VoteCount, qt.Equals, 1)
}

func TestRequestErrors(t *testing.T) {
	keys := testutil.RandomSigners(t, 3)
	admin, reporter, alice := keys[0], keys[1], keys[2]
	n := newTestNode(t, admin, reporter)
	ac := n.client(t, admin)

	resp, code := n.anon.Request("POST", nil, "users")
	qt.Assert(t, code, qt.Equals, http.StatusUnauthorized, qt.Commentf("%s", resp))

	resp, code = n.anon.Request("GET", nil, "elections", "abc")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrCantParseElectionID)
	resp, code = n.anon.Request("GET", nil, "elections", "7")
	assertCode(t, resp, code, http.StatusNotFound, api.ErrElectionNotFound)
	resp, code = ac.Request("GET", nil, "users", "0x1234")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrAddressMalformed)
	resp, code = ac.Request("GET", nil, "users", alice.Address().Hex())
	assertCode(t, resp, code, http.StatusNotFound, api.ErrUserNotFound)
	resp, code = n.client(t, alice).Request("POST", "not an object", "users")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrCantParseDataAsJSON)
	resp, code = ac.Request("POST", api.NewElectionRequest{Start: "30/02/2024", End: "31/12/2024"}, "elections")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrInvalidDate)
}

func TestAdminHandover(t *testing.T) {
	keys := testutil.RandomSigners(t, 3)
	admin, reporter, next := keys[0], keys[1], keys[2]
	n := newTestNode(t, admin, reporter)

	resp, code := n.client(t, next).Request("PUT", api.AddressRequest{Address: next.Address()}, "admin")
	assertCode(t, resp, code, http.StatusForbidden, api.ErrNotAdmin)
	_, code = n.client(t, admin).Request("PUT", api.AddressRequest{Address: next.Address()}, "admin")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	_, code = n.client(t, next).Request("PUT", api.AddressRequest{Address: next.Address()}, "reporter")
	qt.Assert(t, code, qt.Equals, http.StatusOK)

	resp, code = n.anon.Request("GET", nil, "info")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	info := api.Info{}
	decodeJSON(t, resp, &info)
	qt.Assert(t, info.Admin, qt.Equals, next.Address())
	qt.Assert(t, info.Reporter, qt.Equals, next.Address())
}

func TestCapturedRequestCannotBeReplayed(t *testing.T) {
	keys := testutil.RandomSigners(t, 3)
	admin, reporter, next := keys[0], keys[1], keys[2]
	n := newTestNode(t, admin, reporter)

	ac := n.client(t, admin)
	_, code := ac.Request("PUT", api.AddressRequest{Address: next.Address()}, "admin")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	_, code = n.client(t, next).Request("PUT", api.AddressRequest{Address: admin.Address()}, "admin")
	qt.Assert(t, code, qt.Equals, http.StatusOK)

	// the handover signed by the old admin cannot be sent again
	resp, code := ac.Resend()
	qt.Assert(t, code, qt.Equals, http.StatusBadRequest, qt.Commentf("%s", resp))
	resp, code = n.anon.Request("GET", nil, "info")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	info := api.Info{}
	decodeJSON(t, resp, &info)
	qt.Assert(t, info.Admin, qt.Equals, admin.Address())
}

func TestJournal(t *testing.T) {
	keys := testutil.RandomSigners(t, 3)
	admin, reporter, alice := keys[0], keys[1], keys[2]
	n := newTestNode(t, admin, reporter)
	ac := n.client(t, admin)

	_, code := n.client(t, alice).Request("POST", api.RegisterRequest{FirstName: "alice", Age: 20}, "users")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	_, code = ac.Request("POST", nil, "users", alice.Address().Hex(), "approve")
	qt.Assert(t, code, qt.Equals, http.StatusOK)
	_, code = ac.Request("POST", api.NewElectionRequest{Start: "01/01/2024", End: "31/12/2024"}, "elections")
	qt.Assert(t, code, qt.Equals, http.StatusOK)

	resp, code := n.client(t, alice).Request("GET", nil, "journal")
	assertCode(t, resp, code, http.StatusForbidden, api.ErrNotAdmin)

	resp, code = ac.Request("GET", nil, "journal")
	qt.Assert(t, code, qt.Equals, http.StatusOK, qt.Commentf("%s", resp))
	entries := api.JournalEntries{}
	decodeJSON(t, resp, &entries)
	qt.Assert(t, entries.Entries, qt.HasLen, 3)
	qt.Assert(t, entries.Entries[0].Seq, qt.Equals, uint64(1))
	qt.Assert(t, entries.Entries[0].Kind, qt.Equals, journal.UserRegistered)
	qt.Assert(t, entries.Entries[2].Kind, qt.Equals, journal.ElectionCreated)

	resp, code = ac.Request("GET", nil, "journal?from=2&limit=1")
	qt.Assert(t, code, qt.Equals, http.StatusOK, qt.Commentf("%s", resp))
	entries = api.JournalEntries{}
	decodeJSON(t, resp, &entries)
	qt.Assert(t, entries.Entries, qt.HasLen, 1)
	qt.Assert(t, entries.Entries[0].Seq, qt.Equals, uint64(2))
	qt.Assert(t, entries.Entries[0].Subject, qt.Equals, alice.Address())

	resp, code = ac.Request("GET", nil, "journal?limit=0")
	assertCode(t, resp, code, http.StatusBadRequest, api.ErrCantParseJournalRange)
}

func TestErrorByCode(t *testing.T) {
	e, ok := api.ErrorByCode(api.ErrAlreadyVoted.Code)
	qt.Assert(t, ok, qt.IsTrue)
	qt.Assert(t, e.Err, qt.Equals, api.ErrAlreadyVoted.Err)
	_, ok = api.ErrorByCode(api.ErrInternal.Code)
	qt.Assert(t, ok, qt.IsFalse)
}

package testcommon

import (
	"net/url"
	"testing"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/db/metadb"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/Vicen621-Facultad/votacion/test/testcommon/testutil"
	"github.com/Vicen621-Facultad/votacion/voting"
	qt "github.com/frankban/quicktest"
)

// APIserver contains all the required pieces for running a mock API server.
// It is used for testing purposes only. The server runs the voting service
// over a temporary database, with a mocked clock moved by the test.
type APIserver struct {
	Admin      *ethereum.SignKeys
	Reporter   *ethereum.SignKeys
	ListenAddr *url.URL
	Clock      *testutil.MockClock
	Voting     *voting.Service
	Journal    *journal.Journal
}

// Start starts a basic API server for testing, with the clock at now. If no
// handlers are given, all of them are enabled.
func (d *APIserver) Start(t testing.TB, now uint64, handlers ...string) {
	signers := testutil.RandomSigners(t, 2)
	d.Admin, d.Reporter = signers[0], signers[1]
	d.Clock = testutil.NewMockClock(now)

	// create the API router
	router := httprouter.HTTProuter{}
	qt.Assert(t, router.Init("127.0.0.1", 0), qt.IsNil)
	t.Cleanup(func() { _ = router.Close() })
	addr, err := url.Parse("http://" + router.Address().String() + "/")
	qt.Assert(t, err, qt.IsNil)
	d.ListenAddr = addr
	t.Logf("address: %s", addr.String())
	a, err := api.NewAPI(&router, "/")
	qt.Assert(t, err, qt.IsNil)

	// create the services over a single database
	database := metadb.NewTest(t)
	d.Voting, err = voting.New(voting.NewDBStore(database), d.Clock, d.Admin.Address(), d.Reporter.Address())
	qt.Assert(t, err, qt.IsNil)
	d.Journal, err = journal.New(database, journal.DefaultQueueSize)
	qt.Assert(t, err, qt.IsNil)
	d.Voting.SetJournal(d.Journal)

	// attach all the pieces to the API
	a.Attach(d.Voting, reporting.New(d.Voting, reporting.DefaultCacheSize), d.Journal)

	// enable the required handlers
	if len(handlers) == 0 {
		handlers = api.AllHandlers
	}
	qt.Assert(t, a.EnableHandlers(handlers...), qt.IsNil)
}

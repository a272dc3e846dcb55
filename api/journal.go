package api

import (
	"strconv"

	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/log"
)

func (a *API) enableJournalHandlers() error {
	return a.register(
		route{"/journal", "GET", apirest.MethodAccessTypePrivate, a.journalHandler},
	)
}

// journalHandler lists the stored journal entries starting at the sequence
// number given by the from query parameter (1 if missing), up to limit
// entries (MaxJournalPage if missing or bigger). Admin only.
func (a *API) journalHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	if msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	from := uint64(1)
	if s := ctx.QueryParam("from"); s != "" {
		var err error
		if from, err = strconv.ParseUint(s, 10, 64); err != nil {
			return ErrCantParseJournalRange.Withf("from (%s): %v", s, err)
		}
	}
	limit := MaxJournalPage
	if s := ctx.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return ErrCantParseJournalRange.Withf("limit (%s)", s)
		}
		if n < limit {
			limit = n
		}
	}
	// store what is queued first
	if _, err := a.journal.Flush(); err != nil {
		log.Warnw("cannot flush journal", "err", err)
	}
	entries, err := a.journal.Entries(from, limit)
	if err != nil {
		return ErrCantFetchJournal.WithErr(err)
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	return ctx.SendJSON(JournalEntries{Entries: entries}, apirest.HTTPstatusOK)
}

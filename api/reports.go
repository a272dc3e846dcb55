package api

import (
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
)

func (a *API) enableReportHandlers() error {
	return a.register(
		route{"/reports/{electionID}/voters", "GET", apirest.MethodAccessTypePrivate, a.reportVotersHandler},
		route{"/reports/{electionID}/participation", "GET", apirest.MethodAccessTypePrivate, a.reportParticipationHandler},
		route{"/reports/{electionID}/results", "GET", apirest.MethodAccessTypePrivate, a.reportResultsHandler},
	)
}

func (a *API) reportVotersHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	users, err := a.reports.RegisteredVoters(msg.Caller, id)
	return ok(ctx, UserList{Users: users}, err)
}

func (a *API) reportParticipationHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	p, err := a.reports.Participation(msg.Caller, id)
	return ok(ctx, ParticipationReport{ElectionID: id, Participation: p}, err)
}

func (a *API) reportResultsHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	tally, err := a.reports.Results(msg.Caller, id)
	return ok(ctx, Results{ElectionID: id, Tally: tally}, err)
}

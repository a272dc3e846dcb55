package api

import (
	"github.com/Vicen621-Facultad/votacion/date"
	"github.com/Vicen621-Facultad/votacion/election"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/voting"
)

func (a *API) enableElectionHandlers() error {
	return a.register(
		route{"/elections", "GET", apirest.MethodAccessTypePublic, a.electionListHandler},
		route{"/elections", "POST", apirest.MethodAccessTypePrivate, a.electionCreateHandler},
		route{"/elections/{electionID}", "GET", apirest.MethodAccessTypePublic, a.electionHandler},
		route{"/elections/{electionID}/status", "GET", apirest.MethodAccessTypePrivate, a.electionStatusHandler},
		route{"/elections/{electionID}/nominations", "GET", apirest.MethodAccessTypePrivate, a.nominationsHandler},
		route{"/elections/{electionID}/candidates", "POST", apirest.MethodAccessTypePrivate, a.nominateCandidateHandler},
		route{"/elections/{electionID}/voters", "POST", apirest.MethodAccessTypePrivate, a.nominateVoterHandler},
		route{"/elections/{electionID}/candidates/{address}/approve", "POST", apirest.MethodAccessTypePrivate,
			a.approveCandidateHandler},
		route{"/elections/{electionID}/voters/{address}/approve", "POST", apirest.MethodAccessTypePrivate,
			a.approveVoterHandler},
		route{"/elections/{electionID}/candidates/{address}/votes", "GET", apirest.MethodAccessTypePrivate,
			a.candidateVotesHandler},
		route{"/elections/{electionID}/voters/{address}/voted", "GET", apirest.MethodAccessTypePrivate,
			a.hasVotedHandler},
		route{"/elections/{electionID}/votes", "POST", apirest.MethodAccessTypePrivate, a.voteHandler},
	)
}

// electionView builds the public view of e at now.
func electionView(e *election.Election, now uint64) Election {
	status := ElectionStatusUpcoming
	switch {
	case e.Ended(now):
		status = ElectionStatusEnded
	case e.Started(now):
		status = ElectionStatusOngoing
	}
	return Election{
		ElectionID: e.ID(),
		Start:      e.Start(),
		End:        e.End(),
		Status:     status,
		Candidates: e.Candidates(),
		VoterCount: len(e.Voters()),
		VoteCount:  e.VotedCount(),
	}
}

func (a *API) electionListHandler(_ *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	now := a.voting.Now()
	list := ElectionList{Elections: []Election{}}
	for _, e := range a.voting.Elections() {
		list.Elections = append(list.Elections, electionView(e, now))
	}
	return ok(ctx, list, nil)
}

func (a *API) electionHandler(_ *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	e, found := a.voting.Election(id)
	if !found {
		return ErrElectionNotFound
	}
	return ok(ctx, electionView(e, a.voting.Now()), nil)
}

// electionCreateHandler creates an election. Admin only.
func (a *API) electionCreateHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	req := NewElectionRequest{}
	if err := decode(msg, &req); err != nil {
		return err
	}
	start, err := date.Parse(req.Start)
	if err != nil {
		return ErrCantParseDate.WithErr(err)
	}
	end, err := date.Parse(req.End)
	if err != nil {
		return ErrCantParseDate.WithErr(err)
	}
	id, err := a.voting.CreateElection(msg.Caller, start, end)
	return ok(ctx, NewElectionResponse{ElectionID: id}, err)
}

func (a *API) electionStatusHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	started, err := a.voting.ElectionStarted(msg.Caller, id)
	if err != nil {
		return toAPIerror(err)
	}
	ended, err := a.voting.ElectionEnded(msg.Caller, id)
	return ok(ctx, ElectionStatus{Started: started, Ended: ended}, err)
}

// nominationsHandler lists the nominations waiting for approval. Admin only.
func (a *API) nominationsHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	if msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	e, found := a.voting.Election(id)
	if !found {
		return toAPIerror(voting.ErrElectionNotFound)
	}
	return ok(ctx, Nominations{Candidates: e.PendingCandidates(), Voters: e.PendingVoters()}, nil)
}

func (a *API) nominateCandidateHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	return done(ctx, a.voting.NominateCandidate(msg.Caller, id))
}

func (a *API) nominateVoterHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	return done(ctx, a.voting.NominateVoter(msg.Caller, id))
}

func (a *API) approveCandidateHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	return done(ctx, a.voting.ApproveCandidate(msg.Caller, id, who))
}

func (a *API) approveVoterHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	return done(ctx, a.voting.ApproveVoter(msg.Caller, id, who))
}

func (a *API) candidateVotesHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	votes, err := a.voting.VotesForCandidate(msg.Caller, id, who)
	return ok(ctx, CandidateVotes{Candidate: who, Votes: votes}, err)
}

func (a *API) hasVotedHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	voted, err := a.voting.HasVoted(msg.Caller, id, who)
	return ok(ctx, HasVotedResponse{Voted: voted}, err)
}

// voteHandler casts the vote of the caller.
func (a *API) voteHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	id, err := electionIDParam(ctx)
	if err != nil {
		return err
	}
	req := VoteRequest{}
	if err := decode(msg, &req); err != nil {
		return err
	}
	return done(ctx, a.voting.Vote(msg.Caller, id, req.Candidate))
}

package api

import (
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
)

func (a *API) enableUserHandlers() error {
	return a.register(
		route{"/users", "POST", apirest.MethodAccessTypePrivate, a.registerHandler},
		route{"/users", "GET", apirest.MethodAccessTypePrivate, a.usersHandler},
		route{"/users/pending", "GET", apirest.MethodAccessTypePrivate, a.pendingUsersHandler},
		route{"/users/pending/{address}", "GET", apirest.MethodAccessTypePrivate, a.pendingUserHandler},
		route{"/users/{address}", "GET", apirest.MethodAccessTypePrivate, a.userHandler},
		route{"/users/{address}/approve", "POST", apirest.MethodAccessTypePrivate, a.approveUserHandler},
	)
}

// registerHandler registers the caller, pending approval by the admin.
func (a *API) registerHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	req := RegisterRequest{}
	if err := decode(msg, &req); err != nil {
		return err
	}
	u, err := a.voting.Register(msg.Caller, req.FirstName, req.LastName,
		req.PostalAddress, req.NationalID, req.Age)
	return ok(ctx, u, err)
}

// usersHandler lists the accepted users. Admin only.
func (a *API) usersHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	if msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	return ok(ctx, UserList{Users: a.voting.Users()}, nil)
}

// pendingUsersHandler lists the registrations waiting for approval. Admin only.
func (a *API) pendingUsersHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	if msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	return ok(ctx, UserList{Users: a.voting.PendingUsers()}, nil)
}

// userHandler returns an accepted user to itself or to the admin.
func (a *API) userHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	if msg.Caller != who && msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	u, err := a.voting.User(who)
	return ok(ctx, u, err)
}

// pendingUserHandler returns a pending registration to its owner or to the admin.
func (a *API) pendingUserHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	if msg.Caller != who && msg.Caller != a.voting.Admin() {
		return ErrNotAdmin
	}
	u, err := a.voting.PendingUser(who)
	return ok(ctx, u, err)
}

func (a *API) approveUserHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	who, err := addressParam(ctx)
	if err != nil {
		return err
	}
	return done(ctx, a.voting.ApproveUser(msg.Caller, who))
}

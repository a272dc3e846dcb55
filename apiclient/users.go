package apiclient

import (
	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/directory"
	"github.com/ethereum/go-ethereum/common"
)

// Info returns the node information.
func (c *HTTPclient) Info() (*api.Info, error) {
	info := &api.Info{}
	if err := c.call(HTTPGET, nil, info, nil, "info"); err != nil {
		return nil, err
	}
	return info, nil
}

// SetAdmin hands the admin role over to admin.
func (c *HTTPclient) SetAdmin(admin common.Address) error {
	return c.call(HTTPPUT, &api.AddressRequest{Address: admin}, nil, nil, "admin")
}

// SetReporter changes the reporter identity.
func (c *HTTPclient) SetReporter(reporter common.Address) error {
	return c.call(HTTPPUT, &api.AddressRequest{Address: reporter}, nil, nil, "reporter")
}

// Register registers the account as a user, pending approval.
func (c *HTTPclient) Register(req *api.RegisterRequest) (*directory.User, error) {
	u := &directory.User{}
	if err := c.call(HTTPPOST, req, u, nil, "users"); err != nil {
		return nil, err
	}
	return u, nil
}

// ApproveUser accepts the pending registration of who.
func (c *HTTPclient) ApproveUser(who common.Address) error {
	return c.call(HTTPPOST, nil, nil, nil, "users", who.Hex(), "approve")
}

// User returns the accepted user who.
func (c *HTTPclient) User(who common.Address) (*directory.User, error) {
	u := &directory.User{}
	if err := c.call(HTTPGET, nil, u, nil, "users", who.Hex()); err != nil {
		return nil, err
	}
	return u, nil
}

// PendingUser returns the pending registration of who.
func (c *HTTPclient) PendingUser(who common.Address) (*directory.User, error) {
	u := &directory.User{}
	if err := c.call(HTTPGET, nil, u, nil, "users", "pending", who.Hex()); err != nil {
		return nil, err
	}
	return u, nil
}

// Users lists the accepted users.
func (c *HTTPclient) Users() ([]directory.User, error) {
	list := &api.UserList{}
	if err := c.call(HTTPGET, nil, list, nil, "users"); err != nil {
		return nil, err
	}
	return list.Users, nil
}

// PendingUsers lists the registrations waiting for approval.
func (c *HTTPclient) PendingUsers() ([]directory.User, error) {
	list := &api.UserList{}
	if err := c.call(HTTPGET, nil, list, nil, "users", "pending"); err != nil {
		return nil, err
	}
	return list.Users, nil
}

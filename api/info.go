package api

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/internal"
	"github.com/Vicen621-Facultad/votacion/log"
	psload "github.com/shirou/gopsutil/load"
	psmem "github.com/shirou/gopsutil/mem"
	psnet "github.com/shirou/gopsutil/net"
)

const (
	healthMemMax   = 100
	healthLoadMax  = 10
	healthSocksMax = 10000
)

func (a *API) enableInfoHandlers() error {
	return a.register(
		route{"/info", "GET", apirest.MethodAccessTypePublic, a.infoHandler},
		route{"/admin", "PUT", apirest.MethodAccessTypePrivate, a.setAdminHandler},
		route{"/reporter", "PUT", apirest.MethodAccessTypePrivate, a.setReporterHandler},
	)
}

// infoHandler returns the version, the privileged identities and the health
// of the node. A health of -1 means it could not be measured.
func (a *API) infoHandler(_ *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	info := Info{
		Version:   internal.Version,
		Admin:     a.voting.Admin(),
		Reporter:  a.voting.Reporter(),
		Elections: a.voting.ElectionCount(),
		Health:    -1,
	}
	if health, err := getHealth(); err == nil {
		info.Health = health
	} else {
		log.Debugw("cannot get health status", "err", err)
	}
	return ctx.SendJSON(info, apirest.HTTPstatusOK)
}

func (a *API) setAdminHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	req := AddressRequest{}
	if err := decode(msg, &req); err != nil {
		return err
	}
	return done(ctx, a.voting.SetAdmin(msg.Caller, req.Address))
}

func (a *API) setReporterHandler(msg *apirest.APIdata, ctx *httprouter.HTTPContext) error {
	req := AddressRequest{}
	if err := decode(msg, &req); err != nil {
		return err
	}
	return done(ctx, a.voting.SetReporter(msg.Caller, req.Address))
}

// getHealth returns a number between 0 and 99 that represents the status of
// the node, the bigger the better:
//
//	100 * (1 - (0.33*mem/memMax + 0.33*load/loadMax + 0.33*sockets/socketsMax))
//
// Each value is capped at its maximum.
func getHealth() (int32, error) {
	v, err := psmem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	memUsed := v.UsedPercent
	l, err := psload.Avg()
	if err != nil {
		return 0, err
	}
	load15 := l.Load15
	n, err := psnet.Connections("tcp")
	if err != nil {
		return 0, err
	}
	sockets := float64(len(n))

	if memUsed > healthMemMax {
		memUsed = healthMemMax
	}
	if load15 > healthLoadMax {
		load15 = healthLoadMax
	}
	if sockets > healthSocksMax {
		sockets = healthSocksMax
	}
	result := int32((1 - (0.33*(memUsed/healthMemMax) +
		0.33*(load15/healthLoadMax) +
		0.33*(sockets/healthSocksMax))) * 100)
	if result < 0 || result >= 100 {
		return 0, fmt.Errorf("expected health to be between 0 and 99: %d", result)
	}
	return result, nil
}

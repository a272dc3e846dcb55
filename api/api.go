// Package api is the REST API of the voting service. Callers identify
// themselves by signing their requests; authorization is left to the voting
// and reporting services.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/journal"
	"github.com/Vicen621-Facultad/votacion/reporting"
	"github.com/Vicen621-Facultad/votacion/voting"
	"github.com/ethereum/go-ethereum/common"
)

// Handler groups that can be enabled.
const (
	InfoHandler     = "info"
	UserHandler     = "users"
	ElectionHandler = "elections"
	ReportHandler   = "reports"
	JournalHandler  = "journal"
)

// AllHandlers lists every handler group.
var AllHandlers = []string{InfoHandler, UserHandler, ElectionHandler, ReportHandler, JournalHandler}

// MaxJournalPage is the maximum number of journal entries returned at once.
const MaxJournalPage = 100

var (
	ErrMissingModulesForHandler = fmt.Errorf("missing modules attached for enabling handler")
	ErrHandlerUnknown           = fmt.Errorf("handler unknown")
	ErrHTTPRouterIsNil          = fmt.Errorf("httprouter is nil")
	ErrBaseRouteInvalid         = fmt.Errorf("base route must start with /")
)

// API is the REST API of the voting service.
type API struct {
	endpoint *apirest.API

	voting  *voting.Service
	reports *reporting.Service
	journal *journal.Journal
}

// NewAPI creates a new instance of the API. Attach must be called next.
func NewAPI(router *httprouter.HTTProuter, baseRoute string) (*API, error) {
	if router == nil {
		return nil, ErrHTTPRouterIsNil
	}
	if len(baseRoute) == 0 || baseRoute[0] != '/' {
		return nil, fmt.Errorf("%w (invalid given: %s)", ErrBaseRouteInvalid, baseRoute)
	}
	if len(baseRoute) > 1 {
		baseRoute = strings.TrimSuffix(baseRoute, "/")
	}
	endpoint, err := apirest.NewAPI(router, baseRoute)
	if err != nil {
		return nil, err
	}
	return &API{endpoint: endpoint}, nil
}

// Attach takes the modules used by the handlers. The journal may be nil.
// Attach must be called before EnableHandlers.
func (a *API) Attach(vs *voting.Service, reports *reporting.Service, j *journal.Journal) {
	a.voting = vs
	a.reports = reports
	a.journal = j
}

// EnableHandlers enables the list of handlers. Attach must be called before.
func (a *API) EnableHandlers(handlers ...string) error {
	for _, h := range handlers {
		if a.voting == nil {
			return fmt.Errorf("%w %s", ErrMissingModulesForHandler, h)
		}
		var err error
		switch h {
		case InfoHandler:
			err = a.enableInfoHandlers()
		case UserHandler:
			err = a.enableUserHandlers()
		case ElectionHandler:
			err = a.enableElectionHandlers()
		case ReportHandler:
			if a.reports == nil {
				return fmt.Errorf("%w %s", ErrMissingModulesForHandler, h)
			}
			err = a.enableReportHandlers()
		case JournalHandler:
			if a.journal == nil {
				return fmt.Errorf("%w %s", ErrMissingModulesForHandler, h)
			}
			err = a.enableJournalHandlers()
		default:
			return fmt.Errorf("%w: %s", ErrHandlerUnknown, h)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type route struct {
	pattern, method, access string
	handler                 apirest.APIhandler
}

func (a *API) register(routes ...route) error {
	for _, r := range routes {
		if err := a.endpoint.RegisterMethod(r.pattern, r.method, r.access, r.handler); err != nil {
			return err
		}
	}
	return nil
}

// electionIDParam parses the {electionID} URL parameter.
func electionIDParam(ctx *httprouter.HTTPContext) (uint32, error) {
	s := ctx.URLParam("electionID")
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrCantParseElectionID.Withf("(%s): %v", s, err)
	}
	return uint32(id), nil
}

// addressParam parses the {address} URL parameter.
func addressParam(ctx *httprouter.HTTPContext) (common.Address, error) {
	s := ctx.URLParam("address")
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrAddressMalformed.With(s)
	}
	return common.HexToAddress(s), nil
}

// decode unmarshals the request body into v.
func decode(msg *apirest.APIdata, v any) error {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return ErrCantParseDataAsJSON.WithErr(err)
	}
	return nil
}

// ok replies with v, or with the APIerror of err if not nil.
func ok(ctx *httprouter.HTTPContext, v any, err error) error {
	if err != nil {
		return toAPIerror(err)
	}
	return ctx.SendJSON(v, apirest.HTTPstatusOK)
}

// done replies with an empty body, or with the APIerror of err if not nil.
func done(ctx *httprouter.HTTPContext, err error) error {
	if err != nil {
		return toAPIerror(err)
	}
	return ctx.Send(nil, apirest.HTTPstatusOK)
}

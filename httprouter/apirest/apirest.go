package apirest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/Vicen621-Facultad/votacion/util"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// MethodAccessTypePrivate for requests that must be signed
	MethodAccessTypePrivate = "private"
	// MethodAccessTypePublic for public requests
	MethodAccessTypePublic = "public"

	namespace         = "apirest"
	maxRequestBody    = 1 << 20
	maxRequestBodyLog = 1024 // maximum request body size to log
)

// HTTPstatus* equal http.Status*, simple sugar to avoid importing http everywhere
const (
	HTTPstatusOK           = http.StatusOK
	HTTPstatusNoContent    = http.StatusNoContent
	HTTPstatusBadRequest   = http.StatusBadRequest
	HTTPstatusUnauthorized = http.StatusUnauthorized
	HTTPstatusForbidden    = http.StatusForbidden
	HTTPstatusNotFound     = http.StatusNotFound
	HTTPstatusConflict     = http.StatusConflict
	HTTPstatusInternalErr  = http.StatusInternalServerError
)

// API is a namespace handler for the httpRouter that identifies callers by
// the signature of their requests.
type API struct {
	router   *httprouter.HTTProuter
	basePath string
	replay   *replayGuard
}

// APIdata is the data type used by the API.
// On handler functions Message.Data can be cast safely to this type.
type APIdata struct {
	Data []byte
	// Caller is the address that signed the request, only meaningful if
	// Signed is true.
	Caller common.Address
	Signed bool
}

// APIhandler is the handler function used by the API httprouter implementation
type APIhandler = func(*APIdata, *httprouter.HTTPContext) error

// APIerror is used by handler functions to wrap errors, assigning a unique error code
// and also specifying which HTTP Status should be used.
type APIerror struct {
	Err        error
	Code       int
	HTTPstatus int
}

// MarshalJSON returns a JSON containing Err.Error() and Code. Field HTTPstatus is ignored.
//
// Example output: {"error":"election not found","code":4010}
func (e APIerror) MarshalJSON() ([]byte, error) {
	// json.Marshal doesn't call Err.Error()
	return json.Marshal(
		struct {
			Err  string `json:"error"`
			Code int    `json:"code"`
		}{
			Err:  e.Err.Error(),
			Code: e.Code,
		})
}

// Error returns the Message contained inside the APIerror
func (e APIerror) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e APIerror) Unwrap() error {
	return e.Err
}

// Send serializes a JSON msg using APIerror.Message and APIerror.Code
// and passes that to ctx.Send()
func (e APIerror) Send(ctx *httprouter.HTTPContext) error {
	return ctx.SendJSON(e, e.HTTPstatus)
}

// Withf returns a copy of APIerror with the Sprintf formatted string appended at the end of e.Err
func (e APIerror) Withf(format string, args ...any) APIerror {
	return e.With(fmt.Sprintf(format, args...))
}

// With returns a copy of APIerror with the string appended at the end of e.Err
func (e APIerror) With(s string) APIerror {
	return APIerror{
		Err:        fmt.Errorf("%w: %v", e.Err, s),
		Code:       e.Code,
		HTTPstatus: e.HTTPstatus,
	}
}

// WithErr returns a copy of APIerror with err.Error() appended at the end of e.Err
func (e APIerror) WithErr(err error) APIerror {
	return e.With(err.Error())
}

// SignedMessage returns the payload a client signs to identify itself:
// the HTTP method and the URL path on the first line, the timestamp (unix
// milliseconds) and the nonce on the second one, then the body.
func SignedMessage(method, urlPath string, timestamp uint64, nonce string, body []byte) []byte {
	msg := make([]byte, 0, len(method)+len(urlPath)+len(nonce)+24+len(body))
	msg = append(msg, method...)
	msg = append(msg, ' ')
	msg = append(msg, urlPath...)
	msg = append(msg, '\n')
	msg = strconv.AppendUint(msg, timestamp, 10)
	msg = append(msg, ' ')
	msg = append(msg, nonce...)
	msg = append(msg, '\n')
	return append(msg, body...)
}

// NewAPI returns an API initialized type
func NewAPI(router *httprouter.HTTProuter, baseRoute string) (*API, error) {
	if router == nil {
		panic("httprouter is nil")
	}
	if len(baseRoute) == 0 || baseRoute[0] != '/' {
		return nil, fmt.Errorf("invalid base route (%s), it must start with /", baseRoute)
	}
	if len(baseRoute) > 1 {
		baseRoute = strings.TrimSuffix(baseRoute, "/")
	}
	a := API{router: router, basePath: baseRoute, replay: newReplayGuard(DefaultRequestWindow)}
	router.AddNamespace(namespace, &a)
	return &a, nil
}

// AuthorizeRequest is a function for the RouterNamespace interface.
// Private handlers require a signed request.
func (a *API) AuthorizeRequest(data any, accessType httprouter.AuthAccessType) (bool, error) {
	msg, ok := data.(*APIdata)
	if !ok {
		panic("type is not APIdata")
	}
	if accessType == httprouter.AccessTypePrivate && !msg.Signed {
		return false, fmt.Errorf("request must be signed")
	}
	return true, nil
}

// ProcessData processes the HTTP request and returns structured data.
// The body is read and, if the request carries a signature, the caller
// address is recovered from it. A signed request is accepted once: its
// timestamp must be within the request window and its nonce new.
func (a *API) ProcessData(req *http.Request) (any, error) {
	reqBody, err := io.ReadAll(io.LimitReader(req.Body, maxRequestBody))
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %v", err)
	}
	if len(reqBody) > 0 {
		displayReq := string(reqBody)
		if len(displayReq) > maxRequestBodyLog {
			displayReq = displayReq[:maxRequestBodyLog] + "..."
		}
		log.Debugf("request: %s", displayReq)
	}
	msg := &APIdata{Data: reqBody}
	if sig := req.Header.Get(httprouter.SignatureHeader); sig != "" {
		if !util.IsHexEncodedStringWithLength(sig, ethereum.SignatureLength) {
			return nil, fmt.Errorf("invalid signature: not %d hex encoded bytes", ethereum.SignatureLength)
		}
		ts, err := strconv.ParseUint(req.Header.Get(httprouter.TimestampHeader), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid signature: missing or malformed %s", httprouter.TimestampHeader)
		}
		nonce := req.Header.Get(httprouter.NonceHeader)
		if nonce == "" || len(nonce) > maxNonceSize {
			return nil, fmt.Errorf("invalid signature: missing or malformed %s", httprouter.NonceHeader)
		}
		msg.Caller, err = ethereum.AddrFromHexSignature(
			SignedMessage(req.Method, req.URL.Path, ts, nonce, reqBody), sig)
		if err != nil {
			return nil, fmt.Errorf("invalid signature: %w", err)
		}
		if err := a.replay.check(msg.Caller, nonce, ts, time.Now()); err != nil {
			log.Warnw("signed request rejected", "caller", msg.Caller.Hex(), "err", err)
			return nil, err
		}
		msg.Signed = true
	}
	return msg, nil
}

// RegisterMethod adds a new method under the URL pattern.
// The pattern URL can contain variable names by using braces, such as /send/{name}/hello
// The pattern can also contain wildcard at the end of the path, such as /send/{name}/hello/*
// The accessType can be of type private or public.
func (a *API) RegisterMethod(pattern, HTTPmethod string, accessType string, handler APIhandler) error {
	if pattern[0] != '/' {
		panic("pattern must start with /")
	}
	routerHandler := func(msg httprouter.Message) {
		data := msg.Data.(*APIdata)
		if err := handler(data, msg.Context); err != nil {
			if apierror, ok := err.(APIerror); ok {
				if err := apierror.Send(msg.Context); err != nil {
					log.Warnf("couldn't send apierror: %v", err)
				}
				return
			}
			// a handler returned a plain error, which should not happen
			log.Warnw("unhandled api error", "path", msg.Context.Request.URL.Path, "err", err)
			if err := msg.Context.Send([]byte(err.Error()), HTTPstatusInternalErr); err != nil {
				log.Warn(err)
			}
		}
	}

	path := path.Join(a.basePath, pattern)
	switch accessType {
	case MethodAccessTypePublic:
		a.router.AddPublicHandler(namespace, path, HTTPmethod, routerHandler)
	case MethodAccessTypePrivate:
		a.router.AddPrivateHandler(namespace, path, HTTPmethod, routerHandler)
	default:
		return fmt.Errorf("method access type not implemented: %s", accessType)
	}
	return nil
}

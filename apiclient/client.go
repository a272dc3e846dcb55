// Package apiclient is a Go client for the voting service REST API.
package apiclient

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/Vicen621-Facultad/votacion/api"
	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
)

const (
	// HTTPGET is the method string used for calling Request()
	HTTPGET = "GET"
	// HTTPPOST is the method string used for calling Request()
	HTTPPOST = "POST"
	// HTTPPUT is the method string used for calling Request()
	HTTPPUT = "PUT"

	errCodeNot200 = "API server returned status code is not 200"
)

// HTTPclient is the voting API HTTP client. Requests are signed with the
// account, if set.
type HTTPclient struct {
	c       *http.Client
	addr    *url.URL
	account *ethereum.SignKeys
}

// NewHTTPclient creates a new HTTP(s) API client for the API at addr and
// checks that the server answers. The account may be nil.
func NewHTTPclient(addr *url.URL, account *ethereum.SignKeys) (*HTTPclient, error) {
	tr := &http.Transport{
		IdleConnTimeout:    10 * time.Second,
		DisableCompression: false,
	}
	c := &HTTPclient{
		c:       &http.Client{Transport: tr, Timeout: time.Second * 8},
		addr:    addr,
		account: account,
	}
	if _, err := c.Info(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetAccount sets the account used for signing requests.
func (c *HTTPclient) SetAccount(accountPrivateKey string) error {
	account := new(ethereum.SignKeys)
	if err := account.AddHexKey(accountPrivateKey); err != nil {
		return err
	}
	c.account = account
	return nil
}

// Account returns the address of the account signing the requests, or the
// zero address if there is none.
func (c *HTTPclient) Account() common.Address {
	if c.account == nil {
		return common.Address{}
	}
	return c.account.Address()
}

// Request performs a `method` type raw request to the endpoint specified in
// urlPath. If jsonBody is not nil it is sent JSON encoded. Returns the
// response, the status code and an error.
func (c *HTTPclient) Request(method string, jsonBody any, urlPath ...string) ([]byte, int, error) {
	return c.request(method, jsonBody, nil, urlPath...)
}

func (c *HTTPclient) request(method string, jsonBody any, query url.Values,
	urlPath ...string,
) ([]byte, int, error) {
	var body []byte
	if jsonBody != nil {
		var err error
		if body, err = json.Marshal(jsonBody); err != nil {
			return nil, 0, err
		}
	}
	u, err := url.Parse(c.addr.String())
	if err != nil {
		return nil, 0, err
	}
	u.Path = path.Join(u.Path, path.Join(urlPath...))
	u.RawQuery = query.Encode()
	headers := http.Header{
		"Content-Type":             []string{httprouter.DefaultContentType},
		"User-Agent":               []string{"votacion API client / 1.0"},
		middleware.RequestIDHeader: []string{uuid.New().String()},
	}
	if c.account != nil {
		ts := uint64(time.Now().UnixMilli())
		nonce := uuid.New().String()
		signature, err := c.account.Sign(apirest.SignedMessage(method, u.Path, ts, nonce, body))
		if err != nil {
			return nil, 0, err
		}
		headers.Set(httprouter.SignatureHeader, hex.EncodeToString(signature))
		headers.Set(httprouter.TimestampHeader, strconv.FormatUint(ts, 10))
		headers.Set(httprouter.NonceHeader, nonce)
	}
	log.Debugf("%s %s", method, u)
	resp, err := c.c.Do(&http.Request{
		Method: method,
		URL:    u,
		Header: headers,
		Body:   io.NopCloser(bytes.NewBuffer(body)),
	})
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return data, resp.StatusCode, nil
}

// call performs a request and decodes the response into out, if not nil.
// API errors with a known code are returned as the matching api error, so
// callers can check them with errors.Is.
func (c *HTTPclient) call(method string, jsonBody, out any, query url.Values, urlPath ...string) error {
	resp, code, err := c.request(method, jsonBody, query, urlPath...)
	if err != nil {
		return err
	}
	if code != apirest.HTTPstatusOK {
		return responseError(code, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func responseError(code int, resp []byte) error {
	var e struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(resp, &e); err != nil || e.Code == 0 {
		return fmt.Errorf("%s: %d (%s)", errCodeNot200, code, bytes.TrimSpace(resp))
	}
	if known, ok := api.ErrorByCode(e.Code); ok {
		return fmt.Errorf("%w (%s)", known, e.Error)
	}
	return apirest.APIerror{Err: fmt.Errorf("%s", e.Error), Code: e.Code, HTTPstatus: code}
}

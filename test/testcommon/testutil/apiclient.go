package testutil

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Vicen621-Facultad/votacion/crypto/ethereum"
	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/httprouter/apirest"
	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
)

// TestHTTPclient performs raw API requests, signed by an optional account.
type TestHTTPclient struct {
	c       *http.Client
	account *ethereum.SignKeys
	addr    *url.URL
	t       testing.TB

	// last request sent, kept for Resend
	lastMethod  string
	lastURL     *url.URL
	lastHeaders http.Header
	lastBody    []byte
}

// Request sends jsonBody (if not nil) to the endpoint at urlPath, and returns
// the response body and status code. The last element of urlPath may carry a
// query string.
func (c *TestHTTPclient) Request(method string, jsonBody any, urlPath ...string) ([]byte, int) {
	var body []byte
	if jsonBody != nil {
		var err error
		body, err = json.Marshal(jsonBody)
		qt.Assert(c.t, err, qt.IsNil)
	}
	u, err := url.Parse(c.addr.String())
	qt.Assert(c.t, err, qt.IsNil)
	p := path.Join(urlPath...)
	if i := strings.IndexByte(p, '?'); i >= 0 {
		u.RawQuery = p[i+1:]
		p = p[:i]
	}
	u.Path = path.Join(u.Path, p)
	headers := http.Header{}
	if c.account != nil {
		ts := uint64(time.Now().UnixMilli())
		nonce := uuid.New().String()
		signature, err := c.account.Sign(apirest.SignedMessage(method, u.Path, ts, nonce, body))
		qt.Assert(c.t, err, qt.IsNil)
		headers.Set(httprouter.SignatureHeader, hex.EncodeToString(signature))
		headers.Set(httprouter.TimestampHeader, strconv.FormatUint(ts, 10))
		headers.Set(httprouter.NonceHeader, nonce)
	}
	c.lastMethod, c.lastURL, c.lastHeaders, c.lastBody = method, u, headers, body
	return c.send(method, u, headers, body)
}

// Resend sends again the exact bytes and headers of the last request.
func (c *TestHTTPclient) Resend() ([]byte, int) {
	qt.Assert(c.t, c.lastURL, qt.IsNotNil)
	return c.send(c.lastMethod, c.lastURL, c.lastHeaders.Clone(), c.lastBody)
}

func (c *TestHTTPclient) send(method string, u *url.URL, headers http.Header, body []byte) ([]byte, int) {
	c.t.Logf("querying %s %s", method, u)
	resp, err := c.c.Do(&http.Request{
		Method: method,
		URL:    u,
		Header: headers,
		Body:   io.NopCloser(bytes.NewReader(body)),
	})
	qt.Assert(c.t, err, qt.IsNil)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	qt.Assert(c.t, err, qt.IsNil)
	return data, resp.StatusCode
}

// NewTestHTTPclient returns a client for the API at addr. A nil account sends
// unsigned requests.
func NewTestHTTPclient(t testing.TB, addr *url.URL, account *ethereum.SignKeys) *TestHTTPclient {
	tr := &http.Transport{
		MaxIdleConns:       10,
		IdleConnTimeout:    5 * time.Second,
		DisableCompression: false,
	}
	return &TestHTTPclient{
		c:       &http.Client{Transport: tr, Timeout: time.Second * 8},
		account: account,
		addr:    addr,
		t:       t,
	}
}

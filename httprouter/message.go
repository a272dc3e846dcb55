package httprouter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/go-chi/chi"
)

// SignatureHeader carries the hex encoded signature identifying the caller.
const SignatureHeader = "X-Signature"

// TimestampHeader carries the unix time in milliseconds of a signed request.
const TimestampHeader = "X-Timestamp"

// NonceHeader carries a value the signer never reuses within the request window.
const NonceHeader = "X-Nonce"

// maxLoggedResponse is the number of response bytes written to the debug log.
const maxLoggedResponse = 256

// Message is a wrapper for messages for a RouterNamespace implementation.
// Data is set by the namespace and can be of any type (implementation details
// should be checked). In order to send a reply, Context.Send() should be called.
type Message struct {
	Data      any
	TimeStamp time.Time
	Path      []string
	Context   *HTTPContext
}

// HTTPContext is the Context for an HTTP request.
type HTTPContext struct {
	Writer  http.ResponseWriter
	Request *http.Request

	contentType string
	sent        chan struct{}
}

// SetResponseContentType sets the content type for the response (the default content type is used if not defined).
func (h *HTTPContext) SetResponseContentType(contentType string) {
	h.contentType = contentType
}

// URLParam is a wrapper around go-chi to get a URL parameter (specified in the path pattern as {key})
func (h *HTTPContext) URLParam(key string) string {
	return chi.URLParam(h.Request, key)
}

// QueryParam returns the first value of the URL query parameter key.
func (h *HTTPContext) QueryParam(key string) string {
	return h.Request.URL.Query().Get(key)
}

// SendJSON replies the request with the JSON encoding of v.
func (h *HTTPContext) SendJSON(v any, httpStatusCode int) error {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warnw("cannot marshal response", "err", err)
		return h.Send([]byte(`{"error":"marshal failed"}`), http.StatusInternalServerError)
	}
	return h.Send(data, httpStatusCode)
}

// Send replies the request with the provided message. It must be called
// exactly once per request.
func (h *HTTPContext) Send(msg []byte, httpStatusCode int) error {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("recovered http send panic: %v", r)
		}
	}()
	defer close(h.sent)

	if httpStatusCode < 100 || httpStatusCode >= 600 {
		return fmt.Errorf("http status code %d not supported", httpStatusCode)
	}
	if h.Request.Context().Err() != nil {
		return fmt.Errorf("connection is closed")
	}
	if h.contentType == "" {
		h.contentType = DefaultContentType
	}
	h.Writer.Header().Set("Content-Type", h.contentType)

	if httpStatusCode == http.StatusNoContent {
		h.Writer.WriteHeader(httpStatusCode)
		log.Debugw("http response", "status", httpStatusCode)
		return nil
	}

	// plus the trailing newline
	h.Writer.Header().Set("Content-Length", strconv.Itoa(len(msg)+1))
	h.Writer.WriteHeader(httpStatusCode)
	if len(msg) > maxLoggedResponse {
		log.Debugw("http response", "status", httpStatusCode, "data", string(msg[:maxLoggedResponse])+"...")
	} else {
		log.Debugw("http response", "status", httpStatusCode, "data", string(msg))
	}
	if _, err := h.Writer.Write(msg); err != nil {
		return err
	}
	_, err := h.Writer.Write([]byte("\n"))
	return err
}

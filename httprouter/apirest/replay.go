package apirest

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultRequestWindow is how far the timestamp of a signed request may be
// from the server clock.
const DefaultRequestWindow = 5 * time.Minute

// maxNonceSize is the maximum length of the nonce of a signed request.
const maxNonceSize = 64

var (
	// ErrStaleRequest is returned when the timestamp of a signed request is
	// outside the accepted window.
	ErrStaleRequest = fmt.Errorf("signed request timestamp is outside the accepted window")
	// ErrReplayedRequest is returned when a signer reuses a nonce.
	ErrReplayedRequest = fmt.Errorf("signed request was already processed")
)

// replayGuard remembers the nonces used by each signer while their requests
// are inside the window. Older nonces can be forgotten since their requests
// are rejected as stale.
type replayGuard struct {
	mu     sync.Mutex
	window int64 // milliseconds
	seen   map[string]int64
	pruned int64
}

func newReplayGuard(window time.Duration) *replayGuard {
	return &replayGuard{
		window: window.Milliseconds(),
		seen:   make(map[string]int64),
	}
}

// check accepts the request of signer with nonce and timestamp ts (unix
// milliseconds) if ts is close enough to now and the nonce is new.
func (g *replayGuard) check(signer common.Address, nonce string, ts uint64, now time.Time) error {
	nowMs := now.UnixMilli()
	if ts > math.MaxInt64 || int64(ts) < nowMs-g.window || int64(ts) > nowMs+g.window {
		return ErrStaleRequest
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if nowMs-g.pruned > g.window {
		for k, t := range g.seen {
			if t < nowMs-g.window {
				delete(g.seen, k)
			}
		}
		g.pruned = nowMs
	}
	key := string(signer.Bytes()) + nonce
	if _, ok := g.seen[key]; ok {
		return ErrReplayedRequest
	}
	g.seen[key] = int64(ts)
	return nil
}

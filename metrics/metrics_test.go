package metrics

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/Vicen621-Facultad/votacion/httprouter"
	qt "github.com/frankban/quicktest"
	"github.com/prometheus/client_golang/prometheus"
)

func TestAgent(t *testing.T) {
	r := httprouter.HTTProuter{}
	qt.Assert(t, r.Init("127.0.0.1", 0), qt.IsNil)
	t.Cleanup(func() { _ = r.Close() })

	ma := NewAgent("/metrics", 0, &r)
	qt.Assert(t, ma.RefreshInterval, qt.Equals, DefaultRefreshInterval)

	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "metricstest",
		Name:      "things_total",
		Help:      "Things",
	})
	ma.Register(c)
	// registering twice is harmless
	ma.Register(c)
	c.Add(3)

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", r.Address()))
	qt.Assert(t, err, qt.IsNil)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, resp.StatusCode, qt.Equals, http.StatusOK)
	qt.Assert(t, string(body), qt.Contains, "metricstest_things_total 3")
}

// Package metrics exposes the prometheus collectors of the node over the
// HTTP router.
package metrics

import (
	"time"

	"github.com/Vicen621-Facultad/votacion/httprouter"
	"github.com/Vicen621-Facultad/votacion/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultRefreshInterval is the period of the gauges refresh loops.
const DefaultRefreshInterval = 10 * time.Second

// Agent struct with options
type Agent struct {
	Path            string
	RefreshInterval time.Duration
}

// NewAgent creates and initializes the metrics agent, exposing the collected
// metrics at path on router.
func NewAgent(path string, interval time.Duration, router *httprouter.HTTProuter) *Agent {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ma := Agent{Path: path, RefreshInterval: interval}
	router.EnablePrometheusMetrics("votacion_http")
	router.AddRawHTTPHandler(path, "GET", promhttp.Handler().ServeHTTP)
	log.Infof("prometheus metrics ready at: %s", path)
	return &ma
}

// Register the provided prometheus collector on the agent.
func (ma *Agent) Register(c prometheus.Collector) {
	Register(c)
}

// Register the provided prometheus collector, ignoring any error returned (simply logs a Warn)
func Register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		log.Warnf("cannot register metrics: (%s) (%+v)", err, c)
	}
}

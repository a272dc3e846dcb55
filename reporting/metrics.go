package reporting

import (
	"github.com/Vicen621-Facultad/votacion/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reporting",
		Name:      "cache_hits_total",
		Help:      "Reports served from the cache",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "reporting",
		Name:      "cache_misses_total",
		Help:      "Reports computed from the voting service",
	})
)

// RegisterMetrics registers the reporting collectors on the metrics agent.
// If the agent is nil, do nothing.
func RegisterMetrics(ma *metrics.Agent) {
	if ma == nil {
		return
	}
	ma.Register(cacheHits)
	ma.Register(cacheMisses)
}

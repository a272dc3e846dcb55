package journal

import (
	"github.com/Vicen621-Facultad/votacion/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	journalQueued = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "journal",
		Name:      "queued",
		Help:      "Entries waiting to be stored",
	})
	journalQueueCapacity = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "journal",
		Name:      "queue_capacity",
		Help:      "Maximum number of entries waiting to be stored",
	})
	journalStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "journal",
		Name:      "stored_total",
		Help:      "Entries written to the database",
	})
	journalDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "journal",
		Name:      "dropped_total",
		Help:      "Entries dropped because the queue was full",
	})
)

// RegisterMetrics registers the journal collectors on the metrics agent.
func RegisterMetrics(ma *metrics.Agent) {
	ma.Register(journalQueued)
	ma.Register(journalQueueCapacity)
	ma.Register(journalStored)
	ma.Register(journalDropped)
}

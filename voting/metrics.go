package voting

import (
	"context"
	"time"

	"github.com/Vicen621-Facultad/votacion/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	electionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "elections_created_total",
		Help:      "Elections created since the node started",
	})
	votesCast = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "votes_total",
		Help:      "Votes cast since the node started",
	})
	electionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "voting",
		Name:      "elections",
		Help:      "Stored elections",
	})
	usersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "voting",
		Name:      "users",
		Help:      "Accepted users",
	})
	pendingUsersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "voting",
		Name:      "pending_users",
		Help:      "Registrations waiting for approval",
	})
)

func (s *Service) registerMetrics(ma *metrics.Agent) {
	ma.Register(electionsCreated)
	ma.Register(votesCast)
	ma.Register(electionsGauge)
	ma.Register(usersGauge)
	ma.Register(pendingUsersGauge)
}

func (s *Service) getMetrics() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	electionsGauge.Set(float64(len(s.state.Elections)))
	usersGauge.Set(float64(len(s.state.Users.Users())))
	pendingUsersGauge.Set(float64(len(s.state.Users.PendingUsers())))
}

// CollectMetrics registers the service collectors and keeps the gauges up to
// date until ctx is done. It is blocking, should be called in a goroutine.
// If the metrics Agent is nil, do nothing.
func (s *Service) CollectMetrics(ctx context.Context, ma *metrics.Agent) {
	if ma == nil {
		return
	}
	s.registerMetrics(ma)
	ticker := time.NewTicker(ma.RefreshInterval)
	defer ticker.Stop()
	for {
		s.getMetrics()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

package statesync

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type metrics struct {
	remotePushes  *prometheus.CounterVec
	cacheWrites   *prometheus.CounterVec
	remoteChanges prometheus.Counter
	connected     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		remotePushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "birdie",
			Subsystem: "statesync",
			Name:      "remote_pushes_total",
			Help:      "Remote replica upserts by result.",
		}, []string{"result"}),
		cacheWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "birdie",
			Subsystem: "statesync",
			Name:      "cache_writes_total",
			Help:      "Local cache writes by result.",
		}, []string{"result"}),
		remoteChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "birdie",
			Subsystem: "statesync",
			Name:      "remote_changes_applied_total",
			Help:      "Remote change notifications applied to the local state.",
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "birdie",
			Subsystem: "statesync",
			Name:      "connected",
			Help:      "1 when the remote replica is connected.",
		}),
	}

	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	for _, c := range []prometheus.Collector{m.remotePushes, m.cacheWrites, m.remoteChanges, m.connected} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return m, nil
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}

func (m *metrics) setConnected(connected bool) {
	if connected {
		m.connected.Set(1)
		return
	}
	m.connected.Set(0)
}

package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	inputActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deskmouse",
			Subsystem: "input",
			Name:      "actions_total",
			Help:      "Pointer actions injected, by action and result.",
		},
		[]string{"action", "result"},
	)
	inputDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "deskmouse",
			Subsystem: "input",
			Name:      "action_duration_seconds",
			Help:      "Time spent inside the platform injection call.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"action"},
	)
	controlConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "deskmouse",
			Subsystem: "control",
			Name:      "connections",
			Help:      "Active control connections (websocket and data channel).",
		},
	)
)

// RegisterMetrics registers collectors with the default registry once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(inputActions, inputDuration, controlConnections)
	})
}

// RecordAction records one injected pointer action.
func RecordAction(action string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	inputActions.WithLabelValues(action, result).Inc()
	inputDuration.WithLabelValues(action).Observe(duration.Seconds())
}

// ConnectionOpened increments the active control connection gauge.
func ConnectionOpened() {
	controlConnections.Inc()
}

// ConnectionClosed decrements the active control connection gauge.
func ConnectionClosed() {
	controlConnections.Dec()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

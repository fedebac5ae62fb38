// Package metrics holds the prometheus collectors of corerpc.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics contains all Prometheus metrics of the process
type Metrics struct {
	// Conversion metrics
	Conversions        *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec

	// Daemon transport metrics
	DaemonCalls *prometheus.CounterVec

	// Mempool watcher metrics
	WatchedEntries prometheus.Gauge
	WatchRounds    *prometheus.CounterVec
}

// NewMetrics initializes and registers Prometheus metrics
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers Prometheus metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corerpc_conversions_total",
				Help: "The total number of reply conversions by method, daemon version and status",
			},
			[]string{"method", "version", "status"},
		),
		ConversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corerpc_conversion_duration_seconds",
				Help:    "Time spent decoding and converting a reply",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"method"},
		),
		DaemonCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corerpc_daemon_calls_total",
				Help: "The total number of calls made to the daemon by method and status",
			},
			[]string{"method", "status"},
		),
		WatchedEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "corerpc_watched_mempool_entries",
			Help: "The number of mempool entries currently known to the watcher",
		}),
		WatchRounds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corerpc_watch_rounds_total",
				Help: "The total number of watcher polling rounds by status",
			},
			[]string{"status"},
		),
	}
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}

// ObserveConversion records one conversion of a method reply.
func (m *Metrics) ObserveConversion(method string, version int, d time.Duration, err error) {
	m.Conversions.WithLabelValues(method, strconv.Itoa(version), status(err)).Inc()
	m.ConversionDuration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveCall records one daemon call.
func (m *Metrics) ObserveCall(method string, err error) {
	m.DaemonCalls.WithLabelValues(method, status(err)).Inc()
}

// ObserveRound records one watcher round and the resulting number of entries.
func (m *Metrics) ObserveRound(entries int, err error) {
	m.WatchRounds.WithLabelValues(status(err)).Inc()
	if err == nil {
		m.WatchedEntries.Set(float64(entries))
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the metrics registered with the default prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() { defaultMetrics = NewMetrics() })
	return defaultMetrics
}

// ObserveConversion records a conversion on the default metrics.
func ObserveConversion(method string, version int, d time.Duration, err error) {
	Default().ObserveConversion(method, version, d, err)
}

// ObserveCall records a daemon call on the default metrics.
func ObserveCall(method string, err error) {
	Default().ObserveCall(method, err)
}

// ObserveRound records a watcher round on the default metrics.
func ObserveRound(entries int, err error) {
	Default().ObserveRound(entries, err)
}

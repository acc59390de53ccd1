package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters and histograms for the HTTP surface, the chat proxy and reminder dispatch.
type Metrics struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	chatTotal          *prometheus.CounterVec
	remindersPublished prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sehat",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sehat",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sehat",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "AI assistant requests by outcome",
		}, []string{"outcome"}),
		remindersPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sehat",
			Subsystem: "reminders",
			Name:      "dispatched_total",
			Help:      "Medication reminders marked sent and published",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.chatTotal, m.remindersPublished)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveChat records one chat outcome (ok, bad_request, unavailable, timeout, error).
func (m *Metrics) ObserveChat(outcome string) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddRemindersDispatched(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.remindersPublished.Add(float64(n))
}

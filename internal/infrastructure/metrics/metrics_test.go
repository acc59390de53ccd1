package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/doctors", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "/api/doctors", 200, 10*time.Millisecond)
	m.ObserveChat("unavailable")
	m.AddRemindersDispatched(3)
	m.AddRemindersDispatched(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/doctors", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chatTotal.WithLabelValues("unavailable")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.remindersPublished))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/", 200, time.Second)
	m.ObserveChat("ok")
	m.AddRemindersDispatched(1)
}

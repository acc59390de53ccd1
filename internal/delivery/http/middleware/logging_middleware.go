package middleware

import (
	"net/http"
	"time"

	"sehat-clinic/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware writes one access-log entry per request and records it in the HTTP metrics.
type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewLoggingMiddleware(log *logrus.Logger, m *metrics.Metrics) *LoggingMiddleware {
	return &LoggingMiddleware{log: log, metrics: m}
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := routeTemplate(r)
		m.metrics.ObserveRequest(r.Method, route, rec.status, elapsed)
		m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"route":       route,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		}).Info("request")
	})
}

// routeTemplate keeps metric labels bounded by using the matched pattern, not the raw path.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

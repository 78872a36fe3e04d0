package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_booking_http_requests_total",
		Help: "Number of HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lesson_booking_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_booking_webhook_events_total",
		Help: "Number of webhook events by type and outcome.",
	}, []string{"type", "outcome"})

	ledgerWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_booking_ledger_write_failures_total",
		Help: "Number of lesson payment ledger writes that failed.",
	}, []string{"operation"})
)

func (app *application) metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

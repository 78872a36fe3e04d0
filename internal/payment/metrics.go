package payment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var providerCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "lesson_booking",
	Subsystem: "stripe",
	Name:      "call_duration_seconds",
	Help:      "Duration of calls made to the Stripe API.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation"})

func observe(operation string, start time.Time) {
	providerCallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

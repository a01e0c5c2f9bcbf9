package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	enquiriesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiries_created_total",
			Help: "Total enquiries captured from public forms",
		},
		[]string{"kind"},
	)

	outboxEmailsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_emails_sent_total",
			Help: "Emails delivered by the outbox worker",
		},
	)

	outboxEmailsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_emails_failed_total",
			Help: "Email delivery attempts that failed",
		},
	)

	outboxEmailsDeadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_emails_dead_total",
			Help: "Emails abandoned after exhausting retry attempts",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
}

// RecordEnquiryCreated counts a captured lead by kind
// ("student", "enterprise", "faculty").
func RecordEnquiryCreated(kind string) {
	enquiriesCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordOutboxSent counts a delivered email.
func RecordOutboxSent() {
	outboxEmailsSentTotal.Inc()
}

// RecordOutboxFailure counts a failed delivery attempt.
func RecordOutboxFailure() {
	outboxEmailsFailedTotal.Inc()
}

// RecordOutboxDead counts an email abandoned after max attempts.
func RecordOutboxDead() {
	outboxEmailsDeadTotal.Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact pipeline metrics
var (
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"result"}, // sent, invalid_email, smtp_unavailable, failed
	)

	EmailVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_verifications_total",
			Help: "Total number of deliverability checks by outcome",
		},
		[]string{"result"}, // valid, invalid, error
	)

	SMTPDispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smtp_dispatch_duration_seconds",
			Help:    "Duration of SMTP verify plus send for one submission",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// API metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CORSRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cors_rejections_total",
			Help: "Total number of requests refused by the CORS gate",
		},
	)
)

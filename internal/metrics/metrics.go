package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_application_transitions_total",
			Help: "Total number of application transitions attempted, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_application_submissions_total",
			Help: "Total number of vendor application submissions, by business type",
		},
		[]string{"business_type"},
	)

	VendorsProvisionedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vendors_provisioned_total",
			Help: "Total number of vendors created by final approval",
		},
	)

	EmployeeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_cache_lookups_total",
			Help: "Employee directory cache lookups, by result",
		},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for authorization, submissions and the
// verification workflow. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	// Authorization decisions by action and outcome ("allow" or the deny reason)
	AuthzDecisions *prometheus.CounterVec

	// Application submissions by result ("submitted" or the error kind)
	Submissions *prometheus.CounterVec

	// Application decisions by outcome
	ApplicationDecisions *prometheus.CounterVec

	// Verification status changes by new status
	VerificationChanges *prometheus.CounterVec

	// HTTP request latencies by route and status code
	RequestLatency *prometheus.HistogramVec
}

// New registers all metrics on reg. Passing nil registers on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		AuthzDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobboard_authz_decisions_total",
			Help: "Total authorization decisions by action and outcome",
		}, []string{"action", "outcome"}),

		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobboard_application_submissions_total",
			Help: "Total application submissions by result",
		}, []string{"result"}),

		ApplicationDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobboard_application_decisions_total",
			Help: "Total application decisions by result",
		}, []string{"result"}),

		VerificationChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "jobboard_verification_changes_total",
			Help: "Total verification status changes by new status",
		}, []string{"status"}),

		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status code",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "code"}),
	}
}

// IncrementAuthzDecision records an authorization decision.
func (m *Metrics) IncrementAuthzDecision(action, outcome string) {
	if m != nil {
		m.AuthzDecisions.WithLabelValues(action, outcome).Inc()
	}
}

// IncrementSubmission records the result of a submit call.
func (m *Metrics) IncrementSubmission(result string) {
	if m != nil {
		m.Submissions.WithLabelValues(result).Inc()
	}
}

// IncrementApplicationDecision records the result of a decide call.
func (m *Metrics) IncrementApplicationDecision(result string) {
	if m != nil {
		m.ApplicationDecisions.WithLabelValues(result).Inc()
	}
}

// IncrementVerificationChange records a verification status write.
func (m *Metrics) IncrementVerificationChange(status string) {
	if m != nil {
		m.VerificationChanges.WithLabelValues(status).Inc()
	}
}

// ObserveRequest records an HTTP request duration.
func (m *Metrics) ObserveRequest(route, code string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, code).Observe(d.Seconds())
	}
}

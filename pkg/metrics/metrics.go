package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "facile"

// Metrics records validation passes. It implements
// validator.MetricsRecorder.
type Metrics struct {
	// Passes by form and result
	Passes *prometheus.CounterVec

	// Pass duration by form
	PassDuration *prometheus.HistogramVec

	// Rule failures by form, rule and cause
	RuleFailures *prometheus.CounterVec

	// Aborted passes by form and rule
	ConfigErrors *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_passes_total",
			Help:      "Total validation passes by form and result",
		}, []string{"form", "valid"}),

		PassDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of a validation pass",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"form"}),

		RuleFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Total failed rules by form, rule and cause",
		}, []string{"form", "rule", "cause"}),

		ConfigErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_errors_total",
			Help:      "Total passes aborted by a rule configuration error",
		}, []string{"form", "rule"}),
	}
}

// ObservePass records a finished pass.
func (m *Metrics) ObservePass(form string, valid bool, seconds float64) {
	if m == nil {
		return
	}
	m.Passes.WithLabelValues(form, strconv.FormatBool(valid)).Inc()
	m.PassDuration.WithLabelValues(form).Observe(seconds)
}

// ObserveRuleFailure records a failed rule.
func (m *Metrics) ObserveRuleFailure(form, rule, cause string) {
	if m != nil {
		m.RuleFailures.WithLabelValues(form, rule, cause).Inc()
	}
}

// ObserveConfigError records a pass aborted by a configuration error.
func (m *Metrics) ObserveConfigError(form, rule string) {
	if m != nil {
		m.ConfigErrors.WithLabelValues(form, rule).Inc()
	}
}

// Handler exposes the metrics gathered by g in the Prometheus text format.
// A nil g uses prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

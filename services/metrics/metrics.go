// Package metrics exposes operational Prometheus counters for the landing page.
// Only action and outcome names are recorded, never visitor data.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers and middleware report to
type Recorder interface {
	RecordInteraction(action, outcome string)
	RecordLoginSubmission()
	RecordHTTPStatus(statusCode int)
}

// Default receives all recordings. It discards them until Init is called.
var Default Recorder = nopRecorder{}

type nopRecorder struct{}

func (nopRecorder) RecordInteraction(string, string) {}
func (nopRecorder) RecordLoginSubmission()           {}
func (nopRecorder) RecordHTTPStatus(int)             {}

// Collector is the Prometheus-backed Recorder
type Collector struct {
	interactions     *prometheus.CounterVec
	loginSubmissions prometheus.Counter
	httpStatus       *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lai_interactions_total",
			Help: "Landing page interactions by action and outcome",
		}, []string{"action", "outcome"}),
		loginSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lai_login_submissions_total",
			Help: "Mock login form submissions",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lai_http_responses_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.interactions, c.loginSubmissions, c.httpStatus)
	return c
}

// Init registers a Collector with reg and makes it the Default recorder
func Init(reg prometheus.Registerer) *Collector {
	c := NewCollector(reg)
	Default = c
	return c
}

func (c *Collector) RecordInteraction(action, outcome string) {
	c.interactions.WithLabelValues(action, outcome).Inc()
}

func (c *Collector) RecordLoginSubmission() {
	c.loginSubmissions.Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the scrape endpoint for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsInteractions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordInteraction("select_service", "notification")
	c.RecordInteraction("select_service", "notification")
	c.RecordInteraction("try_assistant", "modal")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.interactions.WithLabelValues("select_service", "notification")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.interactions.WithLabelValues("try_assistant", "modal")))
}

func TestCollectorRecordsLoginAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLoginSubmission()
	c.RecordHTTPStatus(http.StatusOK)
	c.RecordHTTPStatus(http.StatusTooManyRequests)
	c.RecordHTTPStatus(http.StatusOK)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.loginSubmissions))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpStatus.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpStatus.WithLabelValues("429")))
}

func TestInitReplacesDefault(t *testing.T) {
	prev := Default
	defer func() { Default = prev }()

	reg := prometheus.NewRegistry()
	c := Init(reg)

	assert.Same(t, c, Default)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = nopRecorder{}
	assert.NotPanics(t, func() {
		r.RecordInteraction("navigate", "notification")
		r.RecordLoginSubmission()
		r.RecordHTTPStatus(500)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordInteraction("navigate", "notification")

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `lai_interactions_total{action="navigate",outcome="notification"} 1`)
}

package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/animals", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/animals", http.StatusOK, 10*time.Millisecond)
	m.Prediction("ok")
	m.Training("adoption_likelihood", "insufficient_data")
	m.ReferencesCleaned(3)
	m.ReferencesCleaned(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/animals", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.trainings.WithLabelValues("adoption_likelihood", "insufficient_data")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cascades))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.Prediction("ok")
	m.Training("x", "trained")
	m.ReferencesCleaned(1)
}

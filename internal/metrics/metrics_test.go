package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/receipts/{id}/points", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/receipts/abc/points", nil))

	out := scrape(t, m)
	assert.True(t, strings.Contains(out,
		`receipt_processor_http_requests_total{method="GET",route="/receipts/{id}/points",status="400"} 1`), out)
}

func TestReceiptCounters(t *testing.T) {
	m := New()

	m.ReceiptProcessed(120)
	m.ReceiptProcessed(7)
	m.ReceiptRejected()

	out := scrape(t, m)
	assert.Contains(t, out, `receipt_processor_receipts_total{result="processed"} 2`)
	assert.Contains(t, out, `receipt_processor_receipts_total{result="rejected"} 1`)
	assert.Contains(t, out, `receipt_processor_receipt_points_sum 127`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ReceiptProcessed(1)
		m.ReceiptRejected()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Middleware(next))
}

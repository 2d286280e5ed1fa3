package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/brew", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	routed := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/sessions/{id}", "204")
	unmatched := HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404")
	beforeRouted, beforeUnmatched := testutil.ToFloat64(routed), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/sessions/a", "/sessions/b", "/wp-admin"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeRouted+2, testutil.ToFloat64(routed))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
